package bridge

import (
	"context"
	"errors"
	"fmt"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/feral-file/nft-bridge/internal/domain"
	"github.com/feral-file/nft-bridge/internal/logger"
	"github.com/feral-file/nft-bridge/internal/origin"
	"github.com/feral-file/nft-bridge/internal/rollup"
	"github.com/feral-file/nft-bridge/internal/store"
	"github.com/feral-file/nft-bridge/internal/verifier"
)

// Token-scoped check outcomes. The REST layer maps these to HTTP statuses,
// so the strings are part of the API surface.
const (
	CheckFetchFailed           = "failed to fetch token data from origin chain"
	CheckOriginUnavailable     = "origin chain responded with an error status, please try again later"
	CheckNoTransferFound       = "transaction not found on chain"
	CheckNotTransferredToAdmin = "token has not been transferred to the admin wallet"
	CheckWrongOwner            = "token did not belong to the provided wallet"
	CheckAlreadyMinted         = "token has already been minted"
	CheckOwnershipUnavailable  = "could not verify target chain ownership, please try again later"
)

// Verifier runs the verify -> provenance-check -> enqueue pipeline for one
// migration request. Per-token checks are independent: a failing token never
// aborts its siblings, only request-level faults do.
type Verifier struct {
	signatures  verifier.SignatureVerifier
	history     origin.HistoryClient
	rollup      rollup.Client
	store       store.Store
	adminWallet string
	pool        pond.Pool
}

// NewVerifier creates the bridge orchestrator. adminWallet is the origin
// chain custody address tokens must have been transferred to.
func NewVerifier(
	signatures verifier.SignatureVerifier,
	history origin.HistoryClient,
	rollupClient rollup.Client,
	st store.Store,
	adminWallet string,
	pool pond.Pool,
) *Verifier {
	return &Verifier{
		signatures:  signatures,
		history:     history,
		rollup:      rollupClient,
		store:       st,
		adminWallet: adminWallet,
		pool:        pool,
	}
}

// Handle processes one migration request per the pipeline contract: verify
// the signature, resolve the token set, check every token independently, and
// enqueue the ones that passed in a single atomic insert. The returned
// result carries the full per-token check map even when some tokens failed.
func (v *Verifier) Handle(ctx context.Context, req domain.MigrationRequest) (*domain.MigrationResult, error) {
	// The signed payload is the destination account address: proof that
	// whoever controls the origin wallet chose this target account.
	if err := v.signatures.Verify(req.SignedMessage, req.AccountAddress, req.WalletAddress); err != nil {
		logger.WarnCtx(ctx, "signature verification failed",
			zap.String("wallet_address", req.WalletAddress),
			zap.Error(err),
		)
		return nil, domain.ErrInvalidSignature
	}

	tokenIDs, err := v.resolveTokenIDs(ctx, req)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "checking tokens for migration",
		zap.String("wallet_address", req.WalletAddress),
		zap.String("project_id", req.ProjectID),
		zap.Int("token_count", len(tokenIDs)),
	)

	// Each token's checks are independent, so fan out on the pool. Every
	// goroutine writes only its own slot.
	checks := make([]domain.TokenCheck, len(tokenIDs))
	group := v.pool.NewGroup()
	for i, tokenID := range tokenIDs {
		group.Submit(func() {
			checks[i] = v.checkToken(ctx, req, tokenID)
		})
	}
	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("token check pool failed: %w", err)
	}

	result := &domain.MigrationResult{
		Checks:   make(map[string]domain.TokenCheck, len(checks)),
		Accepted: []string{},
	}
	for _, check := range checks {
		result.Checks[check.TokenID] = check
		if check.Passed() {
			result.Accepted = append(result.Accepted, check.TokenID)
		}
	}

	if len(result.Accepted) == 0 {
		result.Message = "no tokens were accepted for migration"
		return result, nil
	}

	if _, err := v.store.EnqueueMigrations(ctx, store.EnqueueInput{
		WalletAddress:   req.WalletAddress,
		AccountAddress:  req.AccountAddress,
		ContractAddress: req.ContractAddress,
		TokenIDs:        result.Accepted,
	}); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("wallet_address", req.WalletAddress))
		return nil, fmt.Errorf("%w: %s", domain.ErrEnqueueFailed, err)
	}

	logger.InfoCtx(ctx, "tokens queued for minting",
		zap.String("wallet_address", req.WalletAddress),
		zap.Strings("token_ids", result.Accepted),
	)
	result.Message = "tokens have been queued for minting"

	return result, nil
}

// resolveTokenIDs picks the explicit request list when present, otherwise
// falls back to the wallet's registered token set.
func (v *Verifier) resolveTokenIDs(ctx context.Context, req domain.MigrationRequest) ([]string, error) {
	if len(req.TokenIDs) > 0 {
		// A repeated token id would be checked and enqueued twice, and a
		// duplicated mint rejects the whole multicall downstream.
		return dedupeTokenIDs(req.TokenIDs), nil
	}

	record, err := v.store.GetCustomerTokens(ctx, req.WalletAddress, req.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrNoTokensFound, err)
	}
	if record == nil || len(record.TokenIDs) == 0 {
		return nil, domain.ErrNoTokensFound
	}

	return record.TokenIDs, nil
}

// dedupeTokenIDs keeps the first occurrence of each token id.
func dedupeTokenIDs(tokenIDs []string) []string {
	seen := make(map[string]struct{}, len(tokenIDs))
	out := make([]string, 0, len(tokenIDs))
	for _, id := range tokenIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// checkToken runs the provenance and availability checks for one token and
// never returns an error: failures become the token's check reason.
func (v *Verifier) checkToken(ctx context.Context, req domain.MigrationRequest, tokenID string) domain.TokenCheck {
	check := domain.TokenCheck{TokenID: tokenID}

	transfers, err := v.history.TransfersForToken(ctx, req.ProjectID, tokenID)
	var serverErr *domain.OriginServerError
	switch {
	case errors.As(err, &serverErr):
		check.Reason = CheckOriginUnavailable
		return check
	case err != nil:
		check.Reason = CheckFetchFailed
		return check
	case len(transfers) == 0:
		check.Reason = CheckNoTransferFound
		return check
	}

	// Only the most recent transfer matters: the holder must have moved the
	// token to the custody wallet, and must have been its owner to do so.
	last := transfers[0]
	if last.Recipient != v.adminWallet {
		check.Reason = CheckNotTransferredToAdmin
		return check
	}
	if last.Sender != req.WalletAddress {
		check.Reason = CheckWrongOwner
		return check
	}

	minted, err := v.rollup.HasToken(ctx, req.ContractAddress, tokenID)
	if err != nil {
		logger.WarnCtx(ctx, "target chain ownership check failed",
			zap.String("token_id", tokenID),
			zap.Error(err),
		)
		check.Reason = CheckOwnershipUnavailable
		return check
	}
	if minted {
		check.Reason = CheckAlreadyMinted
		return check
	}

	return check
}
