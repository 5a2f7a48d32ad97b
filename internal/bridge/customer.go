package bridge

import (
	"context"

	"go.uber.org/zap"

	"github.com/feral-file/nft-bridge/internal/domain"
	"github.com/feral-file/nft-bridge/internal/logger"
	"github.com/feral-file/nft-bridge/internal/store"
	"github.com/feral-file/nft-bridge/internal/store/schema"
)

// CustomerService manages registered token sets and exposes the migration
// state of a wallet's queue entries.
type CustomerService struct {
	store store.Store
}

func NewCustomerService(st store.Store) *CustomerService {
	return &CustomerService{store: st}
}

// SaveTokens registers token IDs for a wallet and project. Repeated calls
// merge into the existing set instead of replacing it.
func (s *CustomerService) SaveTokens(ctx context.Context, walletAddress, projectID string, tokenIDs []string) error {
	if err := s.store.SaveCustomerTokens(ctx, walletAddress, projectID, tokenIDs); err != nil {
		logger.ErrorCtx(ctx, err,
			zap.String("wallet_address", walletAddress),
			zap.String("project_id", projectID),
		)
		return err
	}

	logger.InfoCtx(ctx, "customer tokens saved",
		zap.String("wallet_address", walletAddress),
		zap.String("project_id", projectID),
		zap.Int("token_count", len(tokenIDs)),
	)
	return nil
}

// MigrationState returns the wallet's queue entries for a project. The
// project identifier is the target chain contract the entries were queued
// against. Returns ErrCustomerNotFound when the wallet has no entries.
func (s *CustomerService) MigrationState(ctx context.Context, walletAddress, projectID string) ([]schema.QueueItem, error) {
	items, err := s.store.GetMigrationsByOwner(ctx, walletAddress, projectID)
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.String("wallet_address", walletAddress))
		return nil, err
	}
	if len(items) == 0 {
		return nil, domain.ErrCustomerNotFound
	}

	return items, nil
}
