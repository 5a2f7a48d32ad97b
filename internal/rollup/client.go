package rollup

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/nft-bridge/internal/adapter"
	"github.com/feral-file/nft-bridge/internal/domain"
	"github.com/feral-file/nft-bridge/internal/logger"
	"github.com/feral-file/nft-bridge/internal/store/schema"
)

const (
	// confirmationMaxAttempts bounds the post-submission status poll
	confirmationMaxAttempts = 30
	// confirmationInterval is the wait between status polls
	confirmationInterval = 5 * time.Second

	mintSelector    = "mint"
	ownerOfSelector = "ownerOf"

	txStatusRejected     = "REJECTED"
	txStatusAcceptedOnL2 = "ACCEPTED_ON_L2"
	txStatusAcceptedOnL1 = "ACCEPTED_ON_L1"
)

// Client talks to the target chain's account gateway: ownership view calls,
// batched mint submission, and confirmation polling.
//
//go:generate mockgen -source=client.go -destination=../mocks/rollup.go -package=mocks -mock_names=Client=MockRollupClient
type Client interface {
	// HasToken reports whether tokenID is already minted on the contract.
	// A transport-level failure is returned as an error rather than being
	// collapsed into "not minted", so callers can skip rather than re-mint.
	HasToken(ctx context.Context, contractAddress, tokenID string) (bool, error)

	// BatchMint submits one multi-call transaction minting every item on the
	// given contract, then polls for confirmation. On submission success it
	// returns the transaction hash plus the resolved terminal status; a
	// submission failure returns domain.ErrMintSubmission.
	BatchMint(ctx context.Context, contractAddress string, items []schema.QueueItem) (string, schema.QueueItemStatus, error)
}

type contractCall struct {
	ContractAddress    string   `json:"contract_address"`
	EntryPointSelector string   `json:"entry_point_selector"`
	Calldata           []string `json:"calldata"`
}

type invokeRequest struct {
	Type          string         `json:"type"`
	SenderAddress string         `json:"sender_address"`
	Calls         []contractCall `json:"calls"`
}

type invokeResponse struct {
	Code            string `json:"code"`
	TransactionHash string `json:"transaction_hash"`
}

type txStatusResponse struct {
	TxStatus        string `json:"tx_status"`
	TxFailureReason *struct {
		Code         string `json:"code"`
		ErrorMessage string `json:"error_message"`
	} `json:"tx_failure_reason"`
}

type gatewayClient struct {
	gatewayURL     string
	accountAddress string
	httpClient     adapter.HTTPClient
	clock          adapter.Clock
}

// NewGatewayClient creates a client for the rollup's sequencer gateway.
// Transaction signing is handled by the account endpoint itself; this client
// only shapes and submits the multicall.
func NewGatewayClient(gatewayURL, accountAddress string, httpClient adapter.HTTPClient, clock adapter.Clock) Client {
	return &gatewayClient{
		gatewayURL:     gatewayURL,
		accountAddress: accountAddress,
		httpClient:     httpClient,
		clock:          clock,
	}
}

func (c *gatewayClient) HasToken(ctx context.Context, contractAddress, tokenID string) (bool, error) {
	call := contractCall{
		ContractAddress:    contractAddress,
		EntryPointSelector: ownerOfSelector,
		Calldata:           []string{tokenID, "0"},
	}

	resp, err := c.httpClient.PostJSON(ctx, c.gatewayURL+"/feeder_gateway/call_contract", call)
	if err != nil {
		return false, fmt.Errorf("failed to call %s: %w", ownerOfSelector, err)
	}
	defer closeBody(ctx, resp)

	// The gateway answers a reverted view call (unminted token) with an
	// error status; only a clean response proves existing ownership.
	return resp.StatusCode == http.StatusOK, nil
}

func (c *gatewayClient) BatchMint(ctx context.Context, contractAddress string, items []schema.QueueItem) (string, schema.QueueItemStatus, error) {
	calls := make([]contractCall, 0, len(items))
	for _, item := range items {
		calls = append(calls, contractCall{
			ContractAddress:    contractAddress,
			EntryPointSelector: mintSelector,
			Calldata:           []string{item.AccountAddress, item.TokenID, "0"},
		})
	}

	req := invokeRequest{
		Type:          "INVOKE_FUNCTION",
		SenderAddress: c.accountAddress,
		Calls:         calls,
	}

	resp, err := c.httpClient.PostJSON(ctx, c.gatewayURL+"/gateway/add_transaction", req)
	if err != nil {
		return "", "", fmt.Errorf("%w: %s", domain.ErrMintSubmission, err)
	}
	defer closeBody(ctx, resp)

	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("%w: gateway returned status %d", domain.ErrMintSubmission, resp.StatusCode)
	}

	var submitted invokeResponse
	if err := json.NewDecoder(resp.Body).Decode(&submitted); err != nil {
		return "", "", fmt.Errorf("%w: %s", domain.ErrMintSubmission, err)
	}

	logger.InfoCtx(ctx, "mint transaction submitted",
		zap.String("transaction_hash", submitted.TransactionHash),
		zap.String("contract_address", contractAddress),
		zap.Int("call_count", len(calls)),
	)

	status, reason := c.awaitConfirmation(ctx, submitted.TransactionHash)
	if status == schema.QueueItemStatusError {
		logger.WarnCtx(ctx, "mint transaction did not confirm",
			zap.String("transaction_hash", submitted.TransactionHash),
			zap.String("reason", reason),
		)
	}

	return submitted.TransactionHash, status, nil
}

// awaitConfirmation polls the transaction status until the chain reports a
// definitive accept or reject. Exhausting the ceiling resolves to error: an
// unconfirmed mint must not be reported as success.
func (c *gatewayClient) awaitConfirmation(ctx context.Context, txHash string) (schema.QueueItemStatus, string) {
	url := fmt.Sprintf("%s/feeder_gateway/get_transaction_status?transactionHash=%s", c.gatewayURL, txHash)

	for attempt := 1; attempt <= confirmationMaxAttempts; attempt++ {
		status, err := c.fetchTransactionStatus(ctx, url)
		if err != nil {
			logger.WarnCtx(ctx, "failed to poll transaction status",
				zap.String("transaction_hash", txHash),
				zap.Int("attempt", attempt),
				zap.Error(err),
			)
		} else {
			switch status.TxStatus {
			case txStatusRejected:
				if status.TxFailureReason != nil {
					return schema.QueueItemStatusError, status.TxFailureReason.Code
				}
				return schema.QueueItemStatusError, "transaction rejected"
			case txStatusAcceptedOnL2, txStatusAcceptedOnL1:
				return schema.QueueItemStatusSuccess, ""
			}
		}

		if attempt < confirmationMaxAttempts {
			c.clock.Sleep(confirmationInterval)
		}
	}

	return schema.QueueItemStatusError, "transaction confirmation timed out"
}

func (c *gatewayClient) fetchTransactionStatus(ctx context.Context, url string) (*txStatusResponse, error) {
	resp, err := c.httpClient.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	defer closeBody(ctx, resp)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gateway returned status %d", resp.StatusCode)
	}

	var status txStatusResponse
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, fmt.Errorf("failed to decode transaction status: %w", err)
	}

	return &status, nil
}

func closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		logger.WarnCtx(ctx, "failed to close gateway response body", zap.Error(err))
	}
}
