package origin

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/feral-file/nft-bridge/internal/adapter"
	"github.com/feral-file/nft-bridge/internal/domain"
	"github.com/feral-file/nft-bridge/internal/logger"
)

const (
	// maxFetchAttempts bounds transport-level retries against the LCD
	maxFetchAttempts = 5
	// retryDelay is the fixed wait between attempts
	retryDelay = 15 * time.Second
	// pageLimit is the fixed transaction-search page size
	pageLimit = 60
)

// HistoryClient fetches the ordered transfer history of a token from the
// origin chain's REST light-client daemon, newest-first.
//
//go:generate mockgen -source=client.go -destination=../mocks/origin.go -package=mocks -mock_names=HistoryClient=MockHistoryClient
type HistoryClient interface {
	// TransfersForToken returns the transfer_nft events for tokenID on the
	// given origin contract, newest first. Transport failures surface as
	// domain.ErrHistoryFetch after retries; a server-side fault surfaces
	// immediately as *domain.OriginServerError.
	TransfersForToken(ctx context.Context, contractAddress, tokenID string) ([]domain.TransferEvent, error)
}

// LCD transaction-search envelope. Only the fields the bridge reads.
type txSearchResponse struct {
	Txs []txItem `json:"txs"`
}

type txItem struct {
	Body txBody `json:"body"`
}

type txBody struct {
	Messages []executeMsg `json:"messages"`
}

type executeMsg struct {
	Contract string         `json:"contract"`
	Sender   string         `json:"sender"`
	Msg      executePayload `json:"msg"`
}

type executePayload struct {
	TransferNFT *transferNFTMsg `json:"transfer_nft"`
}

type transferNFTMsg struct {
	Recipient string `json:"recipient"`
	TokenID   string `json:"token_id"`
}

type lcdClient struct {
	baseURL    string
	httpClient adapter.HTTPClient
	clock      adapter.Clock
}

// NewLCDClient creates a history client backed by the chain's REST LCD
func NewLCDClient(baseURL string, httpClient adapter.HTTPClient, clock adapter.Clock) HistoryClient {
	return &lcdClient{
		baseURL:    baseURL,
		httpClient: httpClient,
		clock:      clock,
	}
}

func (c *lcdClient) TransfersForToken(ctx context.Context, contractAddress, tokenID string) ([]domain.TransferEvent, error) {
	url := fmt.Sprintf(
		"%s/cosmos/tx/v1beta1/txs?events=execute._contract_address=%%27%s%%27&pagination.limit=%d&pagination.offset=0&pagination.count_total=true",
		c.baseURL, contractAddress, pageLimit,
	)

	resp, err := c.getWithRetry(ctx, url)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.WarnCtx(ctx, "failed to close LCD response body", zap.Error(err))
		}
	}()

	// Server faults are classified, not retried: the caller may want to tell
	// the end user to try again later instead of treating this as a
	// provenance failure.
	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, &domain.OriginServerError{StatusCode: resp.StatusCode}
	}

	var envelope txSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrHistoryDecode, err)
	}

	var transfers []domain.TransferEvent
	for _, tx := range envelope.Txs {
		for _, msg := range tx.Body.Messages {
			if msg.Msg.TransferNFT == nil || msg.Msg.TransferNFT.TokenID != tokenID {
				continue
			}
			transfers = append(transfers, domain.TransferEvent{
				Contract:  msg.Contract,
				TokenID:   msg.Msg.TransferNFT.TokenID,
				Sender:    msg.Sender,
				Recipient: msg.Msg.TransferNFT.Recipient,
			})
		}
	}

	// The LCD returns transactions oldest first; the provenance check wants
	// the most recent transfer at index 0.
	reverse(transfers)

	return transfers, nil
}

// getWithRetry performs the GET, retrying transport-level failures only.
// Any HTTP response, whatever its status, is returned to the caller for
// classification.
func (c *lcdClient) getWithRetry(ctx context.Context, url string) (*http.Response, error) {
	delay := backoff.NewConstantBackOff(retryDelay)

	var lastErr error
	for attempt := 1; attempt <= maxFetchAttempts; attempt++ {
		resp, err := c.httpClient.Get(ctx, url)
		if err == nil {
			return resp, nil
		}

		lastErr = err
		logger.WarnCtx(ctx, "origin chain request failed",
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
		if attempt < maxFetchAttempts {
			c.clock.Sleep(delay.NextBackOff())
		}
	}

	return nil, fmt.Errorf("%w: %s", domain.ErrHistoryFetch, lastErr)
}

func reverse(events []domain.TransferEvent) {
	for i, j := 0, len(events)-1; i < j; i, j = i+1, j-1 {
		events[i], events[j] = events[j], events[i]
	}
}
