package consumer

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/nft-bridge/internal/adapter"
	"github.com/feral-file/nft-bridge/internal/logger"
	"github.com/feral-file/nft-bridge/internal/rollup"
	"github.com/feral-file/nft-bridge/internal/store"
	"github.com/feral-file/nft-bridge/internal/store/schema"
)

const (
	CONSUME_CYCLE_INTERVAL = 60 * time.Second // Minimum time between consume cycles
)

// MintConsumerConfig holds configuration for the mint consumer
type MintConsumerConfig struct {
	BatchSize int // Queue items to drain per cycle
}

// mintConsumer implements the Consumer interface for draining the migration
// queue and submitting batch mints to the target chain.
type mintConsumer struct {
	config    *MintConsumerConfig
	store     store.Store
	rollup    rollup.Client
	clock     adapter.Clock
	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewMintConsumer creates a new mint consumer
func NewMintConsumer(
	config *MintConsumerConfig,
	st store.Store,
	rollupClient rollup.Client,
	clock adapter.Clock,
) Consumer {
	return &mintConsumer{
		config:    config,
		store:     st,
		rollup:    rollupClient,
		clock:     clock,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the consumer's name
func (c *mintConsumer) Name() string {
	return "mint-consumer"
}

// Start begins the consumer's main loop
func (c *mintConsumer) Start(ctx context.Context) error {
	if !c.running.CompareAndSwap(false, true) {
		return fmt.Errorf("consumer already running")
	}
	defer func() {
		c.running.Store(false)
		close(c.stoppedCh) // Signal that we've stopped
	}()

	logger.InfoCtx(ctx, "Starting mint consumer",
		zap.Int("batch_size", c.config.BatchSize),
		zap.Duration("cycle_interval", CONSUME_CYCLE_INTERVAL),
	)

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Mint consumer stopping due to context cancellation", zap.Error(ctx.Err()))
			return nil
		case <-c.stopChan:
			logger.InfoCtx(ctx, "Mint consumer stop requested")
			return nil
		default:
			start := c.clock.Now()
			if err := c.runConsumeCycle(ctx); err != nil {
				if !errors.Is(err, context.Canceled) {
					logger.ErrorCtx(ctx, err)
				}
			}

			// Cycles run at most once per interval, including the time the
			// cycle itself took.
			if remaining := CONSUME_CYCLE_INTERVAL - c.clock.Since(start); remaining > 0 {
				if !c.sleep(ctx, remaining) {
					continue // Loop re-checks stop conditions
				}
			}
		}
	}
}

// Stop gracefully stops the consumer with timeout support
func (c *mintConsumer) Stop(ctx context.Context) error {
	if !c.running.CompareAndSwap(true, false) {
		return nil // Already stopped
	}

	logger.InfoCtx(ctx, "Stopping mint consumer")

	// Signal stop to the main loop
	close(c.stopChan)

	// Wait for main loop to exit, but respect context cancellation
	select {
	case <-c.stoppedCh:
		logger.InfoCtx(ctx, "Mint consumer stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Mint consumer stop interrupted by context timeout")
		return ctx.Err()
	}
}

// runConsumeCycle drains one batch from the queue, grouping items by
// contract so each contract gets a single multicall transaction.
func (c *mintConsumer) runConsumeCycle(ctx context.Context) error {
	logger.InfoCtx(ctx, "Polling new NFT migration requests")

	batch, err := c.store.DequeueBatch(ctx, c.config.BatchSize)
	if err != nil {
		return fmt.Errorf("failed to get next batch: %w", err)
	}

	perContract := make(map[string][]schema.QueueItem)
	seen := make(map[string]struct{}, len(batch))
	for _, item := range batch {
		// A token repeated in one multicall rejects the whole transaction,
		// so a duplicate pair waits for a later cycle.
		pair := item.ContractAddress + "/" + item.TokenID
		if _, ok := seen[pair]; ok {
			logger.WarnCtx(ctx, "skipping duplicate queue item",
				zap.Uint64("queue_item_id", item.ID),
				zap.String("token_id", item.TokenID),
			)
			continue
		}
		seen[pair] = struct{}{}

		// Re-check at consume time: the token may have been minted by an
		// earlier batch or a concurrent request since it was queued.
		minted, err := c.rollup.HasToken(ctx, item.ContractAddress, item.TokenID)
		if err != nil {
			logger.WarnCtx(ctx, "skipping item, ownership check unavailable",
				zap.Uint64("queue_item_id", item.ID),
				zap.String("token_id", item.TokenID),
				zap.Error(err),
			)
			continue
		}
		if minted {
			logger.WarnCtx(ctx, "token has already been minted",
				zap.Uint64("queue_item_id", item.ID),
				zap.String("token_id", item.TokenID),
			)
			continue
		}

		perContract[item.ContractAddress] = append(perContract[item.ContractAddress], item)
	}

	if len(perContract) == 0 {
		logger.InfoCtx(ctx, "No tokens to mint during this cycle")
		return nil
	}

	for contractAddress, items := range perContract {
		c.mintGroup(ctx, contractAddress, items)
	}

	return nil
}

// mintGroup submits one batch mint for all items of a contract and moves
// their statuses through processing to a terminal state.
func (c *mintConsumer) mintGroup(ctx context.Context, contractAddress string, items []schema.QueueItem) {
	ids := make([]uint64, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}

	if err := c.store.UpdateQueueItemsStatus(ctx, ids, "", schema.QueueItemStatusProcessing); err != nil {
		// Leave the group untouched, the next cycle picks it up again.
		logger.ErrorCtx(ctx, err,
			zap.String("contract_address", contractAddress),
			zap.Uint64s("queue_item_ids", ids),
		)
		return
	}

	txHash, status, err := c.rollup.BatchMint(ctx, contractAddress, items)
	if err != nil {
		// Submission failed, no transaction exists. Items stay without a
		// transaction hash and are retried next cycle.
		logger.ErrorCtx(ctx, fmt.Errorf("failed to create mint transaction: %w", err),
			zap.String("contract_address", contractAddress),
			zap.Uint64s("queue_item_ids", ids),
		)
		return
	}

	logger.InfoCtx(ctx, "Mint transaction handled",
		zap.String("transaction_hash", txHash),
		zap.String("status", string(status)),
		zap.Int("token_count", len(items)),
	)

	if err := c.store.UpdateQueueItemsStatus(ctx, ids, txHash, status); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to update queue item statuses: %w", err),
			zap.String("transaction_hash", txHash),
			zap.Uint64s("queue_item_ids", ids),
		)
		return
	}

	logger.InfoCtx(ctx, "Successfully updated queue item statuses",
		zap.String("transaction_hash", txHash),
		zap.Uint64s("queue_item_ids", ids),
	)
}

// sleep sleeps for the given duration but can be interrupted by context
// cancellation or a stop request. Returns true if sleep completed normally.
func (c *mintConsumer) sleep(ctx context.Context, duration time.Duration) bool {
	select {
	case <-c.clock.After(duration):
		return true
	case <-ctx.Done():
		return false
	case <-c.stopChan:
		return false
	}
}
