package store

import (
	"context"

	"github.com/feral-file/nft-bridge/internal/store/schema"
)

// EnqueueInput holds the shared fields for a multi-token enqueue. One queue
// row is created per token id.
type EnqueueInput struct {
	WalletAddress   string
	AccountAddress  string
	ContractAddress string
	TokenIDs        []string
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// EnqueueMigrations inserts one pending queue row per token id inside a
	// single transaction; a failing row rolls back the whole batch
	EnqueueMigrations(ctx context.Context, input EnqueueInput) ([]schema.QueueItem, error)

	// DequeueBatch returns up to limit queue rows that have no transaction
	// hash yet, oldest first
	DequeueBatch(ctx context.Context, limit int) ([]schema.QueueItem, error)

	// GetMigrationsByOwner returns the queue rows for a wallet and target
	// contract pair; an empty slice when nothing matches
	GetMigrationsByOwner(ctx context.Context, walletAddress, contractAddress string) ([]schema.QueueItem, error)

	// UpdateQueueItemsStatus transitions the given rows to status, attaching
	// the transaction hash when non-empty. All-or-nothing: if fewer than
	// len(ids) rows match, the transaction rolls back and
	// domain.ErrStatusUpdateFailed is returned.
	UpdateQueueItemsStatus(ctx context.Context, ids []uint64, txHash string, status schema.QueueItemStatus) error

	// SaveCustomerTokens merges token ids into the wallet's registered set
	// for a project, creating the record when absent. Idempotent.
	SaveCustomerTokens(ctx context.Context, walletAddress, projectID string, tokenIDs []string) error

	// GetCustomerTokens retrieves the registered token set for a wallet and
	// project pair, or nil when none exists
	GetCustomerTokens(ctx context.Context, walletAddress, projectID string) (*schema.CustomerTokenSet, error)
}
