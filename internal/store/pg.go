package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/nft-bridge/internal/domain"
	"github.com/feral-file/nft-bridge/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// Migrate creates or updates the bridge tables
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&schema.QueueItem{},
		&schema.CustomerTokenSet{},
	)
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to defaults:
//   - MaxOpenConns: 16
//   - MaxIdleConns: 4
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 16
	}
	if maxIdleConns == 0 {
		maxIdleConns = 4
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

func (s *pgStore) EnqueueMigrations(ctx context.Context, input EnqueueInput) ([]schema.QueueItem, error) {
	items := make([]schema.QueueItem, 0, len(input.TokenIDs))
	for _, tokenID := range input.TokenIDs {
		items = append(items, schema.QueueItem{
			WalletAddress:   input.WalletAddress,
			AccountAddress:  input.AccountAddress,
			ContractAddress: input.ContractAddress,
			TokenID:         tokenID,
			Status:          schema.QueueItemStatusPending,
		})
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&items).Error; err != nil {
			return fmt.Errorf("failed to insert queue items: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return items, nil
}

func (s *pgStore) DequeueBatch(ctx context.Context, limit int) ([]schema.QueueItem, error) {
	var items []schema.QueueItem
	if err := s.db.WithContext(ctx).
		Where("transaction_hash IS NULL").
		Order("id ASC").
		Limit(limit).
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to dequeue batch: %w", err)
	}

	return items, nil
}

func (s *pgStore) GetMigrationsByOwner(ctx context.Context, walletAddress, contractAddress string) ([]schema.QueueItem, error) {
	var items []schema.QueueItem
	if err := s.db.WithContext(ctx).
		Where("wallet_address = ? AND contract_address = ?", walletAddress, contractAddress).
		Order("id ASC").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to query migrations for owner: %w", err)
	}

	return items, nil
}

func (s *pgStore) UpdateQueueItemsStatus(ctx context.Context, ids []uint64, txHash string, status schema.QueueItemStatus) error {
	if len(ids) == 0 {
		return nil
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		}
		// The hash is attached only on terminal transitions; the processing
		// transition passes an empty hash and must leave the column NULL so
		// the row stays eligible for a future dequeue.
		if txHash != "" {
			updates["transaction_hash"] = txHash
		}

		res := tx.Model(&schema.QueueItem{}).Where("id IN ?", ids).Updates(updates)
		if res.Error != nil {
			return fmt.Errorf("failed to update queue items: %w", res.Error)
		}
		if res.RowsAffected != int64(len(ids)) {
			// Roll back rather than leave an unknowable subset updated
			return fmt.Errorf("%w: updated %d of %d rows", domain.ErrStatusUpdateFailed, res.RowsAffected, len(ids))
		}
		return nil
	})
}

func (s *pgStore) SaveCustomerTokens(ctx context.Context, walletAddress, projectID string, tokenIDs []string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing schema.CustomerTokenSet
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("wallet_address = ? AND project_id = ?", walletAddress, projectID).
			First(&existing).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			record := schema.CustomerTokenSet{
				WalletAddress: walletAddress,
				ProjectID:     projectID,
				TokenIDs:      datatypes.NewJSONSlice(dedupeTokenIDs(nil, tokenIDs)),
			}
			if err := tx.Create(&record).Error; err != nil {
				return fmt.Errorf("failed to create customer token set: %w", err)
			}
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to load customer token set: %w", err)
		}

		merged := dedupeTokenIDs(existing.TokenIDs, tokenIDs)
		if err := tx.Model(&existing).Updates(map[string]interface{}{
			"token_ids":  datatypes.NewJSONSlice(merged),
			"updated_at": time.Now(),
		}).Error; err != nil {
			return fmt.Errorf("failed to merge customer token set: %w", err)
		}
		return nil
	})
}

func (s *pgStore) GetCustomerTokens(ctx context.Context, walletAddress, projectID string) (*schema.CustomerTokenSet, error) {
	var record schema.CustomerTokenSet
	err := s.db.WithContext(ctx).
		Where("wallet_address = ? AND project_id = ?", walletAddress, projectID).
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query customer token set: %w", err)
	}

	return &record, nil
}

// dedupeTokenIDs merges two token id lists preserving first-seen order
func dedupeTokenIDs(existing []string, incoming []string) []string {
	seen := make(map[string]struct{}, len(existing)+len(incoming))
	merged := make([]string, 0, len(existing)+len(incoming))
	for _, id := range existing {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		merged = append(merged, id)
	}
	for _, id := range incoming {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		merged = append(merged, id)
	}
	return merged
}
