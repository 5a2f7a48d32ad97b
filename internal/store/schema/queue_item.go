package schema

import "time"

// QueueItemStatus represents the lifecycle state of a queued mint.
// Transitions are forward-only: pending -> processing -> {success, error}.
type QueueItemStatus string

const (
	// QueueItemStatusPending indicates the mint has been scheduled but not
	// yet picked up by the consumer
	QueueItemStatusPending QueueItemStatus = "pending"
	// QueueItemStatusProcessing indicates the consumer has claimed the item
	// and is about to, or has, submitted the mint transaction
	QueueItemStatusProcessing QueueItemStatus = "processing"
	// QueueItemStatusSuccess indicates the mint transaction was confirmed by
	// the target chain
	QueueItemStatusSuccess QueueItemStatus = "success"
	// QueueItemStatusError indicates the mint transaction was rejected, or
	// confirmation could not be obtained within the polling ceiling
	QueueItemStatusError QueueItemStatus = "error"
)

// Terminal reports whether the status is an end state.
func (s QueueItemStatus) Terminal() bool {
	return s == QueueItemStatusSuccess || s == QueueItemStatusError
}

// QueueItem represents the migration_queue_items table - one durable record
// of "mint this token, for this wallet, on this contract". Rows are never
// deleted; terminal rows keep the transaction hash that resolved them.
type QueueItem struct {
	// ID is the internal database primary key, assigned on insert
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	// WalletAddress is the origin chain wallet the tokens came from
	WalletAddress string `gorm:"column:wallet_address;not null;type:text;index:idx_queue_wallet_project" json:"wallet_address"`
	// AccountAddress is the target chain account the token is minted to
	AccountAddress string `gorm:"column:account_address;not null;type:text" json:"account_address"`
	// ContractAddress is the target chain contract the token is minted on
	ContractAddress string `gorm:"column:contract_address;not null;type:text;index:idx_queue_wallet_project" json:"contract_address"`
	// TokenID is the token being migrated
	TokenID string `gorm:"column:token_id;not null;type:text" json:"token_id"`
	// Status is the lifecycle state of this mint
	Status QueueItemStatus `gorm:"column:status;not null;type:text;default:pending" json:"status"`
	// TransactionHash is the target chain transaction that resolved this
	// item; nil until a terminal transition
	TransactionHash *string `gorm:"column:transaction_hash;type:text" json:"transaction_hash"`
	// CreatedAt is the timestamp when this row was enqueued
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz" json:"created_at"`
	// UpdatedAt is the timestamp when this row was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz" json:"updated_at"`
}

// TableName specifies the table name for the QueueItem model
func (QueueItem) TableName() string {
	return "migration_queue_items"
}
