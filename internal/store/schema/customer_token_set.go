package schema

import (
	"time"

	"gorm.io/datatypes"
)

// CustomerTokenSet represents the customer_token_sets table - the token ids a
// wallet previously registered for migration on a given origin project. Used
// as the fallback token source when a bridge request omits explicit token ids.
type CustomerTokenSet struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// WalletAddress is the origin chain wallet the tokens belong to
	WalletAddress string `gorm:"column:wallet_address;not null;type:text;uniqueIndex:idx_customer_wallet_project"`
	// ProjectID is the origin chain contract the tokens live on
	ProjectID string `gorm:"column:project_id;not null;type:text;uniqueIndex:idx_customer_wallet_project"`
	// TokenIDs is the deduplicated set of registered token ids
	TokenIDs datatypes.JSONSlice[string] `gorm:"column:token_ids;not null;type:jsonb"`
	// CreatedAt is the timestamp when this record was first saved
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this record was last merged into
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the CustomerTokenSet model
func (CustomerTokenSet) TableName() string {
	return "customer_token_sets"
}
