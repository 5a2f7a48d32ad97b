package dto

import (
	"errors"

	"github.com/feral-file/nft-bridge/internal/domain"
)

// BridgeRequest is the payload of POST /bridge
type BridgeRequest struct {
	SignedMessage   domain.SignedMessage `json:"signed_message" binding:"required"`
	AccountAddress  string               `json:"account_address" binding:"required"`
	ContractAddress string               `json:"contract_address" binding:"required"`
	WalletAddress   string               `json:"wallet_address" binding:"required"`
	ProjectID       string               `json:"project_id" binding:"required"`
	TokenIDs        []string             `json:"token_ids"`
}

// Validate checks the request fields gin's binding tags cannot express
func (r *BridgeRequest) Validate() error {
	if r.SignedMessage.Signature == "" {
		return errors.New("signed_message.signature is required")
	}
	if r.SignedMessage.PubKey.Value == "" {
		return errors.New("signed_message.pub_key.value is required")
	}
	return nil
}

// ToDomain converts the request into the domain migration request
func (r *BridgeRequest) ToDomain() domain.MigrationRequest {
	return domain.MigrationRequest{
		SignedMessage:   r.SignedMessage,
		AccountAddress:  r.AccountAddress,
		ContractAddress: r.ContractAddress,
		WalletAddress:   r.WalletAddress,
		ProjectID:       r.ProjectID,
		TokenIDs:        r.TokenIDs,
	}
}

// SaveCustomerDataRequest is the payload of POST /customer/data
type SaveCustomerDataRequest struct {
	WalletAddress string   `json:"wallet_address" binding:"required"`
	ProjectID     string   `json:"project_id" binding:"required"`
	TokenIDs      []string `json:"token_ids" binding:"required"`
}
