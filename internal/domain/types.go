package domain

// PublicKey identifies the key that signed a migration request
type PublicKey struct {
	// Type is the key scheme tag as reported by the wallet (e.g. "tendermint/PubKeySecp256k1")
	Type string `json:"type"`
	// Value is the base64-encoded compressed public key
	Value string `json:"value"`
}

// SignedMessage is the wallet's proof of control over the origin address.
// The signature covers the destination account address as an arbitrary
// signed payload.
type SignedMessage struct {
	PubKey    PublicKey `json:"pub_key"`
	Signature string    `json:"signature"`
}

// MigrationRequest is one inbound bridge call. TokenIDs may be empty, in
// which case the wallet's previously registered token set is used.
type MigrationRequest struct {
	SignedMessage   SignedMessage `json:"signed_message"`
	AccountAddress  string        `json:"account_address"`
	ContractAddress string        `json:"contract_address"`
	WalletAddress   string        `json:"wallet_address"`
	ProjectID       string        `json:"project_id"`
	TokenIDs        []string      `json:"token_ids,omitempty"`
}

// TransferEvent is one historical transfer_nft execution on the origin
// chain. Events for a token are ordered newest-first.
type TransferEvent struct {
	Contract  string
	TokenID   string
	Sender    string
	Recipient string
}

// TokenCheck is the outcome of the provenance and availability checks for a
// single token. An empty Reason means the token passed every check.
type TokenCheck struct {
	TokenID string `json:"token_id"`
	Reason  string `json:"error,omitempty"`
}

// Passed reports whether the token cleared all checks.
func (c TokenCheck) Passed() bool {
	return c.Reason == ""
}

// MigrationResult is the full outcome of a bridge request: the per-token
// check map plus the subset of tokens that were enqueued for minting.
// Callers must inspect Checks: a non-empty Accepted list does not imply
// every requested token passed.
type MigrationResult struct {
	Checks   map[string]TokenCheck `json:"checks"`
	Accepted []string              `json:"accepted"`
	Message  string                `json:"message"`
}
