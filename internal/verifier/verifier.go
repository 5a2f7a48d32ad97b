package verifier

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"

	"github.com/feral-file/nft-bridge/internal/domain"
)

// SignatureVerifier verifies a signed arbitrary message against a claimed
// wallet key. Stateless.
//
//go:generate mockgen -source=verifier.go -destination=../mocks/verifier.go -package=mocks -mock_names=SignatureVerifier=MockSignatureVerifier
type SignatureVerifier interface {
	// Verify checks that signed covers payload and was produced by the key
	// bound to walletAddress. A nil return means the signature is valid.
	Verify(signed domain.SignedMessage, payload string, walletAddress string) error
}

// signDoc is the amino document wallets sign for arbitrary messages
// (ADR-36). Field order matters: the wallet serializes keys sorted
// alphabetically, and encoding/json preserves struct declaration order.
type signDoc struct {
	AccountNumber string    `json:"account_number"`
	ChainID       string    `json:"chain_id"`
	Fee           signFee   `json:"fee"`
	Memo          string    `json:"memo"`
	Msgs          []signMsg `json:"msgs"`
	Sequence      string    `json:"sequence"`
}

type signFee struct {
	Amount []string `json:"amount"`
	Gas    string   `json:"gas"`
}

type signMsg struct {
	Type  string       `json:"type"`
	Value signMsgValue `json:"value"`
}

type signMsgValue struct {
	Data   string `json:"data"`
	Signer string `json:"signer"`
}

type secp256k1Verifier struct{}

// NewSecp256k1Verifier creates a verifier for secp256k1-signed arbitrary
// messages
func NewSecp256k1Verifier() SignatureVerifier {
	return &secp256k1Verifier{}
}

func (v *secp256k1Verifier) Verify(signed domain.SignedMessage, payload string, walletAddress string) error {
	pubKeyBytes, err := base64.StdEncoding.DecodeString(signed.PubKey.Value)
	if err != nil {
		return fmt.Errorf("failed to decode public key: %w", err)
	}

	pubKey, err := btcec.ParsePubKey(pubKeyBytes)
	if err != nil {
		return fmt.Errorf("failed to parse public key: %w", err)
	}

	sigBytes, err := base64.StdEncoding.DecodeString(signed.Signature)
	if err != nil {
		return fmt.Errorf("failed to decode signature: %w", err)
	}
	if len(sigBytes) != 64 {
		return fmt.Errorf("unexpected signature length %d", len(sigBytes))
	}

	var r, s btcec.ModNScalar
	if overflow := r.SetByteSlice(sigBytes[:32]); overflow {
		return fmt.Errorf("signature r value overflows the curve order")
	}
	if overflow := s.SetByteSlice(sigBytes[32:]); overflow {
		return fmt.Errorf("signature s value overflows the curve order")
	}

	digest, err := SignDocDigest(payload, walletAddress)
	if err != nil {
		return err
	}

	if !ecdsa.NewSignature(&r, &s).Verify(digest, pubKey) {
		return domain.ErrInvalidSignature
	}

	return nil
}

// SignDocDigest builds the ADR-36 sign document for payload signed by
// walletAddress and returns its sha256 digest. Exported so tests can produce
// matching signatures.
func SignDocDigest(payload string, walletAddress string) ([]byte, error) {
	doc := signDoc{
		AccountNumber: "0",
		ChainID:       "",
		Fee:           signFee{Amount: []string{}, Gas: "0"},
		Memo:          "",
		Msgs: []signMsg{{
			Type: "sign/MsgSignData",
			Value: signMsgValue{
				Data:   base64.StdEncoding.EncodeToString([]byte(payload)),
				Signer: walletAddress,
			},
		}},
		Sequence: "0",
	}

	serialized, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize sign doc: %w", err)
	}

	digest := sha256.Sum256(serialized)
	return digest[:], nil
}
