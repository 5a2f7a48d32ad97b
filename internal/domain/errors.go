package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSignature is returned when the signed message does not verify
	// against the claimed wallet key. Aborts the whole request.
	ErrInvalidSignature = errors.New("invalid signature")

	// ErrNoTokensFound is returned when neither the request nor the customer
	// record yields any token ids
	ErrNoTokensFound = errors.New("no token ids found for wallet")

	// ErrEnqueueFailed is returned when the accepted tokens could not be
	// persisted to the migration queue. Aborts the whole request.
	ErrEnqueueFailed = errors.New("failed to enqueue tokens for minting")

	// ErrStatusUpdateFailed is returned when a bulk queue status transition
	// did not cover every requested row; the transaction is rolled back
	ErrStatusUpdateFailed = errors.New("failed to update queue item status")

	// ErrHistoryFetch is returned when the origin chain transaction search
	// could not be reached after all retries
	ErrHistoryFetch = errors.New("failed to fetch transfer history")

	// ErrHistoryDecode is returned when the origin chain response envelope
	// could not be decoded
	ErrHistoryDecode = errors.New("failed to decode transfer history")

	// ErrMintSubmission is returned when a mint transaction could not be
	// submitted to the target chain. Distinct from a rejected transaction,
	// which surfaces as a terminal queue status instead.
	ErrMintSubmission = errors.New("failed to submit mint transaction")

	// ErrCustomerNotFound is returned when no token set is registered for a
	// wallet and project pair
	ErrCustomerNotFound = errors.New("customer record not found")
)

// OriginServerError carries the status code of a server-side fault declared
// by the origin chain. It is classified immediately, never retried, so
// callers can tell the end user to retry later.
type OriginServerError struct {
	StatusCode int
}

func (e *OriginServerError) Error() string {
	return fmt.Sprintf("origin chain server error: status %d", e.StatusCode)
}
