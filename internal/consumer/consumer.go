package consumer

import (
	"context"
)

// Consumer defines the interface for queue consumer implementations
// Consumers are long-running background tasks that drain the migration queue
//
//go:generate mockgen -source=consumer.go -destination=../mocks/consumer.go -package=mocks -mock_names=Consumer=MockConsumer
type Consumer interface {
	// Start begins the consumer's main loop
	// This is a blocking call that runs until the context is canceled
	Start(ctx context.Context) error

	// Stop gracefully stops the consumer
	// This should wait for any in-progress work to complete
	Stop(ctx context.Context) error

	// Name returns the consumer's name for logging and identification
	Name() string
}
