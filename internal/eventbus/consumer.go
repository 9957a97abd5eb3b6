package eventbus

import "context"

type Consumer interface {
	Consume(ctx context.Context, event Event) error
	GetWorkerCount() int
}

// FailureHandler is implemented by consumers that need to know when an
// event was given up on after all retries.
type FailureHandler interface {
	OnFailure(ctx context.Context, event Event, err error)
}
