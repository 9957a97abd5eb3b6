package eventbus

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/grachmannico95/cnab-ledger/pkg/logger"
	"github.com/grachmannico95/cnab-ledger/pkg/retry"
)

var (
	ErrNoConsumer  = errors.New("no consumer subscribed for event type")
	ErrChannelFull = errors.New("event channel full")
	ErrBusClosed   = errors.New("event bus is shut down")
	ErrBusStarted  = errors.New("event bus already started")
)

type EventBus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType EventType, consumer Consumer) error
	Start(ctx context.Context) error
	// Shutdown stops accepting events and waits for queued ones to be
	// consumed. When ctx expires first, in-flight work is cancelled.
	Shutdown(ctx context.Context) error
}

type Config struct {
	ChannelBuffer int
	MaxRetries    int
	RetryDelay    time.Duration
	// MaxRetryDelay caps the backoff between attempts; zero keeps the retry default.
	MaxRetryDelay time.Duration
}

func DefaultConfig() *Config {
	return &Config{
		ChannelBuffer: 100,
		MaxRetries:    3,
		RetryDelay:    500 * time.Millisecond,
		MaxRetryDelay: 30 * time.Second,
	}
}

type eventBus struct {
	mu        sync.RWMutex
	queues    map[EventType]chan Event
	consumers map[EventType][]Consumer
	workers   sync.WaitGroup
	cancel    context.CancelFunc
	cfg       Config
	logger    *logger.Logger
	started   bool
	closed    bool
}

func New(log *logger.Logger, cfg *Config) EventBus {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	return &eventBus{
		queues:    make(map[EventType]chan Event),
		consumers: make(map[EventType][]Consumer),
		cfg:       *cfg,
		logger:    log,
	}
}

func (eb *eventBus) Subscribe(eventType EventType, consumer Consumer) error {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	if eb.started {
		return ErrBusStarted
	}

	if _, ok := eb.queues[eventType]; !ok {
		eb.queues[eventType] = make(chan Event, eb.cfg.ChannelBuffer)
	}
	eb.consumers[eventType] = append(eb.consumers[eventType], consumer)

	return nil
}

func (eb *eventBus) Start(ctx context.Context) error {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	if eb.closed {
		return ErrBusClosed
	}
	if eb.started {
		return nil
	}

	workCtx, cancel := context.WithCancel(ctx)
	eb.cancel = cancel

	for eventType, consumers := range eb.consumers {
		queue := eb.queues[eventType]

		for _, consumer := range consumers {
			workerCount := consumer.GetWorkerCount()
			if workerCount < 1 {
				workerCount = 1
			}
			eb.logger.Info(ctx, "Starting workers",
				"event_type", eventType,
				"worker_count", workerCount,
			)

			for i := 0; i < workerCount; i++ {
				eb.workers.Add(1)
				go eb.worker(workCtx, queue, consumer, i)
			}
		}
	}

	eb.started = true
	eb.logger.Info(ctx, "Event bus started")

	return nil
}

// worker consumes until its queue is closed and drained.
func (eb *eventBus) worker(ctx context.Context, queue <-chan Event, consumer Consumer, workerID int) {
	defer eb.workers.Done()

	eb.logger.Debug(ctx, "Worker started", "worker_id", workerID)

	for event := range queue {
		eb.dispatch(ctx, event, consumer, workerID)
	}

	eb.logger.Debug(ctx, "Queue drained, worker stopping", "worker_id", workerID)
}

func (eb *eventBus) dispatch(ctx context.Context, event Event, consumer Consumer, workerID int) {
	if event.ID != "" {
		ctx = logger.WithTraceID(ctx, event.ID)
	}

	eb.logger.Debug(ctx, "Processing event",
		"event_id", event.ID,
		"event_type", event.Type,
		"worker_id", workerID,
	)

	attempt := 0
	err := retry.Do(ctx, func() error {
		event.Retries = attempt
		attempt++
		return consume(ctx, consumer, event)
	}, eb.retryOptions()...)

	if err == nil {
		eb.logger.Debug(ctx, "Event processed",
			"event_id", event.ID,
			"worker_id", workerID,
			"attempts", attempt,
		)
		return
	}

	eb.logger.Error(ctx, "Giving up on event",
		"event_id", event.ID,
		"event_type", event.Type,
		"worker_id", workerID,
		"attempts", attempt,
		"error", err,
	)
	if handler, ok := consumer.(FailureHandler); ok {
		// the bus may be cancelling; the failure still has to be recorded
		handler.OnFailure(context.WithoutCancel(ctx), event, err)
	}
}

func (eb *eventBus) retryOptions() []retry.Option {
	opts := []retry.Option{
		retry.WithMaxAttempts(eb.cfg.MaxRetries),
		retry.WithBaseDelay(eb.cfg.RetryDelay),
	}
	if eb.cfg.MaxRetryDelay > 0 {
		opts = append(opts, retry.WithMaxDelay(eb.cfg.MaxRetryDelay))
	}
	return opts
}

// consume turns a consumer panic into a permanent failure so one bad
// event cannot take a worker down.
func consume(ctx context.Context, consumer Consumer, event Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = retry.Permanent(fmt.Errorf("consumer panic: %v", r))
		}
	}()
	return consumer.Consume(ctx, event)
}

func (eb *eventBus) Publish(ctx context.Context, event Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// held across the send so Shutdown cannot close the queue under us
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	if eb.closed {
		return ErrBusClosed
	}

	queue, ok := eb.queues[event.Type]
	if !ok {
		eb.logger.Warn(ctx, "No consumer for event type",
			"event_type", event.Type,
			"event_id", event.ID,
		)
		return ErrNoConsumer
	}

	select {
	case queue <- event:
		eb.logger.Debug(ctx, "Event published",
			"event_type", event.Type,
			"event_id", event.ID,
			"queued", len(queue),
		)
		return nil
	default:
		eb.logger.Warn(ctx, "Event queue full, event rejected",
			"event_type", event.Type,
			"event_id", event.ID,
		)
		return ErrChannelFull
	}
}

func (eb *eventBus) Shutdown(ctx context.Context) error {
	eb.mu.Lock()
	if eb.closed {
		eb.mu.Unlock()
		return nil
	}
	eb.closed = true
	for _, queue := range eb.queues {
		close(queue)
	}
	cancel := eb.cancel
	eb.mu.Unlock()

	eb.logger.Info(ctx, "Shutting down event bus, draining queued events")

	done := make(chan struct{})
	go func() {
		eb.workers.Wait()
		close(done)
	}()

	select {
	case <-done:
		if cancel != nil {
			cancel()
		}
		eb.logger.Info(ctx, "Event bus shutdown complete")
		return nil
	case <-ctx.Done():
		// abort in-flight work; workers still fail the rest of the queue fast
		if cancel != nil {
			cancel()
		}
		eb.logger.Warn(ctx, "Event bus shutdown timed out, in-flight events cancelled")
		return ctx.Err()
	}
}
