package integration

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/RubachokBoss/task-manager/internal/models"
	"github.com/RubachokBoss/task-manager/internal/worker"
)

var ErrPublishQueueFull = errors.New("publish queue is full")

type asyncPublisher struct {
	next    EventPublisher
	pool    *worker.Pool
	timeout time.Duration
	logger  zerolog.Logger
}

// NewAsyncPublisher hands events to a worker pool so that broker latency
// never holds up the request that produced them. Close drains pending
// events before closing next.
func NewAsyncPublisher(next EventPublisher, workers, queueSize int, logger zerolog.Logger) EventPublisher {
	pool := worker.NewPool(workers, queueSize, logger)
	pool.Start()

	return &asyncPublisher{
		next:    next,
		pool:    pool,
		timeout: 5 * time.Second,
		logger:  logger,
	}
}

// Publish detaches from ctx: the request is usually finished by the time
// the event goes out.
func (p *asyncPublisher) Publish(ctx context.Context, event *models.DomainEvent) error {
	detached := context.WithoutCancel(ctx)

	submitted := p.pool.Submit(func() {
		publishCtx, cancel := context.WithTimeout(detached, p.timeout)
		defer cancel()

		if err := p.next.Publish(publishCtx, event); err != nil {
			p.logger.Error().
				Err(err).
				Str("event_id", event.EventID).
				Str("type", string(event.Type)).
				Msg("Failed to publish event")
		}
	})
	if !submitted {
		return ErrPublishQueueFull
	}
	return nil
}

func (p *asyncPublisher) Close() error {
	p.pool.Stop()
	return p.next.Close()
}
