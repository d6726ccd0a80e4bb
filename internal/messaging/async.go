package messaging

import (
	"context"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/feral-file/ff-assignment/internal/domain"
	"github.com/feral-file/ff-assignment/internal/logger"
)

// AsyncConfig holds the worker pool settings of an async publisher
type AsyncConfig struct {
	PoolSize       int
	QueueSize      int
	PublishTimeout time.Duration
}

type asyncPublisher struct {
	next    Publisher
	pool    pond.Pool
	timeout time.Duration
}

// NewAsyncPublisher wraps a publisher so events are delivered from a bounded worker pool.
// PublishAssignmentEvent only blocks while the queue is full; delivery errors are logged.
func NewAsyncPublisher(next Publisher, cfg AsyncConfig) Publisher {
	poolSize := cfg.PoolSize
	if poolSize <= 0 {
		poolSize = 1
	}
	queueSize := cfg.QueueSize
	if queueSize <= 0 {
		queueSize = 1
	}
	timeout := cfg.PublishTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &asyncPublisher{
		next:    next,
		pool:    pond.NewPool(poolSize, pond.WithQueueSize(queueSize)),
		timeout: timeout,
	}
}

// PublishAssignmentEvent queues the event for delivery.
// The request context is detached so delivery outlives the HTTP request that produced the event.
func (p *asyncPublisher) PublishAssignmentEvent(ctx context.Context, event *domain.AssignmentEvent) error {
	publishCtx := context.WithoutCancel(ctx)
	p.pool.Submit(func() {
		ctx, cancel := context.WithTimeout(publishCtx, p.timeout)
		defer cancel()

		if err := p.next.PublishAssignmentEvent(ctx, event); err != nil {
			logger.ErrorCtx(ctx, err,
				zap.String("message", "Failed to publish assignment event"),
				zap.String("event_id", event.EventID),
				zap.String("phone", event.Data.CustomerPhone))
		}
	})
	return nil
}

// Close waits for queued events to be delivered, then closes the wrapped publisher
func (p *asyncPublisher) Close() {
	p.pool.StopAndWait()
	logger.Info("Assignment event pool stopped",
		zap.Uint64("submitted", p.pool.SubmittedTasks()),
		zap.Uint64("successful", p.pool.SuccessfulTasks()),
		zap.Uint64("failed", p.pool.FailedTasks()))
	p.next.Close()
}
