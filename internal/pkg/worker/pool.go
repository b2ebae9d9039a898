// Package worker provides goroutine pool management.
//
// Naked goroutines are forbidden in this codebase; the per-pod deletion
// fan-out goes through this pool with context propagation.
package worker

import (
	"context"
	"errors"
	"time"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"csi-remedy.io/remediator/internal/pkg/logger"
)

// ErrPoolClosed is returned when submitting to a closed pool.
var ErrPoolClosed = errors.New("worker pool is closed")

// Task is a context-aware task function.
type Task func(ctx context.Context)

// Pool wraps ants.Pool with context-aware submission and panic recovery.
type Pool struct {
	pool *ants.Pool
	name string
}

// NewPool creates a bounded pool. size caps concurrent tasks.
func NewPool(name string, size int) (*Pool, error) {
	panicHandler := func(p interface{}) {
		logger.Error("Worker panic recovered",
			zap.String("pool", name),
			zap.Any("panic", p),
			zap.Stack("stack"),
		)
	}

	antsPool, err := ants.NewPool(size,
		ants.WithPanicHandler(panicHandler),
		ants.WithNonblocking(false),
		ants.WithExpiryDuration(10*time.Second),
	)
	if err != nil {
		return nil, err
	}
	return &Pool{pool: antsPool, name: name}, nil
}

// Submit submits a context-aware task. If the context is already cancelled
// the task is not submitted and ctx.Err() is returned; once submitted, the
// task always runs and is itself responsible for honoring cancellation, so
// callers waiting on task completion are never stranded.
func (p *Pool) Submit(ctx context.Context, task Task) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	err := p.pool.Submit(func() {
		task(ctx)
	})
	if errors.Is(err, ants.ErrPoolClosed) {
		return ErrPoolClosed
	}
	return err
}

// Running returns the number of currently running tasks.
func (p *Pool) Running() int {
	return p.pool.Running()
}

// Cap returns the pool capacity.
func (p *Pool) Cap() int {
	return p.pool.Cap()
}

// Shutdown releases the pool, waiting up to 30s for running tasks.
func (p *Pool) Shutdown() {
	const shutdownTimeout = 30 * time.Second
	if err := p.pool.ReleaseTimeout(shutdownTimeout); err != nil {
		logger.Warn("Worker pool shutdown timeout",
			zap.String("pool", p.name),
			zap.Error(err),
		)
	}
}
