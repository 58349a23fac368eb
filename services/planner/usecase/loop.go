package usecase

import (
	"context"

	"github.com/Taeppir/Link/internal/pkg/logger"
	"github.com/Taeppir/Link/internal/pkg/models"
)

// Loop is the single control goroutine. Waypoint list, bridge and controller
// state are only touched from functions executed by Run.
type Loop struct {
	tasks chan func()
	done  chan struct{}
}

// NewLoop creates a control loop with the given task buffer
func NewLoop(buffer int) *Loop {
	if buffer < 1 {
		buffer = 1
	}
	return &Loop{
		tasks: make(chan func(), buffer),
		done:  make(chan struct{}),
	}
}

// Run executes posted tasks in order until ctx is cancelled
func (l *Loop) Run(ctx context.Context) error {
	defer close(l.done)
	logger.Info("Control loop started")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Control loop stopped")
			return nil
		case fn := <-l.tasks:
			fn()
		}
	}
}

// Post schedules fn without waiting for it. Never call Post from inside a task.
func (l *Loop) Post(fn func()) error {
	select {
	case <-l.done:
		return models.ErrLoopStopped
	default:
	}

	select {
	case l.tasks <- fn:
		return nil
	case <-l.done:
		return models.ErrLoopStopped
	}
}

// Do runs fn on the loop and waits for its result
func (l *Loop) Do(ctx context.Context, fn func() error) error {
	errc := make(chan error, 1)
	if err := l.Post(func() { errc <- fn() }); err != nil {
		return err
	}

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		return ctx.Err()
	case <-l.done:
		select {
		case err := <-errc:
			return err
		default:
			return models.ErrLoopStopped
		}
	}
}
