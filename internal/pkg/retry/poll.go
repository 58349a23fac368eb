package retry

import (
	"context"
	"errors"
	"time"
)

// ErrPollTimeout is returned when a polled condition never became true within the wait cap
var ErrPollTimeout = errors.New("condition not met before wait cap")

// Poll checks cond at a fixed interval until it returns true, ctx is done,
// or maxWait has elapsed. cond is checked once immediately.
func Poll(ctx context.Context, interval, maxWait time.Duration, cond func() bool) error {
	if cond() {
		return nil
	}
	if maxWait <= 0 {
		return ErrPollTimeout
	}
	if interval <= 0 {
		interval = maxWait
	}

	deadline := time.NewTimer(maxWait)
	defer deadline.Stop()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-deadline.C:
			if cond() {
				return nil
			}
			return ErrPollTimeout
		case <-ticker.C:
			if cond() {
				return nil
			}
		}
	}
}
