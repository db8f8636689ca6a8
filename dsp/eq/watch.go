package eq

import (
	"context"
	"time"
)

// DefaultWatchInterval is a 60 Hz poll.
const DefaultWatchInterval = time.Second / 60

// Watch polls ApplyPendingChanges every interval until ctx is done and calls
// onApplied after each apply that installed new coefficients. onApplied may
// be nil. A non-positive interval selects DefaultWatchInterval. Watch
// returns ctx.Err().
func (p *Processor) Watch(ctx context.Context, interval time.Duration, onApplied func()) error {
	if interval <= 0 {
		interval = DefaultWatchInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if p.ApplyPendingChanges() && onApplied != nil {
				onApplied()
			}
		}
	}
}
