package timer

import (
	"context"
	"log/slog"
	"time"
)

type TimerAction int

const (
	Start TimerAction = iota
	Stop
)

// Clock sends on tick every interval while started. It begins stopped and
// returns when ctx is done. A tick the receiver is not ready for is dropped.
func Clock(ctx context.Context, interval time.Duration, tick chan<- struct{}, action <-chan TimerAction) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	running := false

	for {
		select {
		case <-ctx.Done():
			return
		case a := <-action:
			switch a {
			case Start:
				if !running {
					ticker.Reset(interval)
				}
				running = true
			case Stop:
				running = false
			}
			slog.Debug("Clock action", "running", running)
		case <-ticker.C:
			if !running {
				continue
			}
			select {
			case tick <- struct{}{}:
			default:
			}
		}
	}
}
