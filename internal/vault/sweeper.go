package vault

import (
	"context"
	"time"

	"careerai-backend/internal/shared/telemetry"
)

// RunSweeper sweeps immediately and then on every tick until ctx is done.
// Started as a plain goroutine from the server entry point.
func RunSweeper(ctx context.Context, v *Vault, interval time.Duration) {
	if interval <= 0 {
		interval = time.Hour
	}
	v.Sweep()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			telemetry.Info("vault.sweeper.stopped", nil)
			return
		case <-ticker.C:
			v.Sweep()
		}
	}
}
