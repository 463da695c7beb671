package app

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Invalidator is the cache surface the refresher drives.
type Invalidator interface {
	Invalidate()
}

// StartRefresher launches a background goroutine that invalidates the cache
// at a fixed cadence, so catalog changes made by other clients become
// visible without user action. It returns immediately.
func StartRefresher(ctx context.Context, target Invalidator, everySeconds int, log zerolog.Logger) {
	if everySeconds <= 0 {
		return
	}
	interval := time.Duration(everySeconds) * time.Second

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		log.Debug().Dur("interval", interval).Msg("background refresh enabled")
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				target.Invalidate()
			}
		}
	}()
}
