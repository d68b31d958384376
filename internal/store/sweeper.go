package store

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// RunSweeper evicts games idle for longer than idle, checking every interval,
// until ctx is cancelled.
func RunSweeper(ctx context.Context, s Store, idle, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			if n := s.Sweep(ctx, now.Add(-idle)); n > 0 {
				log.Info().Int("evicted", n).Int("live", s.Len()).Msg("swept idle games")
			}
		}
	}
}
