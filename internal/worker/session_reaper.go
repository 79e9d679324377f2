package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/fatah2004/KechEx/internal/session"
)

// SessionReaper periodically expires idle view sessions so abandoned
// pages release their autoplay goroutines.
type SessionReaper struct {
	sessions *session.Manager
	interval time.Duration
}

// NewSessionReaper constructs a SessionReaper.
func NewSessionReaper(sessions *session.Manager, interval time.Duration) *SessionReaper {
	return &SessionReaper{
		sessions: sessions,
		interval: interval,
	}
}

// Start begins the periodic reap loop and listens for context cancellation.
func (w *SessionReaper) Start(ctx context.Context) {
	log.Info().Dur("interval", w.interval).Msg("Starting session reaper")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.run()
		case <-ctx.Done():
			log.Info().Msg("Session reaper stopped")
			return
		}
	}
}

func (w *SessionReaper) run() {
	if n := w.sessions.Reap(); n > 0 {
		log.Info().Int("expired", n).Int("live", w.sessions.Len()).Msg("Expired idle sessions")
	}
}
