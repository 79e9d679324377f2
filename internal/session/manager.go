package session

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/fatah2004/KechEx/internal/store"
	"github.com/fatah2004/KechEx/internal/view"
)

// Session binds one visitor to one product view instance.
type Session struct {
	ID       string
	View     *view.ProductView
	lastSeen time.Time
	cancel   context.CancelFunc
}

// Manager tracks per-visitor product views keyed by session id. A view
// lives until its session goes idle for the configured TTL; expiry also
// stops the view's autoplay goroutine.
type Manager struct {
	store    store.Store
	ttl      time.Duration
	autoplay time.Duration

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager creates a session manager over the given document store.
func NewManager(st store.Store, ttl, autoplay time.Duration) *Manager {
	return &Manager{
		store:    st,
		ttl:      ttl,
		autoplay: autoplay,
		sessions: make(map[string]*Session),
	}
}

// Attach returns the product view for (sessionID, productID), creating
// the session on first sight and remounting the view when the product
// id differs from the one it was mounted on. Mounting and remounting
// issue the product fetch before returning; later attaches with an
// unloaded view retry it (a page reload re-issues the read).
func (m *Manager) Attach(ctx context.Context, sessionID, productID string) *view.ProductView {
	m.mu.Lock()
	s, ok := m.sessions[sessionID]
	if !ok {
		viewCtx, cancel := context.WithCancel(context.Background())
		s = &Session{
			ID:     sessionID,
			View:   view.New(m.store, productID),
			cancel: cancel,
		}
		m.sessions[sessionID] = s
		go s.View.StartAutoplay(viewCtx, m.autoplay)
		log.Debug().Str("session", sessionID).Str("productId", productID).Msg("Session created")
	}
	s.lastSeen = time.Now()
	v := s.View
	m.mu.Unlock()

	remount := v.ProductID() != productID
	if remount {
		v.SetProductID(productID)
	}
	if remount || !v.Snapshot().Loaded {
		v.Load(ctx)
	}
	return v
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Reap removes sessions idle longer than the TTL and returns how many
// were expired.
func (m *Manager) Reap() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := time.Now().Add(-m.ttl)
	n := 0
	for id, s := range m.sessions {
		if s.lastSeen.Before(cutoff) {
			s.cancel()
			delete(m.sessions, id)
			n++
		}
	}
	return n
}

// Close expires every session.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, s := range m.sessions {
		s.cancel()
		delete(m.sessions, id)
	}
}
