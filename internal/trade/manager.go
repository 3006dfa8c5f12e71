package trade

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/patentdex/patentdex/internal/adapter"
	"github.com/patentdex/patentdex/internal/contracts"
	"github.com/patentdex/patentdex/internal/gateway"
	"github.com/patentdex/patentdex/internal/logger"
	"github.com/patentdex/patentdex/internal/quote"
	"github.com/patentdex/patentdex/internal/reconcile"
)

// redirectDelay is how long after a failed token lookup the redirect
// suggestion fires. Gives the caller time to render the failure first.
const redirectDelay = 2 * time.Second

// RedirectFunc is invoked when a session was requested for a patent that
// has no token yet, pointing the caller at tokenization instead.
type RedirectFunc func(tokenAddr common.Address)

// Manager owns at most one trade session per token and invalidates all of
// them when the wallet context changes.
type Manager struct {
	gw          gateway.Gateway
	quotes      quote.Engine
	rec         reconcile.Reconciler
	clock       adapter.Clock
	sellSpender common.Address
	onRedirect  RedirectFunc

	mu       sync.Mutex
	sessions map[common.Address]*Session
	entropy  *ulid.MonotonicEntropy

	done chan struct{}
}

// NewManager creates a session manager and starts watching for wallet
// context changes. onRedirect may be nil.
func NewManager(gw gateway.Gateway, quotes quote.Engine, rec reconcile.Reconciler, clock adapter.Clock, sellSpender common.Address, onRedirect RedirectFunc) *Manager {
	m := &Manager{
		gw:          gw,
		quotes:      quotes,
		rec:         rec,
		clock:       clock,
		sellSpender: sellSpender,
		onRedirect:  onRedirect,
		sessions:    make(map[common.Address]*Session),
		entropy:     ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
		done:        make(chan struct{}),
	}
	// Subscribing before the watcher goroutine starts means no context
	// change between construction and watch can be missed.
	go m.watchContext(gw.Subscribe())
	return m
}

// Open returns the session for a token, creating and binding one if
// needed. A zero or codeless address fails with a token lookup error and,
// when a redirect hook is set, schedules the tokenize suggestion.
func (m *Manager) Open(ctx context.Context, tokenAddr common.Address) (*Session, error) {
	m.mu.Lock()
	if session, ok := m.sessions[tokenAddr]; ok {
		m.mu.Unlock()
		return session, nil
	}
	m.mu.Unlock()

	token, err := contracts.BindToken(ctx, m.gw, tokenAddr)
	if err != nil {
		m.scheduleRedirect(tokenAddr)
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if session, ok := m.sessions[tokenAddr]; ok {
		return session, nil
	}

	id := ulid.MustNew(ulid.Timestamp(m.clock.Now()), m.entropy).String()
	session := newSession(id, token, m.gw, m.quotes, m.rec, m.sellSpender)
	m.sessions[tokenAddr] = session

	logger.Info("trade session opened",
		zap.String("session", id),
		zap.String("token", tokenAddr.Hex()))
	return session, nil
}

// Get returns an existing session without creating one.
func (m *Manager) Get(tokenAddr common.Address) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessions[tokenAddr]
}

func (m *Manager) scheduleRedirect(tokenAddr common.Address) {
	if m.onRedirect == nil {
		return
	}
	go func() {
		select {
		case <-m.done:
		case <-m.clock.After(redirectDelay):
			m.onRedirect(tokenAddr)
		}
	}()
}

func (m *Manager) watchContext(changes <-chan gateway.ContextChange) {
	for {
		select {
		case <-m.done:
			return
		case change, ok := <-changes:
			if !ok {
				return
			}
			m.invalidateAll(change)
		}
	}
}

func (m *Manager) invalidateAll(change gateway.ContextChange) {
	m.mu.Lock()
	sessions := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	m.mu.Unlock()

	for _, s := range sessions {
		s.invalidate()
		m.quotes.Invalidate(s.TokenAddress())
	}

	logger.Warn("sessions invalidated by wallet context change",
		zap.Uint64("epoch", change.Epoch),
		zap.Int("sessions", len(sessions)))
}

// Close stops the context watcher and pending redirects.
func (m *Manager) Close() {
	close(m.done)
}
