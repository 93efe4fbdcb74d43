package connectivity

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-tree-keeper/internal/logger"
)

// Switch is a [Monitor] whose state is set explicitly. It is safe for
// concurrent use.
type Switch struct {
	mu          sync.RWMutex
	online      bool
	closed      bool
	subscribers []chan Event

	now    func() time.Time
	logger *logger.Logger
}

// NewSwitch returns a Switch in the given initial state.
func NewSwitch(online bool, logger *logger.Logger) *Switch {
	return &Switch{
		online: online,
		now:    time.Now,
		logger: logger,
	}
}

// Online implements [Monitor].
func (s *Switch) Online() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.online
}

// Subscribe implements [Monitor].
//
// Each subscriber gets a channel with room for one pending event. When a
// subscriber falls behind, the stale pending event is replaced by the newest
// one, so the last delivered event always matches the current state.
func (s *Switch) Subscribe() <-chan Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan Event, 1)
	if s.closed {
		close(ch)
		return ch
	}
	s.subscribers = append(s.subscribers, ch)
	return ch
}

// Set records the host's connectivity signal. It returns true when the
// state changed, in which case every subscriber is notified.
func (s *Switch) Set(online bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.online == online {
		return false
	}
	s.online = online

	ev := Event{Online: online, At: s.now()}
	for _, ch := range s.subscribers {
		publish(ch, ev)
	}

	s.logger.Info().
		Str("func", "Switch.Set").
		Bool("online", online).
		Int("subscribers", len(s.subscribers)).
		Msg("connectivity changed")

	return true
}

// Close closes every subscriber channel. Later calls to Set are ignored.
func (s *Switch) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	for _, ch := range s.subscribers {
		close(ch)
	}
	s.subscribers = nil
}

// publish delivers ev without blocking, dropping a pending stale event if
// the buffer is full. Callers hold the write lock, so there is a single
// producer per channel.
func publish(ch chan Event, ev Event) {
	select {
	case ch <- ev:
		return
	default:
	}

	select {
	case <-ch:
	default:
	}
	ch <- ev
}
