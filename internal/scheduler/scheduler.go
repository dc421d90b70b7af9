// Package scheduler maintains one cancellable countdown per order. It backs
// the grace period during which a driver may undo a submitted delivery
// outcome before the order is hidden.
package scheduler

import (
	"sync"
	"time"

	"service-livraison/internal/logx"
)

// FireFunc finalizes an order once its countdown expires. Invoked exactly
// once per countdown, never while the scheduler lock is held.
type FireFunc func(orderID int64)

// Scheduler is a registry of per-order countdowns decremented once per tick.
// Countdowns run independently of each other; cancellation is atomic with
// respect to expiry.
type Scheduler struct {
	tick   time.Duration
	logger logx.Logger

	mu      sync.Mutex
	windows map[int64]*window
}

type window struct {
	remaining int
	done      chan struct{}
}

// New creates a Scheduler with the production one-second tick.
func New(logger logx.Logger) *Scheduler {
	return NewWithTick(time.Second, logger)
}

// NewWithTick creates a Scheduler with a custom tick duration. Tests use a
// short tick to avoid real ten-second waits.
func NewWithTick(tick time.Duration, logger logx.Logger) *Scheduler {
	if tick <= 0 {
		tick = time.Second
	}
	return &Scheduler{
		tick:    tick,
		logger:  logger,
		windows: make(map[int64]*window),
	}
}

// Start begins a countdown of the given number of ticks for an order,
// replacing any countdown already running for it. fire is called exactly once
// when the countdown reaches zero, unless Cancel wins the race first.
func (s *Scheduler) Start(orderID int64, ticks int, fire FireFunc) {
	if ticks < 1 {
		ticks = 1
	}

	w := &window{remaining: ticks, done: make(chan struct{})}

	s.mu.Lock()
	if old, ok := s.windows[orderID]; ok {
		close(old.done)
	}
	s.windows[orderID] = w
	s.mu.Unlock()

	go s.run(orderID, w, fire)
}

func (s *Scheduler) run(orderID int64, w *window, fire FireFunc) {
	t := time.NewTicker(s.tick)
	defer t.Stop()

	for {
		select {
		case <-w.done:
			return
		case <-t.C:
			s.mu.Lock()
			if s.windows[orderID] != w {
				// cancelled or replaced between ticks
				s.mu.Unlock()
				return
			}
			w.remaining--
			if w.remaining > 0 {
				s.mu.Unlock()
				continue
			}
			delete(s.windows, orderID)
			s.mu.Unlock()

			fire(orderID)
			return
		}
	}
}

// Cancel removes the countdown for an order without firing it. Returns false
// when no countdown is open, including when expiry already fired.
func (s *Scheduler) Cancel(orderID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.windows[orderID]
	if !ok {
		return false
	}
	delete(s.windows, orderID)
	close(w.done)
	return true
}

// Remaining returns the ticks left for an order, or zero when no countdown
// is open.
func (s *Scheduler) Remaining(orderID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if w, ok := s.windows[orderID]; ok {
		return w.remaining
	}
	return 0
}

// Active reports whether a countdown is open for the order.
func (s *Scheduler) Active(orderID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.windows[orderID]
	return ok
}

// StopAll cancels every open countdown. Called on shutdown; no finalize
// callbacks fire.
func (s *Scheduler) StopAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, w := range s.windows {
		close(w.done)
		delete(s.windows, id)
	}
}
