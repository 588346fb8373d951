package ratelimit

import (
	"context"
	"sync"
	"time"

	"bazaar/internal/domain/service"
)

const sweepInterval = 5 * time.Minute

type windowState struct {
	count     int
	windowEnd time.Time
}

// MemoryLimiter counts requests in process memory.
type MemoryLimiter struct {
	mu      sync.Mutex
	entries map[string]windowState
	now     func() time.Time
	stopCh  chan struct{}
	once    sync.Once
}

// NewMemoryLimiter starts a limiter with a background sweeper. Call Close to stop it.
func NewMemoryLimiter() *MemoryLimiter {
	l := newMemoryLimiter(time.Now)
	go l.sweepLoop()

	return l
}

func newMemoryLimiter(now func() time.Time) *MemoryLimiter {
	return &MemoryLimiter{
		entries: make(map[string]windowState),
		now:     now,
		stopCh:  make(chan struct{}),
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string, limit int, window time.Duration) service.RateDecision {
	if limit <= 0 {
		return service.RateDecision{Allowed: true}
	}
	if window <= 0 {
		window = defaultWindow
	}

	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	state, ok := l.entries[key]
	if !ok || !now.Before(state.windowEnd) {
		state = windowState{windowEnd: now.Add(window)}
	}
	// Rejected requests are not counted so a blocked client recovers at the window end.
	if state.count >= limit {
		return decision(state.count+1, limit, state.windowEnd)
	}
	state.count++
	l.entries[key] = state

	return decision(state.count, limit, state.windowEnd)
}

func (l *MemoryLimiter) sweepLoop() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.cleanup(l.now())
		case <-l.stopCh:
			return
		}
	}
}

func (l *MemoryLimiter) cleanup(now time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for key, state := range l.entries {
		if !now.Before(state.windowEnd) {
			delete(l.entries, key)
		}
	}
}

// Close stops the background sweeper.
func (l *MemoryLimiter) Close() error {
	l.once.Do(func() {
		close(l.stopCh)
	})

	return nil
}
