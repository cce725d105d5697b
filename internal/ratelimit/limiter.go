package ratelimit

import (
	"auction-ledger/utils"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// CallerLimiter applies a token bucket per caller identity and evicts idle callers.
// A nil *CallerLimiter allows everything.
type CallerLimiter struct {
	limit   rate.Limit
	burst   int
	mu      sync.Mutex
	byKey   map[string]*entry
	hits    uint64
	idleTTL time.Duration
}

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// New creates a per-caller limiter; returns nil if rps or burst is not positive
func New(rps float64, burst int, idleTTL time.Duration) *CallerLimiter {
	if rps <= 0 || burst <= 0 {
		return nil
	}
	if idleTTL <= 0 {
		idleTTL = 10 * time.Minute
	}
	return &CallerLimiter{
		limit:   rate.Limit(rps),
		burst:   burst,
		byKey:   make(map[string]*entry),
		idleTTL: idleTTL,
	}
}

// Allow reports whether the caller may make one more request at now
func (l *CallerLimiter) Allow(caller string, now time.Time) bool {
	if l == nil {
		return true
	}
	caller = strings.TrimSpace(caller)
	if caller == "" {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.byKey[caller]
	if !ok {
		e = &entry{
			limiter:  rate.NewLimiter(l.limit, l.burst),
			lastSeen: now,
		}
		l.byKey[caller] = e
	}
	e.lastSeen = now
	allowed := e.limiter.AllowN(now, 1)

	l.hits++
	if l.hits%512 == 0 {
		l.evictLocked(now)
	}
	return allowed
}

func (l *CallerLimiter) evictLocked(now time.Time) {
	cutoff := now.Add(-l.idleTTL)
	evicted := 0
	for k, v := range l.byKey {
		if v.lastSeen.Before(cutoff) {
			delete(l.byKey, k)
			evicted++
		}
	}
	if evicted > 0 {
		utils.Debug("ratelimit: evicted idle callers", map[string]any{
			"evicted": evicted,
			"tracked": len(l.byKey),
		})
	}
}

// Tracked returns the number of callers currently holding a bucket
func (l *CallerLimiter) Tracked() int {
	if l == nil {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.byKey)
}
