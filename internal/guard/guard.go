// Package guard protects the engine from abusive or malformed requests.
// The HTTP layer consults it before any work is dispatched.
package guard

import (
	"strings"
	"sync"
	"time"

	"github.com/anthropics/tutor-engine/internal/domain"
)

// window is the sliding interval rate limiting counts requests over.
const window = time.Minute

// Guard enforces a per-client rate limit and basic question hygiene.
// Safe for concurrent use.
type Guard struct {
	limit    int
	maxLen   int
	mu       sync.Mutex
	arrivals map[string][]time.Time
	now      func() time.Time
}

// New builds a guard allowing limit requests per client per minute and
// questions up to maxLen bytes. Non-positive values disable the
// corresponding check.
func New(limit, maxLen int) *Guard {
	return &Guard{
		limit:    limit,
		maxLen:   maxLen,
		arrivals: make(map[string][]time.Time),
		now:      time.Now,
	}
}

// CheckQuestion validates the question text itself.
func (g *Guard) CheckQuestion(question string) error {
	if strings.TrimSpace(question) == "" {
		return domain.ErrEmptyQuestion
	}
	if g.maxLen > 0 && len(question) > g.maxLen {
		return domain.ErrQuestionTooLong
	}
	return nil
}

// Allow records a request from the client and reports whether it fits in
// the rate window. Denied requests are not recorded.
func (g *Guard) Allow(client string) error {
	if g.limit <= 0 {
		return nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	cutoff := now.Add(-window)

	recent := g.arrivals[client][:0]
	for _, t := range g.arrivals[client] {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}

	if len(recent) >= g.limit {
		g.arrivals[client] = recent
		return domain.ErrRateLimitExceeded
	}
	g.arrivals[client] = append(recent, now)
	return nil
}
