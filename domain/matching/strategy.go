// Package matching implements the novena-intention matching rules: the
// keyword and title scorers, the preset table, the AI delegation strategy,
// and the reason cache. The orchestration order lives in the application
// layer; each strategy here only answers "can I match this intention?".
package matching

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"

	"novena-backend/domain/novena"
)

// Strategy is one tier of the matching chain. Attempt returns nil to decline,
// deferring to the next tier. Strategies never return errors: every failure
// mode inside a tier degrades to a decline.
type Strategy interface {
	Name() string
	Attempt(ctx context.Context, intention string, catalog novena.Catalog) *novena.MatchResult
}

// NormalizeIntention lowercases and trims intention text. All keyword and
// title scoring runs against the normalized form.
func NormalizeIntention(intention string) string {
	return strings.ToLower(strings.TrimSpace(intention))
}

// Picker selects an index in [0, n) when several catalog entries are equally
// acceptable. Injected so tests can pin the choice.
type Picker interface {
	Pick(n int) int
}

// PickFunc adapts a plain function to the Picker interface.
type PickFunc func(n int) int

// Pick implements Picker.
func (f PickFunc) Pick(n int) int { return f(n) }

// randomPicker is the production Picker, seeded at construction.
type randomPicker struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomPicker returns a time-seeded Picker safe for concurrent use.
func NewRandomPicker() Picker {
	return &randomPicker{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (p *randomPicker) Pick(n int) int {
	if n <= 1 {
		return 0
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rng.Intn(n)
}
