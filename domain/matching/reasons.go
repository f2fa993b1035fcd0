package matching

import (
	"fmt"
	"sync"
)

// ReasonCache maps a saint's display name to the justification text shown
// alongside a match. It is seeded with the compiled-in entries and enriched
// at runtime when the AI path discovers a new saint/reason pair. The cache is
// append-only: entries are never replaced or evicted, so concurrent readers
// at worst see a more generic reason, never a wrong one. It lives and dies
// with the process.
type ReasonCache struct {
	mu      sync.RWMutex
	reasons map[string]string
}

// NewReasonCache returns a cache seeded with the built-in saint reasons.
func NewReasonCache() *ReasonCache {
	reasons := make(map[string]string, len(seedReasons))
	for saint, reason := range seedReasons {
		reasons[saint] = reason
	}
	return &ReasonCache{reasons: reasons}
}

// Get returns the known reason for a saint, if any.
func (c *ReasonCache) Get(saint string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	reason, ok := c.reasons[saint]
	return reason, ok
}

// Put records a reason for a saint unless one is already known. Returns the
// reason that is in the cache after the call.
func (c *ReasonCache) Put(saint, reason string) string {
	if saint == "" || reason == "" {
		if existing, ok := c.Get(saint); ok {
			return existing
		}
		return reason
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.reasons[saint]; ok {
		return existing
	}
	c.reasons[saint] = reason
	return reason
}

// Len returns the number of cached reasons.
func (c *ReasonCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.reasons)
}

// ReasonOrDefault returns the cached reason for a saint, falling back to the
// generic templated sentence when nothing specific is known.
func (c *ReasonCache) ReasonOrDefault(saint string) string {
	if reason, ok := c.Get(saint); ok {
		return reason
	}
	return GenericReason(saint)
}

// GenericReason is the templated justification used when no specific reason
// is known for a saint.
func GenericReason(saint string) string {
	return fmt.Sprintf("%s intercedes for those who seek their guidance through this novena.", saint)
}

var seedReasons = map[string]string{
	"St. Jude":              "St. Jude is the patron saint of hope and impossible causes.",
	"St. Joseph":            "St. Joseph is the patron saint of workers, fathers, and families.",
	"St. Anthony":           "St. Anthony is the patron saint of lost things and lost people.",
	"St. Dymphna":           "St. Dymphna is the patron saint of those suffering anxiety and mental illness.",
	"St. Rita":              "St. Rita is the patron saint of difficult marriages and impossible situations.",
	"St. Therese of Lisieux": "St. Therese teaches trust in God through small acts of love.",
	"St. Michael":           "St. Michael the Archangel defends and protects against evil.",
	"St. Peregrine":         "St. Peregrine is the patron saint of those battling cancer and serious illness.",
	"St. Gerard":            "St. Gerard is the patron saint of expectant mothers.",
	"St. Monica":            "St. Monica is the patron saint of mothers praying for their children.",
	"St. Matthew":           "St. Matthew is the patron saint of financial matters.",
	"St. Raphael":           "St. Raphael the Archangel is the patron of healing and travelers.",
	"St. Anne":              "St. Anne, mother of Mary, is the patron saint of mothers and grandmothers.",
	"Our Lady of Lourdes":   "Our Lady of Lourdes is invoked for healing of body and spirit.",
	"Our Lady of Guadalupe": "Our Lady of Guadalupe is the patroness of the Americas and of all who seek Mary's intercession.",
	"The Holy Spirit":       "The Holy Spirit guides, comforts, and renews those who call on Him.",
	"The Sacred Heart of Jesus": "The Sacred Heart of Jesus is a refuge of boundless love and mercy.",
	"Jesus, the Divine Mercy":   "The Divine Mercy devotion entrusts every need to the mercy of Jesus.",
	"The Holy Family":       "The Holy Family is the model and protector of family life.",
	"St. Francis of Assisi": "St. Francis of Assisi is the patron saint of peace and of animals.",
}
