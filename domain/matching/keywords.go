package matching

import (
	"context"
	"strings"

	"novena-backend/domain/novena"
)

// KeywordStrategy scores free-text intentions against the patron saint
// keyword table. It declines for empty input, for input matching no keyword,
// and when the catalog holds neither a preferred slug nor any saints-category
// entry to pair the winning group with.
type KeywordStrategy struct {
	groups []PatronSaintGroup
	picker Picker
}

// NewKeywordStrategy builds the strategy over the given group table.
// Group order is significant: equal scores keep the earlier group.
func NewKeywordStrategy(groups []PatronSaintGroup, picker Picker) *KeywordStrategy {
	return &KeywordStrategy{groups: groups, picker: picker}
}

// Name implements Strategy.
func (s *KeywordStrategy) Name() string { return "keyword" }

// Attempt implements Strategy.
func (s *KeywordStrategy) Attempt(_ context.Context, intention string, catalog novena.Catalog) *novena.MatchResult {
	normalized := NormalizeIntention(intention)
	if normalized == "" {
		return nil
	}

	group := bestGroup(normalized, s.groups)
	if group == nil {
		return nil
	}

	entry, ok := catalog.FirstPresent(group.PreferredSlugs)
	if !ok {
		saints := catalog.ByCategory(novena.CategorySaints)
		if len(saints) == 0 {
			return nil
		}
		entry = saints[s.picker.Pick(len(saints))]
	}

	return &novena.MatchResult{
		Entry:       entry,
		PatronSaint: group.PatronSaint,
		MatchReason: group.Reason,
	}
}

// bestGroup returns the group with the strictly highest score against the
// normalized text, or nil when every group scores zero. Ties keep the
// first-seen group, making repeat runs deterministic.
func bestGroup(normalized string, groups []PatronSaintGroup) *PatronSaintGroup {
	var best *PatronSaintGroup
	bestScore := 0
	for i := range groups {
		if score := scoreGroup(normalized, &groups[i]); score > bestScore {
			bestScore = score
			best = &groups[i]
		}
	}
	return best
}

// scoreGroup counts keyword hits in the normalized text. A matched keyword
// containing a space contributes two points instead of one, so a specific
// phrase outweighs the same number of generic single-word hits.
func scoreGroup(normalized string, group *PatronSaintGroup) int {
	score := 0
	for _, keyword := range group.Keywords {
		if !strings.Contains(normalized, keyword) {
			continue
		}
		score++
		if strings.Contains(keyword, " ") {
			score++
		}
	}
	return score
}
