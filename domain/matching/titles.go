package matching

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	"novena-backend/domain/novena"
)

// TitleScoreStrategy is the last scorer before the generic default: it
// matches intention words against catalog titles directly. Only words longer
// than two characters count, which keeps "to", "my", "of" from matching
// everything.
type TitleScoreStrategy struct {
	reasons *ReasonCache
}

// NewTitleScoreStrategy builds the strategy over the shared reason cache.
func NewTitleScoreStrategy(reasons *ReasonCache) *TitleScoreStrategy {
	return &TitleScoreStrategy{reasons: reasons}
}

// Name implements Strategy.
func (s *TitleScoreStrategy) Name() string { return "title-score" }

// Attempt implements Strategy.
func (s *TitleScoreStrategy) Attempt(_ context.Context, intention string, catalog novena.Catalog) *novena.MatchResult {
	tokens := tokenize(NormalizeIntention(intention))
	if len(tokens) == 0 {
		return nil
	}

	var best *novena.Entry
	bestScore := 0
	for i := range catalog {
		haystack := strings.ToLower(catalog[i].Title + " " + string(catalog[i].Category))
		score := 0
		for _, token := range tokens {
			if strings.Contains(haystack, token) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = &catalog[i]
		}
	}
	if best == nil {
		return nil
	}

	saint := novena.ResolveSaintName(*best)
	return &novena.MatchResult{
		Entry:       *best,
		PatronSaint: saint,
		MatchReason: s.reasons.ReasonOrDefault(saint),
	}
}

// tokenize splits normalized text into words of length > 2.
func tokenize(normalized string) []string {
	fields := strings.FieldsFunc(normalized, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	var tokens []string
	for _, f := range fields {
		if utf8.RuneCountInString(f) > 2 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}
