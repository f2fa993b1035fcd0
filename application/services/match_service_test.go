package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"novena-backend/domain/matching"
	"novena-backend/domain/novena"
)

// failingAIClient always errors, standing in for a dead remote backend.
type failingAIClient struct{ calls int }

func (f *failingAIClient) MatchIntention(_ context.Context, _ string) (*novena.MatchResult, error) {
	f.calls++
	return nil, errors.New("upstream unavailable")
}

// cannedAIClient returns a fixed result.
type cannedAIClient struct {
	result novena.MatchResult
	calls  int
}

func (c *cannedAIClient) MatchIntention(_ context.Context, _ string) (*novena.MatchResult, error) {
	c.calls++
	result := c.result
	return &result, nil
}

func newTestMatchService(ai matching.AIClient) *MatchService {
	catalog := NewCatalogService(nil, nil, nil, zap.NewNop())
	return NewMatchService(
		catalog,
		ai,
		matching.NewReasonCache(),
		matching.PickFunc(func(n int) int { return 0 }),
		nil,
		zap.NewNop(),
	)
}

func TestMatchService_AlwaysReturnsValidResult(t *testing.T) {
	svc := newTestMatchService(&failingAIClient{})
	intentions := []string{
		"",
		"   ",
		"Healing and strength",
		"I'm so anxious about my job interview tomorrow",
		"zzz qqq completely unmatchable",
		"sacred heart devotion",
	}

	for _, intention := range intentions {
		result := svc.Match(context.Background(), intention)
		assert.True(t, result.IsValid(), "intention %q must produce a valid result", intention)
	}
}

func TestMatchService_MatchWithoutCatalogServiceUsesFallbackList(t *testing.T) {
	// Offline callers construct the service with no catalog supplier.
	svc := NewMatchService(
		nil,
		nil,
		matching.NewReasonCache(),
		matching.PickFunc(func(n int) int { return 0 }),
		nil,
		zap.NewNop(),
	)

	result := svc.Match(context.Background(), "I'm so anxious about my job interview tomorrow")

	require.True(t, result.IsValid())
	assert.Equal(t, "St. Dymphna", result.PatronSaint)
}

func TestMatchService_EmptyCatalogReturnsFixedDefault(t *testing.T) {
	svc := newTestMatchService(nil)

	result := svc.MatchWithCatalog(context.Background(), "anything", novena.Catalog{})

	assert.Equal(t, "st-jude-novena", result.Entry.Slug)
	assert.Equal(t, "St. Jude", result.PatronSaint)
	assert.NotEmpty(t, result.MatchReason)
}

func TestMatchService_PresetBeatsKeywords(t *testing.T) {
	// "Healing and strength" contains the keyword "healing"; the preset
	// tier must answer before the keyword tier sees it.
	ai := &failingAIClient{}
	svc := newTestMatchService(ai)

	result := svc.MatchWithCatalog(context.Background(), "Healing and strength", novena.FallbackCatalog())

	assert.Equal(t, "novena-for-healing", result.Entry.Slug)
	assert.Equal(t, "Our Lady of Lourdes", result.PatronSaint)
	assert.Zero(t, ai.calls, "a preset match must not reach the AI tier")
}

func TestMatchService_KeywordTierAnswersBeforeAI(t *testing.T) {
	ai := &failingAIClient{}
	svc := newTestMatchService(ai)

	result := svc.MatchWithCatalog(context.Background(),
		"I'm so anxious about my job interview tomorrow", novena.FallbackCatalog())

	assert.Equal(t, "St. Dymphna", result.PatronSaint)
	assert.Equal(t, "st-dymphna-novena", result.Entry.Slug)
	assert.Zero(t, ai.calls)
}

func TestMatchService_AIFailureFallsThroughToTitleScore(t *testing.T) {
	ai := &failingAIClient{}
	svc := newTestMatchService(ai)

	result := svc.MatchWithCatalog(context.Background(),
		"a devotion to the immaculate conception", novena.FallbackCatalog())

	assert.Equal(t, 1, ai.calls, "no keyword matches, so the AI tier runs")
	assert.Equal(t, "immaculate-conception-novena", result.Entry.Slug)
	assert.Equal(t, "Our Lady of the Immaculate Conception", result.PatronSaint)
}

func TestMatchService_FullFallbackChainEndsAtDefault(t *testing.T) {
	ai := &failingAIClient{}
	svc := newTestMatchService(ai)

	result := svc.MatchWithCatalog(context.Background(),
		"zzz qqq completely unmatchable", novena.FallbackCatalog())

	assert.Equal(t, 1, ai.calls)
	// Nothing scored; the default tier picks the first generic slug.
	assert.Equal(t, "holy-spirit-novena", result.Entry.Slug)
	assert.Equal(t, "The Holy Spirit", result.PatronSaint)
}

func TestMatchService_AIResultUsedWhenLocalTiersDecline(t *testing.T) {
	ai := &cannedAIClient{result: novena.MatchResult{
		Entry:       novena.Entry{Slug: "st-therese-novena", Title: "St. Therese of Lisieux Novena", Category: novena.CategorySaints},
		PatronSaint: "St. Therese of Lisieux",
		MatchReason: "St. Therese teaches trust in God through small acts of love.",
	}}
	svc := newTestMatchService(ai)

	result := svc.MatchWithCatalog(context.Background(),
		"qqq zzz nothing local matches this", novena.FallbackCatalog())

	assert.Equal(t, 1, ai.calls)
	assert.Equal(t, "st-therese-novena", result.Entry.Slug)
	assert.Equal(t, "St. Therese of Lisieux", result.PatronSaint)
}

func TestMatchService_ReloadRulesAddsOverlayGroups(t *testing.T) {
	svc := newTestMatchService(nil)
	overlay := []matching.PatronSaintGroup{
		{
			Keywords:       []string{"qqq"},
			PatronSaint:    "St. Expeditus",
			Reason:         "St. Expeditus is invoked for urgent causes.",
			PreferredSlugs: []string{"st-jude-novena"},
		},
	}

	svc.ReloadRules(overlay, map[string]string{"St. Expeditus": "St. Expeditus is invoked for urgent causes."})
	result := svc.MatchWithCatalog(context.Background(), "qqq", novena.FallbackCatalog())

	assert.Equal(t, "St. Expeditus", result.PatronSaint)
	assert.Equal(t, "st-jude-novena", result.Entry.Slug)
}

func TestMatchService_BuiltinGroupsWinTiesAgainstOverlay(t *testing.T) {
	svc := newTestMatchService(nil)
	overlay := []matching.PatronSaintGroup{
		{
			Keywords:       []string{"anxious"},
			PatronSaint:    "St. Someone Else",
			Reason:         "overlay reason",
			PreferredSlugs: []string{"st-jude-novena"},
		},
	}

	svc.ReloadRules(overlay, nil)
	result := svc.MatchWithCatalog(context.Background(), "feeling anxious", novena.FallbackCatalog())

	require.True(t, result.IsValid())
	assert.Equal(t, "St. Dymphna", result.PatronSaint)
}
