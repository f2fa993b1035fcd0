package matching

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"novena-backend/domain/novena"
)

func testCatalog() novena.Catalog {
	return novena.FallbackCatalog()
}

// pinnedPicker always picks the given index.
func pinnedPicker(i int) Picker {
	return PickFunc(func(n int) int { return i % n })
}

func TestKeywordStrategy_DeclinesEmptyIntention(t *testing.T) {
	s := NewKeywordStrategy(BuiltinGroups(), pinnedPicker(0))

	assert.Nil(t, s.Attempt(context.Background(), "   ", testCatalog()))
}

func TestKeywordStrategy_DeclinesWhenNoKeywordMatches(t *testing.T) {
	s := NewKeywordStrategy(BuiltinGroups(), pinnedPicker(0))

	assert.Nil(t, s.Attempt(context.Background(), "zzz qqq xxx", testCatalog()))
}

func TestKeywordStrategy_MultiWordPhraseOutscoresSingleWords(t *testing.T) {
	s := NewKeywordStrategy(BuiltinGroups(), pinnedPicker(0))

	// "anxious" (1) + "job interview" (2) = 3 for St. Dymphna,
	// against "job" (1) for St. Joseph.
	result := s.Attempt(context.Background(), "I'm so anxious about my job interview tomorrow", testCatalog())

	require.NotNil(t, result)
	assert.Equal(t, "St. Dymphna", result.PatronSaint)
	assert.Equal(t, "st-dymphna-novena", result.Entry.Slug)
	assert.Equal(t, "St. Dymphna is the patron saint of those suffering anxiety and mental illness.", result.MatchReason)
}

func TestKeywordStrategy_CaseInsensitive(t *testing.T) {
	s := NewKeywordStrategy(BuiltinGroups(), pinnedPicker(0))

	result := s.Attempt(context.Background(), "PLEASE HELP MY MARRIAGE", testCatalog())

	require.NotNil(t, result)
	assert.Equal(t, "St. Rita", result.PatronSaint)
}

func TestKeywordStrategy_TieKeepsEarlierGroup(t *testing.T) {
	groups := []PatronSaintGroup{
		{Keywords: []string{"alpha"}, PatronSaint: "First Saint", Reason: "first", PreferredSlugs: []string{"st-jude-novena"}},
		{Keywords: []string{"alpha"}, PatronSaint: "Second Saint", Reason: "second", PreferredSlugs: []string{"st-joseph-novena"}},
	}
	s := NewKeywordStrategy(groups, pinnedPicker(0))

	for i := 0; i < 5; i++ {
		result := s.Attempt(context.Background(), "alpha", testCatalog())
		require.NotNil(t, result)
		assert.Equal(t, "First Saint", result.PatronSaint)
	}
}

func TestKeywordStrategy_FallsBackToRandomSaintWhenSlugsAbsent(t *testing.T) {
	catalog := novena.Catalog{
		{Slug: "st-therese-novena", Title: "St. Therese of Lisieux Novena", Category: novena.CategorySaints},
		{Slug: "st-michael-novena", Title: "St. Michael Novena", Category: novena.CategorySaints},
		{Slug: "divine-mercy-novena", Title: "Divine Mercy Novena", Category: novena.CategoryHolyDays},
	}
	s := NewKeywordStrategy(BuiltinGroups(), pinnedPicker(1))

	result := s.Attempt(context.Background(), "I feel so anxious", catalog)

	require.NotNil(t, result)
	// Picker index 1 over the two saints-category entries.
	assert.Equal(t, "st-michael-novena", result.Entry.Slug)
	// Saint and reason still come from the winning group.
	assert.Equal(t, "St. Dymphna", result.PatronSaint)
}

func TestKeywordStrategy_DeclinesWhenNoSaintsCategoryEntry(t *testing.T) {
	catalog := novena.Catalog{
		{Slug: "divine-mercy-novena", Title: "Divine Mercy Novena", Category: novena.CategoryHolyDays},
	}
	s := NewKeywordStrategy(BuiltinGroups(), pinnedPicker(0))

	assert.Nil(t, s.Attempt(context.Background(), "I feel so anxious", catalog))
}

func TestScoreGroup_MultiWordKeywordCountsDouble(t *testing.T) {
	group := PatronSaintGroup{Keywords: []string{"job interview", "nervous"}}

	assert.Equal(t, 2, scoreGroup("my job interview", &group))
	assert.Equal(t, 1, scoreGroup("i am nervous", &group))
	assert.Equal(t, 3, scoreGroup("nervous about my job interview", &group))
	assert.Equal(t, 0, scoreGroup("completely calm", &group))
}
