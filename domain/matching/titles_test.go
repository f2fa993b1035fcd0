package matching

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"novena-backend/domain/novena"
)

func TestTitleScoreStrategy_MatchesTitleWords(t *testing.T) {
	s := NewTitleScoreStrategy(NewReasonCache())

	result := s.Attempt(context.Background(), "a novena to the sacred heart", testCatalog())

	require.NotNil(t, result)
	assert.Equal(t, "sacred-heart-novena", result.Entry.Slug)
	assert.Equal(t, "The Sacred Heart of Jesus", result.PatronSaint)
	assert.NotEmpty(t, result.MatchReason)
}

func TestTitleScoreStrategy_CategoryTextCounts(t *testing.T) {
	catalog := novena.Catalog{
		{Slug: "one", Title: "First", Category: novena.CategoryMarian},
		{Slug: "two", Title: "Second", Category: novena.CategorySaints},
	}
	s := NewTitleScoreStrategy(NewReasonCache())

	result := s.Attempt(context.Background(), "something marian", catalog)

	require.NotNil(t, result)
	assert.Equal(t, "one", result.Entry.Slug)
}

func TestTitleScoreStrategy_ShortTokensIgnored(t *testing.T) {
	s := NewTitleScoreStrategy(NewReasonCache())

	// Every word is two characters or fewer.
	assert.Nil(t, s.Attempt(context.Background(), "st to of my", testCatalog()))
}

func TestTitleScoreStrategy_DeclinesOnZeroScore(t *testing.T) {
	s := NewTitleScoreStrategy(NewReasonCache())

	assert.Nil(t, s.Attempt(context.Background(), "qqqqq wwwww", testCatalog()))
}

func TestTitleScoreStrategy_StrictlyHighestWinsFirstSeenTies(t *testing.T) {
	catalog := novena.Catalog{
		{Slug: "a", Title: "Healing Grace", Category: novena.CategoryIntentions},
		{Slug: "b", Title: "Healing Light", Category: novena.CategoryIntentions},
	}
	s := NewTitleScoreStrategy(NewReasonCache())

	result := s.Attempt(context.Background(), "healing", catalog)

	require.NotNil(t, result)
	assert.Equal(t, "a", result.Entry.Slug)
}

func TestTokenize(t *testing.T) {
	tokens := tokenize("please, help my son's job-interview!")

	assert.Equal(t, []string{"please", "help", "son", "job", "interview"}, tokens)
}

func TestTokenize_CountsRunesNotBytes(t *testing.T) {
	// "fé" is two runes but three bytes; it must still be filtered out.
	tokens := tokenize("fé día vocación")

	assert.Equal(t, []string{"día", "vocación"}, tokens)
}
