package novena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSaintName_SlugOverrideWinsOverTitle(t *testing.T) {
	entry := Entry{Slug: "novena-for-healing", Title: "Novena for Healing", Category: CategoryIntentions}

	assert.Equal(t, "Our Lady of Lourdes", ResolveSaintName(entry))
}

func TestResolveSaintName_StripsTrailingNovena(t *testing.T) {
	entry := Entry{Slug: "st-jude-novena", Title: "St. Jude Novena", Category: CategorySaints}

	assert.Equal(t, "St. Jude", ResolveSaintName(entry))
}

func TestResolveSaintName_StripsLeadingNovenaFor(t *testing.T) {
	entry := Entry{Slug: "novena-for-students", Title: "Novena for Students", Category: CategoryIntentions}

	assert.Equal(t, "Students", ResolveSaintName(entry))
}

func TestResolveSaintName_UnmatchedTitlePassesThrough(t *testing.T) {
	entry := Entry{Slug: "morning-offering", Title: "Morning Offering", Category: CategoryOther}

	assert.Equal(t, "Morning Offering", ResolveSaintName(entry))
}

func TestFallbackCatalog_AllEntriesValid(t *testing.T) {
	catalog := FallbackCatalog()

	require.NotEmpty(t, catalog)
	for i := range catalog {
		assert.NoError(t, catalog[i].Validate(), "entry %s", catalog[i].Slug)
	}
}

func TestFallbackCatalog_ContainsDefaultAndGenericSlugs(t *testing.T) {
	catalog := FallbackCatalog()

	_, ok := catalog.BySlug(DefaultEntry().Slug)
	assert.True(t, ok, "default entry must be in the fallback catalog")

	for _, slug := range GenericFallbackSlugs() {
		_, ok := catalog.BySlug(slug)
		assert.True(t, ok, "generic fallback slug %s must be in the fallback catalog", slug)
	}
}

func TestDefaultEntry_IsStJude(t *testing.T) {
	entry := DefaultEntry()

	assert.Equal(t, "st-jude-novena", entry.Slug)
	assert.Equal(t, "St. Jude", DefaultPatronSaint)
	assert.Equal(t, DefaultPatronSaint, ResolveSaintName(entry))
}
