package novena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntry_Validate_RejectsEmptySlugAndTitle(t *testing.T) {
	missingSlug := Entry{Title: "St. Jude Novena", Category: CategorySaints}
	assert.Error(t, missingSlug.Validate())

	missingTitle := Entry{Slug: "st-jude-novena", Category: CategorySaints}
	assert.Error(t, missingTitle.Validate())
}

func TestEntry_Validate_NormalizesUnknownCategory(t *testing.T) {
	entry := Entry{Slug: "st-jude-novena", Title: "St. Jude Novena", Category: "seasonal"}

	err := entry.Validate()

	require.NoError(t, err)
	assert.Equal(t, CategoryOther, entry.Category)
}

func TestCatalog_BySlug(t *testing.T) {
	catalog := Catalog{
		{Slug: "st-jude-novena", Title: "St. Jude Novena", Category: CategorySaints},
		{Slug: "novena-for-healing", Title: "Novena for Healing", Category: CategoryIntentions},
	}

	entry, ok := catalog.BySlug("novena-for-healing")
	require.True(t, ok)
	assert.Equal(t, "Novena for Healing", entry.Title)

	_, ok = catalog.BySlug("missing-novena")
	assert.False(t, ok)
}

func TestCatalog_ByCategory_PreservesOrder(t *testing.T) {
	catalog := Catalog{
		{Slug: "a", Title: "A", Category: CategorySaints},
		{Slug: "b", Title: "B", Category: CategoryMarian},
		{Slug: "c", Title: "C", Category: CategorySaints},
	}

	saints := catalog.ByCategory(CategorySaints)

	require.Len(t, saints, 2)
	assert.Equal(t, "a", saints[0].Slug)
	assert.Equal(t, "c", saints[1].Slug)
}

func TestCatalog_FirstPresent_ScansInPreferenceOrder(t *testing.T) {
	catalog := Catalog{
		{Slug: "st-jude-novena", Title: "St. Jude Novena", Category: CategorySaints},
		{Slug: "holy-spirit-novena", Title: "Holy Spirit Novena", Category: CategoryHolyDays},
	}

	entry, ok := catalog.FirstPresent([]string{"missing", "holy-spirit-novena", "st-jude-novena"})

	require.True(t, ok)
	assert.Equal(t, "holy-spirit-novena", entry.Slug)

	_, ok = catalog.FirstPresent([]string{"missing", "also-missing"})
	assert.False(t, ok)
}
