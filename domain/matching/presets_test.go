package matching

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"novena-backend/domain/novena"
)

func TestPresetStrategy_ExactMatchOnly(t *testing.T) {
	s := NewPresetStrategy(BuiltinPresets(), pinnedPicker(0))

	assert.True(t, s.IsPreset("Healing and strength"))
	assert.False(t, s.IsPreset("healing and strength"))
	assert.False(t, s.IsPreset("Healing and strength "))

	assert.Nil(t, s.Attempt(context.Background(), "healing and strength", testCatalog()))
}

func TestPresetStrategy_HealingAndStrength(t *testing.T) {
	s := NewPresetStrategy(BuiltinPresets(), pinnedPicker(0))

	result := s.Attempt(context.Background(), "Healing and strength", testCatalog())

	require.NotNil(t, result)
	assert.Equal(t, "novena-for-healing", result.Entry.Slug)
	assert.Equal(t, "Our Lady of Lourdes", result.PatronSaint)
	assert.Equal(t, "Our Lady of Lourdes is invoked for healing of body and spirit.", result.MatchReason)
}

func TestPresetStrategy_CategoryFallbackWhenSlugsAbsent(t *testing.T) {
	// No Guadalupe slug; the marian category still has one entry.
	catalog := novena.Catalog{
		{Slug: "st-jude-novena", Title: "St. Jude Novena", Category: novena.CategorySaints},
		{Slug: "our-lady-of-lourdes-novena", Title: "Our Lady of Lourdes Novena", Category: novena.CategoryMarian},
	}
	s := NewPresetStrategy(BuiltinPresets(), pinnedPicker(0))

	result := s.Attempt(context.Background(), "Mary's intercession", catalog)

	require.NotNil(t, result)
	assert.Equal(t, "our-lady-of-lourdes-novena", result.Entry.Slug)
	// The configured saint holds even when the entry came from the
	// category fallback.
	assert.Equal(t, "Our Lady of Guadalupe", result.PatronSaint)
}

func TestPresetStrategy_DeclinesWhenCategoriesEmptyToo(t *testing.T) {
	catalog := novena.Catalog{
		{Slug: "st-jude-novena", Title: "St. Jude Novena", Category: novena.CategorySaints},
	}
	s := NewPresetStrategy(BuiltinPresets(), pinnedPicker(0))

	assert.Nil(t, s.Attempt(context.Background(), "Mary's intercession", catalog))
}

func TestBuiltinPresets_AllResolveAgainstFallbackCatalog(t *testing.T) {
	s := NewPresetStrategy(BuiltinPresets(), pinnedPicker(0))

	for intention := range BuiltinPresets() {
		result := s.Attempt(context.Background(), intention, testCatalog())
		require.NotNil(t, result, "preset %q must resolve", intention)
		assert.True(t, result.IsValid(), "preset %q produced an invalid result", intention)
	}
}
