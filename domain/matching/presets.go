package matching

import (
	"context"

	"novena-backend/domain/novena"
)

// PresetConfig resolves one of the app's fixed preset intentions to an
// explicit saint/reason pair. The saint and reason are always the configured
// constants; the catalog only supplies the slug/title to pray with.
type PresetConfig struct {
	PreferredSlugs []string
	Categories     []novena.Category
	PatronSaint    string
	Reason         string
}

// BuiltinPresets returns the closed preset intention table, keyed by the
// exact (case-sensitive) intention string the app displays.
func BuiltinPresets() map[string]PresetConfig {
	return builtinPresets
}

var builtinPresets = map[string]PresetConfig{
	"Spiritual growth": {
		PreferredSlugs: []string{"holy-spirit-novena", "sacred-heart-novena"},
		Categories:     []novena.Category{novena.CategoryHolyDays, novena.CategoryIntentions},
		PatronSaint:    "The Holy Spirit",
		Reason:         "The Holy Spirit guides, comforts, and renews those who call on Him.",
	},
	"Healing and strength": {
		PreferredSlugs: []string{"novena-for-healing", "our-lady-of-lourdes-novena"},
		Categories:     []novena.Category{novena.CategoryIntentions, novena.CategoryMarian},
		PatronSaint:    "Our Lady of Lourdes",
		Reason:         "Our Lady of Lourdes is invoked for healing of body and spirit.",
	},
	"Family and relationships": {
		PreferredSlugs: []string{"novena-for-family", "st-joseph-novena"},
		Categories:     []novena.Category{novena.CategoryIntentions, novena.CategorySaints},
		PatronSaint:    "St. Joseph",
		Reason:         "St. Joseph is the patron saint of workers, fathers, and families.",
	},
	"Peace of mind": {
		PreferredSlugs: []string{"st-dymphna-novena", "novena-for-peace"},
		Categories:     []novena.Category{novena.CategorySaints, novena.CategoryIntentions},
		PatronSaint:    "St. Dymphna",
		Reason:         "St. Dymphna is the patron saint of those suffering anxiety and mental illness.",
	},
	"Financial stability": {
		PreferredSlugs: []string{"novena-for-financial-help", "st-matthew-novena"},
		Categories:     []novena.Category{novena.CategoryIntentions, novena.CategorySaints},
		PatronSaint:    "St. Matthew",
		Reason:         "St. Matthew is the patron saint of financial matters.",
	},
	"Mary's intercession": {
		PreferredSlugs: []string{"our-lady-of-guadalupe-novena"},
		Categories:     []novena.Category{novena.CategoryMarian},
		PatronSaint:    "Our Lady of Guadalupe",
		Reason:         "Our Lady of Guadalupe is the patroness of the Americas and of all who seek Mary's intercession.",
	},
	"Protection and safety": {
		PreferredSlugs: []string{"st-michael-novena"},
		Categories:     []novena.Category{novena.CategorySaints},
		PatronSaint:    "St. Michael",
		Reason:         "St. Michael the Archangel defends and protects against evil.",
	},
	"Guidance in decisions": {
		PreferredSlugs: []string{"holy-spirit-novena", "novena-for-guidance"},
		Categories:     []novena.Category{novena.CategoryHolyDays, novena.CategoryIntentions},
		PatronSaint:    "The Holy Spirit",
		Reason:         "The Holy Spirit guides, comforts, and renews those who call on Him.",
	},
}

// PresetStrategy handles the closed set of preset intention strings. Exact
// string match only; anything else declines immediately so the free-text
// tiers run instead.
type PresetStrategy struct {
	presets map[string]PresetConfig
	picker  Picker
}

// NewPresetStrategy builds the strategy over the given preset table.
func NewPresetStrategy(presets map[string]PresetConfig, picker Picker) *PresetStrategy {
	return &PresetStrategy{presets: presets, picker: picker}
}

// Name implements Strategy.
func (s *PresetStrategy) Name() string { return "preset" }

// IsPreset reports whether the intention is one of the configured preset strings.
func (s *PresetStrategy) IsPreset(intention string) bool {
	_, ok := s.presets[intention]
	return ok
}

// Attempt implements Strategy.
func (s *PresetStrategy) Attempt(_ context.Context, intention string, catalog novena.Catalog) *novena.MatchResult {
	preset, ok := s.presets[intention]
	if !ok {
		return nil
	}

	entry, found := catalog.FirstPresent(preset.PreferredSlugs)
	if !found {
		var candidates novena.Catalog
		for _, cat := range preset.Categories {
			candidates = append(candidates, catalog.ByCategory(cat)...)
		}
		if len(candidates) == 0 {
			return nil
		}
		entry = candidates[s.picker.Pick(len(candidates))]
	}

	return &novena.MatchResult{
		Entry:       entry,
		PatronSaint: preset.PatronSaint,
		MatchReason: preset.Reason,
	}
}
