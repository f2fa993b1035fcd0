package novena

import "strings"

// saintNameOverrides maps thematic or non-saint-named novena slugs to the
// figure invoked. Used before any title-derived name.
var saintNameOverrides = map[string]string{
	"holy-spirit-novena":             "The Holy Spirit",
	"sacred-heart-novena":            "The Sacred Heart of Jesus",
	"divine-mercy-novena":            "Jesus, the Divine Mercy",
	"immaculate-conception-novena":   "Our Lady of the Immaculate Conception",
	"novena-for-healing":             "Our Lady of Lourdes",
	"novena-for-financial-help":      "St. Matthew",
	"novena-for-impossible-requests": "St. Jude",
	"novena-for-peace":               "St. Francis of Assisi",
	"novena-for-family":              "The Holy Family",
	"novena-for-guidance":            "The Holy Spirit",
}

// ResolveSaintName derives the patron saint name for a catalog entry.
// Priority: explicit slug override, then trailing " Novena" suffix strip,
// then leading "Novena for " / "Novena " prefix strip. The result is never
// empty; an entry whose title matches no rule resolves to its full title.
func ResolveSaintName(entry Entry) string {
	if name, ok := saintNameOverrides[entry.Slug]; ok {
		return name
	}

	title := strings.TrimSpace(entry.Title)
	if stripped := strings.TrimSuffix(title, " Novena"); stripped != title {
		if stripped != "" {
			return stripped
		}
	} else if stripped := strings.TrimPrefix(title, "Novena for "); stripped != title {
		if stripped != "" {
			return stripped
		}
	} else if stripped := strings.TrimPrefix(title, "Novena "); stripped != title {
		if stripped != "" {
			return stripped
		}
	}

	return title
}
