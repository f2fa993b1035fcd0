package novena

// FallbackCatalog returns the compiled-in catalog used when neither the
// remote endpoint nor the persisted cache can supply entries. It covers the
// common saints and categories so the Catalog Store never returns empty.
// Callers receive a fresh copy each time; the backing data is never mutated.
func FallbackCatalog() Catalog {
	out := make(Catalog, len(fallbackEntries))
	copy(out, fallbackEntries)
	return out
}

// DefaultEntry is the fixed entry returned when matching is asked to work
// against an empty catalog. St. Jude, patron of hope in difficult causes,
// is the deliberate choice of last answer.
func DefaultEntry() Entry {
	return Entry{Slug: "st-jude-novena", Title: "St. Jude Novena", Category: CategorySaints}
}

// DefaultPatronSaint is the saint paired with DefaultEntry.
const DefaultPatronSaint = "St. Jude"

// GenericFallbackSlugs is the ordered list of broadly applicable novenas the
// final fallback tries before settling for the catalog's first entry.
func GenericFallbackSlugs() []string {
	return []string{
		"holy-spirit-novena",
		"st-jude-novena",
		"divine-mercy-novena",
		"sacred-heart-novena",
		"novena-for-guidance",
	}
}

var fallbackEntries = Catalog{
	{Slug: "st-jude-novena", Title: "St. Jude Novena", Category: CategorySaints},
	{Slug: "st-joseph-novena", Title: "St. Joseph Novena", Category: CategorySaints},
	{Slug: "st-anthony-novena", Title: "St. Anthony Novena", Category: CategorySaints},
	{Slug: "st-dymphna-novena", Title: "St. Dymphna Novena", Category: CategorySaints},
	{Slug: "st-rita-novena", Title: "St. Rita Novena", Category: CategorySaints},
	{Slug: "st-therese-novena", Title: "St. Therese of Lisieux Novena", Category: CategorySaints},
	{Slug: "st-michael-novena", Title: "St. Michael Novena", Category: CategorySaints},
	{Slug: "st-peregrine-novena", Title: "St. Peregrine Novena", Category: CategorySaints},
	{Slug: "st-gerard-novena", Title: "St. Gerard Novena", Category: CategorySaints},
	{Slug: "st-monica-novena", Title: "St. Monica Novena", Category: CategorySaints},
	{Slug: "st-matthew-novena", Title: "St. Matthew Novena", Category: CategorySaints},
	{Slug: "st-raphael-novena", Title: "St. Raphael Novena", Category: CategorySaints},
	{Slug: "st-anne-novena", Title: "St. Anne Novena", Category: CategorySaints},
	{Slug: "our-lady-of-lourdes-novena", Title: "Our Lady of Lourdes Novena", Category: CategoryMarian},
	{Slug: "our-lady-of-guadalupe-novena", Title: "Our Lady of Guadalupe Novena", Category: CategoryMarian},
	{Slug: "our-lady-undoer-of-knots-novena", Title: "Our Lady Undoer of Knots Novena", Category: CategoryMarian},
	{Slug: "immaculate-conception-novena", Title: "Immaculate Conception Novena", Category: CategoryHolyDays},
	{Slug: "divine-mercy-novena", Title: "Divine Mercy Novena", Category: CategoryHolyDays},
	{Slug: "holy-spirit-novena", Title: "Holy Spirit Novena", Category: CategoryHolyDays},
	{Slug: "sacred-heart-novena", Title: "Sacred Heart Novena", Category: CategoryHolyDays},
	{Slug: "novena-for-healing", Title: "Novena for Healing", Category: CategoryIntentions},
	{Slug: "novena-for-financial-help", Title: "Novena for Financial Help", Category: CategoryIntentions},
	{Slug: "novena-for-impossible-requests", Title: "Novena for Impossible Requests", Category: CategoryIntentions},
}
