// Package novena defines the core catalog types for the matching engine:
// catalog entries, match results, and saint name resolution.
package novena

import (
	pkgerrors "novena-backend/pkg/errors"
)

// Category classifies a novena within the catalog
type Category string

const (
	CategorySaints     Category = "saints"
	CategoryMarian     Category = "marian"
	CategoryHolyDays   Category = "holy-days"
	CategoryIntentions Category = "intentions"
	CategoryOther      Category = "other"
)

// IsValid reports whether the category is one of the known values
func (c Category) IsValid() bool {
	switch c {
	case CategorySaints, CategoryMarian, CategoryHolyDays, CategoryIntentions, CategoryOther:
		return true
	}
	return false
}

// Entry is a single novena in the catalog. Entries are immutable once
// fetched; the catalog is a set keyed by slug.
type Entry struct {
	Slug     string   `json:"slug"`
	Title    string   `json:"title"`
	Category Category `json:"category"`
}

// Validate checks the entry invariants: non-empty slug and title, known category.
// Unknown categories are normalized to "other" rather than rejected, because
// the remote catalog may grow categories ahead of this client.
func (e *Entry) Validate() error {
	if e.Slug == "" {
		return pkgerrors.NewValidationError("entry slug cannot be empty")
	}
	if e.Title == "" {
		return pkgerrors.NewValidationError("entry title cannot be empty")
	}
	if !e.Category.IsValid() {
		e.Category = CategoryOther
	}
	return nil
}

// Catalog is an ordered list of entries. Order matters: position zero is the
// last-resort fallback pick, and slug lookups scan in order.
type Catalog []Entry

// BySlug returns the entry with the given slug, if present.
func (c Catalog) BySlug(slug string) (Entry, bool) {
	for _, e := range c {
		if e.Slug == slug {
			return e, true
		}
	}
	return Entry{}, false
}

// ByCategory returns all entries in the given category, preserving order.
func (c Catalog) ByCategory(cat Category) Catalog {
	var out Catalog
	for _, e := range c {
		if e.Category == cat {
			out = append(out, e)
		}
	}
	return out
}

// FirstPresent returns the first entry whose slug appears in slugs, scanning
// slugs in preference order.
func (c Catalog) FirstPresent(slugs []string) (Entry, bool) {
	for _, slug := range slugs {
		if e, ok := c.BySlug(slug); ok {
			return e, true
		}
	}
	return Entry{}, false
}
