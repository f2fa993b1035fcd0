package novena

// MatchResult is the output contract of every matching path.
// Entry always references a valid, non-empty slug/title pair and PatronSaint
// is never empty.
type MatchResult struct {
	Entry       Entry  `json:"entry"`
	PatronSaint string `json:"patronSaint"`
	MatchReason string `json:"matchReason,omitempty"`
}

// IsValid reports whether the result satisfies the output contract.
func (r *MatchResult) IsValid() bool {
	return r != nil && r.Entry.Slug != "" && r.Entry.Title != "" && r.PatronSaint != ""
}
