package entities

// MatchResult is the ordered outcome of one search submission. The combined
// sequence is partitioned into two contiguous runs: direct matches first, then
// related products. A product appears in at most one run, and order within
// each run is catalog order.
type MatchResult struct {
	Query   string     `json:"query"`
	Tokens  []string   `json:"tokens"`
	Direct  []*Product `json:"direct_matches"`
	Related []*Product `json:"related_matches"`
}

// Combined returns direct matches followed by related products, the sequence
// the storefront renders.
func (r *MatchResult) Combined() []*Product {
	combined := make([]*Product, 0, len(r.Direct)+len(r.Related))
	combined = append(combined, r.Direct...)
	combined = append(combined, r.Related...)
	return combined
}

// IsEmpty reports whether the submission matched nothing. This is the
// explicit "no products found" state, distinct from "search not yet
// performed".
func (r *MatchResult) IsEmpty() bool {
	return len(r.Direct) == 0 && len(r.Related) == 0
}
