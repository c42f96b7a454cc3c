package domain

// PackageFilter carries the optional equality filters for package listing.
// Nil fields are not applied; non-nil fields are combined conjunctively.
type PackageFilter struct {
	Status   *Status
	Featured *bool
}

// ListParams carries limit/offset values from the HTTP layer to the repo layer.
// Limit is capped at 100 by NewListParams.
type ListParams struct {
	// Limit is the maximum number of items to return.
	Limit int
	// Offset is the zero-based row offset into the result set.
	Offset int
}

// NewListParams builds a ListParams from optional HTTP query params.
// Nil pointers fall back to defaults (limit=50, offset=0).
// The limit is capped at 100 to prevent runaway queries; negative
// offsets are treated as 0.
func NewListParams(limit, offset *int) ListParams {
	p := ListParams{Limit: 50}
	if limit != nil && *limit >= 1 {
		p.Limit = *limit
		if p.Limit > 100 {
			p.Limit = 100
		}
	}
	if offset != nil && *offset > 0 {
		p.Offset = *offset
	}
	return p
}
