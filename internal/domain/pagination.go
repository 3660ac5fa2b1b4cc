package domain

// PaginationParams holds offset-based pagination parameters for list queries.
type PaginationParams struct {
	Limit  int
	Offset int
}

// HasMore reports whether rows remain after the current page, given the total count.
func (p PaginationParams) HasMore(total int) bool {
	return p.Offset+p.Limit < total
}

// NextOffset returns the offset of the following page, or nil when this is the last page.
func (p PaginationParams) NextOffset(total int) *int {
	if !p.HasMore(total) {
		return nil
	}
	next := p.Offset + p.Limit
	return &next
}
