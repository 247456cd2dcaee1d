package dto

const (
	defaultPage     = 1
	defaultPageSize = 10
	maxPageSize     = 100
)

// PageQuery is the explicit pagination input of every list query.
type PageQuery struct {
	Page     int `form:"page"`
	PageSize int `form:"pageSize"`
}

// Normalized fills in defaults and clamps the page size.
func (p PageQuery) Normalized() PageQuery {
	if p.Page < 1 {
		p.Page = defaultPage
	}
	if p.PageSize < 1 {
		p.PageSize = defaultPageSize
	}
	if p.PageSize > maxPageSize {
		p.PageSize = maxPageSize
	}
	return p
}

// Offset is the number of rows skipped before the requested page.
func (p PageQuery) Offset() int {
	n := p.Normalized()
	return (n.Page - 1) * n.PageSize
}

// Limit is the normalized page size.
func (p PageQuery) Limit() int { return p.Normalized().PageSize }
