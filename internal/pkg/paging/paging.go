package paging

// Params is the page/limit pair shared by every listing endpoint.
type Params struct {
	Page  int `form:"page,default=1" json:"page" binding:"omitempty,min=1" example:"1"`
	Limit int `form:"limit,default=20" json:"limit" binding:"omitempty,min=1,max=100" example:"20"`
}

// Meta describes one page of a listing result.
type Meta struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

const (
	defaultLimit = 20
	maxLimit     = 100
)

// Normalize clamps page to >=1 and limit to [1,100], applying defaults for
// zero values.
func (p Params) Normalize() Params {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = defaultLimit
	}
	if p.Limit > maxLimit {
		p.Limit = maxLimit
	}
	return p
}

// Offset returns the row offset for the normalized params.
func (p Params) Offset() int {
	n := p.Normalize()
	return (n.Page - 1) * n.Limit
}

// NewMeta builds the result meta for a total row count.
func NewMeta(p Params, total int64) Meta {
	n := p.Normalize()
	pages := int((total + int64(n.Limit) - 1) / int64(n.Limit))
	return Meta{Page: n.Page, Limit: n.Limit, Total: total, Pages: pages}
}
