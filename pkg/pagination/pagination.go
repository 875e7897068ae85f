package pagination

// Pagination carries page request parameters.
type Pagination struct {
	Page  int `json:"page" form:"page"`
	Limit int `json:"limit" form:"limit"`
}

// PageResult is the windowed response envelope.
type PageResult struct {
	List  interface{} `json:"list"`
	Total int64       `json:"total"`
	Page  int         `json:"page"`
	Limit int         `json:"limit"`
}

// Normalize clamps the request to sane values and returns offset and limit.
func (p *Pagination) Normalize() (int, int) {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = 10
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	return (p.Page - 1) * p.Limit, p.Limit
}

// TotalPages computes ceil(total/limit) when a true total is known.
func TotalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}
	return pages
}

// Clamp restricts page to [1, totalPages]. A totalPages below 1 means the
// bound is unknown and only the lower clamp applies.
func Clamp(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if totalPages >= 1 && page > totalPages {
		return totalPages
	}
	return page
}
