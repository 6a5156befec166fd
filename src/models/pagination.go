package models

import "math"

// PaginationParams holds paging and filtering query parameters for list endpoints.
type PaginationParams struct {
	Page   int    `json:"page" query:"page" example:"1"`
	Limit  int    `json:"limit" query:"limit" example:"10"`
	Status string `json:"status" query:"status" example:"submitted"`
}

// PaginatedResponse wraps one page of results.
type PaginatedResponse struct {
	Data        interface{} `json:"data"`
	Total       int64       `json:"total"`
	Page        int         `json:"page"`
	Limit       int         `json:"limit"`
	TotalPages  int         `json:"totalPages"`
	HasNext     bool        `json:"hasNext"`
	HasPrevious bool        `json:"hasPrevious"`
}

const maxPageLimit = 100

// DefaultPagination is used for missing query values.
func DefaultPagination() PaginationParams {
	return PaginationParams{
		Page:  1,
		Limit: 10,
	}
}

// Paged reports whether the caller asked for a page at all.
func (p PaginationParams) Paged() bool {
	return p.Page > 0 || p.Limit > 0
}

// Clamp fills defaults and caps the limit.
func (p *PaginationParams) Clamp() {
	def := DefaultPagination()
	if p.Page < 1 {
		p.Page = def.Page
	}
	if p.Limit < 1 {
		p.Limit = def.Limit
	}
	if p.Limit > maxPageLimit {
		p.Limit = maxPageLimit
	}
}

// Bounds returns the slice window [start, end) for total items.
func (p PaginationParams) Bounds(total int) (int, int) {
	start := (p.Page - 1) * p.Limit
	if start > total {
		start = total
	}
	end := start + p.Limit
	if end > total {
		end = total
	}
	return start, end
}

// NewPaginatedResponse builds the envelope for one page.
func NewPaginatedResponse(data interface{}, total int64, params PaginationParams) *PaginatedResponse {
	totalPages := int(math.Ceil(float64(total) / float64(params.Limit)))

	return &PaginatedResponse{
		Data:        data,
		Total:       total,
		Page:        params.Page,
		Limit:       params.Limit,
		TotalPages:  totalPages,
		HasNext:     params.Page < totalPages,
		HasPrevious: params.Page > 1,
	}
}
