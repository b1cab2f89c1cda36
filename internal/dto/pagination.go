package dto

import "github.com/shantodev/temple_donation_app/internal/utils/pagination"

// PaginationParams defines the shared page/limit query parameters.
type PaginationParams struct {
	Page  int `form:"page,default=1"`
	Limit int `form:"limit,default=10"`
}

// Pagination carries page metadata in list responses.
type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}

// NewPagination builds response metadata from the normalized request
// parameters and the total match count.
func NewPagination(total int64, page, limit int) Pagination {
	page, limit = pagination.Normalize(page, limit)
	return Pagination{
		Total: total,
		Page:  page,
		Limit: limit,
		Pages: pagination.Pages(total, limit),
	}
}
