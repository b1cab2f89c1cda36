// Package pagination holds the shared page/limit arithmetic used by list
// endpoints and repositories.
package pagination

const (
	defaultLimit = 10
	maxLimit     = 100
)

// Normalize clamps page and limit to sane values.
func Normalize(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

// Offset converts normalized page/limit into a query offset.
func Offset(page, limit int) int {
	page, limit = Normalize(page, limit)
	return (page - 1) * limit
}

// Pages returns the number of pages needed for total items at the given limit.
func Pages(total int64, limit int) int {
	if limit <= 0 {
		limit = defaultLimit
	}
	pages := int((total + int64(limit) - 1) / int64(limit))
	if pages < 1 {
		pages = 1
	}
	return pages
}
