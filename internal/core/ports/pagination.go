package ports

// Pagination bounds shared by the query layer and the handlers that render
// pagination metadata. Keeping them here guarantees the numbers reported in
// list responses match the rows actually fetched.
const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// ClampLimit bounds a requested page size to [1, MaxLimit]; non-positive
// values fall back to DefaultLimit.
func ClampLimit(limit int) int {
	if limit < 1 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// ClampPage bounds a requested page number to at least 1.
func ClampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}
