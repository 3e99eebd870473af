package models

// Defaults applied when page parameters are absent or invalid.
const (
	DefaultPageNum = 1
	DefaultPerPage = 10
)

// PageRequest selects a window of a result set. Both fields are 1-based
// positive integers once produced by the HTTP layer.
type PageRequest struct {
	PageNum int
	PerPage int
}

// DefaultPageRequest returns the first page with the default page size.
func DefaultPageRequest() PageRequest {
	return PageRequest{PageNum: DefaultPageNum, PerPage: DefaultPerPage}
}
