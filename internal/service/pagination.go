package service

import "github.com/MKhiriev/coin-gateway/models"

// Paginate returns the page-th window of perPage items. A window starting past
// the end of items is empty, never nil. Non-positive values fall back to the
// defaults.
func Paginate[T any](items []T, page models.PageRequest) []T {
	pageNum, perPage := page.PageNum, page.PerPage
	if pageNum < 1 {
		pageNum = models.DefaultPageNum
	}
	if perPage < 1 {
		perPage = models.DefaultPerPage
	}

	total := len(items)
	pages := total / perPage
	if total%perPage != 0 {
		pages++
	}
	// compared in page units so huge page numbers cannot overflow
	if pageNum-1 >= pages {
		return []T{}
	}

	start := (pageNum - 1) * perPage
	end := total
	if total-start > perPage {
		end = start + perPage
	}

	return items[start:end]
}
