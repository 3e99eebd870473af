package http

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/coin-gateway/models"
)

const (
	pageNumParam = "page_num"
	perPageParam = "per_page"
	idsParam     = "id"
)

// ParsePageRequest reads page_num and per_page from q. Missing, non-numeric
// and non-positive values fall back to the defaults independently.
func ParsePageRequest(q url.Values) models.PageRequest {
	return models.PageRequest{
		PageNum: positiveIntOr(q.Get(pageNumParam), models.DefaultPageNum),
		PerPage: positiveIntOr(q.Get(perPageParam), models.DefaultPerPage),
	}
}

func positiveIntOr(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

// parseIDs returns the comma-separated id filter with blanks removed.
func parseIDs(q url.Values) string {
	raw := q.Get(idsParam)
	if raw == "" {
		return ""
	}

	ids := make([]string, 0, strings.Count(raw, ",")+1)
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return strings.Join(ids, ",")
}
