package models

import "strings"

// FilterAll is the sentinel the UI sends for "no filter on this field".
const FilterAll = "All"

// ListQuery carries the committed filter/search/pagination state for one
// list request. Fields that do not apply to a collection are ignored by
// its repository method. Decoded from the query string with gorilla/schema.
type ListQuery struct {
	// Search is the committed free-text query. It matches as a
	// case-insensitive substring over the collection's search fields,
	// OR across fields, AND against the structured filters.
	Search string `schema:"search"`

	Type     string `schema:"type"`
	Audience string `schema:"audience"`
	Region   string `schema:"region"`
	Status   string `schema:"status"`
	Location string `schema:"location"`

	Offset int `schema:"offset"`
	Limit  int `schema:"limit"`
}

// Normalize clamps pagination to the fixed page size and collapses the
// "All" sentinel to no-filter. Requests can ask for fewer rows than a
// page but never more.
func (q *ListQuery) Normalize(pageSize int) {
	if q.Offset < 0 {
		q.Offset = 0
	}
	if q.Limit <= 0 || q.Limit > pageSize {
		q.Limit = pageSize
	}

	q.Search = strings.TrimSpace(q.Search)
	q.Type = normalizeFilter(q.Type)
	q.Audience = normalizeFilter(q.Audience)
	q.Region = normalizeFilter(q.Region)
	q.Status = normalizeFilter(q.Status)
	q.Location = normalizeFilter(q.Location)
}

func normalizeFilter(v string) string {
	v = strings.TrimSpace(v)
	if strings.EqualFold(v, FilterAll) {
		return ""
	}
	return v
}
