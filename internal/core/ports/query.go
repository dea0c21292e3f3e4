package ports

import (
	"net/url"
	"strconv"
)

// ListQuery carries the already-validated filter and pagination parameters
// for a list endpoint. Callers parse and clamp before building one; resource
// clients translate it into query parameters without re-validating.
type ListQuery struct {
	Page     int
	Size     int
	Search   string
	Status   string
	Role     string
	Language string
	DateFrom string
	DateTo   string
}

// Values renders the query as upstream URL parameters. Empty filters are
// omitted; page and size are always sent.
func (q ListQuery) Values() url.Values {
	v := url.Values{}
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("size", strconv.Itoa(q.Size))
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Status != "" {
		v.Set("status", q.Status)
	}
	if q.Role != "" {
		v.Set("role", q.Role)
	}
	if q.Language != "" {
		v.Set("language", q.Language)
	}
	if q.DateFrom != "" {
		v.Set("dateFrom", q.DateFrom)
	}
	if q.DateTo != "" {
		v.Set("dateTo", q.DateTo)
	}
	return v
}
