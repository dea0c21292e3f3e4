package domain

// Pageable carries the pagination metadata the backend attaches to every
// list response. Page numbers are zero-based.
type Pageable struct {
	PageNumber    int   `json:"pageNumber"`
	PageSize      int   `json:"pageSize"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	First         bool  `json:"first"`
	Last          bool  `json:"last"`
}

// Page is the {content, pageable} wrapper used by all list endpoints.
type Page[T any] struct {
	Content  []T      `json:"content"`
	Pageable Pageable `json:"pageable"`
}

// EmptyPage returns the page a controller renders when a list fetch fails or
// the envelope is malformed: no rows, zero total pages, both bounds set so
// pagination controls disable themselves.
func EmptyPage[T any](pageNumber, pageSize int) *Page[T] {
	return &Page[T]{
		Content: []T{},
		Pageable: Pageable{
			PageNumber: pageNumber,
			PageSize:   pageSize,
			First:      true,
			Last:       true,
		},
	}
}
