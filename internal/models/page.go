package models

// Page is the paginated collection envelope returned by list endpoints.
// An empty Items slice is a valid terminal state, never an error.
type Page[T any] struct {
	Items           []T  `json:"items"`
	PageNumber      int  `json:"pageNumber"`
	TotalPages      int  `json:"totalPages"`
	PageSize        int  `json:"pageSize"`
	TotalCount      int  `json:"totalCount"`
	HasPreviousPage bool `json:"hasPreviousPage"`
	HasNextPage     bool `json:"hasNextPage"`
}

// Empty reports whether the page carries no items.
func (p *Page[T]) Empty() bool {
	return len(p.Items) == 0
}
