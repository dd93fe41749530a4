package response

import "tour-booking/internal/data/query"

// ListResponse is the envelope for every paginated collection endpoint.
type ListResponse[T any] struct {
	Results    int               `json:"results"`
	Pagination *query.Pagination `json:"paginationResult"`
	Data       []T               `json:"data"`
}

func NewListResponse[T any](data []T, pagination *query.Pagination) *ListResponse[T] {
	return &ListResponse[T]{
		Results:    len(data),
		Pagination: pagination,
		Data:       data,
	}
}
