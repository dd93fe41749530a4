package query

import (
	"encoding/json"
	"math"
)

// Pagination is the descriptor returned alongside every list response.
type Pagination struct {
	CurrentPage   int  `json:"currentPage"`
	Limit         int  `json:"limit"`
	NumberOfPages int  `json:"numberOfPages"`
	Next          *int `json:"next,omitempty"`
	Prev          *int `json:"prev,omitempty"`
}

// Paginate computes the descriptor for a 1-indexed page over total documents.
// Next is present iff page*limit < total; Prev iff (page-1)*limit > 0.
func Paginate(page, limit int, total int64) Pagination {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	p := Pagination{
		CurrentPage:   page,
		Limit:         limit,
		NumberOfPages: int(math.Ceil(float64(total) / float64(limit))),
	}

	if int64(page)*int64(limit) < total {
		next := page + 1
		p.Next = &next
	}
	if (page-1)*limit > 0 {
		prev := page - 1
		p.Prev = &prev
	}

	return p
}

// Project applies a field allow-list to a document for the fields query
// parameter. With no fields requested the document passes through whole.
func Project(doc any, fields []string) any {
	if len(fields) == 0 {
		return doc
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return doc
	}

	var full map[string]json.RawMessage
	if err := json.Unmarshal(raw, &full); err != nil {
		return doc
	}

	out := make(map[string]json.RawMessage, len(fields))
	for _, f := range fields {
		if v, ok := full[f]; ok {
			out[f] = v
		}
	}
	return out
}

// ProjectAll applies Project to each item of a list response.
func ProjectAll[T any](docs []T, fields []string) []any {
	out := make([]any, len(docs))
	for i, d := range docs {
		out[i] = Project(d, fields)
	}
	return out
}
