package utils

import (
	"strings"
)

// MatchesQuery reports whether the free-text query is a case-insensitive
// substring of the concatenated display fields. An empty query matches
// everything.
func MatchesQuery(query string, fields ...string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(strings.Join(fields, " ")), query)
}

// PageResult is one page of a filtered collection.
type PageResult[T any] struct {
	Items      []T `json:"items"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
}

// DefaultPageSize is used when a caller passes a non-positive page size.
const DefaultPageSize = 10

// Paginate slices an already-filtered collection into the requested page.
// totalPages is at least 1 and the requested page is clamped into
// [1, totalPages], so the returned page is never out of bounds.
func Paginate[T any](items []T, page, pageSize int) PageResult[T] {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	totalPages := (len(items) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	lo := (page - 1) * pageSize
	hi := lo + pageSize
	if lo > len(items) {
		lo = len(items)
	}
	if hi > len(items) {
		hi = len(items)
	}

	return PageResult[T]{
		Items:      items[lo:hi],
		TotalItems: len(items),
		TotalPages: totalPages,
		Page:       page,
		PageSize:   pageSize,
	}
}

// ListState tracks the query, filters, and pagination of a list view.
// Mutating the query, any filter, or the page size resets the requested
// page back to 1; only SetPage moves within the current result set.
type ListState struct {
	Query      string
	DateField  string
	From       string
	To         string
	TypeFilter string
	Page       int
	PageSize   int
}

func NewListState() ListState {
	return ListState{Page: 1, PageSize: DefaultPageSize}
}

func (s *ListState) SetQuery(q string) {
	s.Query = q
	s.Page = 1
}

func (s *ListState) SetDateRange(field, from, to string) {
	s.DateField = field
	s.From = from
	s.To = to
	s.Page = 1
}

func (s *ListState) SetTypeFilter(t string) {
	s.TypeFilter = t
	s.Page = 1
}

func (s *ListState) SetPageSize(size int) {
	if size < 1 {
		size = DefaultPageSize
	}
	s.PageSize = size
	s.Page = 1
}

func (s *ListState) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	s.Page = page
}
