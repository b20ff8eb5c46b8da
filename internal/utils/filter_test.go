package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchesQuery(t *testing.T) {
	t.Run("Empty query matches everything", func(t *testing.T) {
		assert.True(t, MatchesQuery("", "John Doe", "john@example.com"))
		assert.True(t, MatchesQuery("   ", "John Doe"))
	})

	t.Run("Case insensitive substring", func(t *testing.T) {
		assert.True(t, MatchesQuery("JOHN", "John Doe", "john@example.com"))
		assert.True(t, MatchesQuery("example.com", "John Doe", "john@example.com"))
		assert.False(t, MatchesQuery("jane", "John Doe", "john@example.com"))
	})

	t.Run("Matches across any field", func(t *testing.T) {
		assert.True(t, MatchesQuery("cm001", "Central Mall Stall", "CM001"))
	})
}

func TestPaginate(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i
	}

	t.Run("Slice length never exceeds page size", func(t *testing.T) {
		for page := 1; page <= 5; page++ {
			res := Paginate(items, page, 10)
			assert.LessOrEqual(t, len(res.Items), 10)
		}
	})

	t.Run("Concatenating pages reconstructs the list exactly once", func(t *testing.T) {
		var all []int
		res := Paginate(items, 1, 10)
		for page := 1; page <= res.TotalPages; page++ {
			all = append(all, Paginate(items, page, 10).Items...)
		}
		assert.Equal(t, items, all)
	})

	t.Run("Total pages rounds up", func(t *testing.T) {
		res := Paginate(items, 1, 10)
		assert.Equal(t, 3, res.TotalPages)
		assert.Equal(t, 25, res.TotalItems)
	})

	t.Run("Requested page clamped to last page", func(t *testing.T) {
		res := Paginate(items, 99, 10)
		assert.Equal(t, 3, res.Page)
		assert.Len(t, res.Items, 5)
	})

	t.Run("Page below one clamped up", func(t *testing.T) {
		res := Paginate(items, 0, 10)
		assert.Equal(t, 1, res.Page)
	})

	t.Run("Empty collection still has one page", func(t *testing.T) {
		res := Paginate([]int{}, 1, 10)
		assert.Equal(t, 1, res.TotalPages)
		assert.Empty(t, res.Items)
	})

	t.Run("Non-positive page size falls back to default", func(t *testing.T) {
		res := Paginate(items, 1, 0)
		assert.Equal(t, DefaultPageSize, res.PageSize)
	})
}

func TestListState(t *testing.T) {
	t.Run("Changing query resets page", func(t *testing.T) {
		s := NewListState()
		s.SetPage(4)
		s.SetQuery("umbrella")
		assert.Equal(t, 1, s.Page)
	})

	t.Run("Changing page size resets page", func(t *testing.T) {
		s := NewListState()
		s.SetPage(4)
		s.SetPageSize(25)
		assert.Equal(t, 1, s.Page)
		assert.Equal(t, 25, s.PageSize)
	})

	t.Run("Changing filters resets page", func(t *testing.T) {
		s := NewListState()
		s.SetPage(3)
		s.SetDateRange("borrow_date", "2024-01-01", "2024-01-31")
		assert.Equal(t, 1, s.Page)

		s.SetPage(2)
		s.SetTypeFilter("late")
		assert.Equal(t, 1, s.Page)
	})

	t.Run("SetPage keeps other state", func(t *testing.T) {
		s := NewListState()
		s.SetQuery("cm001")
		s.SetPage(3)
		assert.Equal(t, 3, s.Page)
		assert.Equal(t, "cm001", s.Query)
	})

	t.Run("Invalid values clamped", func(t *testing.T) {
		s := NewListState()
		s.SetPage(-2)
		assert.Equal(t, 1, s.Page)
		s.SetPageSize(0)
		assert.Equal(t, DefaultPageSize, s.PageSize)
	})
}
