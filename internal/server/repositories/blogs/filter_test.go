package blogs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter_Predicate_ScopeOnly(t *testing.T) {
	f := Filter{UserID: "u1", CategoryID: "c1"}

	where, args := f.predicate()

	assert.Equal(t, "user_id = $1 AND category_id = $2", where)
	assert.Equal(t, []any{"u1", "c1"}, args)
}

func TestFilter_Predicate_SingleBlog(t *testing.T) {
	f := Filter{UserID: "u1", CategoryID: "c1", BlogID: "b1"}

	where, args := f.predicate()

	assert.Equal(t, "user_id = $1 AND category_id = $2 AND id = $3", where)
	assert.Equal(t, []any{"u1", "c1", "b1"}, args)
}

func TestFilter_Predicate_Search(t *testing.T) {
	f := Filter{UserID: "u1", CategoryID: "c1", Search: "hello"}

	where, args := f.predicate()

	assert.Equal(t,
		`user_id = $1 AND category_id = $2 AND (title ILIKE $3 ESCAPE '\' OR description ILIKE $4 ESCAPE '\')`,
		where)
	assert.Equal(t, []any{"u1", "c1", "%hello%", "%hello%"}, args)
}

func TestFilter_Predicate_SearchEscapesWildcards(t *testing.T) {
	f := Filter{UserID: "u1", CategoryID: "c1", Search: `100%_done\`}

	_, args := f.predicate()

	require.Len(t, args, 4)
	assert.Equal(t, `%100\%\_done\\%`, args[2])
}

func TestFilter_Predicate_DateBounds(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	both := Filter{UserID: "u1", CategoryID: "c1", StartDate: &start, EndDate: &end}
	where, args := both.predicate()
	assert.Equal(t, "user_id = $1 AND category_id = $2 AND created_at >= $3 AND created_at <= $4", where)
	assert.Equal(t, []any{"u1", "c1", start, end}, args)

	openEnd := Filter{UserID: "u1", CategoryID: "c1", StartDate: &start}
	where, args = openEnd.predicate()
	assert.Equal(t, "user_id = $1 AND category_id = $2 AND created_at >= $3", where)
	assert.Equal(t, []any{"u1", "c1", start}, args)

	openStart := Filter{UserID: "u1", CategoryID: "c1", EndDate: &end}
	where, args = openStart.predicate()
	assert.Equal(t, "user_id = $1 AND category_id = $2 AND created_at <= $3", where)
	assert.Equal(t, []any{"u1", "c1", end}, args)
}

func TestFilter_Window(t *testing.T) {
	tests := []struct {
		name       string
		page, size int
		wantLimit  int
		wantOffset int
	}{
		{name: "defaults", page: 0, size: 0, wantLimit: 10, wantOffset: 0},
		{name: "zero is absent", page: 0, size: 0, wantLimit: 10, wantOffset: 0},
		{name: "second page", page: 2, size: 10, wantLimit: 10, wantOffset: 10},
		{name: "custom size", page: 3, size: 5, wantLimit: 5, wantOffset: 10},
		{name: "default size keeps window non-empty", page: 4, size: 0, wantLimit: 10, wantOffset: 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Filter{UserID: "u", CategoryID: "c", Page: tt.page, Size: tt.size}
			limit, offset := f.window()
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}
