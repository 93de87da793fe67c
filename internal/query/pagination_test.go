package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name     string
		limit    string
		page     string
		expected Pagination
	}{
		{name: "defaults", limit: "", page: "", expected: Pagination{Limit: 12, Page: 1}},
		{name: "explicit", limit: "5", page: "3", expected: Pagination{Limit: 5, Page: 3}},
		{name: "no-limit sentinel", limit: "-1", page: "9", expected: Pagination{Limit: -1, Page: 9}},
		{name: "garbage falls back", limit: "abc", page: "xyz", expected: Pagination{Limit: 12, Page: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParsePagination(tt.limit, tt.page))
		})
	}
}

func TestPaginationApply(t *testing.T) {
	db := newFilterTestDB(t)

	got := names(t, Pagination{Limit: 2, Page: 2}.Apply(db.Model(&item{})))
	require.Len(t, got, 1)
	assert.Equal(t, []string{"Sandal"}, got)

	got = names(t, Pagination{Limit: NoLimit, Page: 5}.Apply(db.Model(&item{})))
	assert.Len(t, got, 3, "no-limit sentinel returns all rows regardless of page")

	got = names(t, Pagination{Limit: 2, Page: 0}.Apply(db.Model(&item{})))
	assert.Len(t, got, 2, "page below 1 is treated as the first page")
}

func TestParseFields(t *testing.T) {
	assert.Equal(t, []string{"name", "slug"}, ParseFields("", "name,slug"))
	assert.Equal(t, []string{"id", "price"}, ParseFields("id,price", "name,slug"))
	assert.Equal(t, []string{"name"}, ParseFields(" name , ", "x"))
}
