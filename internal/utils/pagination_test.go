package utils

import (
	"math"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePageQueryClamping(t *testing.T) {
	cases := []struct {
		name       string
		url        string
		maxLimit   int
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{"defaults", "/search", 50, 1, 10, 0},
		{"page and limit", "/search?page=3&limit=15", 50, 3, 15, 30},
		{"limit above cap", "/search?page=1&limit=100", 50, 1, 50, 0},
		{"page zero", "/search?page=0&limit=10", 50, 1, 10, 0},
		{"negative page", "/search?page=-5&limit=10", 50, 1, 10, 0},
		{"limit zero", "/search?limit=0", 50, 1, 1, 0},
		{"uncapped family keeps big limit", "/projects?page=1&limit=1000", 0, 1, 1000, 0},
		{"garbage falls back to defaults", "/search?page=abc&limit=xyz", 50, 1, 10, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tc.url, nil)
			page, limit, offset := ParsePageQuery(r, tc.maxLimit)
			require.Equal(t, tc.wantPage, page)
			require.Equal(t, tc.wantLimit, limit)
			require.Equal(t, tc.wantOffset, offset)
		})
	}
}

func TestTotalPages(t *testing.T) {
	require.Equal(t, 3, TotalPages(25, 10))
	require.Equal(t, 1, TotalPages(20, 20))
	require.Equal(t, 0, TotalPages(0, 10))
	require.Equal(t, 1, TotalPages(1, 10))
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(1, 10, 25)
	require.Equal(t, 3, p.TotalPages)
	require.True(t, p.HasMore)

	p = NewPagination(3, 10, 25)
	require.False(t, p.HasMore)

	p = NewPagination(1, 20, 20)
	require.Equal(t, 1, p.TotalPages)
	require.False(t, p.HasMore)

	p = NewPagination(1, 10, 0)
	require.Equal(t, 0, p.TotalPages)
	require.False(t, p.HasMore)
}

func TestNewProjectPagination(t *testing.T) {
	p := NewProjectPagination(1, 10, 25)
	require.Equal(t, 1, p.CurrentPage)
	require.Equal(t, 3, p.TotalPages)
	require.Equal(t, int64(25), p.TotalCount)
	require.True(t, p.HasNextPage)
	require.False(t, p.HasPreviousPage)

	p = NewProjectPagination(1, 20, 20)
	require.False(t, p.HasNextPage)

	p = NewProjectPagination(2, 10, 25)
	require.True(t, p.HasPreviousPage)
}

func TestFloatQuery(t *testing.T) {
	r := httptest.NewRequest("GET", "/search?minPrice=1500000&maxPrice=abc", nil)

	v, ok := FloatQuery(r, "minPrice")
	require.True(t, ok)
	require.Equal(t, 1500000.0, v)

	// Present but unparseable propagates as NaN instead of being rejected.
	v, ok = FloatQuery(r, "maxPrice")
	require.True(t, ok)
	require.True(t, math.IsNaN(v))

	_, ok = FloatQuery(r, "minSqft")
	require.False(t, ok)
}
