package paging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Clamps(t *testing.T) {
	cases := []struct {
		name        string
		page, limit int
		wantPage    int
		wantLimit   int
		wantOffset  int
	}{
		{"zero page", 0, 10, 1, 10, 0},
		{"negative page", -5, 10, 1, 10, 0},
		{"limit omitted", 3, 0, 3, DefaultLimit, 40},
		{"negative limit", 1, -1, 1, DefaultLimit, 0},
		{"limit capped", 2, 500, 2, MaxLimit, 100},
		{"plain", 4, 5, 4, 5, 15},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := New(tc.page, tc.limit)
			assert.Equal(t, tc.wantPage, p.Number)
			assert.Equal(t, tc.wantLimit, p.Limit)
			assert.Equal(t, tc.wantOffset, p.Offset())
		})
	}
}

func TestNewResult_Meta(t *testing.T) {
	r := NewResult(New(2, 20), []string{"a", "b"}, 42)
	assert.Equal(t, Meta{CurrentPage: 2, CurrentPageSize: 2, TotalPages: 3, TotalRecords: 42}, r.PaginationMeta)

	empty := NewResult[int](New(1, 20), nil, 0)
	assert.NotNil(t, empty.Rows)
	assert.Equal(t, 0, empty.PaginationMeta.TotalPages)
}
