package page

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(items []Item) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = it.String()
	}
	return strings.Join(parts, " ")
}

func TestPaginate_Boundaries(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		size      int
		requested int
		current   int
		count     int
		offset    int
		limit     int
	}{
		{"empty list", 0, 9, 5, 1, 1, 0, 0},
		{"request past end", 50, 9, 99, 6, 6, 45, 5},
		{"request below one", 50, 9, -3, 1, 6, 0, 9},
		{"exact multiple", 18, 9, 2, 2, 2, 9, 9},
		{"zero size uses default", 10, 0, 2, 2, 2, 9, 1},
		{"negative total", -4, 9, 1, 1, 1, 0, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := Paginate(tc.total, tc.size, tc.requested)
			assert.Equal(t, tc.current, p.Current)
			assert.Equal(t, tc.count, p.Count)
			assert.Equal(t, tc.offset, p.Offset)
			assert.Equal(t, tc.limit, p.Limit)
		})
	}
}

func TestItems(t *testing.T) {
	tests := []struct {
		current, count, window int
		want                   string
	}{
		{1, 1, 5, "1"},
		{3, 7, 5, "1 2 3 4 5 6 7"},
		{1, 8, 5, "1 2 3 4 5 6 ... 8"},
		{4, 8, 5, "1 2 3 4 5 6 ... 8"},
		{5, 8, 5, "1 ... 3 4 5 6 7 8"},
		{8, 8, 5, "1 ... 3 4 5 6 7 8"},
		{10, 20, 5, "1 ... 8 9 10 11 12 ... 20"},
		{20, 20, 5, "1 ... 15 16 17 18 19 20"},
		{2, 20, 5, "1 2 3 4 5 6 ... 20"},
		{10, 20, 1, "1 ... 10 ... 20"},
		{10, 20, 4, "1 ... 8 9 10 11 ... 20"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, render(Items(tc.current, tc.count, tc.window)),
			"current=%d count=%d window=%d", tc.current, tc.count, tc.window)
	}
}

func TestItems_Invariants(t *testing.T) {
	for _, window := range []int{1, 2, 3, 5, 7} {
		for count := 1; count <= 30; count++ {
			for current := 1; current <= count; current++ {
				items := Items(current, count, window)

				require.Equal(t, Num(1), items[0])
				require.Equal(t, Num(count), items[len(items)-1])

				found := false
				last := 0
				for i, it := range items {
					if it.Ellipsis {
						require.Positive(t, i)
						require.False(t, items[i-1].Ellipsis, "adjacent gaps: %s", render(items))
						continue
					}
					require.Greater(t, it.Number, last, "not increasing: %s", render(items))
					last = it.Number
					if it.Number == current {
						found = true
					}
				}
				require.True(t, found, "current %d missing: %s", current, render(items))
			}
		}
	}
}

func TestSlice(t *testing.T) {
	list := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, Slice(list, Paginate(len(list), 9, 1)))
	assert.Equal(t, []int{10, 11}, Slice(list, Paginate(len(list), 9, 2)))
	assert.Empty(t, Slice([]int{}, Paginate(0, 9, 1)))
}

func TestItem_JSON(t *testing.T) {
	data, err := json.Marshal([]Item{Num(1), Gap(), Num(7)})
	require.NoError(t, err)
	assert.JSONEq(t, `[1,"ellipsis",7]`, string(data))

	var got []Item
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, []Item{Num(1), Gap(), Num(7)}, got)

	var bad Item
	assert.Error(t, json.Unmarshal([]byte(`"more"`), &bad))
}
