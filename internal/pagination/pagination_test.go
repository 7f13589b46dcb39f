package pagination

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectMergesAllPages(t *testing.T) {
	pages := []Page[int]{
		{Items: map[string]int{"a.com.": 1, "b.com.": 2}, Next: "c1"},
		{Items: map[string]int{"c.com.": 3, "d.com.": 4}, Next: "c2"},
		{Items: map[string]int{"e.com.": 5}},
	}
	calls := 0
	cursors := []string{}

	merged, err := Collect(func(cursor string) (Page[int], error) {
		cursors = append(cursors, cursor)
		page := pages[calls]
		calls++
		return page, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []string{"", "c1", "c2"}, cursors)
	assert.Equal(t, map[string]int{"a.com.": 1, "b.com.": 2, "c.com.": 3, "d.com.": 4, "e.com.": 5}, merged)
}

func TestCollectLaterPagesWin(t *testing.T) {
	pages := []Page[string]{
		{Items: map[string]string{"a.com.": "old", "b.com.": "keep"}, Next: "c1"},
		{Items: map[string]string{"a.com.": "new"}},
	}
	calls := 0

	merged, err := Collect(func(string) (Page[string], error) {
		page := pages[calls]
		calls++
		return page, nil
	})

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a.com.": "new", "b.com.": "keep"}, merged)
}

func TestCollectPropagatesError(t *testing.T) {
	boom := errors.New("boom")
	merged, err := Collect(func(string) (Page[int], error) {
		return Page[int]{}, boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, merged)
}

func TestCollectOffsetTerminatesAtTotal(t *testing.T) {
	entries := []string{"a", "b", "c", "d", "e"}
	offsets := []int{}

	merged, err := CollectOffset(func(offset int) (OffsetPage[bool], error) {
		offsets = append(offsets, offset)
		end := min(offset+2, len(entries))
		items := make(map[string]bool)
		for _, name := range entries[offset:end] {
			items[name] = true
		}
		return OffsetPage[bool]{Items: items, Returned: end - offset, Total: len(entries)}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 4}, offsets)
	assert.Len(t, merged, 5)
}

func TestCollectOffsetStopsOnEmptyPage(t *testing.T) {
	calls := 0
	merged, err := CollectOffset(func(int) (OffsetPage[bool], error) {
		calls++
		return OffsetPage[bool]{Total: 10}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Empty(t, merged)
}

func TestTypeName(t *testing.T) {
	cases := map[string]string{
		"A (1)":        "A",
		"AAAA (28)":    "AAAA",
		"TXT (16)":     "TXT",
		"A":            "A",
		"TXT":          "TXT",
		"A (1) extra":  "A (1) extra",
		"":             "",
		"mixedcase(1)": "mixedcase(1)",
	}
	for input, want := range cases {
		assert.Equal(t, want, TypeName(input), "input %q", input)
	}
}
