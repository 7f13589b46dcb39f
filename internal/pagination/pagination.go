package pagination

import (
	"maps"
	"regexp"
)

// Page is one slice of a cursor-driven listing. Next is empty on the
// final page.
type Page[T any] struct {
	Items map[string]T
	Next  string
}

// Collect drains a cursor-paged listing, starting with the empty cursor,
// and merges every page into a single name-keyed map. Entries from later
// pages overwrite earlier ones with the same name.
func Collect[T any](fetch func(cursor string) (Page[T], error)) (map[string]T, error) {
	merged := make(map[string]T)
	cursor := ""
	for {
		page, err := fetch(cursor)
		if err != nil {
			return nil, err
		}
		maps.Copy(merged, page.Items)
		if page.Next == "" {
			return merged, nil
		}
		cursor = page.Next
	}
}

// OffsetPage is one slice of an offset-paged listing. Total is the
// provider-reported entry count across all pages.
type OffsetPage[T any] struct {
	Items    map[string]T
	Returned int
	Total    int
}

// CollectOffset drains an offset-paged listing by comparing the running
// received count against the provider's total count.
func CollectOffset[T any](fetch func(offset int) (OffsetPage[T], error)) (map[string]T, error) {
	merged := make(map[string]T)
	received := 0
	for {
		page, err := fetch(received)
		if err != nil {
			return nil, err
		}
		maps.Copy(merged, page.Items)
		received += page.Returned
		if page.Returned == 0 || received >= page.Total {
			return merged, nil
		}
	}
}

var typeWithCode = regexp.MustCompile(`^([A-Z0-9]+) \(\d+\)$`)

// TypeName strips the numeric code the provider embeds in record type
// strings, e.g. "A (1)" becomes "A". Strings without the parenthetical
// suffix pass through unchanged.
func TypeName(s string) string {
	if m := typeWithCode.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return s
}
