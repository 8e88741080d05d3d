// Package view holds the pure list projections shared by every dashboard table.
// Nothing here mutates its input.
package view

import (
	"sort"
	"strings"
)

// Fields extracts the searchable text of a record.
type Fields[T any] func(T) []string

// Less orders two records; nil means "keep the original order".
type Less[T any] func(a, b T) bool

// Filter keeps records for which any field contains term, case-insensitively.
// A blank term returns records unchanged.
func Filter[T any](records []T, term string, fields Fields[T]) []T {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" || fields == nil {
		return records
	}

	out := make([]T, 0, len(records))
	for _, r := range records {
		for _, f := range fields(r) {
			if f != "" && strings.Contains(strings.ToLower(f), term) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

// Sort returns a stably sorted copy of records. Ties keep their original order.
func Sort[T any](records []T, less Less[T]) []T {
	out := make([]T, len(records))
	copy(out, records)
	if less == nil {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// Sorter resolves a list-specific sort key to a comparator.
type Sorter[T any] map[string]Less[T]

// Lookup returns the comparator for key; unknown keys (including "") keep the original order.
func (s Sorter[T]) Lookup(key string) Less[T] {
	return s[key]
}

// Keys lists accepted sort keys for validation and for rendering sort menus.
func (s Sorter[T]) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Descending flips a comparator.
func Descending[T any](less Less[T]) Less[T] {
	return func(a, b T) bool { return less(b, a) }
}
