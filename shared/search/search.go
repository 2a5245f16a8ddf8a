// Package search holds the in-memory list predicates: a case-insensitive substring
// match over a few fields ANDed with an exact category filter.
package search

import (
	"strings"

	"grandplaza/shared/constant"
)

// Matches reports whether query is a case-insensitive substring of any field. An empty query matches everything.
func Matches(query string, fields ...string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}

	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}

	return false
}

// MatchesFilter reports whether value equals filter. Empty and "all" match everything.
func MatchesFilter(filter, value string) bool {
	if filter == "" || filter == constant.FilterValueAll {
		return true
	}

	return filter == value
}

// MatchesFilterFold is MatchesFilter ignoring case, used for tier labels.
func MatchesFilterFold(filter, value string) bool {
	if filter == "" || strings.EqualFold(filter, constant.FilterValueAll) {
		return true
	}

	return strings.EqualFold(filter, value)
}

// Filter keeps the items for which fields matches query and category matches filter, preserving order.
func Filter[T any](items []T, query, filter string, fields func(T) []string, category func(T) string) []T {
	out := make([]T, 0, len(items))

	for _, item := range items {
		if Matches(query, fields(item)...) && MatchesFilter(filter, category(item)) {
			out = append(out, item)
		}
	}

	return out
}
