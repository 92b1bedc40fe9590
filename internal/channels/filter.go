// Package channels provides filtering logic for Slack channel selection
// based on glob patterns.
package channels

import (
	"path/filepath"
	"strings"

	"github.com/samber/lo"
)

// Filter applies include/exclude patterns to channels. Patterns are matched
// against both the channel name and its ID.
type Filter struct {
	include []string
	exclude []string
}

// NewFilter creates a Filter with the given include and exclude patterns.
func NewFilter(include, exclude []string) *Filter {
	return &Filter{
		include: include,
		exclude: exclude,
	}
}

// Empty reports whether the filter has no patterns at all.
func (f *Filter) Empty() bool {
	return len(f.include) == 0 && len(f.exclude) == 0
}

// Match reports whether a channel passes the filter. An empty include list
// admits every channel; exclude patterns take priority over include.
func (f *Filter) Match(id, name string) bool {
	if MatchAny(f.exclude, name) || MatchAny(f.exclude, id) {
		return false
	}
	if len(f.include) == 0 {
		return true
	}
	return MatchAny(f.include, name) || MatchAny(f.include, id)
}

// Select returns the items that pass f, preserving order. key extracts the
// channel ID and name of an item.
func Select[T any](f *Filter, items []T, key func(T) (id, name string)) []T {
	if f == nil || f.Empty() {
		return items
	}
	return lo.Filter(items, func(item T, _ int) bool {
		return f.Match(key(item))
	})
}

// MatchAny checks if a value matches any pattern in a list.
// Returns true if any pattern matches, false for empty pattern list.
// Short-circuits on first match.
func MatchAny(patterns []string, value string) bool {
	for _, pattern := range patterns {
		if MatchPattern(pattern, value) {
			return true
		}
	}
	return false
}

// MatchPattern matches a value against a glob pattern.
// Supports glob patterns (* matches any sequence, ? matches single character).
// Matching is case-insensitive. Returns false for invalid patterns.
func MatchPattern(pattern, value string) bool {
	matched, err := filepath.Match(pattern, value)
	if err != nil {
		return false
	}
	if matched {
		return true
	}
	lowerPattern := strings.ToLower(pattern)
	lowerValue := strings.ToLower(value)
	matched, _ = filepath.Match(lowerPattern, lowerValue)
	return matched
}
