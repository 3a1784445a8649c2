package utils

import "strings"

// SplitList splits a separated list, trims each item and drops the blank ones.
// An empty input yields a nil slice.
func SplitList(s, sep string) []string {
	var items []string
	for _, item := range strings.Split(s, sep) {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
