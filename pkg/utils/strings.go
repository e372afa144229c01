package utils

import "strings"

// SplitAndTrim splits a comma-separated list, dropping empty elements
func SplitAndTrim(raw string) []string {
	var items []string
	for _, item := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
