// file: internal/search/highlight.go
// version: 1.0.0
// guid: 1d7b5930-3317-41a5-81bf-00cfc35f324d

package search

import "strings"

// Highlight wraps the first case-insensitive occurrence of query in text
// with the given markers, for display purposes only. Text is returned
// unchanged when query is empty or absent.
func Highlight(text, query, openMark, closeMark string) string {
	if query == "" || text == "" {
		return text
	}
	idx := strings.Index(strings.ToLower(text), strings.ToLower(query))
	if idx < 0 {
		return text
	}
	end := idx + len(query)
	return text[:idx] + openMark + text[idx:end] + closeMark + text[end:]
}
