package helper

import "strings"

// wordsPerMinute is the assumed average reading speed.
const wordsPerMinute = 200

// EstimateReadTime returns the estimated read time of content in minutes:
// ceil(words/200), minimum 1 for non-empty content, 0 for empty content.
func EstimateReadTime(content string) int {
	fields := strings.Fields(content)
	if len(fields) == 0 {
		return 0
	}
	rt := (len(fields) + wordsPerMinute - 1) / wordsPerMinute
	if rt < 1 {
		rt = 1
	}
	return rt
}
