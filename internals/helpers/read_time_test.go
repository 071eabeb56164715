// file: internals/helpers/read_time_test.go
package helper

import (
	"strings"
	"testing"
)

func TestEstimateReadTime(t *testing.T) {
	cases := []struct {
		name  string
		words int
		want  int
	}{
		{"empty", 0, 0},
		{"one word", 1, 1},
		{"under a minute", 150, 1},
		{"exact minute", 200, 1},
		{"just over a minute", 201, 2},
		{"two minutes", 250, 2},
		{"five minutes", 1000, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			content := strings.TrimSpace(strings.Repeat("word ", tc.words))
			if got := EstimateReadTime(content); got != tc.want {
				t.Fatalf("EstimateReadTime(%d words) = %d, want %d", tc.words, got, tc.want)
			}
		})
	}
}

func TestEstimateReadTimeWhitespaceOnly(t *testing.T) {
	if got := EstimateReadTime("   \n\t  "); got != 0 {
		t.Fatalf("whitespace-only content should read as 0, got %d", got)
	}
}
