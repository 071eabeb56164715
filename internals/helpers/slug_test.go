// file: internals/helpers/slug_test.go
package helper

import (
	"strings"
	"testing"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name   string
		in     string
		maxLen int
		want   string
	}{
		{"simple title", "General Notice", 0, "general-notice"},
		{"punctuation collapses", "Hello, World!  2024", 0, "hello-world-2024"},
		{"diacritics stripped", "Café Au Lait", 0, "cafe-au-lait"},
		{"leading and trailing junk", "  --Annual Report--  ", 0, "annual-report"},
		{"devanagari falls back", "सूचना", 0, "item"},
		{"empty falls back", "", 0, "item"},
		{"max length enforced", strings.Repeat("ab ", 60), 20, "ab-ab-ab-ab-ab-ab-ab"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Slugify(tc.in, tc.maxLen); got != tc.want {
				t.Fatalf("Slugify(%q, %d) = %q, want %q", tc.in, tc.maxLen, got, tc.want)
			}
		})
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{"General Notice", "Café Au Lait", "a  b   c"}
	for _, in := range inputs {
		once := Slugify(in, 0)
		twice := Slugify(once, 0)
		if once != twice {
			t.Fatalf("Slugify not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
