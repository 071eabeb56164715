// file: internals/helpers/pagination_test.go
package helper

import "testing"

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total   int64
		perPage int
		want    int
	}{
		{0, 6, 1},
		{1, 6, 1},
		{6, 6, 1},
		{7, 6, 2},
		{8, 6, 2},
		{12, 6, 2},
		{13, 6, 3},
		{11, 5, 3},
	}
	for _, tc := range cases {
		if got := TotalPages(tc.total, tc.perPage); got != tc.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tc.total, tc.perPage, got, tc.want)
		}
	}
}

func TestClampPage(t *testing.T) {
	cases := []struct {
		name       string
		page       int
		totalPages int
		want       int
	}{
		{"in range", 2, 3, 2},
		{"below range", 0, 3, 1},
		{"negative", -4, 3, 1},
		{"above range", 9, 3, 3},
		{"single page", 5, 1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClampPage(tc.page, tc.totalPages); got != tc.want {
				t.Fatalf("ClampPage(%d, %d) = %d, want %d", tc.page, tc.totalPages, got, tc.want)
			}
		})
	}
}

// Eight published articles at six per page fill two pages; a request for
// page three must land on page two, not an empty list.
func TestClampPageEightArticlesSixPerPage(t *testing.T) {
	totalPages := TotalPages(8, 6)
	if totalPages != 2 {
		t.Fatalf("TotalPages(8, 6) = %d, want 2", totalPages)
	}
	if got := ClampPage(3, totalPages); got != 2 {
		t.Fatalf("ClampPage(3, %d) = %d, want 2", totalPages, got)
	}
}

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(8, 3, 6)
	if p.Page != 2 {
		t.Fatalf("page = %d, want 2 after clamping", p.Page)
	}
	if p.TotalPages != 2 {
		t.Fatalf("total_pages = %d, want 2", p.TotalPages)
	}
	if p.Total != 8 {
		t.Fatalf("total = %d, want 8", p.Total)
	}
	if !p.HasPrev || p.HasNext {
		t.Fatalf("expected has_prev=true has_next=false, got prev=%v next=%v", p.HasPrev, p.HasNext)
	}
}
