package controllers

import "testing"

func TestParsePagination(t *testing.T) {
	cases := []struct {
		page, size string
		wantPage   int
		wantSize   int
	}{
		{"", "", 1, 10},
		{"3", "25", 3, 25},
		{"0", "0", 1, 10},
		{"-2", "-5", 1, 10},
		{"abc", "xyz", 1, 10},
		{"2", "500", 2, 10}, // size capped, falls back to default
		{" 4 ", " 50 ", 4, 50},
	}
	for _, c := range cases {
		page, size := parsePagination(c.page, c.size)
		if page != c.wantPage || size != c.wantSize {
			t.Errorf("parsePagination(%q, %q) = (%d, %d), want (%d, %d)",
				c.page, c.size, page, size, c.wantPage, c.wantSize)
		}
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total int64
		size  int
		want  int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{95, 20, 5},
	}
	for _, c := range cases {
		if got := totalPages(c.total, c.size); got != c.want {
			t.Errorf("totalPages(%d, %d) = %d, want %d", c.total, c.size, got, c.want)
		}
	}
}
