package controllers

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestNextStreak(t *testing.T) {
	yesterday := day(2026, time.March, 9)
	today := day(2026, time.March, 10)
	lastWeek := day(2026, time.March, 3)

	cases := []struct {
		name        string
		current     int
		longest     int
		last        *time.Time
		wantCurrent int
		wantLongest int
	}{
		{"first ever story", 0, 0, nil, 1, 1},
		{"wrote yesterday extends", 3, 5, &yesterday, 4, 5},
		{"extension sets new longest", 5, 5, &yesterday, 6, 6},
		{"same day keeps streak", 3, 5, &today, 3, 5},
		{"gap restarts at one", 7, 9, &lastWeek, 1, 9},
		{"same day with zero current clamps to one", 0, 2, &today, 1, 2},
	}
	for _, c := range cases {
		gotCurrent, gotLongest := NextStreak(c.current, c.longest, c.last, today)
		if gotCurrent != c.wantCurrent || gotLongest != c.wantLongest {
			t.Errorf("%s: got (%d, %d), want (%d, %d)", c.name, gotCurrent, gotLongest, c.wantCurrent, c.wantLongest)
		}
	}
}

func TestNextStreakAcrossYearBoundary(t *testing.T) {
	dec31 := day(2025, time.December, 31)
	jan1 := day(2026, time.January, 1)

	current, longest := NextStreak(10, 10, &dec31, jan1)
	if current != 11 || longest != 11 {
		t.Errorf("Dec 31 -> Jan 1 should extend the streak, got (%d, %d)", current, longest)
	}
}
