package controllers

import (
	"testing"

	"github.com/dailyquil/dailyquil/models"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		hour    int
		minute  int
		wantErr bool
	}{
		{"09:00", 9, 0, false},
		{"00:00", 0, 0, false},
		{"23:59", 23, 59, false},
		{" 08:30 ", 8, 30, false},
		{"24:00", 0, 0, true},
		{"12:60", 0, 0, true},
		{"-1:30", 0, 0, true},
		{"0900", 0, 0, true},
		{"ab:cd", 0, 0, true},
		{"", 0, 0, true},
	}
	for _, c := range cases {
		h, m, err := ParseClock(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q): expected error, got %d:%d", c.in, h, m)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q): unexpected error: %v", c.in, err)
			continue
		}
		if h != c.hour || m != c.minute {
			t.Errorf("ParseClock(%q) = %d:%d, want %d:%d", c.in, h, m, c.hour, c.minute)
		}
	}
}

func reminderUser(id uint, enabled bool, at string) models.User {
	return models.User{
		ID:                   id,
		Email:                "user@example.com",
		EnableEmailReminders: enabled,
		ReminderTime:         at,
	}
}

func TestFilterEligibleWindow(t *testing.T) {
	users := []models.User{reminderUser(1, true, "09:00")}

	if got := FilterEligible(users, 9, 10, 15); len(got) != 1 {
		t.Errorf("09:00 checked at 09:10 should be eligible, got %d users", len(got))
	}
	if got := FilterEligible(users, 8, 50, 15); len(got) != 1 {
		t.Errorf("09:00 checked at 08:50 should be eligible, got %d users", len(got))
	}
	if got := FilterEligible(users, 9, 15, 15); len(got) != 1 {
		t.Errorf("exactly 15 minutes away should still be eligible, got %d users", len(got))
	}
	if got := FilterEligible(users, 9, 20, 15); len(got) != 0 {
		t.Errorf("09:00 checked at 09:20 should not be eligible, got %d users", len(got))
	}
	if got := FilterEligible(users, 14, 0, 15); len(got) != 0 {
		t.Errorf("09:00 checked at 14:00 should not be eligible, got %d users", len(got))
	}
}

func TestFilterEligibleNoMidnightWraparound(t *testing.T) {
	users := []models.User{reminderUser(1, true, "23:55")}
	if got := FilterEligible(users, 0, 5, 15); len(got) != 0 {
		t.Errorf("23:55 checked at 00:05 must not match across midnight, got %d users", len(got))
	}
}

func TestFilterEligibleExclusions(t *testing.T) {
	users := []models.User{
		reminderUser(1, false, "09:00"), // reminders disabled
		reminderUser(2, true, ""),       // no time configured
		reminderUser(3, true, "bogus"),  // unparseable time
		reminderUser(4, true, "09:05"),
	}
	got := FilterEligible(users, 9, 0, 15)
	if len(got) != 1 {
		t.Fatalf("expected exactly 1 eligible user, got %d", len(got))
	}
	if got[0].ID != 4 {
		t.Errorf("expected user 4 to be eligible, got user %d", got[0].ID)
	}
}
