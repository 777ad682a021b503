package controllers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dailyquil/dailyquil/models"
)

// ParseClock parses a "HH:MM" clock value into hour and minute.
func ParseClock(s string) (int, int, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid clock value %q", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid clock value %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid clock value %q", s)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("clock value %q out of range", s)
	}
	return hour, minute, nil
}

// FilterEligible returns the users whose configured reminder time falls
// within window minutes of the current clock. Users with reminders
// disabled, no reminder time, or an unparseable one are excluded.
//
// The distance is absolute minutes within the day: there is no
// wraparound at midnight, so 23:55 checked at 00:05 does not match.
func FilterEligible(users []models.User, hour, minute, window int) []models.User {
	current := hour*60 + minute

	eligible := make([]models.User, 0, len(users))
	for _, u := range users {
		if !u.EnableEmailReminders || u.ReminderTime == "" {
			continue
		}
		rh, rm, err := ParseClock(u.ReminderTime)
		if err != nil {
			continue
		}
		diff := current - (rh*60 + rm)
		if diff < 0 {
			diff = -diff
		}
		if diff <= window {
			eligible = append(eligible, u)
		}
	}
	return eligible
}
