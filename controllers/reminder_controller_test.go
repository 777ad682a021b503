package controllers

import (
	"errors"
	"fmt"
	"testing"

	"github.com/dailyquil/dailyquil/models"
)

func TestDispatchToCountsOutcomes(t *testing.T) {
	users := []models.User{{ID: 1}, {ID: 2}, {ID: 3}}

	wroteToday := func(u models.User) (bool, error) { return false, nil }
	send := func(u models.User) error {
		if u.ID == 2 {
			return errors.New("provider rejected")
		}
		return nil
	}

	result := DispatchTo(users, wroteToday, send)
	if result.Sent != 2 || result.Skipped != 0 || result.Failed != 1 {
		t.Errorf("got sent=%d skipped=%d failed=%d, want 2/0/1", result.Sent, result.Skipped, result.Failed)
	}
	if result.Total() != 3 {
		t.Errorf("total = %d, want 3", result.Total())
	}
}

func TestDispatchToSkipsUsersWhoWroteToday(t *testing.T) {
	users := []models.User{{ID: 1}, {ID: 2}}

	sent := make(map[uint]bool)
	wroteToday := func(u models.User) (bool, error) { return u.ID == 1, nil }
	send := func(u models.User) error {
		sent[u.ID] = true
		return nil
	}

	result := DispatchTo(users, wroteToday, send)
	if result.Sent != 1 || result.Skipped != 1 || result.Failed != 0 {
		t.Errorf("got sent=%d skipped=%d failed=%d, want 1/1/0", result.Sent, result.Skipped, result.Failed)
	}
	if sent[1] {
		t.Errorf("user 1 wrote today and must not receive a reminder")
	}
	if !sent[2] {
		t.Errorf("user 2 should have received a reminder")
	}
}

func TestDispatchToContinuesAfterLookupFailure(t *testing.T) {
	users := []models.User{{ID: 1}, {ID: 2}, {ID: 3}}

	wroteToday := func(u models.User) (bool, error) {
		if u.ID == 1 {
			return false, fmt.Errorf("db gone")
		}
		return false, nil
	}
	send := func(u models.User) error { return nil }

	result := DispatchTo(users, wroteToday, send)
	if result.Failed != 1 {
		t.Errorf("lookup failure should count as failed, got %d", result.Failed)
	}
	if result.Sent != 2 {
		t.Errorf("remaining users should still be processed, sent = %d", result.Sent)
	}
}

func TestDispatchToEmpty(t *testing.T) {
	result := DispatchTo(nil,
		func(models.User) (bool, error) { return false, nil },
		func(models.User) error { return nil })
	if result.Total() != 0 {
		t.Errorf("empty input should produce an all-zero result, got %+v", result)
	}
}
