package controllers

import (
	"strings"
	"testing"

	"github.com/dailyquil/dailyquil/models"
)

func testPrompt() models.Prompt {
	return models.Prompt{
		ID:       42,
		Genre:    "Mystery",
		Elements: models.StringList{"a locked room", "an old letter", "a missing key"},
	}
}

func TestReminderSubject(t *testing.T) {
	if got := ReminderSubject(models.User{CurrentStreak: 0}); strings.Contains(got, "streak") {
		t.Errorf("subject without a streak should not mention one: %q", got)
	}
	got := ReminderSubject(models.User{CurrentStreak: 5})
	if !strings.Contains(got, "5 day streak") {
		t.Errorf("subject should call out the 5 day streak: %q", got)
	}
}

func TestStreakEmojiTiers(t *testing.T) {
	if got := streakEmoji(1); strings.Count(got, "\U0001F525") != 1 {
		t.Errorf("streak 1 should show one flame, got %q", got)
	}
	if got := streakEmoji(3); strings.Count(got, "\U0001F525") != 2 {
		t.Errorf("streak 3 should show two flames, got %q", got)
	}
	if got := streakEmoji(7); strings.Count(got, "\U0001F525") != 3 {
		t.Errorf("streak 7 should show three flames, got %q", got)
	}
}

func TestRenderReminderEmailGreeting(t *testing.T) {
	prompt := testPrompt()

	html := RenderReminderEmail(models.User{DisplayName: "Ada", Username: "ada42"}, prompt, "https://example.com")
	if !strings.Contains(html, "Hi Ada,") {
		t.Errorf("display name should win the greeting")
	}

	html = RenderReminderEmail(models.User{Username: "ada42"}, prompt, "https://example.com")
	if !strings.Contains(html, "Hi ada42,") {
		t.Errorf("username should be the greeting fallback")
	}

	html = RenderReminderEmail(models.User{}, prompt, "https://example.com")
	if !strings.Contains(html, "Hi Writer,") {
		t.Errorf("greeting should fall back to Writer")
	}
}

func TestRenderReminderEmailStreakPanel(t *testing.T) {
	prompt := testPrompt()

	html := RenderReminderEmail(models.User{Username: "w", CurrentStreak: 4, LongestStreak: 9}, prompt, "https://example.com")
	if !strings.Contains(html, "Current streak") || !strings.Contains(html, "Longest streak") {
		t.Errorf("active streak should render the two-stat panel")
	}
	if !strings.Contains(html, "4 day(s) in a row") {
		t.Errorf("active streak should render the encouragement line")
	}

	html = RenderReminderEmail(models.User{Username: "w", CurrentStreak: 0}, prompt, "https://example.com")
	if strings.Contains(html, "Current streak") {
		t.Errorf("zero streak must not render the stat panel")
	}
	if !strings.Contains(html, "start a new writing streak") {
		t.Errorf("zero streak should invite starting a new one")
	}
}

func TestRenderReminderEmailPromptAndLinks(t *testing.T) {
	prompt := testPrompt()
	user := models.User{Username: "w", PublicID: "abc-123"}

	html := RenderReminderEmail(user, prompt, "https://example.com/")

	if !strings.Contains(html, ">Mystery</h2>") {
		t.Errorf("genre heading missing")
	}
	// Elements render in order.
	last := -1
	for _, el := range prompt.Elements {
		idx := strings.Index(html, el)
		if idx < 0 {
			t.Fatalf("element %q missing from body", el)
		}
		if idx < last {
			t.Errorf("element %q rendered out of order", el)
		}
		last = idx
	}

	if !strings.Contains(html, `href="https://example.com/write?prompt=42"`) {
		t.Errorf("CTA link missing or wrong; trailing slash on base URL must be trimmed")
	}
	if !strings.Contains(html, `https://example.com/unsubscribe?token=abc-123`) {
		t.Errorf("unsubscribe link should carry the public id")
	}
	if !strings.Contains(html, `https://example.com/profile`) {
		t.Errorf("preferences link missing")
	}
}

func TestRenderReminderEmailEscapesUserContent(t *testing.T) {
	prompt := models.Prompt{
		ID:       1,
		Genre:    "<script>alert(1)</script>",
		Elements: models.StringList{"a <b>bold</b> move", "x", "y"},
	}
	html := RenderReminderEmail(models.User{DisplayName: "<img>"}, prompt, "https://example.com")
	if strings.Contains(html, "<script>") || strings.Contains(html, "<img>") || strings.Contains(html, "<b>bold</b>") {
		t.Errorf("user-supplied values must be escaped")
	}
}
