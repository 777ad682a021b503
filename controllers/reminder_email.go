package controllers

import (
	"fmt"
	"html"
	"strings"

	"github.com/dailyquil/dailyquil/models"
)

// greetingName picks the friendliest available name for a reminder.
func greetingName(user models.User) string {
	if s := strings.TrimSpace(user.DisplayName); s != "" {
		return s
	}
	if s := strings.TrimSpace(user.Username); s != "" {
		return s
	}
	return "Writer"
}

// streakEmoji scales the flame with the streak length.
func streakEmoji(streak int) string {
	switch {
	case streak >= 7:
		return "\U0001F525\U0001F525\U0001F525"
	case streak >= 3:
		return "\U0001F525\U0001F525"
	default:
		return "\U0001F525"
	}
}

// ReminderSubject builds the subject line for a reminder email. Users
// with an active streak get it called out in the subject.
func ReminderSubject(user models.User) string {
	if user.CurrentStreak > 0 {
		return fmt.Sprintf("Your daily writing prompt awaits! %s %d day streak", streakEmoji(user.CurrentStreak), user.CurrentStreak)
	}
	return "Your daily writing prompt awaits!"
}

// RenderReminderEmail produces the HTML body for a daily reminder.
// User-supplied values (name, genre, elements) are escaped before
// interpolation.
func RenderReminderEmail(user models.User, prompt models.Prompt, baseURL string) string {
	base := strings.TrimRight(baseURL, "/")

	var b strings.Builder
	b.WriteString(`<!DOCTYPE html><html><head><meta charset="utf-8"></head>`)
	b.WriteString(`<body style="margin:0;padding:0;background:#f6f5f2;font-family:Georgia,serif;color:#2b2b2b;">`)
	b.WriteString(`<div style="max-width:560px;margin:0 auto;padding:32px 24px;">`)

	fmt.Fprintf(&b, `<h1 style="font-size:22px;margin:0 0 8px;">Hi %s,</h1>`, html.EscapeString(greetingName(user)))
	b.WriteString(`<p style="margin:0 0 20px;font-size:15px;">Your writing prompt for today is ready.</p>`)

	if user.CurrentStreak > 0 {
		fmt.Fprintf(&b, `<p style="margin:0 0 12px;font-size:15px;">%s Keep your streak alive! You&#39;ve written %d day(s) in a row.</p>`,
			streakEmoji(user.CurrentStreak), user.CurrentStreak)
		b.WriteString(`<table role="presentation" style="width:100%;border-collapse:collapse;margin:0 0 20px;"><tr>`)
		fmt.Fprintf(&b, `<td style="padding:12px;background:#fff;border:1px solid #e5e2db;text-align:center;"><div style="font-size:20px;font-weight:bold;">%d</div><div style="font-size:12px;color:#6b6b6b;">Current streak</div></td>`, user.CurrentStreak)
		fmt.Fprintf(&b, `<td style="padding:12px;background:#fff;border:1px solid #e5e2db;text-align:center;"><div style="font-size:20px;font-weight:bold;">%d</div><div style="font-size:12px;color:#6b6b6b;">Longest streak</div></td>`, user.LongestStreak)
		b.WriteString(`</tr></table>`)
	} else {
		b.WriteString(`<p style="margin:0 0 20px;font-size:15px;">Today is a great day to start a new writing streak.</p>`)
	}

	b.WriteString(`<div style="background:#fff;border:1px solid #e5e2db;border-radius:6px;padding:20px;margin:0 0 24px;">`)
	fmt.Fprintf(&b, `<h2 style="font-size:18px;margin:0 0 12px;">%s</h2>`, html.EscapeString(prompt.Genre))
	b.WriteString(`<div>`)
	for _, el := range prompt.Elements {
		fmt.Fprintf(&b, `<span style="display:inline-block;background:#efede8;border-radius:12px;padding:4px 12px;margin:0 6px 6px 0;font-size:13px;">%s</span>`, html.EscapeString(el))
	}
	b.WriteString(`</div></div>`)

	fmt.Fprintf(&b, `<a href="%s/write?prompt=%d" style="display:inline-block;background:#2b2b2b;color:#fff;text-decoration:none;padding:12px 28px;border-radius:6px;font-size:15px;">Start Writing</a>`,
		base, prompt.ID)

	b.WriteString(`<p style="margin:32px 0 0;font-size:12px;color:#9a9a9a;">`)
	fmt.Fprintf(&b, `You can change your reminder settings in your <a href="%s/profile" style="color:#9a9a9a;">profile</a>, or <a href="%s/unsubscribe?token=%s" style="color:#9a9a9a;">unsubscribe</a> from these emails.`,
		base, base, user.PublicID)
	b.WriteString(`</p>`)

	b.WriteString(`</div></body></html>`)
	return b.String()
}
