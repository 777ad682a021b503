package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dailyquil/dailyquil/config"
)

const resendEndpoint = "https://api.resend.com/emails"

// mailHTTPClient carries a bounded timeout so one slow delivery cannot
// stall a whole reminder batch.
var mailHTTPClient = &http.Client{Timeout: 15 * time.Second}

type resendPayload struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// MailerConfigured reports whether the Resend credentials needed for
// outbound email are present.
func MailerConfigured() bool {
	cfg := config.Get()
	return cfg.ResendAPIKey != "" && cfg.MailFrom != ""
}

// SendMail delivers an HTML email through the Resend API. The response
// status is the only delivery signal; any non-2xx status is an error.
func SendMail(to, subject, html string) error {
	cfg := config.Get()
	if cfg.ResendAPIKey == "" || cfg.MailFrom == "" {
		return fmt.Errorf("mail not configured")
	}

	from := cfg.MailFrom
	if cfg.MailFromName != "" {
		from = fmt.Sprintf("%s <%s>", cfg.MailFromName, cfg.MailFrom)
	}

	body, err := json.Marshal(resendPayload{
		From:    from,
		To:      []string{to},
		Subject: subject,
		HTML:    html,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, resendEndpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+cfg.ResendAPIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := mailHTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("resend responded %d: %s", resp.StatusCode, string(snippet))
	}
	return nil
}
