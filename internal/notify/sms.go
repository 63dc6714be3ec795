package notify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"careerai-backend/internal/shared/telemetry"
)

// ErrNotConfigured is returned when Twilio credentials are absent. Callers
// treat it as "SMS disabled", not a failure.
var ErrNotConfigured = errors.New("sms not configured")

// SMSClient sends notifications through the Twilio messages API.
type SMSClient struct {
	AccountSID string
	AuthToken  string
	FromPhone  string
	BaseURL    string
	HTTP       *http.Client
}

func NewSMSClient(accountSID, authToken, fromPhone string) *SMSClient {
	return &SMSClient{
		AccountSID: accountSID,
		AuthToken:  authToken,
		FromPhone:  fromPhone,
		BaseURL:    "https://api.twilio.com",
		HTTP:       &http.Client{Timeout: 10 * time.Second},
	}
}

// Configured reports whether all credentials are set.
func (c *SMSClient) Configured() bool {
	return c != nil && c.AccountSID != "" && c.AuthToken != "" && c.FromPhone != ""
}

// Send posts one SMS. The Twilio API returns 201 on accepted messages.
func (c *SMSClient) Send(ctx context.Context, toPhone, body string) error {
	if !c.Configured() {
		return ErrNotConfigured
	}
	if strings.TrimSpace(toPhone) == "" {
		return errors.New("sms: recipient phone is required")
	}

	form := url.Values{}
	form.Set("From", c.FromPhone)
	form.Set("To", toPhone)
	form.Set("Body", body)

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", c.BaseURL, c.AccountSID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("sms: build request: %w", err)
	}
	req.SetBasicAuth(c.AccountSID, c.AuthToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("sms: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("sms: status %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	telemetry.Info("notify.sms.sent", map[string]any{"to": toPhone})
	return nil
}
