package interview

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// AvatarClient drives the D-ID talks API: create a talk, then poll until the
// rendered video URL is ready.
type AvatarClient struct {
	APIKey       string
	SourceURL    string
	BaseURL      string
	HTTP         *http.Client
	PollInterval time.Duration
	MaxPolls     int
}

func NewAvatarClient(apiKey string) *AvatarClient {
	return &AvatarClient{
		APIKey:       apiKey,
		SourceURL:    "https://models.d-id.com/amy",
		BaseURL:      "https://api.d-id.com",
		HTTP:         &http.Client{Timeout: 15 * time.Second},
		PollInterval: 2 * time.Second,
		MaxPolls:     15,
	}
}

func (c *AvatarClient) Configured() bool {
	return c != nil && c.APIKey != ""
}

type talkResponse struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	ResultURL string `json:"result_url"`
}

// GenerateVideo creates a talk for the script and polls until the result URL
// appears or MaxPolls attempts have been made.
func (c *AvatarClient) GenerateVideo(ctx context.Context, script string) (string, error) {
	if !c.Configured() {
		return "", fmt.Errorf("avatar: api key not configured")
	}

	id, err := c.createTalk(ctx, script)
	if err != nil {
		return "", err
	}

	for i := 0; i < c.MaxPolls; i++ {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(c.PollInterval):
		}

		talk, err := c.getTalk(ctx, id)
		if err != nil {
			return "", err
		}
		if talk.ResultURL != "" {
			return talk.ResultURL, nil
		}
		if talk.Status == "error" || talk.Status == "rejected" {
			return "", fmt.Errorf("avatar: talk %s failed with status %s", id, talk.Status)
		}
	}
	return "", fmt.Errorf("avatar: talk %s not ready after %d polls", id, c.MaxPolls)
}

func (c *AvatarClient) createTalk(ctx context.Context, script string) (string, error) {
	payload, err := json.Marshal(map[string]any{
		"script":     map[string]any{"type": "text", "input": script},
		"source_url": c.SourceURL,
		"config":     map[string]any{"fluent": true, "pad_audio": 0.3},
	})
	if err != nil {
		return "", fmt.Errorf("avatar: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/talks", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("avatar: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("avatar: create talk: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("avatar: create talk status %d", resp.StatusCode)
	}

	var talk talkResponse
	if err := json.NewDecoder(resp.Body).Decode(&talk); err != nil {
		return "", fmt.Errorf("avatar: decode create response: %w", err)
	}
	if talk.ID == "" {
		return "", fmt.Errorf("avatar: create response missing talk id")
	}
	return talk.ID, nil
}

func (c *AvatarClient) getTalk(ctx context.Context, id string) (talkResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/talks/"+id, nil)
	if err != nil {
		return talkResponse{}, fmt.Errorf("avatar: build poll request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return talkResponse{}, fmt.Errorf("avatar: poll talk: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return talkResponse{}, fmt.Errorf("avatar: poll status %d", resp.StatusCode)
	}

	var talk talkResponse
	if err := json.NewDecoder(resp.Body).Decode(&talk); err != nil {
		return talkResponse{}, fmt.Errorf("avatar: decode poll response: %w", err)
	}
	return talk, nil
}
