package interview

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultVoiceID = "EXAVITQu4vr4xnSDxMaL"

// TTSClient converts text to speech through the ElevenLabs API.
type TTSClient struct {
	APIKey  string
	VoiceID string
	BaseURL string
	HTTP    *http.Client
}

func NewTTSClient(apiKey, voiceID string) *TTSClient {
	if voiceID == "" {
		voiceID = defaultVoiceID
	}
	return &TTSClient{
		APIKey:  apiKey,
		VoiceID: voiceID,
		BaseURL: "https://api.elevenlabs.io",
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *TTSClient) Configured() bool {
	return c != nil && c.APIKey != ""
}

type ttsRequest struct {
	Text          string      `json:"text"`
	ModelID       string      `json:"model_id"`
	VoiceSettings ttsSettings `json:"voice_settings"`
}

type ttsSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

// Speak returns MP3 audio for the given text.
func (c *TTSClient) Speak(ctx context.Context, text string) ([]byte, error) {
	if !c.Configured() {
		return nil, fmt.Errorf("tts: api key not configured")
	}

	payload, err := json.Marshal(ttsRequest{
		Text:          text,
		ModelID:       "eleven_monolingual_v1",
		VoiceSettings: ttsSettings{Stability: 0.5, SimilarityBoost: 0.75},
	})
	if err != nil {
		return nil, fmt.Errorf("tts: encode request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1/text-to-speech/%s", c.BaseURL, c.VoiceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("tts: build request: %w", err)
	}
	req.Header.Set("xi-api-key", c.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tts: request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tts: status %d", resp.StatusCode)
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("tts: read audio: %w", err)
	}
	return audio, nil
}
