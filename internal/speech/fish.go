package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultFishBaseURL = "https://api.fish.audio/v1"
	DefaultFishVoice   = "802e3bc2b27e49c2995d23ef70e6ac89"
)

// FishConfig configures the Fish Audio client.
type FishConfig struct {
	APIKey  string        `yaml:"api_key"`
	BaseURL string        `yaml:"base_url"`
	VoiceID string        `yaml:"voice_id"`
	Timeout time.Duration `yaml:"timeout"`
}

// FishClient implements Synthesizer against the Fish Audio TTS API.
type FishClient struct {
	apiKey     string
	baseURL    string
	voiceID    string
	httpClient *http.Client
}

func NewFishClient(cfg FishConfig) *FishClient {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultFishBaseURL
	}
	voice := strings.TrimSpace(cfg.VoiceID)
	if voice == "" {
		voice = DefaultFishVoice
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &FishClient{
		apiKey:     strings.TrimSpace(cfg.APIKey),
		baseURL:    baseURL,
		voiceID:    voice,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Configured reports whether an API key is present.
func (c *FishClient) Configured() bool { return c.apiKey != "" }

type fishTTSRequest struct {
	Text        string `json:"text"`
	ReferenceID string `json:"reference_id"`
	Format      string `json:"format"`
	MP3Bitrate  int    `json:"mp3_bitrate"`
}

// UpstreamError is a non-2xx answer from the TTS backend.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("fish tts: status %d: %s", e.StatusCode, e.Body)
}

// Synthesize requests a 128 kbps MP3 rendering of text. A single call, no
// retries.
func (c *FishClient) Synthesize(ctx context.Context, text string) ([]byte, string, error) {
	if c.apiKey == "" {
		return nil, "", ErrNotConfigured
	}

	payload, err := json.Marshal(fishTTSRequest{
		Text:        text,
		ReferenceID: c.voiceID,
		Format:      "mp3",
		MP3Bitrate:  128,
	})
	if err != nil {
		return nil, "", fmt.Errorf("fish tts: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/tts", bytes.NewReader(payload))
	if err != nil {
		return nil, "", fmt.Errorf("fish tts: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("fish tts: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, "", &UpstreamError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("fish tts: read audio: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" || strings.HasPrefix(contentType, "application/octet-stream") {
		contentType = "audio/mpeg"
	}
	return audio, contentType, nil
}
