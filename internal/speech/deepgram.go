// Package speech implements the transcription provider adapter.
package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/avdeev-dev/gw-audio-transcriber/internal/logger"
)

// NoTranscript is returned when the provider responds successfully
// but no transcript is present in the payload.
const NoTranscript = "No transcript available"

// Config holds the transcription provider settings.
type Config struct {
	BaseURL string // e.g. "https://api.deepgram.com"
	APIKey  string
	Model   string // default "nova-2"
	Timeout time.Duration
}

// Client submits audio to the provider's prerecorded transcription endpoint.
type Client struct {
	config Config
	client *http.Client
}

// NewClient creates a transcription client with defaults applied.
func NewClient(config Config) *Client {
	if config.Model == "" {
		config.Model = "nova-2"
	}
	if config.Timeout == 0 {
		config.Timeout = 120 * time.Second
	}
	return &Client{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
	}
}

// listenResponse mirrors the provider's prerecorded response payload.
type listenResponse struct {
	Results struct {
		Channels []struct {
			Alternatives []struct {
				Transcript string  `json:"transcript"`
				Confidence float64 `json:"confidence"`
			} `json:"alternatives"`
		} `json:"channels"`
	} `json:"results"`
}

// listenError mirrors the provider's error payload.
type listenError struct {
	ErrCode string `json:"err_code"`
	ErrMsg  string `json:"err_msg"`
}

// Transcribe submits raw audio bytes and returns the transcript of the
// first alternative of the first channel. A successful response without
// a transcript yields NoTranscript rather than an error.
func (c *Client) Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	url := fmt.Sprintf("%s/v1/listen?model=%s&smart_format=true", c.config.BaseURL, c.config.Model)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(audio))
	if err != nil {
		return "", fmt.Errorf("failed to build transcription request: %w", err)
	}
	req.Header.Set("Authorization", "Token "+c.config.APIKey)
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	req.Header.Set("Content-Type", mimeType)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("transcription request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read transcription response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var provErr listenError
		if json.Unmarshal(body, &provErr) == nil && provErr.ErrMsg != "" {
			return "", fmt.Errorf("transcription provider error: %s", provErr.ErrMsg)
		}
		return "", fmt.Errorf("transcription provider returned status %d: %s", resp.StatusCode, string(body))
	}

	var parsed listenResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode transcription response: %w", err)
	}

	if len(parsed.Results.Channels) == 0 || len(parsed.Results.Channels[0].Alternatives) == 0 {
		logger.Log.Warnw("no transcript in provider response", "status", resp.StatusCode)
		return NoTranscript, nil
	}

	transcript := parsed.Results.Channels[0].Alternatives[0].Transcript
	if transcript == "" {
		return NoTranscript, nil
	}

	return transcript, nil
}
