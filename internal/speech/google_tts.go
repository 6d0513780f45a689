package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultSynthesizeURL = "https://texttospeech.googleapis.com/v1/text:synthesize"

// GoogleSynthesizer calls the Google Cloud Text-to-Speech REST API.
type GoogleSynthesizer struct {
	apiKey   string
	voice    string
	language string
	baseURL  string
	client   *http.Client
}

type synthesizeRequest struct {
	Input struct {
		Text string `json:"text"`
	} `json:"input"`
	Voice struct {
		LanguageCode string `json:"languageCode"`
		Name         string `json:"name"`
	} `json:"voice"`
	AudioConfig struct {
		AudioEncoding string `json:"audioEncoding"`
	} `json:"audioConfig"`
}

type synthesizeResponse struct {
	AudioContent string `json:"audioContent"`
	Error        *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func NewGoogleSynthesizer(apiKey, voice, language string) *GoogleSynthesizer {
	return &GoogleSynthesizer{
		apiKey:   apiKey,
		voice:    voice,
		language: language,
		baseURL:  defaultSynthesizeURL,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// Synthesize converts text to MP3 audio.
func (g *GoogleSynthesizer) Synthesize(ctx context.Context, text string) (*Audio, error) {
	if !g.IsSupported() {
		return nil, ErrNotSupported
	}

	var reqBody synthesizeRequest
	reqBody.Input.Text = text
	reqBody.Voice.LanguageCode = g.language
	reqBody.Voice.Name = g.voice
	reqBody.AudioConfig.AudioEncoding = "MP3"

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal synthesis request: %w", err)
	}

	url := g.baseURL + "?key=" + g.apiKey
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build synthesis request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("synthesis request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read synthesis response: %w", err)
	}

	var parsed synthesizeResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode synthesis response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		msg := resp.Status
		if parsed.Error != nil && parsed.Error.Message != "" {
			msg = parsed.Error.Message
		}
		return nil, fmt.Errorf("TTS API error: %s", msg)
	}

	if parsed.AudioContent == "" {
		return nil, fmt.Errorf("no audio content received from TTS API")
	}

	return &Audio{
		MIMEType: "audio/mp3",
		Content:  parsed.AudioContent,
	}, nil
}

func (g *GoogleSynthesizer) IsSupported() bool {
	return g.apiKey != ""
}
