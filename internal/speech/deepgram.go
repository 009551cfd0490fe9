package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultVoice = "aura-asteria-en"

// DeepgramSynthesizer calls the Deepgram speak REST endpoint.
type DeepgramSynthesizer struct {
	apiKey string
	voice  string
	hc     *http.Client
}

func NewDeepgramSynthesizer(apiKey, voice string) *DeepgramSynthesizer {
	if voice == "" {
		voice = defaultVoice
	}
	return &DeepgramSynthesizer{
		apiKey: apiKey,
		voice:  voice,
		hc:     &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *DeepgramSynthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	urlValues := url.Values{}
	urlValues.Set("model", s.voice)
	urlValues.Set("encoding", "mp3")
	u := url.URL{
		Scheme:   "https",
		Host:     "api.deepgram.com",
		Path:     "/v1/speak",
		RawQuery: urlValues.Encode(),
	}

	body, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "token "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("deepgram speak: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("deepgram speak: status %d: %s", resp.StatusCode, detail)
	}
	return io.ReadAll(resp.Body)
}
