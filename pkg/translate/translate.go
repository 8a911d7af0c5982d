// Package translate provides best-effort text translation. Failures always
// degrade to the original text so translation can never break a chat reply.
package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Translator converts text into a target language. Implementations must
// return the input unchanged rather than fail hard.
type Translator interface {
	Translate(ctx context.Context, text, targetLang string) (string, error)
}

// Noop returns text untouched; used when translation is disabled.
type Noop struct{}

func (Noop) Translate(_ context.Context, text, _ string) (string, error) {
	return text, nil
}

type googleTranslator struct {
	httpClient *http.Client
	baseURL    string
}

// NewGoogleTranslator calls the public Google translate endpoint the way the
// usual translator wrappers do: one GET per translation, auto-detected
// source language.
func NewGoogleTranslator() Translator {
	return &googleTranslator{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    "https://translate.googleapis.com/translate_a/single",
	}
}

func (t *googleTranslator) Translate(ctx context.Context, text, targetLang string) (string, error) {
	if targetLang == "" || text == "" {
		return text, nil
	}

	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", "auto")
	params.Set("tl", targetLang)
	params.Set("dt", "t")
	params.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return text, fmt.Errorf("failed to build translate request: %w", err)
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return text, fmt.Errorf("failed to call translator: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return text, fmt.Errorf("translator returned %d", resp.StatusCode)
	}

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return text, fmt.Errorf("failed to read translator response: %w", err)
	}

	// Response shape: [[["translated","source",...],...],...]
	var parsed []json.RawMessage
	if err := json.Unmarshal(payload, &parsed); err != nil || len(parsed) == 0 {
		return text, fmt.Errorf("unexpected translator response")
	}
	var segments [][]json.RawMessage
	if err := json.Unmarshal(parsed[0], &segments); err != nil {
		return text, fmt.Errorf("unexpected translator response")
	}

	var out string
	for _, seg := range segments {
		if len(seg) == 0 {
			continue
		}
		var piece string
		if err := json.Unmarshal(seg[0], &piece); err != nil {
			continue
		}
		out += piece
	}
	if out == "" {
		return text, fmt.Errorf("empty translation")
	}
	return out, nil
}
