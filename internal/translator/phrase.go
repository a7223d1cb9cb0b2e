package translator

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/google/uuid"
)

// Phrase translates texts through the Translator v3 REST API. Source and
// target are ISO language codes and both are required; the whole text goes
// out as a single request element.
type Phrase struct {
	cfg    PhraseConfig
	client *http.Client
}

// NewPhrase creates a Phrase client. A nil httpClient selects a default
// client with a 30 second timeout.
func NewPhrase(cfg PhraseConfig, httpClient *http.Client) *Phrase {
	if httpClient == nil {
		httpClient = defaultHTTPClient()
	}
	return &Phrase{cfg: cfg, client: httpClient}
}

type phraseResponse []struct {
	Translations []struct {
		Text string `json:"text"`
	} `json:"translations"`
}

// Translate sends one translation request and returns the first
// translation of the first element. Every call carries a fresh
// X-ClientTraceId for request correlation on the provider side.
func (p *Phrase) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	if p.cfg.APIKey == "" || p.cfg.Endpoint == "" {
		return "", &TranslationError{Provider: "phrase", Reason: "API key and endpoint required"}
	}

	body, err := json.Marshal([]map[string]string{{"text": text}})
	if err != nil {
		return "", &TranslationError{Provider: "phrase", Reason: "marshal request", Err: err}
	}

	query := url.Values{}
	query.Set("api-version", "3.0")
	query.Set("from", sourceLang)
	query.Set("to", targetLang)
	endpoint := p.cfg.Endpoint + "/translate?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", &TranslationError{Provider: "phrase", Reason: "create request", Err: err}
	}
	req.Header.Set("Ocp-Apim-Subscription-Key", p.cfg.APIKey)
	req.Header.Set("Ocp-Apim-Subscription-Region", p.cfg.Region)
	req.Header.Set("Content-type", "application/json")
	req.Header.Set("X-ClientTraceId", uuid.NewString())

	resp, err := p.client.Do(req)
	if err != nil {
		return "", &TranslationError{Provider: "phrase", Reason: "request failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &TranslationError{Provider: "phrase", Status: resp.StatusCode}
	}

	var phraseResp phraseResponse
	if err := json.NewDecoder(resp.Body).Decode(&phraseResp); err != nil {
		return "", &TranslationError{Provider: "phrase", Reason: "decode response", Err: err}
	}
	if len(phraseResp) == 0 || len(phraseResp[0].Translations) == 0 {
		return "", &TranslationError{Provider: "phrase", Reason: "response has no translations"}
	}

	return phraseResp[0].Translations[0].Text, nil
}
