package translator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Generation parameters are fixed. The max token ceiling means very long
// texts come back truncated by the provider; that is an accepted limit,
// callers cannot raise it.
const (
	generativeTemperature = 0.9
	generativeTopP        = 0.95
	generativeMaxTokens   = 900

	generativeSystemPrompt = "You act as a text translator"
)

// Generative translates whole texts through a chat-completion endpoint.
// The provider infers the source language; the target is named in the
// prompt by its human-readable label, and the reply is markdown.
type Generative struct {
	cfg    GenerativeConfig
	client *http.Client
}

// NewGenerative creates a Generative client. A nil httpClient selects a
// default client with a 30 second timeout.
func NewGenerative(cfg GenerativeConfig, httpClient *http.Client) *Generative {
	if httpClient == nil {
		httpClient = defaultHTTPClient()
	}
	return &Generative{cfg: cfg, client: httpClient}
}

type chatContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type chatMessage struct {
	Role    string        `json:"role"`
	Content []chatContent `json:"content"`
}

type chatRequest struct {
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	TopP        float64       `json:"top_p"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Translate sends one single-shot completion request and returns the
// content of the first choice verbatim.
func (g *Generative) Translate(ctx context.Context, text, targetLabel string) (string, error) {
	if g.cfg.APIKey == "" || g.cfg.Endpoint == "" {
		return "", &TranslationError{Provider: "generative", Reason: "API key and endpoint required"}
	}

	payload := chatRequest{
		Messages: []chatMessage{
			{Role: "system", Content: []chatContent{{Type: "text", Text: generativeSystemPrompt}}},
			{Role: "user", Content: []chatContent{{
				Type: "text",
				Text: fmt.Sprintf("translate: %s to %s language and respond only with the translation in markdown format", text, targetLabel),
			}}},
		},
		Temperature: generativeTemperature,
		TopP:        generativeTopP,
		MaxTokens:   generativeMaxTokens,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", &TranslationError{Provider: "generative", Reason: "marshal request", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", &TranslationError{Provider: "generative", Reason: "create request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", g.cfg.APIKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", &TranslationError{Provider: "generative", Reason: "request failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &TranslationError{Provider: "generative", Status: resp.StatusCode}
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", &TranslationError{Provider: "generative", Reason: "decode response", Err: err}
	}
	if len(chatResp.Choices) == 0 {
		return "", &TranslationError{Provider: "generative", Reason: "response has no choices"}
	}

	return chatResp.Choices[0].Message.Content, nil
}
