// Package translator holds the remote translation clients.
//
// The two backends have deliberately different contracts and therefore
// different Translate signatures: the generative client takes a human
// language label and infers the source language, the phrase clients take
// ISO language codes and require the source. No shared interface is forced
// on them; the pipeline package declares the narrow interface it needs.
package translator

import (
	"net/http"
	"time"
)

// GenerativeConfig configures the chat-completion translation backend.
// Endpoint is the full deployment URL, including any api-version query.
type GenerativeConfig struct {
	APIKey   string `mapstructure:"api_key" json:"api_key"`
	Endpoint string `mapstructure:"endpoint" json:"endpoint"`
}

// PhraseConfig configures the phrase translation backend.
type PhraseConfig struct {
	APIKey   string `mapstructure:"api_key" json:"api_key"`
	Endpoint string `mapstructure:"endpoint" json:"endpoint"`
	Region   string `mapstructure:"region" json:"region"`
}

func defaultHTTPClient() *http.Client {
	return &http.Client{Timeout: 30 * time.Second}
}
