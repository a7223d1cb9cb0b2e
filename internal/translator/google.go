package translator

import (
	"context"

	translate "cloud.google.com/go/translate"
	"golang.org/x/text/language"
	"google.golang.org/api/option"
)

// Google is an alternative phrase-style backend using the Cloud Translation
// API. It satisfies the same call shape as Phrase; an empty or "auto" source
// language lets the provider detect it.
type Google struct {
	credentialsFile string
}

// NewGoogle creates a Google client. credentialsFile may be empty, in which
// case application default credentials are used.
func NewGoogle(credentialsFile string) *Google {
	return &Google{credentialsFile: credentialsFile}
}

// Translate sends one translation request and returns the first result.
func (g *Google) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	target, err := language.Parse(targetLang)
	if err != nil {
		return "", &TranslationError{Provider: "google", Reason: "invalid target language", Err: err}
	}

	var opts []option.ClientOption
	if g.credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(g.credentialsFile))
	}

	client, err := translate.NewClient(ctx, opts...)
	if err != nil {
		return "", &TranslationError{Provider: "google", Reason: "create client", Err: err}
	}
	defer client.Close()

	var transOpts *translate.Options
	if sourceLang != "" && sourceLang != "auto" {
		source, err := language.Parse(sourceLang)
		if err != nil {
			return "", &TranslationError{Provider: "google", Reason: "invalid source language", Err: err}
		}
		transOpts = &translate.Options{Source: source}
	}

	translations, err := client.Translate(ctx, []string{text}, target, transOpts)
	if err != nil {
		return "", &TranslationError{Provider: "google", Reason: "translation failed", Err: err}
	}
	if len(translations) == 0 {
		return "", &TranslationError{Provider: "google", Reason: "response has no translations"}
	}

	return translations[0].Text, nil
}
