// Package config loads the environment-sourced credentials for the
// translation backends. Credentials are read once into an explicit struct
// and handed to the client constructors; nothing in the pipelines reads
// the environment directly.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/valpere/doctrans/internal/translator"
)

// Config gathers every backend credential the commands may need. Fields
// are read-only after Load; the zero value of a field simply means the
// corresponding backend was not configured.
type Config struct {
	Generative translator.GenerativeConfig `mapstructure:"generative"`
	Phrase     translator.PhraseConfig     `mapstructure:"phrase"`

	// GoogleCredentials is the path to a service account file for the
	// Cloud Translation backend. Empty selects application defaults.
	GoogleCredentials string `mapstructure:"google_credentials"`
}

// Environment variable names, matching the deployment conventions of the
// two Azure backends.
const (
	envOpenAIKey          = "AZURE_OPENAI_KEY"
	envOpenAIEndpoint     = "AZURE_OPENAI_ENDPOINT"
	envTranslatorKey      = "TRANSLATOR_API_KEY"
	envTranslatorEndpoint = "TRANSLATOR_ENDPOINT"
	envTranslatorLocation = "TRANSLATOR_LOCATION"
	envGoogleCredentials  = "GOOGLE_APPLICATION_CREDENTIALS"
)

// Load reads backend credentials from the environment.
func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()

	return &Config{
		Generative: translator.GenerativeConfig{
			APIKey:   v.GetString(envOpenAIKey),
			Endpoint: v.GetString(envOpenAIEndpoint),
		},
		Phrase: translator.PhraseConfig{
			APIKey:   v.GetString(envTranslatorKey),
			Endpoint: v.GetString(envTranslatorEndpoint),
			Region:   v.GetString(envTranslatorLocation),
		},
		GoogleCredentials: v.GetString(envGoogleCredentials),
	}
}

// RequireGenerative validates that the generative backend is configured.
func (c *Config) RequireGenerative() error {
	if c.Generative.APIKey == "" || c.Generative.Endpoint == "" {
		return fmt.Errorf("%s and %s must be set", envOpenAIKey, envOpenAIEndpoint)
	}
	return nil
}

// RequirePhrase validates that the phrase backend is configured.
func (c *Config) RequirePhrase() error {
	if c.Phrase.APIKey == "" || c.Phrase.Endpoint == "" || c.Phrase.Region == "" {
		return fmt.Errorf("%s, %s and %s must be set", envTranslatorKey, envTranslatorEndpoint, envTranslatorLocation)
	}
	return nil
}
