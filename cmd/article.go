/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/valpere/doctrans/internal/config"
	"github.com/valpere/doctrans/internal/lang"
	"github.com/valpere/doctrans/internal/markdown"
	"github.com/valpere/doctrans/internal/pipeline"
	"github.com/valpere/doctrans/internal/translator"
	"github.com/valpere/doctrans/internal/validator"
	"github.com/valpere/doctrans/internal/webpage"
)

var (
	articleURL      string
	articleTarget   string
	articleOutput   string
	articleEndpoint string
	articleAPIKey   string
	articleValidate bool
)

var articleCmd = &cobra.Command{
	Use:   "article",
	Short: "Translate a web article to markdown",
	Long: `Fetch a web article, strip its markup down to plain text and translate
it in a single generative request. The result is written as a markdown file.

The target language may be an ISO code ("fr") or an English name ("French").

Credentials come from AZURE_OPENAI_KEY and AZURE_OPENAI_ENDPOINT unless
overridden with --api-key and --endpoint.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		targetLabel, err := lang.Label(articleTarget)
		if err != nil {
			return err
		}

		cfg := config.Load()
		if articleAPIKey != "" {
			cfg.Generative.APIKey = articleAPIKey
		}
		if articleEndpoint != "" {
			cfg.Generative.Endpoint = articleEndpoint
		}
		if err := cfg.RequireGenerative(); err != nil {
			return err
		}

		ctx := context.Background()

		pipe := pipeline.NewArticle(
			webpage.NewExtractor(),
			translator.NewGenerative(cfg.Generative, nil),
		)

		fmt.Fprintf(os.Stderr, "Translating article to %s...\n", targetLabel)
		result, err := pipe.Run(ctx, articleURL, targetLabel)
		if err != nil {
			return err
		}

		output := articleOutput
		if output == "" {
			output = fmt.Sprintf("translation_%s.md", time.Now().Format("20060102_150405"))
		}
		if err := os.WriteFile(output, result.Artifact, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}

		if articleValidate {
			code, err := lang.Code(articleTarget)
			if err == nil {
				plain := markdown.ToPlainText(result.Artifact)
				if err := validator.New().Check(plain, code); err != nil {
					fmt.Fprintf(os.Stderr, "Warning: translation may be off-target: %v\n", err)
				}
			}
		}

		fmt.Printf("Successfully translated article to %s: %s\n", targetLabel, output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(articleCmd)

	articleCmd.Flags().StringVarP(&articleURL, "url", "u", "", "Article URL (required)")
	articleCmd.Flags().StringVarP(&articleTarget, "target", "t", "", "Target language code or name (required)")
	articleCmd.Flags().StringVarP(&articleOutput, "output", "o", "", "Output markdown file (default translation_<timestamp>.md)")
	articleCmd.Flags().StringVar(&articleEndpoint, "endpoint", "", "Generative endpoint override")
	articleCmd.Flags().StringVar(&articleAPIKey, "api-key", "", "Generative API key override")
	articleCmd.Flags().BoolVar(&articleValidate, "validate", false, "Warn when the result does not look like the target language")

	articleCmd.MarkFlagRequired("url")
	articleCmd.MarkFlagRequired("target")
}
