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
	"github.com/valpere/doctrans/internal/detector"
	"github.com/valpere/doctrans/internal/lang"
	"github.com/valpere/doctrans/internal/pipeline"
	"github.com/valpere/doctrans/internal/translator"
	"github.com/valpere/doctrans/internal/validator"
)

var (
	documentInput    string
	documentOutput   string
	documentSource   string
	documentTarget   string
	documentProvider string
	documentValidate bool
)

var documentCmd = &cobra.Command{
	Use:   "document",
	Short: "Translate a Word document",
	Long: `Read the paragraphs of a .docx file, translate them in a single request
and write a new .docx with one paragraph per translated line. Only paragraph
order is preserved; formatting is not.

Providers:
  - azure    Azure Translator (TRANSLATOR_API_KEY, TRANSLATOR_ENDPOINT,
             TRANSLATOR_LOCATION)
  - google   Google Cloud Translation (GOOGLE_APPLICATION_CREDENTIALS)

With --source auto the source language is detected from the document text.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := lang.Code(documentTarget)
		if err != nil {
			return err
		}

		source := documentSource
		if source != "auto" {
			if source, err = lang.Code(documentSource); err != nil {
				return err
			}
		}

		data, err := os.ReadFile(documentInput)
		if err != nil {
			return fmt.Errorf("failed to read input file: %w", err)
		}

		cfg := config.Load()

		var phrase pipeline.PhraseTranslator
		switch documentProvider {
		case "azure":
			if err := cfg.RequirePhrase(); err != nil {
				return err
			}
			phrase = translator.NewPhrase(cfg.Phrase, nil)
		case "google":
			phrase = translator.NewGoogle(cfg.GoogleCredentials)
		default:
			return fmt.Errorf("unknown provider: %s", documentProvider)
		}

		var detect pipeline.DetectFunc
		if source == "auto" {
			det := detector.New()
			detect = func(text string) (string, bool) {
				code, ok := det.DetectCode(text)
				if ok {
					fmt.Fprintf(os.Stderr, "Detected source language: %s\n", code)
				}
				return code, ok
			}
		}

		ctx := context.Background()
		pipe := pipeline.NewDocument(phrase, detect)

		fmt.Fprintf(os.Stderr, "Translating document %s -> %s...\n", source, target)
		result, err := pipe.Run(ctx, data, source, target)
		if err != nil {
			return err
		}

		output := documentOutput
		if output == "" {
			output = fmt.Sprintf("translation_%s.docx", time.Now().Format("20060102_150405"))
		}
		if err := os.WriteFile(output, result.Artifact, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}

		if documentValidate {
			if err := validator.New().Check(result.Translated, target); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: translation may be off-target: %v\n", err)
			}
		}

		fmt.Printf("Successfully translated document to %s: %s\n", target, output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(documentCmd)

	documentCmd.Flags().StringVarP(&documentInput, "input", "i", "", "Input .docx file (required)")
	documentCmd.Flags().StringVarP(&documentOutput, "output", "o", "", "Output .docx file (default translation_<timestamp>.docx)")
	documentCmd.Flags().StringVarP(&documentSource, "source", "s", "auto", "Source language code, or auto to detect")
	documentCmd.Flags().StringVarP(&documentTarget, "target", "t", "", "Target language code or name (required)")
	documentCmd.Flags().StringVar(&documentProvider, "provider", "azure", "Phrase translation provider (azure, google)")
	documentCmd.Flags().BoolVar(&documentValidate, "validate", false, "Warn when the result does not look like the target language")

	documentCmd.MarkFlagRequired("input")
	documentCmd.MarkFlagRequired("target")
}
