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
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "doctrans",
	Short: "Translate web articles and Word documents",
	Long: `doctrans translates content from two kinds of sources into a target
language: web articles (fetched by URL, delivered as markdown) and Word
documents (delivered as a new .docx with one paragraph per translated line).

Articles go through a generative chat-completion backend; documents go
through a phrase translation backend (Azure Translator or Google Cloud
Translation).

Use "doctrans article --help" or "doctrans document --help" for options.`,
	Version: version,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
