// Package detector guesses the source language of a document when the
// caller asked for automatic detection.
package detector

import (
	"strings"

	lingua "github.com/pemistahl/lingua-go"
)

// candidates limits detection to the languages the phrase backends accept.
// A restricted set is both faster to build and less prone to misdetection
// on short documents than the full lingua catalogue.
var candidates = []lingua.Language{
	lingua.English,
	lingua.French,
	lingua.Spanish,
	lingua.German,
	lingua.Portuguese,
	lingua.Italian,
	lingua.Dutch,
	lingua.Polish,
	lingua.Ukrainian,
	lingua.Russian,
	lingua.Japanese,
	lingua.Chinese,
}

type Detector struct {
	detector lingua.LanguageDetector
}

// New builds a Detector. Construction is expensive; reuse the instance.
func New() *Detector {
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(candidates...).
		Build()

	return &Detector{detector: detector}
}

func (d *Detector) Detect(text string) (lingua.Language, bool) {
	if strings.TrimSpace(text) == "" {
		return lingua.Unknown, false
	}
	return d.detector.DetectLanguageOf(text)
}

// DetectCode returns the lowercase ISO 639-1 code of the detected language,
// ready for use as a phrase-translation source parameter.
func (d *Detector) DetectCode(text string) (string, bool) {
	lang, ok := d.Detect(text)
	if !ok {
		return "", false
	}
	return strings.ToLower(lang.IsoCode639_1().String()), true
}
