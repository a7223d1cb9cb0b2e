// Package validator checks that a translation result is in the expected
// target language. It is advisory: the pipelines never alter or reject a
// result because of a validation mismatch, callers only warn.
package validator

import (
	"fmt"
	"strings"

	"github.com/valpere/doctrans/internal/detector"
)

// minCheckLength is the minimum rune count required to attempt language
// detection. Shorter texts produce unreliable results and pass unchecked.
const minCheckLength = 20

// Validator checks translated text against an expected target language.
// The underlying language detector is expensive to build; reuse the instance.
type Validator struct {
	det *detector.Detector
}

func New() *Validator {
	return &Validator{det: detector.New()}
}

// Check returns nil when translatedText appears to be written in targetLang
// (a case-insensitive ISO 639-1 code), and a descriptive error otherwise.
//
// Texts that are too short or whose language cannot be determined pass:
// an inconclusive detection is not a mismatch.
func (v *Validator) Check(translatedText, targetLang string) error {
	if targetLang == "" {
		return nil
	}

	text := strings.TrimSpace(translatedText)
	if text == "" {
		return fmt.Errorf("translation is empty")
	}

	if len([]rune(text)) < minCheckLength {
		return nil
	}

	detected, ok := v.det.DetectCode(text)
	if !ok {
		return nil
	}

	if !strings.EqualFold(detected, targetLang) {
		return fmt.Errorf("expected %s but detected %s", targetLang, detected)
	}

	return nil
}
