// Package lang resolves user-supplied language arguments. Commands accept
// either an ISO code ("fr") or an English language name ("French"); the
// generative prompt wants the language's own name ("français") while the
// phrase backends want the code.
package lang

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// supported are the languages the commands advertise. Inputs outside this
// list still work when given as a parseable BCP 47 code.
var supported = []language.Tag{
	language.English,
	language.French,
	language.Spanish,
	language.German,
	language.Portuguese,
	language.Italian,
	language.Dutch,
	language.Polish,
	language.Ukrainian,
	language.Russian,
	language.Japanese,
	language.Chinese,
}

// Resolve turns a language code or English language name into a tag.
func Resolve(input string) (language.Tag, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return language.Und, fmt.Errorf("language is empty")
	}

	if tag, err := language.Parse(trimmed); err == nil {
		return tag, nil
	}

	names := display.English.Languages()
	self := display.Self
	for _, tag := range supported {
		if strings.EqualFold(trimmed, names.Name(tag)) || strings.EqualFold(trimmed, self.Name(tag)) {
			return tag, nil
		}
	}

	return language.Und, fmt.Errorf("unknown language %q", input)
}

// Label returns the language's name in that language itself, the form the
// generative translation prompt embeds ("français", "deutsch").
func Label(input string) (string, error) {
	tag, err := Resolve(input)
	if err != nil {
		return "", err
	}
	return display.Self.Name(tag), nil
}

// Code returns the lowercase ISO 639-1 base code for a language argument,
// the form the phrase backends take as query parameters.
func Code(input string) (string, error) {
	tag, err := Resolve(input)
	if err != nil {
		return "", err
	}
	base, _ := tag.Base()
	return base.String(), nil
}
