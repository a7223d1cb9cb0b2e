package markdown

import (
	"strings"
	"testing"
)

func TestToPlainText_StripsMarkup(t *testing.T) {
	md := []byte("# Bonjour\n\nCeci est un *petit* article avec un [lien](https://example.com).")

	plain := ToPlainText(md)

	for _, fragment := range []string{"#", "*", "](", "<"} {
		if strings.Contains(plain, fragment) {
			t.Errorf("markup fragment %q survived: %q", fragment, plain)
		}
	}
	for _, word := range []string{"Bonjour", "petit", "lien"} {
		if !strings.Contains(plain, word) {
			t.Errorf("prose %q missing from %q", word, plain)
		}
	}
}

func TestToHTML(t *testing.T) {
	got := ToHTML([]byte("# Title"))

	if !strings.Contains(got, "<h1") || !strings.Contains(got, "Title") {
		t.Errorf("expected an h1 heading, got %q", got)
	}
}
