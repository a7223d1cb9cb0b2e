package docx

import (
	"archive/zip"
	"bytes"
	"errors"
	"reflect"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
	}{
		{"single paragraph", []string{"Bonjour"}},
		{"ordered paragraphs", []string{"first", "second", "third"}},
		{"blank paragraphs kept", []string{"intro", "", "", "outro"}},
		{"markup characters escaped", []string{"a < b & c > d", `"quoted"`}},
		{"unicode", []string{"Привіт, світе", "日本語の段落"}},
		{"no paragraphs", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Build(tt.lines)
			if err != nil {
				t.Fatalf("Build: %v", err)
			}

			got, err := Extract(data)
			if err != nil {
				t.Fatalf("Extract: %v", err)
			}
			if len(got) != len(tt.lines) {
				t.Fatalf("expected %d paragraphs, got %d", len(tt.lines), len(got))
			}
			if len(tt.lines) > 0 && !reflect.DeepEqual(got, tt.lines) {
				t.Errorf("expected %q, got %q", tt.lines, got)
			}
		})
	}
}

func TestExtract_NotAZip(t *testing.T) {
	_, err := Extract([]byte("plain text, definitely not a zip"))
	if err == nil {
		t.Fatal("expected error for non-zip input")
	}

	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
}

func TestExtract_MissingDocumentPart(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, _ := zw.Create("word/other.xml")
	w.Write([]byte("<x/>"))
	zw.Close()

	_, err := Extract(buf.Bytes())

	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
}

func TestExtract_MalformedDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, _ := zw.Create("word/document.xml")
	w.Write([]byte("<w:document><unclosed"))
	zw.Close()

	_, err := Extract(buf.Bytes())

	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
}

func TestExtract_MultiRunParagraph(t *testing.T) {
	doc := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		`<w:p><w:r><w:t>Hello, </w:t></w:r><w:r><w:t>world</w:t></w:r></w:p>` +
		`</w:body></w:document>`

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, _ := zw.Create("word/document.xml")
	w.Write([]byte(doc))
	zw.Close()

	got, err := Extract(buf.Bytes())
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(got) != 1 || got[0] != "Hello, world" {
		t.Errorf("expected runs concatenated, got %q", got)
	}
}

func TestBuild_ParagraphPerSegment(t *testing.T) {
	lines := []string{"one", "", "three"}

	data, err := Build(lines)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	got, err := Extract(data)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 paragraphs, got %d", len(got))
	}
	if got[1] != "" {
		t.Errorf("expected empty middle paragraph, got %q", got[1])
	}
}
