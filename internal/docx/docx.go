// Package docx reads and writes Word documents at paragraph granularity.
//
// Only paragraph text survives a round trip. Runs, styles, tables and every
// other piece of formatting are dropped: the document pipeline promises
// paragraph order, nothing more.
package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// ParseError reports that a byte stream is not a readable Word document.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse document: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("parse document: %s", e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Err }

const documentPart = "word/document.xml"

// documentXML mirrors the subset of word/document.xml we care about.
// Namespaces are ignored on purpose; local element names are unambiguous here.
type documentXML struct {
	Body struct {
		Paragraphs []paragraphXML `xml:"p"`
	} `xml:"body"`
}

type paragraphXML struct {
	Runs []struct {
		Text []struct {
			Content string `xml:",chardata"`
		} `xml:"t"`
	} `xml:"r"`
}

func (p paragraphXML) text() string {
	var sb strings.Builder
	for _, r := range p.Runs {
		for _, t := range r.Text {
			sb.WriteString(t.Content)
		}
	}
	return sb.String()
}

// Extract returns the text of every paragraph in source order, one string
// per paragraph. Blank paragraphs yield empty strings; they are kept so the
// rebuilt document preserves blank lines.
func Extract(data []byte) ([]string, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &ParseError{Reason: "not a zip archive", Err: err}
	}

	var content []byte
	for _, file := range reader.File {
		if file.Name != documentPart {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return nil, &ParseError{Reason: "cannot open " + documentPart, Err: err}
		}
		content, err = io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, &ParseError{Reason: "cannot read " + documentPart, Err: err}
		}
		break
	}
	if content == nil {
		return nil, &ParseError{Reason: documentPart + " missing"}
	}

	var doc documentXML
	if err := xml.Unmarshal(content, &doc); err != nil {
		return nil, &ParseError{Reason: "malformed " + documentPart, Err: err}
	}

	paragraphs := make([]string, len(doc.Body.Paragraphs))
	for i, p := range doc.Body.Paragraphs {
		paragraphs[i] = p.text()
	}
	return paragraphs, nil
}

const (
	contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/><Default Extension="xml" ContentType="application/xml"/><Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/></Types>`

	relsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/></Relationships>`

	documentHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`

	documentFooter = `</w:body></w:document>`
)

// Build serialises a new Word document containing one paragraph per entry
// of lines, in order. Empty entries become empty paragraphs.
func Build(lines []string) ([]byte, error) {
	var doc bytes.Buffer
	doc.WriteString(documentHeader)
	for _, line := range lines {
		if line == "" {
			doc.WriteString(`<w:p/>`)
			continue
		}
		doc.WriteString(`<w:p><w:r><w:t xml:space="preserve">`)
		if err := xml.EscapeText(&doc, []byte(line)); err != nil {
			return nil, fmt.Errorf("escape paragraph text: %w", err)
		}
		doc.WriteString(`</w:t></w:r></w:p>`)
	}
	doc.WriteString(documentFooter)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	parts := []struct {
		name string
		body string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", relsXML},
		{documentPart, doc.String()},
	}
	for _, part := range parts {
		w, err := zw.Create(part.name)
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", part.name, err)
		}
		if _, err := w.Write([]byte(part.body)); err != nil {
			return nil, fmt.Errorf("write %s: %w", part.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalize document: %w", err)
	}

	return buf.Bytes(), nil
}
