// Package pipeline sequences the extract, translate and build stages of one
// translation request. Each invocation is independent: nothing is cached,
// retried or resumed, and the first stage error aborts the run.
package pipeline

import (
	"context"
	"strings"

	"github.com/valpere/doctrans/internal/docx"
)

// State names the stage a pipeline run is in. A run moves strictly
// forward: Extracting, Translating, Building, then Done or Failed.
type State int

const (
	StateExtracting State = iota
	StateTranslating
	StateBuilding
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateExtracting:
		return "extracting"
	case StateTranslating:
		return "translating"
	case StateBuilding:
		return "building"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is the outcome of one pipeline run. On failure Artifact is nil and
// State is StateFailed; there are no partial artifacts.
type Result struct {
	Original   string
	Translated string
	Artifact   []byte
	State      State
}

// ArticleExtractor pulls the plain text out of a web page.
type ArticleExtractor interface {
	Extract(ctx context.Context, url string) (string, error)
}

// GenerativeTranslator translates text toward a target named by its
// human-readable label, returning markdown.
type GenerativeTranslator interface {
	Translate(ctx context.Context, text, targetLabel string) (string, error)
}

// PhraseTranslator translates text between two ISO language codes.
type PhraseTranslator interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

// Article runs the web-article pipeline: extract the page text, translate
// it in one request, emit the markdown artifact.
type Article struct {
	extractor  ArticleExtractor
	translator GenerativeTranslator
}

func NewArticle(extractor ArticleExtractor, translator GenerativeTranslator) *Article {
	return &Article{extractor: extractor, translator: translator}
}

func (a *Article) Run(ctx context.Context, url, targetLabel string) (*Result, error) {
	result := &Result{State: StateExtracting}

	text, err := a.extractor.Extract(ctx, url)
	if err != nil {
		result.State = StateFailed
		return result, err
	}
	result.Original = text

	result.State = StateTranslating
	translated, err := a.translator.Translate(ctx, text, targetLabel)
	if err != nil {
		result.State = StateFailed
		return result, err
	}
	result.Translated = translated

	result.State = StateBuilding
	result.Artifact = []byte(translated)

	result.State = StateDone
	return result, nil
}

// DetectFunc resolves a source language code from the extracted text.
// It reports false when no language could be determined.
type DetectFunc func(text string) (string, bool)

// Document runs the Word-document pipeline: read the paragraphs, join them
// with newlines into a single translation request, then rebuild a document
// with one paragraph per translated line. If the provider returns a
// different number of lines than it was sent, the rebuilt document has that
// number of paragraphs; the divergence is accepted, not corrected.
type Document struct {
	translator PhraseTranslator
	detect     DetectFunc
}

// NewDocument creates a document pipeline. detect may be nil; it is only
// consulted when Run is called with sourceLang "auto" or empty.
func NewDocument(translator PhraseTranslator, detect DetectFunc) *Document {
	return &Document{translator: translator, detect: detect}
}

func (d *Document) Run(ctx context.Context, data []byte, sourceLang, targetLang string) (*Result, error) {
	result := &Result{State: StateExtracting}

	paragraphs, err := docx.Extract(data)
	if err != nil {
		result.State = StateFailed
		return result, err
	}
	result.Original = strings.Join(paragraphs, "\n")

	if (sourceLang == "" || sourceLang == "auto") && d.detect != nil {
		if detected, ok := d.detect(result.Original); ok {
			sourceLang = detected
		}
	}

	result.State = StateTranslating
	translated, err := d.translator.Translate(ctx, result.Original, sourceLang, targetLang)
	if err != nil {
		result.State = StateFailed
		return result, err
	}
	result.Translated = translated

	result.State = StateBuilding
	artifact, err := docx.Build(strings.Split(translated, "\n"))
	if err != nil {
		result.State = StateFailed
		return result, err
	}
	result.Artifact = artifact

	result.State = StateDone
	return result, nil
}
