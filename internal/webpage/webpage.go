// Package webpage extracts the translatable text of a web article.
//
// The extraction is deliberately lossy: script and style elements are
// discarded, everything else is flattened to a single line of text with
// single spaces between words. Paragraph boundaries are not preserved.
package webpage

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"
)

// FetchError reports that an article could not be fetched: either the
// request itself failed or the server answered with a non-2xx status.
type FetchError struct {
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Extractor fetches web pages and reduces them to plain text.
type Extractor struct {
	client *http.Client
}

// NewExtractor creates an Extractor with a default 30 second HTTP timeout.
func NewExtractor() *Extractor {
	return &Extractor{client: &http.Client{Timeout: 30 * time.Second}}
}

// NewExtractorWithClient creates an Extractor using the given HTTP client.
func NewExtractorWithClient(client *http.Client) *Extractor {
	return &Extractor{client: client}
}

// Extract fetches url and returns its visible text as one flat string.
// Script and style contents never appear in the result.
func (x *Extractor) Extract(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}

	resp, err := x.client.Do(req)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &FetchError{URL: url, Status: resp.StatusCode}
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}

	return Text(doc), nil
}

// Text collects the text nodes of a parsed HTML tree, skipping script and
// style subtrees entirely, and joins the words with single spaces.
func Text(root *html.Node) string {
	var words []string

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			words = append(words, strings.Fields(n.Data)...)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	return strings.Join(words, " ")
}
