package webpage

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/net/html"
)

func serve(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
}

func TestExtract_StripsScript(t *testing.T) {
	server := serve(t, http.StatusOK, `<html><body><p>Hello</p><script>evil()</script></body></html>`)
	defer server.Close()

	x := NewExtractorWithClient(server.Client())

	text, err := x.Extract(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "Hello" {
		t.Errorf("expected %q, got %q", "Hello", text)
	}
}

func TestExtract_StripsStyle(t *testing.T) {
	server := serve(t, http.StatusOK,
		`<html><head><style>body { color: red }</style></head><body><h1>Title</h1><p>First paragraph.</p></body></html>`)
	defer server.Close()

	x := NewExtractorWithClient(server.Client())

	text, err := x.Extract(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(text, "color") {
		t.Errorf("style contents leaked into extracted text: %q", text)
	}
	if text != "Title First paragraph." {
		t.Errorf("expected flattened text, got %q", text)
	}
}

func TestExtract_CollapsesWhitespace(t *testing.T) {
	server := serve(t, http.StatusOK, "<p>  one \n\t two  </p><p>three</p>")
	defer server.Close()

	x := NewExtractorWithClient(server.Client())

	text, err := x.Extract(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "one two three" {
		t.Errorf("expected %q, got %q", "one two three", text)
	}
}

func TestExtract_NonOKStatus(t *testing.T) {
	server := serve(t, http.StatusNotFound, "not here")
	defer server.Close()

	x := NewExtractorWithClient(server.Client())

	_, err := x.Extract(context.Background(), server.URL)
	if err == nil {
		t.Fatal("expected error for 404 response")
	}

	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FetchError, got %T", err)
	}
	if fe.Status != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", fe.Status)
	}
}

func TestExtract_ConnectionRefused(t *testing.T) {
	server := serve(t, http.StatusOK, "")
	server.Close()

	x := NewExtractor()

	_, err := x.Extract(context.Background(), server.URL)
	if err == nil {
		t.Fatal("expected error for unreachable server")
	}

	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FetchError, got %T", err)
	}
	if fe.Status != 0 {
		t.Errorf("expected no HTTP status on transport failure, got %d", fe.Status)
	}
}

func TestText_NestedScript(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(
		`<div>before<div><script type="text/javascript">var secret = 1;</script>inner</div>after</div>`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	text := Text(doc)
	if strings.Contains(text, "secret") {
		t.Errorf("script contents leaked: %q", text)
	}
	if text != "before inner after" {
		t.Errorf("expected %q, got %q", "before inner after", text)
	}
}
