package translator

import "fmt"

// TranslationError reports a failed provider call. Status holds the HTTP
// status code when the provider answered, and is zero when the request
// never completed or the response body had an unexpected shape.
type TranslationError struct {
	Provider string
	Status   int
	Reason   string
	Err      error
}

func (e *TranslationError) Error() string {
	switch {
	case e.Status != 0 && e.Reason != "":
		return fmt.Sprintf("%s: status %d: %s", e.Provider, e.Status, e.Reason)
	case e.Status != 0:
		return fmt.Sprintf("%s: unexpected status %d", e.Provider, e.Status)
	case e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Provider, e.Reason, e.Err)
	default:
		return fmt.Sprintf("%s: %s", e.Provider, e.Reason)
	}
}

func (e *TranslationError) Unwrap() error { return e.Err }
