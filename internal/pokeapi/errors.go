package pokeapi

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when PokeAPI answers 404. Id ranges are sparse
	// for some kinds, so callers should treat it as an expected outcome.
	ErrNotFound = errors.New("pokeapi: record not found")

	// ErrFetchFailed is wrapped by every FetchError.
	ErrFetchFailed = errors.New("pokeapi: fetch failed")
)

// FetchError describes a request that failed for good, either because it was
// not retryable or because all attempts were used up.
type FetchError struct {
	URL        string
	StatusCode int
	Attempts   int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("pokeapi: fetching %s failed after %d attempt(s): status %d", e.URL, e.Attempts, e.StatusCode)
	}
	return fmt.Sprintf("pokeapi: fetching %s failed after %d attempt(s): %v", e.URL, e.Attempts, e.Err)
}

func (e *FetchError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrFetchFailed}
	}
	return []error{ErrFetchFailed, e.Err}
}

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status code %d", e.code)
}
