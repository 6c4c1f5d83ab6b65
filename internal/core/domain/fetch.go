package domain

import "time"

// FetchOutcome is the tagged result of a single remote fetch.
// Exactly one of Body (on success) or Err (on failure) is meaningful.
type FetchOutcome struct {
	// URL is the requested resource.
	URL string

	// StatusCode is the HTTP status, or 0 if no response was received.
	StatusCode int

	// Body is the decoded response body: the JSON value when the body
	// parses as JSON, otherwise the raw body as Text.
	Body any

	// Err is the failure cause. Nil on success.
	Err error

	// Duration is how long the call took.
	Duration time.Duration
}

// OK returns true if the fetch succeeded.
func (o FetchOutcome) OK() bool {
	return o.Err == nil
}

// Value collapses the outcome to a presence/absence result.
// The failure cause is not visible through this view.
func (o FetchOutcome) Value() (any, bool) {
	if o.Err != nil {
		return nil, false
	}
	return o.Body, true
}

// Text is a response body that did not decode as JSON.
// It marshals as a plain JSON string.
type Text string
