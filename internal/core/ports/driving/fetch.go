package driving

import "context"

// Fetcher retrieves remote resources over HTTP.
type Fetcher interface {
	// FetchData returns the decoded body of url.
	// On any failure the cause is reported and (nil, false) is returned.
	FetchData(ctx context.Context, url string) (any, bool)
}
