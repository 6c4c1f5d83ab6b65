package domain

import "fmt"

// Settings holds application configuration.
type Settings struct {
	// Verbose enables debug logging.
	Verbose bool

	// Fetch configures the remote fetch client.
	Fetch FetchSettings
}

// FetchSettings configures outbound requests made by the fetch service.
type FetchSettings struct {
	// RequestsPerSecond is the sustained request rate. Zero or less means unlimited.
	RequestsPerSecond float64

	// Burst is the maximum number of requests allowed at once.
	Burst int

	// UserAgent is sent with every request when non-empty.
	UserAgent string
}

// IsRateLimited returns true if a finite request rate is configured.
func (f FetchSettings) IsRateLimited() bool {
	return f.RequestsPerSecond > 0
}

// Validate checks the fetch settings are usable.
func (f FetchSettings) Validate() error {
	if f.IsRateLimited() && f.Burst < 1 {
		return fmt.Errorf("%w: burst must be at least 1 when a rate is set", ErrInvalidInput)
	}
	return nil
}

// DefaultSettings returns the default application settings.
func DefaultSettings() Settings {
	return Settings{
		Verbose: false,
		Fetch: FetchSettings{
			RequestsPerSecond: 0,
			Burst:             1,
			UserAgent:         "userkit",
		},
	}
}
