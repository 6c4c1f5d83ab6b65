package driving

import "github.com/custodia-labs/userkit/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.Settings, error)

	// Save persists application settings.
	Save(settings *domain.Settings) error

	// Set updates a single setting from its string form.
	Set(key, value string) error

	// Keys returns the recognised setting keys.
	Keys() []string

	// GetDefaults returns default settings.
	GetDefaults() domain.Settings
}
