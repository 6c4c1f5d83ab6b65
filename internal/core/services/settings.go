package services

import (
	"fmt"
	"strconv"

	"github.com/custodia-labs/userkit/internal/core/domain"
	"github.com/custodia-labs/userkit/internal/core/ports/driven"
	"github.com/custodia-labs/userkit/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyVerbose        = "core.verbose"
	keyFetchRate      = "fetch.requests_per_second"
	keyFetchBurst     = "fetch.burst"
	keyFetchUserAgent = "fetch.user_agent"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.Settings, error) {
	if s.configStore == nil {
		return nil, domain.ErrNotImplemented
	}
	defaults := domain.DefaultSettings()

	settings := &domain.Settings{
		Verbose: s.getBool(keyVerbose, defaults.Verbose),
		Fetch: domain.FetchSettings{
			RequestsPerSecond: s.getFloat(keyFetchRate, defaults.Fetch.RequestsPerSecond),
			Burst:             s.getInt(keyFetchBurst, defaults.Fetch.Burst),
			UserAgent:         s.getString(keyFetchUserAgent, defaults.Fetch.UserAgent),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.Settings) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}
	if err := settings.Fetch.Validate(); err != nil {
		return err
	}

	if err := s.configStore.Set(keyVerbose, settings.Verbose); err != nil {
		return fmt.Errorf("save verbose: %w", err)
	}
	if err := s.configStore.Set(keyFetchRate, settings.Fetch.RequestsPerSecond); err != nil {
		return fmt.Errorf("save fetch rate: %w", err)
	}
	if err := s.configStore.Set(keyFetchBurst, settings.Fetch.Burst); err != nil {
		return fmt.Errorf("save fetch burst: %w", err)
	}
	if err := s.configStore.Set(keyFetchUserAgent, settings.Fetch.UserAgent); err != nil {
		return fmt.Errorf("save fetch user_agent: %w", err)
	}

	return nil
}

// Set updates a single setting from its string form.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	switch key {
	case keyVerbose:
		v, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be a boolean", domain.ErrInvalidInput, key)
		}
		settings.Verbose = v
	case keyFetchRate:
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%w: %s must be a number", domain.ErrInvalidInput, key)
		}
		settings.Fetch.RequestsPerSecond = v
	case keyFetchBurst:
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer", domain.ErrInvalidInput, key)
		}
		settings.Fetch.Burst = v
	case keyFetchUserAgent:
		settings.Fetch.UserAgent = value
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	return s.Save(settings)
}

// Keys returns the recognised setting keys.
func (s *SettingsService) Keys() []string {
	return []string{keyVerbose, keyFetchRate, keyFetchBurst, keyFetchUserAgent}
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.Settings {
	return domain.DefaultSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetString(key)
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetFloat(key)
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}
