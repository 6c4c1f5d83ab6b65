package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/userkit/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/userkit/internal/core/services"
)

func setupSettingsTest() (*services.SettingsService, func()) {
	oldService := settingsService
	service := services.NewSettingsService(memory.NewConfigStore())
	settingsService = service
	return service, func() {
		settingsService = oldService
	}
}

func TestSettingsCmd_ShowDefaults(t *testing.T) {
	_, cleanup := setupSettingsTest()
	defer cleanup()

	out, err := runCmd(t, "settings", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "Verbose: false")
	assert.Contains(t, out, "Rate: unlimited")
	assert.Contains(t, out, "User-Agent: userkit")
}

func TestSettingsCmd_SetThenShow(t *testing.T) {
	service, cleanup := setupSettingsTest()
	defer cleanup()

	out, err := runCmd(t, "settings", "set", "fetch.requests_per_second", "2.5")
	require.NoError(t, err)
	assert.Contains(t, out, "Set fetch.requests_per_second = 2.5")

	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, 2.5, settings.Fetch.RequestsPerSecond)

	out, err = runCmd(t, "settings")
	require.NoError(t, err)
	assert.Contains(t, out, "Rate: 2.5 req/s (burst 1)")
}

func TestSettingsCmd_SetUnknownKey(t *testing.T) {
	_, cleanup := setupSettingsTest()
	defer cleanup()

	_, err := runCmd(t, "settings", "set", "nope", "1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch.burst")
}

func TestSettingsCmd_ServiceNotConfigured(t *testing.T) {
	_, cleanup := setupSettingsTest()
	defer cleanup()
	settingsService = nil

	_, err := runCmd(t, "settings", "show")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "settings service not configured")
}
