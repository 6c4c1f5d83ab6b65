package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/userkit/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/userkit/internal/core/services"
	"github.com/custodia-labs/userkit/internal/logger"
)

func resetRootState(t *testing.T) {
	t.Helper()
	oldRegistry, oldFetcher, oldSettings := userRegistry, fetcher, settingsService
	t.Cleanup(func() {
		SetBootstrap(nil)
		userRegistry, fetcher, settingsService = oldRegistry, oldFetcher, oldSettings
		verbose = false
		configDir = ""
		logger.SetVerbose(false)
		logger.SetOutput(os.Stderr)
	})
}

func TestRootCmd_BootstrapReceivesConfigDir(t *testing.T) {
	resetRootState(t)

	var gotDir string
	SetBootstrap(func(dir string) (*Services, error) {
		gotDir = dir
		return &Services{
			Registry: services.NewUserRegistry(memory.NewUserStore()),
			Fetcher:  &mockFetcher{},
			Settings: services.NewSettingsService(memory.NewConfigStore()),
		}, nil
	})

	_, err := runCmd(t, "--config-dir", "/tmp/userkit-test", "greet", "Ada")

	require.NoError(t, err)
	assert.Equal(t, "/tmp/userkit-test", gotDir)
	assert.NotNil(t, userRegistry)
	assert.NotNil(t, settingsService)
}

func TestRootCmd_BootstrapError(t *testing.T) {
	resetRootState(t)
	SetBootstrap(func(string) (*Services, error) {
		return nil, errors.New("disk full")
	})

	_, err := runCmd(t, "greet", "Ada")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "initialising: disk full")
}

func TestRootCmd_VerboseFromSettings(t *testing.T) {
	resetRootState(t)
	store := memory.NewConfigStore()
	_ = store.Set("core.verbose", true)
	SetBootstrap(func(string) (*Services, error) {
		return &Services{Settings: services.NewSettingsService(store)}, nil
	})

	_, err := runCmd(t, "greet", "Ada")

	require.NoError(t, err)
	assert.True(t, logger.IsVerbose())
}

func TestRootCmd_VerboseFlag(t *testing.T) {
	resetRootState(t)

	_, err := runCmd(t, "--verbose", "greet", "Ada")

	require.NoError(t, err)
	assert.True(t, logger.IsVerbose())
}

func TestMCPServeCmd_ServicesNotConfigured(t *testing.T) {
	resetRootState(t)
	userRegistry = nil
	fetcher = nil

	_, err := runCmd(t, "mcp", "serve")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "services not configured")
}
