// Package cli provides the cobra command tree for the userkit binary.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/userkit/internal/core/ports/driving"
	"github.com/custodia-labs/userkit/internal/logger"
)

var (
	version   = "dev"
	verbose   bool
	configDir string
)

// Services wired in by SetServices or the bootstrap function.
var (
	userRegistry    driving.UserRegistry
	fetcher         driving.Fetcher
	settingsService driving.SettingsService
)

// Services groups the driving ports the commands use.
type Services struct {
	Registry driving.UserRegistry
	Fetcher  driving.Fetcher
	Settings driving.SettingsService
}

// BootstrapFunc builds services from the resolved config directory.
// An empty configDir means the default location.
type BootstrapFunc func(configDir string) (*Services, error)

var bootstrap BootstrapFunc

var rootCmd = &cobra.Command{
	Use:   "userkit",
	Short: "A small toolkit: user registry, counter, helpers and remote fetch",
	Long: `userkit bundles a handful of independent capabilities behind one binary.

Pure helpers (greet, add, multiply, double) run directly. The user registry
and counter live in memory for the lifetime of the MCP server.`,
	SilenceUsage:      true,
	PersistentPreRunE: runBootstrap,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.userkit)")
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetBootstrap sets the function that builds services before a command runs.
func SetBootstrap(fn BootstrapFunc) {
	bootstrap = fn
}

// SetServices injects services directly.
func SetServices(s *Services) {
	userRegistry = s.Registry
	fetcher = s.Fetcher
	settingsService = s.Settings
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func runBootstrap(_ *cobra.Command, _ []string) error {
	if verbose {
		logger.SetVerbose(true)
	}
	if bootstrap == nil {
		return nil
	}

	services, err := bootstrap(configDir)
	if err != nil {
		return fmt.Errorf("initialising: %w", err)
	}
	SetServices(services)

	if settingsService != nil {
		if settings, err := settingsService.Get(); err == nil && settings.Verbose {
			logger.SetVerbose(true)
		}
	}
	logger.Debug("userkit %s starting", version)
	return nil
}
