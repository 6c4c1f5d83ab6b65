package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure userkit settings.

Settings are stored in config.toml inside the configuration directory.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a single setting",
	Long: `Set a single setting and persist it.

Available keys:
  core.verbose                enable debug logging (true/false)
  fetch.requests_per_second   sustained fetch rate, 0 for unlimited
  fetch.burst                 maximum requests at once when rate limited
  fetch.user_agent            User-Agent header sent by fetch`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Current Settings")
	fmt.Fprintln(out, "================")
	fmt.Fprintln(out)

	fmt.Fprintln(out, "[Core]")
	fmt.Fprintf(out, "  Verbose: %t\n", settings.Verbose)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "[Fetch]")
	if settings.Fetch.IsRateLimited() {
		fmt.Fprintf(out, "  Rate: %s req/s (burst %d)\n", formatNumber(settings.Fetch.RequestsPerSecond), settings.Fetch.Burst)
	} else {
		fmt.Fprintln(out, "  Rate: unlimited")
	}
	userAgent := settings.Fetch.UserAgent
	if userAgent == "" {
		userAgent = "(default)"
	}
	fmt.Fprintf(out, "  User-Agent: %s\n", userAgent)

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w (keys: %s)", key, err, strings.Join(settingsService.Keys(), ", "))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
	return nil
}
