// Command userkit is the entry point for the userkit CLI and MCP server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/userkit/internal/adapters/driven/config/file"
	"github.com/custodia-labs/userkit/internal/adapters/driven/httpclient"
	"github.com/custodia-labs/userkit/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/userkit/internal/adapters/driving/cli"
	"github.com/custodia-labs/userkit/internal/core/services"
)

// Set via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetBootstrap(bootstrap)

	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// bootstrap wires adapters into services. Users are held in memory only.
func bootstrap(configDir string) (*cli.Services, error) {
	configStore, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}

	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}

	client := httpclient.New(http.DefaultClient, settings.Fetch)
	fetchService := services.NewFetchService(client)
	fetchService.SetUserAgent(settings.Fetch.UserAgent)

	return &cli.Services{
		Registry: services.NewUserRegistry(memory.NewUserStore()),
		Fetcher:  fetchService,
		Settings: settingsService,
	}, nil
}
