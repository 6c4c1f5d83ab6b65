package mcp

import (
	"github.com/custodia-labs/userkit/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Registry holds users for the lifetime of the server.
	Registry driving.UserRegistry

	// Fetcher retrieves remote resources.
	Fetcher driving.Fetcher

	// CounterStart is the initial value of the server's counter.
	CounterStart int
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Registry == nil {
		return ErrMissingRegistry
	}
	if p.Fetcher == nil {
		return ErrMissingFetcher
	}
	return nil
}
