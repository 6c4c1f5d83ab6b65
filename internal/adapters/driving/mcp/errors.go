// Package mcp provides an MCP (Model Context Protocol) server adapter for userkit.
// It exposes the user registry, counter, helpers and remote fetch as tools.
package mcp

import "errors"

var (
	// ErrMissingRegistry is returned when the user registry is not provided.
	ErrMissingRegistry = errors.New("mcp: user registry is required")

	// ErrMissingFetcher is returned when the fetcher is not provided.
	ErrMissingFetcher = errors.New("mcp: fetcher is required")
)
