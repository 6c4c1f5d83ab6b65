package mcp

import (
	"context"

	"github.com/custodia-labs/userkit/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/userkit/internal/core/services"
)

// mockFetcher is a mock implementation of driving.Fetcher.
type mockFetcher struct {
	data    any
	ok      bool
	lastURL string
}

func (m *mockFetcher) FetchData(_ context.Context, url string) (any, bool) {
	m.lastURL = url
	return m.data, m.ok
}

// newTestServer builds a server backed by an in-memory registry.
func newTestServer(fetcher *mockFetcher) (*Server, *services.UserRegistry) {
	registry := services.NewUserRegistry(memory.NewUserStore())
	if fetcher == nil {
		fetcher = &mockFetcher{}
	}
	server, err := NewServer(&Ports{Registry: registry, Fetcher: fetcher})
	if err != nil {
		panic(err)
	}
	return server, registry
}
