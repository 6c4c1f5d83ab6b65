package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for userkit resources.
	uriScheme = "userkit://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "users",
		Name:        "users",
		Description: "All users in the registry, in insertion order",
		MIMEType:    "application/json",
	}, s.handleUsersResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "users/{userId}",
		Name:        "user",
		Description: "The first user with the given ID",
		MIMEType:    "application/json",
	}, s.handleUserResource)
}

// handleUsersResource returns the full user list.
func (s *Server) handleUsersResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(s.listUsers(ctx).Users, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling users: %w", err)
	}

	return jsonResource(req.Params.URI, data), nil
}

// handleUserResource returns a single user.
func (s *Server) handleUserResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	userID := extractUserID(req.Params.URI)
	if userID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	user, ok := s.ports.Registry.GetUser(ctx, userID)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	data, err := json.MarshalIndent(toUserOutput(*user), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling user: %w", err)
	}

	return jsonResource(req.Params.URI, data), nil
}

func jsonResource(uri string, data []byte) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}
}

// extractUserID extracts the user ID from a URI like userkit://users/{userId}.
func extractUserID(uri string) string {
	const prefix = uriScheme + "users/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
