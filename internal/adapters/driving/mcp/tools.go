package mcp

import (
	"context"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/userkit/internal/core/domain"
	"github.com/custodia-labs/userkit/internal/numeric"
)

// UserInput identifies a user by ID.
type UserInput struct {
	ID string `json:"id" jsonschema:"the user ID"`
}

// AddUserInput is the input schema for the add_user tool.
type AddUserInput struct {
	ID     string         `json:"id,omitempty" jsonschema:"the user ID; a random ID is assigned when omitted"`
	Fields map[string]any `json:"fields,omitempty" jsonschema:"arbitrary additional user attributes"`
}

// UserOutput is a single user record.
type UserOutput struct {
	ID     string         `json:"id"`
	Fields map[string]any `json:"fields,omitempty"`
}

// AddUserOutput is the output schema for the add_user tool.
type AddUserOutput struct {
	ID string `json:"id"`

	// Count is a snapshot of the registry size read after the append.
	// Concurrent callers may see each other's appends included.
	Count int `json:"count" jsonschema:"registry size read after the append; may include concurrent appends"`
}

// GetUserOutput is the output schema for the get_user tool.
type GetUserOutput struct {
	Found bool        `json:"found"`
	User  *UserOutput `json:"user,omitempty"`
}

// ListUsersInput is the (empty) input schema for the list_users tool.
type ListUsersInput struct{}

// ListUsersOutput is the output schema for list_users and remove_user.
type ListUsersOutput struct {
	Users []UserOutput `json:"users"`
	Count int          `json:"count"`
}

// CounterInput is the (empty) input schema for the counter tools.
type CounterInput struct{}

// CounterOutput reports the counter value after the call.
type CounterOutput struct {
	Value int `json:"value"`
}

// GreetInput is the input schema for the greet tool.
type GreetInput struct {
	Name string `json:"name" jsonschema:"the name to greet"`
}

// GreetOutput is the output schema for the greet tool.
type GreetOutput struct {
	Greeting string `json:"greeting"`
}

// BinaryInput is the input schema for the add and multiply tools.
type BinaryInput struct {
	A float64 `json:"a" jsonschema:"the first operand"`
	B float64 `json:"b" jsonschema:"the second operand"`
}

// NumberOutput holds a single numeric result.
type NumberOutput struct {
	Result float64 `json:"result"`
}

// ArrayInput is the input schema for the process_array tool.
type ArrayInput struct {
	Values []float64 `json:"values" jsonschema:"the numbers to double"`
}

// ArrayOutput is the output schema for the process_array tool.
type ArrayOutput struct {
	Values []float64 `json:"values"`
}

// FetchInput is the input schema for the fetch_data tool.
type FetchInput struct {
	URL string `json:"url" jsonschema:"the URL to GET"`
}

// FetchOutput is the output schema for the fetch_data tool.
// Found is false on any failure; the cause is not reported.
type FetchOutput struct {
	Found bool `json:"found"`
	Data  any  `json:"data,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "add_user",
		Description: "Append a user to the registry. Duplicate IDs are allowed",
	}, s.handleAddUser)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "remove_user",
		Description: "Remove every user with the given ID",
	}, s.handleRemoveUser)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_user",
		Description: "Get the first user with the given ID",
	}, s.handleGetUser)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_users",
		Description: "List all users in insertion order",
	}, s.handleListUsers)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "counter_increment",
		Description: "Increment the counter by one",
	}, s.handleCounterIncrement)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "counter_decrement",
		Description: "Decrement the counter by one",
	}, s.handleCounterDecrement)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "counter_value",
		Description: "Read the counter",
	}, s.handleCounterValue)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "greet",
		Description: "Build a greeting for a name",
	}, s.handleGreet)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "add",
		Description: "Add two numbers",
	}, s.handleAdd)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "multiply",
		Description: "Multiply two numbers",
	}, s.handleMultiply)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "process_array",
		Description: "Double every number in a list",
	}, s.handleProcessArray)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "fetch_data",
		Description: "GET a URL and return its decoded body",
	}, s.handleFetchData)
}

func (s *Server) handleAddUser(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AddUserInput,
) (*mcp.CallToolResult, AddUserOutput, error) {
	id := input.ID
	if id == "" {
		id = uuid.NewString()
	}

	s.ports.Registry.AddUser(ctx, domain.User{ID: id, Fields: input.Fields})

	return nil, AddUserOutput{ID: id, Count: s.ports.Registry.Len(ctx)}, nil
}

func (s *Server) handleRemoveUser(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input UserInput,
) (*mcp.CallToolResult, ListUsersOutput, error) {
	s.ports.Registry.RemoveUser(ctx, input.ID)
	return nil, s.listUsers(ctx), nil
}

func (s *Server) handleGetUser(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input UserInput,
) (*mcp.CallToolResult, GetUserOutput, error) {
	user, ok := s.ports.Registry.GetUser(ctx, input.ID)
	if !ok {
		return nil, GetUserOutput{Found: false}, nil
	}
	out := toUserOutput(*user)
	return nil, GetUserOutput{Found: true, User: &out}, nil
}

func (s *Server) handleListUsers(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListUsersInput,
) (*mcp.CallToolResult, ListUsersOutput, error) {
	return nil, s.listUsers(ctx), nil
}

func (s *Server) handleCounterIncrement(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ CounterInput,
) (*mcp.CallToolResult, CounterOutput, error) {
	return nil, CounterOutput{Value: s.stepCounter((*domain.Counter).Increment)}, nil
}

func (s *Server) handleCounterDecrement(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ CounterInput,
) (*mcp.CallToolResult, CounterOutput, error) {
	return nil, CounterOutput{Value: s.stepCounter((*domain.Counter).Decrement)}, nil
}

func (s *Server) handleCounterValue(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ CounterInput,
) (*mcp.CallToolResult, CounterOutput, error) {
	return nil, CounterOutput{Value: s.stepCounter(nil)}, nil
}

func (s *Server) handleGreet(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input GreetInput,
) (*mcp.CallToolResult, GreetOutput, error) {
	return nil, GreetOutput{Greeting: domain.Greet(input.Name)}, nil
}

func (s *Server) handleAdd(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input BinaryInput,
) (*mcp.CallToolResult, NumberOutput, error) {
	return nil, NumberOutput{Result: numeric.Add(input.A, input.B)}, nil
}

func (s *Server) handleMultiply(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input BinaryInput,
) (*mcp.CallToolResult, NumberOutput, error) {
	return nil, NumberOutput{Result: numeric.Multiply(input.A, input.B)}, nil
}

func (s *Server) handleProcessArray(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ArrayInput,
) (*mcp.CallToolResult, ArrayOutput, error) {
	return nil, ArrayOutput{Values: numeric.ProcessArray(input.Values)}, nil
}

func (s *Server) handleFetchData(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input FetchInput,
) (*mcp.CallToolResult, FetchOutput, error) {
	data, ok := s.ports.Fetcher.FetchData(ctx, input.URL)
	return nil, FetchOutput{Found: ok, Data: data}, nil
}

// stepCounter applies step (if any) under the counter lock and returns the new value.
func (s *Server) stepCounter(step func(*domain.Counter)) int {
	s.counterMu.Lock()
	defer s.counterMu.Unlock()
	if step != nil {
		step(s.counter)
	}
	return s.counter.Value
}

func (s *Server) listUsers(ctx context.Context) ListUsersOutput {
	users := s.ports.Registry.ListUsers(ctx)
	out := ListUsersOutput{
		Users: make([]UserOutput, len(users)),
		Count: len(users),
	}
	for i := range users {
		out.Users[i] = toUserOutput(users[i])
	}
	return out
}

func toUserOutput(user domain.User) UserOutput {
	return UserOutput{ID: user.ID, Fields: user.Fields}
}
