// Package domain defines the core business entities for userkit.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - User: A record held by the user registry
//   - Counter: A mutable integer stepped by one
//   - FetchOutcome: The tagged result of a single remote fetch
//   - Settings: Application configuration values
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
