// Package domain defines the core business entities for sercha-sources.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - CollectionSource: A collection endpoint identified by type and URL
//   - CollectionSources: The ordered, duplicate-free source list
//   - AppSettings: Storage location and logging configuration
//   - Error types: IOError, LockError, DecodeError, UnknownTypeError, InvalidURLError
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
