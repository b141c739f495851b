// Package logging provides concrete implementations of the bmecat.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes prefixed messages to stderr with thread-safe output
//   - NullLogger: Discards all messages (useful for testing)
//   - SlogLogger: Forwards messages to a *slog.Logger (the CLI's text and json log formats)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
