// Package logging provides concrete implementations of the primer.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes prefixed lines to stderr (or any io.Writer)
//   - NullLogger: Discards all messages (useful for testing)
//
// Standard output is reserved for prompts and the final success lines, so
// loggers never write there by default.
package logging
