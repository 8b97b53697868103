// Package logger provides a structured logging solution using the Zap logging library.
// It includes utilities for creating and managing loggers, setting log levels,
// and integrating logging with context for enhanced traceability.
// Sink adapts the global logger to components that only need debug output.
package logger
