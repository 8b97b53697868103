package logger

import "context"

// Sink exposes the global logger as a debug-only facade for pipeline components
// that receive pre-formatted messages.
type Sink struct {
	// name is attached to every message emitted through the sink.
	name string
}

// NewSink creates a Sink whose messages are emitted by a logger with the given name.
func NewSink(name string) *Sink {
	return &Sink{name: name}
}

// IsDebugEnabled reports whether debug messages are currently emitted.
// The sink is gated on the global level only, whatever logger the context carries.
func (s *Sink) IsDebugEnabled() bool {
	return IsDebugLevel()
}

// Debug emits msg at debug level through the context logger.
// Nothing is emitted while the global level is above debug, so the output always agrees
// with IsDebugEnabled; a context logger may still drop the message by its own level.
func (s *Sink) Debug(ctx context.Context, msg string) {
	if !s.IsDebugEnabled() {
		return
	}

	l := FromContext(ctx)
	if s.name != "" {
		l = l.Named(s.name)
	}

	l.Debug(msg)
}
