// Package options provides the functional-options surface used to configure
// non-predicate behavior of the clipping engine, such as diagnostic tracing
// of the sweep. There is deliberately no epsilon/tolerance knob: the core
// predicates are exact, and a tolerance would break that.
package options

import "log"

// EngineOptions holds the resolved configuration for a single Boolean
// operation call.
type EngineOptions struct {
	// Trace, when true, causes the sweep to log each event it processes as
	// the status-structure insertion or erasure it performs. Selector
	// decisions are not logged.
	Trace bool

	// Logger receives trace output when Trace is enabled. Defaults to
	// log.Default() if left nil.
	Logger *log.Logger
}

// EngineOptionFunc mutates an EngineOptions. Functions that accept a variadic
// ...EngineOptionFunc allow callers to opt into tracing without changing the
// primary function signature.
type EngineOptionFunc func(*EngineOptions)

// WithTrace enables sweep tracing, optionally directing it to a custom
// logger. Passing a nil logger keeps log.Default().
func WithTrace(logger *log.Logger) EngineOptionFunc {
	return func(o *EngineOptions) {
		o.Trace = true
		if logger != nil {
			o.Logger = logger
		}
	}
}

// Apply folds a set of EngineOptionFunc values onto a default EngineOptions.
func Apply(opts ...EngineOptionFunc) EngineOptions {
	resolved := EngineOptions{Logger: log.Default()}
	for _, opt := range opts {
		opt(&resolved)
	}
	return resolved
}

// Logf writes a trace line if tracing is enabled, a no-op otherwise.
func (o EngineOptions) Logf(format string, args ...any) {
	if o.Trace {
		o.Logger.Printf(format, args...)
	}
}
