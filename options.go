package shapeval

import "go.uber.org/zap"

// Option configures an Engine.
type Option func(*Engine)

// WithLogger attaches a structured logger. The boolean entry point logs fatal
// pipeline kinds through it; the default logger is a no-op.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithComponentRefPrefix overrides the shared-component reference prefix used
// for fragment naming, for documents declaring their components under a
// non-standard namespace.
func WithComponentRefPrefix(prefix string) Option {
	return func(e *Engine) {
		if prefix != "" {
			e.refPrefix = prefix
		}
	}
}

// WithSeverityThreshold sets the minimum severity surfaced as diagnostics.
// The default threshold is SeverityError.
func WithSeverityThreshold(s Severity) Option {
	return func(e *Engine) { e.threshold = s }
}

// WithAllNestedKeywords makes the translator emit a diagnostic for every
// nested composition failure, not only missing-required-property ones. Off by
// default: non-required nested causes are dropped together with their
// composition entry.
func WithAllNestedKeywords(on bool) Option {
	return func(e *Engine) { e.expandAll = on }
}

// WithShapeCache reuses compiled validators and fragment name maps per
// (document path, shape name) pair. Without it every call loads, extracts and
// recompiles from scratch.
func WithShapeCache() Option {
	return func(e *Engine) { e.cache = newShapeCache() }
}
