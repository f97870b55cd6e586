package shapeval

import (
	"context"

	"go.uber.org/zap"
)

// Engine runs the document -> shape -> validator -> diagnostics pipeline.
// A zero-option Engine recompiles on every call and logs nowhere; see the
// Options for caching, logging and translator behavior. Engines are safe for
// concurrent use.
type Engine struct {
	log       *zap.Logger
	refPrefix string
	threshold Severity
	expandAll bool
	cache     *shapeCache
}

// New constructs an Engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		log:       zap.NewNop(),
		refPrefix: DefaultComponentRefPrefix,
		threshold: SeverityError,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Check validates raw candidate JSON against the named shape of the document
// at docPath. It returns (true, nil, nil) for valid input, (false, diags, nil)
// for well-formed input that violates the shape, and (false, nil, err) with a
// tagged *Error when the pipeline itself fails; KindOf distinguishes the
// cases.
func (e *Engine) Check(ctx context.Context, docPath, shapeName string, raw []byte) (bool, Diagnostics, error) {
	cv, err := e.contextFor(ctx, docPath, shapeName, raw)
	if err != nil {
		return false, nil, err
	}
	rep, err := cv.Run()
	if err != nil {
		return false, nil, err
	}
	if rep == nil {
		return true, nil, nil
	}
	return false, translateWith(rep, cv.Names, e.threshold, e.expandAll), nil
}

// Validate is the simple boolean entry point. Every fatal pipeline kind is
// logged and degrades to false; nothing is raised past this function, so a
// document-authoring problem rejects the input instead of crashing the
// caller.
func (e *Engine) Validate(ctx context.Context, docPath, shapeName string, raw []byte) bool {
	valid, _, err := e.Check(ctx, docPath, shapeName, raw)
	if err != nil {
		e.log.Warn("input rejected before validation",
			zap.String("document", docPath),
			zap.String("shape", shapeName),
			zap.Stringer("kind", KindOf(err)),
			zap.Error(err))
		return false
	}
	return valid
}

// contextFor assembles the compiled validation context for one call, going
// through the cache when one is configured.
func (e *Engine) contextFor(ctx context.Context, docPath, shapeName string, raw []byte) (*CompiledValidationContext, error) {
	if e.cache != nil {
		if ce, ok := e.cache.get(docPath, shapeName); ok {
			return &CompiledValidationContext{Validator: ce.validator, Names: ce.names, ShapeName: shapeName, Input: raw}, nil
		}
	}
	doc, err := LoadDocument(ctx, docPath)
	if err != nil {
		return nil, err
	}
	shape, names, err := ExtractShape(doc, shapeName, e.refPrefix)
	if err != nil {
		return nil, err
	}
	sch, err := CompileShape(doc, shape)
	if err != nil {
		return nil, err
	}
	if e.cache != nil {
		e.cache.put(docPath, shapeName, &cacheEntry{validator: sch, names: names})
	}
	return &CompiledValidationContext{Validator: sch, Names: names, ShapeName: shapeName, Input: raw}, nil
}

var defaultEngine = New()

// Validate validates with a default, option-free Engine.
func Validate(ctx context.Context, docPath, shapeName string, raw []byte) bool {
	return defaultEngine.Validate(ctx, docPath, shapeName, raw)
}

// Check checks with a default, option-free Engine.
func Check(ctx context.Context, docPath, shapeName string, raw []byte) (bool, Diagnostics, error) {
	return defaultEngine.Check(ctx, docPath, shapeName, raw)
}
