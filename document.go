package shapeval

import (
	"context"
	"fmt"
	"os"

	"github.com/getkin/kin-openapi/openapi3"
)

// Document is the fully resolved in-memory form of a specification document.
// Loading resolves internal references eagerly, so downstream extraction never
// re-enters the loader. A Document is read-only after construction.
type Document struct {
	spec *openapi3.T
	path string
}

// Path returns the resource path the document was loaded from.
func (d *Document) Path() string { return d.path }

// Schemas returns the document's named shape components. The map may be nil
// when the document declares no components.
func (d *Document) Schemas() openapi3.Schemas {
	if d.spec == nil || d.spec.Components == nil {
		return nil
	}
	return d.spec.Components.Schemas
}

// LoadDocument reads the specification document at path and parses it. It
// fails with KindResource when the file cannot be read and with KindParse when
// the content is not a well-formed, reference-complete specification.
func LoadDocument(ctx context.Context, path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newError(KindResource, "load", fmt.Errorf("read %s: %w", path, err))
	}
	return ParseDocument(ctx, path, data)
}

// ParseDocument parses specification bytes that have already been read. path
// only labels errors and cache keys; no I/O happens here. YAML and JSON input
// are both accepted.
func ParseDocument(ctx context.Context, path string, data []byte) (*Document, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx
	spec, err := loader.LoadFromData(data)
	if err != nil {
		return nil, newError(KindParse, "load", fmt.Errorf("parse %s: %w", path, err))
	}
	// Validate enforces reference-completeness on top of ref resolution.
	if err := spec.Validate(ctx); err != nil {
		return nil, newError(KindParse, "load", fmt.Errorf("resolve %s: %w", path, err))
	}
	return &Document{spec: spec, path: path}, nil
}
