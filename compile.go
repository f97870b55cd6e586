package shapeval

import (
	"bytes"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	json "github.com/goccy/go-json"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// shapeResourceURL is the synthetic resource name compiled shapes are
// registered under. It never leaves the process.
const shapeResourceURL = "shapeval:///shape.json"

// CompiledValidationContext bundles one validation call's moving parts: the
// compiled validator, the fragment name map built alongside it, the target
// shape name and the raw candidate input. It is a value object consumed once
// by Run and, on failure, by the translator.
type CompiledValidationContext struct {
	Validator *jsonschema.Schema
	Names     FragmentNameMap
	ShapeName string
	Input     []byte
}

// Run executes the compiled validator against the candidate input. A nil
// report with nil error means the input is valid.
func (cv *CompiledValidationContext) Run() (*FailureReport, error) {
	return RunValidation(cv.Validator, cv.Input)
}

// CompileShape serializes the shape definition to its canonical JSON form,
// strips the authoring-only "$schema" dialect marker, and compiles a reusable
// validator. The compiled schema is stateless and safe for concurrent reuse.
func CompileShape(doc *Document, shape *openapi3.SchemaRef) (*jsonschema.Schema, error) {
	src, err := shapeSource(doc, shape)
	if err != nil {
		return nil, newError(KindCompile, "compile", err)
	}
	c := jsonschema.NewCompiler()
	// OpenAPI 3.0 schemas follow the draft-4 subset.
	c.Draft = jsonschema.Draft4
	if err := c.AddResource(shapeResourceURL, bytes.NewReader(src)); err != nil {
		return nil, newError(KindCompile, "compile", err)
	}
	sch, err := c.Compile(shapeResourceURL)
	if err != nil {
		return nil, newError(KindCompile, "compile", err)
	}
	return sch, nil
}

// shapeSource renders the shape as a standalone JSON Schema document. The
// document's component schemas ride along under components/schemas so that
// "#/components/schemas/..." references resolve without re-entering the
// loader, and so that failure pointers inside the shape stay relative to the
// shape root ("/allOf/0", ...).
func shapeSource(doc *Document, shape *openapi3.SchemaRef) ([]byte, error) {
	if shape == nil || shape.Value == nil {
		return nil, fmt.Errorf("nil shape definition")
	}
	root, err := schemaAsMap(shape.Value)
	if err != nil {
		return nil, fmt.Errorf("serialize shape: %w", err)
	}
	schemas := make(map[string]any, len(doc.Schemas()))
	for name, sr := range doc.Schemas() {
		if sr == nil || sr.Value == nil {
			continue
		}
		m, err := schemaAsMap(sr.Value)
		if err != nil {
			return nil, fmt.Errorf("serialize component %s: %w", name, err)
		}
		schemas[name] = m
	}
	if len(schemas) > 0 {
		root["components"] = map[string]any{"schemas": schemas}
	}
	return json.Marshal(root)
}

// schemaAsMap round-trips a schema through its canonical JSON form into a
// generic map and drops the top-level "$schema" marker, which the runtime
// engine does not need.
func schemaAsMap(s *openapi3.Schema) (map[string]any, error) {
	b, err := s.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	delete(m, "$schema")
	return m, nil
}
