package shapeval

import (
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// DefaultComponentRefPrefix is the reference prefix of a document's shared
// component namespace.
const DefaultComponentRefPrefix = "#/components/schemas/"

// InlineFragmentName names composition members that carry neither a title nor
// a shared-component reference.
const InlineFragmentName = "Inline Schema Component"

// FragmentNameMap maps a composition-slot pointer ("/allOf/0", "/allOf/1",
// ...) to the friendly name of the fragment occupying that slot. Keys use the
// exact pointer format the runtime validator reports in failures; the
// translator looks up by that byte-identical string. The map is immutable
// after extraction.
type FragmentNameMap map[string]string

// ExtractShape looks up shapeName in the document and returns its definition
// together with the fragment name map of its composition list. The map is
// empty for atomic shapes and preserves declaration order through its slot
// indices. refPrefix selects the shared-component namespace; "" means
// DefaultComponentRefPrefix.
func ExtractShape(doc *Document, shapeName, refPrefix string) (*openapi3.SchemaRef, FragmentNameMap, error) {
	if refPrefix == "" {
		refPrefix = DefaultComponentRefPrefix
	}
	shape := doc.Schemas()[shapeName]
	if shape == nil || shape.Value == nil {
		return nil, nil, errorf(KindShapeNotFound, "extract", "shape %q not declared in %s", shapeName, doc.Path())
	}
	names := make(FragmentNameMap, len(shape.Value.AllOf))
	for i, member := range shape.Value.AllOf {
		names[fmt.Sprintf("/allOf/%d", i)] = fragmentName(member, refPrefix)
	}
	return shape, names, nil
}

// fragmentName resolves the friendly name of one composition member:
// declared title first, then the prefix-trimmed shared-component reference,
// then the inline fallback.
func fragmentName(member *openapi3.SchemaRef, refPrefix string) string {
	if member == nil {
		return InlineFragmentName
	}
	if member.Value != nil && member.Value.Title != "" {
		return member.Value.Title
	}
	if strings.HasPrefix(member.Ref, refPrefix) {
		return strings.TrimPrefix(member.Ref, refPrefix)
	}
	return InlineFragmentName
}
