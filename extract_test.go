package shapeval_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	shapeval "github.com/shapeval/shapeval"
)

func loadCRM(t *testing.T) *shapeval.Document {
	t.Helper()
	doc, err := shapeval.LoadDocument(context.Background(), filepath.Join("testdata", "crm.yaml"))
	if err != nil {
		t.Fatalf("load err: %v", err)
	}
	return doc
}

func TestExtractShape_MapSizeMatchesCompositionLength(t *testing.T) {
	doc := loadCRM(t)
	for shape, want := range map[string]int{"Category": 2, "Contact": 3, "Account": 0} {
		_, names, err := shapeval.ExtractShape(doc, shape, "")
		if err != nil {
			t.Fatalf("extract %s err: %v", shape, err)
		}
		if len(names) != want {
			t.Fatalf("%s: expected %d map entries, got %d (%v)", shape, want, len(names), names)
		}
	}
}

func TestExtractShape_SlotPointerKeys(t *testing.T) {
	doc := loadCRM(t)
	_, names, err := shapeval.ExtractShape(doc, "Contact", "")
	if err != nil {
		t.Fatalf("extract err: %v", err)
	}
	for i := 0; i < 3; i++ {
		key := fmt.Sprintf("/allOf/%d", i)
		if _, ok := names[key]; !ok {
			t.Fatalf("expected key %q, got %v", key, names)
		}
	}
}

func TestExtractShape_NamePrecedence(t *testing.T) {
	doc := loadCRM(t)
	_, names, err := shapeval.ExtractShape(doc, "Contact", "")
	if err != nil {
		t.Fatalf("extract err: %v", err)
	}
	// title wins over the reference it arrived through
	if got := names["/allOf/0"]; got != "Contact Core Fields" {
		t.Fatalf("slot 0: expected title, got %q", got)
	}
	// untitled reference falls back to the trimmed reference string
	if got := names["/allOf/1"]; got != "ObjectInputBaseSchema" {
		t.Fatalf("slot 1: expected reference-derived name, got %q", got)
	}
	// inline member without title falls back to the literal
	if got := names["/allOf/2"]; got != shapeval.InlineFragmentName {
		t.Fatalf("slot 2: expected %q, got %q", shapeval.InlineFragmentName, got)
	}
}

func TestExtractShape_UnknownShape(t *testing.T) {
	doc := loadCRM(t)
	_, _, err := shapeval.ExtractShape(doc, "Nope", "")
	if err == nil {
		t.Fatalf("expected error for unknown shape")
	}
	if k := shapeval.KindOf(err); k != shapeval.KindShapeNotFound {
		t.Fatalf("expected KindShapeNotFound, got %v (%v)", k, err)
	}
}

func TestExtractShape_CustomRefPrefix(t *testing.T) {
	doc := loadCRM(t)
	_, names, err := shapeval.ExtractShape(doc, "Category", "#/components/")
	if err != nil {
		t.Fatalf("extract err: %v", err)
	}
	if got := names["/allOf/0"]; got != "schemas/ObjectInputBaseSchema" {
		t.Fatalf("expected trimming against the custom prefix, got %q", got)
	}
}
