package shapeval_test

import (
	"testing"

	shapeval "github.com/shapeval/shapeval"
)

func compileCategory(t *testing.T) *shapeval.CompiledValidationContext {
	t.Helper()
	doc := loadCRM(t)
	shape, names, err := shapeval.ExtractShape(doc, "Category", "")
	if err != nil {
		t.Fatalf("extract err: %v", err)
	}
	sch, err := shapeval.CompileShape(doc, shape)
	if err != nil {
		t.Fatalf("compile err: %v", err)
	}
	return &shapeval.CompiledValidationContext{Validator: sch, Names: names, ShapeName: "Category"}
}

func TestRunValidation_ValidInput(t *testing.T) {
	cv := compileCategory(t)
	cv.Input = []byte(`{"persistenceId_string":"1","fullName":"x","fullDescription":"y","enabled":true}`)
	rep, err := cv.Run()
	if err != nil {
		t.Fatalf("run err: %v", err)
	}
	if rep != nil {
		t.Fatalf("expected nil report for valid input, got %+v", rep)
	}
}

func TestRunValidation_MalformedInput(t *testing.T) {
	cv := compileCategory(t)
	cv.Input = []byte(`{ invalid }`)
	_, err := cv.Run()
	if err == nil {
		t.Fatalf("expected error for malformed input")
	}
	if k := shapeval.KindOf(err); k != shapeval.KindInputParse {
		t.Fatalf("expected KindInputParse, got %v (%v)", k, err)
	}
}

func TestRunValidation_MissingRequired_ReportShape(t *testing.T) {
	cv := compileCategory(t)
	cv.Input = []byte(`{"persistenceId_string":"1"}`)
	rep, err := cv.Run()
	if err != nil {
		t.Fatalf("run err: %v", err)
	}
	if rep == nil {
		t.Fatalf("expected a failure report")
	}

	var comp *shapeval.FailureEntry
	for i := range rep.Entries {
		if rep.Entries[i].Keyword == shapeval.KeywordAllOf {
			comp = &rep.Entries[i]
			break
		}
	}
	if comp == nil {
		t.Fatalf("expected a composition entry, got %+v", rep.Entries)
	}
	if len(comp.Nested) != 1 {
		t.Fatalf("expected exactly one failing slot, got %+v", comp.Nested)
	}
	nr := comp.Nested[0]
	if nr.Pointer != "/allOf/1" {
		t.Fatalf("expected pointer /allOf/1, got %q", nr.Pointer)
	}
	if len(nr.Entries) == 0 || nr.Entries[0].Keyword != shapeval.KeywordRequired {
		t.Fatalf("expected a required violation inside the slot, got %+v", nr.Entries)
	}
	missing, _ := nr.Entries[0].Params["missing"].([]string)
	if len(missing) != 1 || missing[0] != "fullName" {
		t.Fatalf("expected missing [fullName] without quotes, got %v", missing)
	}
}

func TestRunValidation_AtomicShape_GenericEntry(t *testing.T) {
	doc := loadCRM(t)
	shape, _, err := shapeval.ExtractShape(doc, "Account", "")
	if err != nil {
		t.Fatalf("extract err: %v", err)
	}
	sch, err := shapeval.CompileShape(doc, shape)
	if err != nil {
		t.Fatalf("compile err: %v", err)
	}
	rep, err := shapeval.RunValidation(sch, []byte(`{"tier":"gold"}`))
	if err != nil {
		t.Fatalf("run err: %v", err)
	}
	if rep == nil {
		t.Fatalf("expected a failure report")
	}
	kws := map[string]bool{}
	for _, e := range rep.Entries {
		kws[e.Keyword] = true
		if e.Keyword == shapeval.KeywordAllOf {
			t.Fatalf("atomic shape must not produce a composition entry: %+v", rep.Entries)
		}
	}
	if !kws[shapeval.KeywordRequired] || !kws[shapeval.KeywordEnum] {
		t.Fatalf("expected required and enum entries, got %v", kws)
	}
}
