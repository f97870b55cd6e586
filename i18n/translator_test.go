package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T("required", nil); msg == "required" || msg == "" {
		t.Fatalf("expected a human message, got %q", msg)
	}

	SetLanguage("ja")
	if msg := T("required", nil); msg == "missing required properties" {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestTranslator_UnknownKeywordPassesThrough(t *testing.T) {
	if msg := T("uniqueItems", nil); msg != "uniqueItems" {
		t.Fatalf("expected pass-through for unknown keyword, got %q", msg)
	}
}
