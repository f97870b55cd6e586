package shapeval

// Package shapeval resolves named shapes from a shared specification document
// and validates candidate JSON input against them.
//
// - Load-once document resolution (every internal reference resolved eagerly)
// - Named-shape extraction with a composition-slot -> friendly-name map
// - Validator compilation through a runtime JSON Schema engine
// - Diagnostic translation that names the semantic fragment that failed
//
// Design policy:
// - Keep only public APIs in the root package; wording dictionaries live under i18n/, the CLI under cmd/shapeval.
// - Fatal pipeline errors carry an explicit Kind; a validation failure is a value, not an error.
// - The "/allOf/{index}" pointer convention is shared byte-for-byte between extraction and translation.
//
// Typical usage:
//
//	e := shapeval.New()
//	ok := e.Validate(ctx, "specs/crm.yaml", "Category", raw)
//	valid, diags, err := e.Check(ctx, "specs/crm.yaml", "Category", raw)
