package shapeval

import (
	"fmt"
	"strings"

	"github.com/shapeval/shapeval/i18n"
)

// Diagnostic is one human-facing validation error. Component carries the
// resolved fragment name for composition failures and stays empty otherwise.
type Diagnostic struct {
	Severity  Severity `json:"severity" yaml:"severity"`
	Component string   `json:"component,omitempty" yaml:"component,omitempty"`
	Keyword   string   `json:"keyword" yaml:"keyword"`
	Missing   []string `json:"missing,omitempty" yaml:"missing,omitempty"`
	Message   string   `json:"message,omitempty" yaml:"message,omitempty"`
}

// String renders the diagnostic as a single log line, e.g.
//
//	[error] Category Fields: missing required properties: fullName
func (d Diagnostic) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s]", d.Severity)
	if d.Component != "" {
		fmt.Fprintf(&b, " %s:", d.Component)
	}
	fmt.Fprintf(&b, " %s", i18n.T(d.Keyword, nil))
	if len(d.Missing) > 0 {
		fmt.Fprintf(&b, ": %s", strings.Join(d.Missing, ", "))
	} else if d.Message != "" {
		fmt.Fprintf(&b, " (%s)", d.Message)
	}
	return b.String()
}

// Diagnostics is an ordered sequence of diagnostics.
type Diagnostics []Diagnostic

// Summary joins the first few diagnostics into one line.
func (ds Diagnostics) Summary() string {
	if len(ds) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	lim := len(ds)
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(ds[i].String())
	}
	if len(ds) > lim {
		fmt.Fprintf(b, "; ... (total %d)", len(ds))
	}
	return b.String()
}

// Translate converts a failure report into diagnostics using the default
// settings: error-severity threshold, only missing-required-property causes
// elaborated inside composition slots. Engine options widen both.
func Translate(rep *FailureReport, names FragmentNameMap) Diagnostics {
	return translateWith(rep, names, SeverityError, false)
}

// translateWith walks the report in order. Composition entries with nested
// reports expand per slot: the slot pointer resolves through the fragment name
// map, falling back to an annotated unknown-component name. Non-required
// nested causes are dropped unless expandAll is set. Every other entry passes
// through as a generic diagnostic without name resolution. The walk is total;
// it never fails.
func translateWith(rep *FailureReport, names FragmentNameMap, threshold Severity, expandAll bool) Diagnostics {
	if rep == nil {
		return nil
	}
	var out Diagnostics
	for _, e := range rep.Entries {
		if !e.Severity.atLeast(threshold) {
			continue
		}
		if e.Keyword == KeywordAllOf && len(e.Nested) > 0 {
			for _, nr := range e.Nested {
				name, ok := names[nr.Pointer]
				if !ok {
					name = fmt.Sprintf("Unknown Component (%s)", nr.Pointer)
				}
				for _, ne := range nr.Entries {
					if ne.Keyword != KeywordRequired {
						if !expandAll {
							continue
						}
						out = append(out, Diagnostic{
							Severity:  ne.Severity,
							Component: name,
							Keyword:   ne.Keyword,
							Message:   ne.Message,
						})
						continue
					}
					out = append(out, Diagnostic{
						Severity:  ne.Severity,
						Component: name,
						Keyword:   KeywordRequired,
						Missing:   missingFromParams(ne.Params),
						Message:   ne.Message,
					})
				}
			}
			continue
		}
		out = append(out, Diagnostic{Severity: e.Severity, Keyword: e.Keyword, Message: e.Message})
	}
	return out
}

func missingFromParams(params map[string]any) []string {
	if params == nil {
		return nil
	}
	switch v := params["missing"].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, p := range v {
			if s, ok := p.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
