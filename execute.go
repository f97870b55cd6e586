package shapeval

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// RunValidation parses raw candidate JSON and runs it through the compiled
// validator. It returns (nil, nil) for valid input, a FailureReport for
// well-formed input that violates the shape, and a KindInputParse error for
// input that is not JSON at all. No semantic interpretation happens here;
// explaining a rejection is the translator's job.
func RunValidation(sch *jsonschema.Schema, raw []byte) (*FailureReport, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, newError(KindInputParse, "validate", fmt.Errorf("candidate input is not valid JSON: %w", err))
	}
	err := sch.Validate(v)
	if err == nil {
		return nil, nil
	}
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		// Anything but a validation error here is an engine-integration defect.
		return nil, fmt.Errorf("shapeval: validate: unexpected engine error: %w", err)
	}
	return buildReport(ve), nil
}

// failureLeaf is one terminal cause in the engine's error tree: the keyword
// location relative to the compiled shape, the instance location, and the
// engine's message.
type failureLeaf struct {
	location string
	instance string
	message  string
}

func collectLeaves(ve *jsonschema.ValidationError, out []failureLeaf) []failureLeaf {
	if len(ve.Causes) == 0 {
		return append(out, failureLeaf{ve.KeywordLocation, ve.InstanceLocation, ve.Message})
	}
	for _, c := range ve.Causes {
		out = collectLeaves(c, out)
	}
	return out
}

var allOfSlotRE = regexp.MustCompile(`^/allOf/(\d+)(?:/|$)`)

// buildReport adapts the engine's cause tree into the report model. Leaves
// whose keyword location falls under an allOf slot are grouped into one
// composition entry with per-slot nested reports; everything else becomes a
// top-level entry. The composition entry sits where its first leaf appeared,
// keeping report order aligned with the engine's.
func buildReport(ve *jsonschema.ValidationError) *FailureReport {
	leaves := collectLeaves(ve, nil)
	rep := &FailureReport{}
	slots := make(map[int][]FailureEntry)
	allOfPos := -1
	for _, lf := range leaves {
		if m := allOfSlotRE.FindStringSubmatch(lf.location); m != nil {
			idx, _ := strconv.Atoi(m[1])
			slots[idx] = append(slots[idx], entryFromLeaf(lf))
			if allOfPos < 0 {
				allOfPos = len(rep.Entries)
				rep.Entries = append(rep.Entries, FailureEntry{})
			}
			continue
		}
		rep.Entries = append(rep.Entries, entryFromLeaf(lf))
	}
	if allOfPos >= 0 {
		idxs := make([]int, 0, len(slots))
		for i := range slots {
			idxs = append(idxs, i)
		}
		sort.Ints(idxs)
		nested := make([]NestedReport, 0, len(idxs))
		for _, i := range idxs {
			nested = append(nested, NestedReport{Pointer: fmt.Sprintf("/allOf/%d", i), Entries: slots[i]})
		}
		rep.Entries[allOfPos] = FailureEntry{
			Severity: SeverityError,
			Keyword:  KeywordAllOf,
			Message:  "does not satisfy every composition member",
			Nested:   nested,
		}
	}
	return rep
}

func entryFromLeaf(lf failureLeaf) FailureEntry {
	e := FailureEntry{
		Severity: SeverityError,
		Keyword:  keywordAt(lf.location),
		Message:  lf.message,
		Instance: lf.instance,
	}
	if e.Keyword == KeywordRequired {
		if missing := missingProperties(lf.message); len(missing) > 0 {
			e.Params = map[string]any{"missing": missing}
		}
	}
	return e
}

// keywordAt extracts the rule keyword from a keyword-location pointer: the
// last segment that is neither an index nor a "$ref" hop. "/allOf/1/required"
// yields "required", "/allOf/1" yields "allOf".
func keywordAt(location string) string {
	segs := strings.Split(location, "/")
	for i := len(segs) - 1; i >= 0; i-- {
		s := segs[i]
		if s == "" || s == "$ref" {
			continue
		}
		if _, err := strconv.Atoi(s); err == nil {
			continue
		}
		return s
	}
	return "schema"
}

// missingProperties recovers the missing property names from the engine's
// "missing properties: 'a', 'b'" message, without the surrounding quote
// characters.
func missingProperties(msg string) []string {
	if !strings.Contains(msg, "missing propert") {
		return nil
	}
	_, rest, ok := strings.Cut(msg, ":")
	if !ok {
		rest = strings.TrimPrefix(msg, "missing properties")
	}
	var out []string
	for _, p := range strings.Split(rest, ",") {
		p = strings.Trim(strings.TrimSpace(p), `'"`)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
