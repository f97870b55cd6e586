package shapeval

// Severity grades one failure entry. The runtime engine only emits errors;
// lower grades exist so integrations can attach advisory entries to a report
// and have the translator filter them uniformly.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

func (s Severity) rank() int {
	switch s {
	case SeverityError:
		return 2
	case SeverityWarning:
		return 1
	default:
		return 0
	}
}

// atLeast reports whether s meets the threshold t.
func (s Severity) atLeast(t Severity) bool { return s.rank() >= t.rank() }

// FailureEntry is one entry of a failure report: the violated rule keyword,
// the engine's message, the instance location inside the candidate input, and
// structured params such as the missing property names of a "required"
// violation. Composition entries additionally carry per-slot nested reports.
type FailureEntry struct {
	Severity Severity       `json:"severity"`
	Keyword  string         `json:"keyword"`
	Message  string         `json:"message,omitempty"`
	Instance string         `json:"instance,omitempty"`
	Params   map[string]any `json:"params,omitempty"`
	Nested   []NestedReport `json:"nested,omitempty"`
}

// NestedReport groups the failures of a single composition slot, keyed by the
// slot pointer exactly as the validator reports it ("/allOf/0", "/allOf/1",
// ...). Slots appear in ascending slot order.
type NestedReport struct {
	Pointer string         `json:"pointer"`
	Entries []FailureEntry `json:"entries"`
}

// FailureReport is the executor's structured failure output. Entry order is
// deterministic and follows the validator's own reporting order.
type FailureReport struct {
	Entries []FailureEntry `json:"entries"`
}
