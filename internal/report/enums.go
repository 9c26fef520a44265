package report

// Verdict summarizes a whole run.
type Verdict string

const (
	VerdictComplete Verdict = "COMPLETE"
	VerdictPartial  Verdict = "PARTIAL"
	VerdictFailed   Verdict = "FAILED"
)

// Status is the state of a single part.
type Status string

const (
	StatusSolved   Status = "SOLVED"
	StatusUnsolved Status = "UNSOLVED"
	StatusFailed   Status = "FAILED"
)

// Format selects how a report is rendered.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "md"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
)

// Formats lists every supported format.
var Formats = []Format{FormatText, FormatMarkdown, FormatJSON, FormatYAML}

func (f Format) Valid() bool {
	switch f {
	case FormatText, FormatMarkdown, FormatJSON, FormatYAML:
		return true
	}
	return false
}
