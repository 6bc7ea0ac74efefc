package breakout

// Issue represents a single linting violation in golangci-lint format
type Issue struct {
	FromLinter  string       `json:"FromLinter"`  // "breakoutlint"
	Text        string       `json:"Text"`        // "unknown breakout class \"col-contnet\""
	Severity    string       `json:"Severity"`    // "", "warning", "error"
	SourceLines []string     `json:"SourceLines"` // Lines of code with issue
	Pos         IssuePos     `json:"Pos"`         // File location
	Replacement *Replacement `json:"Replacement"` // Optional fix suggestion
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"`
	Line     int    `json:"Line"`
	Column   int    `json:"Column"` // 1-based, start of the offending class
}

// Replacement is a suggested fix
type Replacement struct {
	NewText      string // "col-content"
	InlineLength int    // Length of text to replace
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = ""
)

// linterName is reported as FromLinter on every issue.
const linterName = "breakoutlint"

// Issue message formats
const (
	IssueUnknownClass        = "unknown breakout class %q"
	IssueUnknownClassSuggest = "unknown breakout class %q, did you mean %q?"
	IssueConflictingColumns  = "conflicting column classes %q and %q on one element"
	IssueConflictingGrids    = "conflicting grid containers %q and %q on one element"
)
