package breakout

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/yacobolo/breakout/internal/grid"
	"github.com/yacobolo/breakout/internal/logger"
)

// LintConfig holds linting configuration
type LintConfig struct {
	ScanPaths   []string `validate:"required,min=1,dive,glob"` // e.g. "web/**/*.templ"
	Grid        any      `validate:"-"`                        // grid configuration the classes come from
	Breakpoints any      `validate:"-"`
	Stylesheet  string   // generated stylesheet to read known classes from instead of Grid
	Verbose     bool
	Strict      bool // exit with code 1 on warnings too

	// golangci-style output configuration
	MaxIssuesPerLinter int  `validate:"gte=0"` // 0 = unlimited
	MaxSameIssues      int  `validate:"gte=0"` // 0 = unlimited
	PrintIssuedLines   bool // show source lines with issues
	PrintLinterName    bool // show (breakoutlint) suffix
	UseColors          bool // force color output

	Logger *logger.Logger `validate:"-"`
}

// LintResult contains linting analysis results
type LintResult struct {
	// Issues in golangci-lint format
	Issues           []Issue
	IssuesByCategory map[string][]Issue

	// Statistics
	FilesScanned    int
	ClassesFound    int                   // grid class tokens found in markup
	KnownClasses    int                   // classes the grid defines
	UsedClasses     int                   // distinct known classes referenced
	UsageByCategory map[ClassCategory]int // references per category
	TopClasses      []ClassUsage          // most referenced classes
	ErrorCount      int
	WarningCount    int
	TruncatedCount  int // issues removed due to limits

	Warnings []string
}

// ClassUsage counts references to one class
type ClassUsage struct {
	Class       string
	Occurrences int
}

// UsagePercentage is the share of known classes referenced at least once
func (r LintResult) UsagePercentage() float64 {
	if r.KnownClasses == 0 {
		return 0
	}
	return float64(r.UsedClasses) / float64(r.KnownClasses) * 100
}

// Issue categories
const (
	categoryUnknown  = "unknown-class"
	categoryConflict = "conflict"
)

const topClassesLimit = 10

// Lint checks class references in markup against the classes the grid
// defines.
func Lint(config LintConfig) (*LintResult, error) {
	if err := validateStruct(config); err != nil {
		return nil, err
	}

	// 1. Known classes
	known, warnings, err := loadKnownClasses(config)
	if err != nil {
		return nil, err
	}

	// 2. Scan files for class references
	references, stats, err := ScanFiles(config.ScanPaths)
	if err != nil {
		return nil, fmt.Errorf("failed to scan files: %w", err)
	}
	if config.Verbose && stats.FilesSkipped > 0 {
		config.Logger.WithFields(map[string]any{
			"scanned": stats.FilesScanned,
			"skipped": stats.FilesSkipped,
		}).Info("skipped generated or ignored files")
	}

	// 3. Analyze
	result := analyzeReferences(references, known)
	result.FilesScanned = stats.FilesScanned
	result.Warnings = append(warnings, result.Warnings...)

	// 4. Apply issue limiting
	if config.MaxIssuesPerLinter > 0 || config.MaxSameIssues > 0 {
		result.Issues, result.TruncatedCount = limitIssues(result.Issues, config)
	}

	return result, nil
}

// loadKnownClasses returns the sorted class names the grid defines
func loadKnownClasses(config LintConfig) ([]string, []string, error) {
	if config.Stylesheet != "" {
		content, err := os.ReadFile(config.Stylesheet)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read stylesheet: %w", err)
		}
		parsed, err := grid.ParseStylesheet(string(content))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to parse stylesheet: %w", err)
		}
		seen := make(map[string]bool)
		var names []string
		for _, c := range parsed {
			if !seen[c.Name] {
				seen[c.Name] = true
				names = append(names, c.Name)
			}
		}
		sort.Strings(names)
		return names, nil, nil
	}

	out := grid.Run(grid.Options{
		Config:      config.Grid,
		Breakpoints: config.Breakpoints,
		Logger:      config.Logger,
	})

	warnings := grid.Messages(out.Warnings)
	if out.Degraded != grid.DegradedNone {
		warnings = append(warnings, fmt.Sprintf("grid configuration degraded to %s output", out.Degraded))
	}

	names := out.Utilities.Classes()
	sort.Strings(names)
	return names, warnings, nil
}

// analyzeReferences builds issues and usage statistics
func analyzeReferences(references []ClassReference, known []string) *LintResult {
	result := &LintResult{
		IssuesByCategory: make(map[string][]Issue),
		UsageByCategory:  make(map[ClassCategory]int),
		KnownClasses:     len(known),
	}

	knownSet := make(map[string]bool, len(known))
	for _, k := range known {
		knownSet[k] = true
	}
	usage := make(map[string]int)
	suggestions := make(map[string]string)

	addIssue := func(category string, issue Issue) {
		result.Issues = append(result.Issues, issue)
		result.IssuesByCategory[category] = append(result.IssuesByCategory[category], issue)
		switch issue.Severity {
		case SeverityError:
			result.ErrorCount++
		case SeverityWarning:
			result.WarningCount++
		}
	}

	for _, ref := range references {
		var valid []string
		for _, token := range ref.Tokens() {
			if !isGridClass(token) {
				continue
			}
			result.ClassesFound++

			if knownSet[token] {
				usage[token]++
				result.UsageByCategory[categorizeClass(token)]++
				valid = append(valid, token)
				continue
			}

			suggestion, ok := suggestions[token]
			if !ok {
				suggestion = suggestClass(token, known)
				suggestions[token] = suggestion
			}
			addIssue(categoryUnknown, unknownClassIssue(ref, token, suggestion))
		}

		for _, issue := range conflictIssues(ref, valid) {
			addIssue(categoryConflict, issue)
		}
	}

	result.UsedClasses = len(usage)
	result.TopClasses = topClasses(usage, topClassesLimit)
	return result
}

func unknownClassIssue(ref ClassReference, token, suggestion string) Issue {
	issue := Issue{
		FromLinter:  linterName,
		Text:        fmt.Sprintf(IssueUnknownClass, token),
		Severity:    SeverityError,
		SourceLines: []string{ref.Location.Text},
		Pos: IssuePos{
			Filename: ref.Location.File,
			Line:     ref.Location.Line,
			Column:   findClassColumn(ref, token),
		},
	}
	if suggestion != "" {
		issue.Text = fmt.Sprintf(IssueUnknownClassSuggest, token, suggestion)
		issue.Replacement = &Replacement{NewText: suggestion, InlineLength: len(token)}
	}
	return issue
}

// columnSlot returns which part of the grid-column a column class sets
func columnSlot(class string) string {
	switch {
	case strings.HasPrefix(class, "col-start-"):
		return "start"
	case strings.HasPrefix(class, "col-end-"):
		return "end"
	}
	return "span"
}

// conflictIssues reports classes on one element that fight over the same
// property: two containers, or two column classes setting the same edge.
func conflictIssues(ref ClassReference, classes []string) []Issue {
	var issues []Issue
	var container string
	slots := make(map[string]string)

	warn := func(format, first, second string) {
		issues = append(issues, Issue{
			FromLinter:  linterName,
			Text:        fmt.Sprintf(format, first, second),
			Severity:    SeverityWarning,
			SourceLines: []string{ref.Location.Text},
			Pos: IssuePos{
				Filename: ref.Location.File,
				Line:     ref.Location.Line,
				Column:   findClassColumn(ref, second),
			},
		})
	}

	for _, class := range classes {
		switch categorizeClass(class) {
		case CategoryContainer:
			if container != "" && container != class {
				warn(IssueConflictingGrids, container, class)
				continue
			}
			container = class
		case CategoryColumn:
			slot := columnSlot(class)
			var prior string
			if slot == "span" {
				prior = firstNonEmpty(slots["span"], slots["start"], slots["end"])
			} else {
				prior = firstNonEmpty(slots["span"], slots[slot])
			}
			if prior != "" && prior != class {
				warn(IssueConflictingColumns, prior, class)
				continue
			}
			slots[slot] = class
		}
	}
	return issues
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// suggestClass finds the known class closest to an unknown one. Typos
// within a small edit distance win; otherwise abbreviations are matched
// fuzzily, e.g. "col-feat" for "col-feature".
func suggestClass(token string, known []string) string {
	limit := len(token) / 3
	if limit < 2 {
		limit = 2
	}
	if best, dist := closest(token, known); best != "" && dist <= limit {
		return best
	}

	matches := fuzzy.Find(token, known)
	if len(matches) == 0 {
		return ""
	}
	candidates := make([]string, len(matches))
	for i, m := range matches {
		candidates[i] = known[m.Index]
	}
	best, _ := closest(token, candidates)
	return best
}

// closest returns the candidate with the smallest edit distance to token,
// ties by name.
func closest(token string, candidates []string) (string, int) {
	best, bestDist := "", -1
	for _, c := range candidates {
		d := editDistance(token, c)
		if bestDist < 0 || d < bestDist || (d == bestDist && c < best) {
			best, bestDist = c, d
		}
	}
	return best, bestDist
}

// editDistance is the Levenshtein distance between a and b
func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// topClasses returns the most referenced classes, ties by name
func topClasses(usage map[string]int, limit int) []ClassUsage {
	out := make([]ClassUsage, 0, len(usage))
	for class, n := range usage {
		out = append(out, ClassUsage{Class: class, Occurrences: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Occurrences != out[j].Occurrences {
			return out[i].Occurrences > out[j].Occurrences
		}
		return out[i].Class < out[j].Class
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// limitIssues applies max-issues-per-linter and max-same-issues constraints
func limitIssues(issues []Issue, config LintConfig) ([]Issue, int) {
	originalCount := len(issues)

	if config.MaxIssuesPerLinter > 0 && len(issues) > config.MaxIssuesPerLinter {
		issues = issues[:config.MaxIssuesPerLinter]
	}

	if config.MaxSameIssues > 0 {
		issues = deduplicateSameIssues(issues, config.MaxSameIssues)
	}

	return issues, originalCount - len(issues)
}

// deduplicateSameIssues limits how many times the same message appears
func deduplicateSameIssues(issues []Issue, maxSame int) []Issue {
	messageCounts := make(map[string]int)
	var filtered []Issue

	for _, issue := range issues {
		if messageCounts[issue.Text] < maxSame {
			filtered = append(filtered, issue)
			messageCounts[issue.Text]++
		}
	}

	return filtered
}

// HasFailures reports whether the result should fail the run
func (r LintResult) HasFailures(strict bool) bool {
	if r.ErrorCount > 0 {
		return true
	}
	return strict && r.WarningCount > 0
}
