package breakout

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lintFixture = `<main class="grid-cols-breakout px-gap mx-auto">
  <p class="col-contnet text-lg">x</p>
  <div class="col-feature col-popout"></div>
  <div class="col-start-feature col-end-content col-span-2"></div>
  <div class="grid-cols-feature-left grid-cols-breakout"></div>
  <img class="p-fullgap">
<span class="col-wide"></span>
</main>
`

func lintFixtureDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "index.html"), lintFixture)
	return dir
}

func TestLint(t *testing.T) {
	dir := lintFixtureDir(t)

	result, err := Lint(LintConfig{ScanPaths: []string{filepath.Join(dir, "*.html")}})
	require.NoError(t, err)

	assert.Equal(t, 1, result.FilesScanned)
	assert.Equal(t, 89, result.KnownClasses)
	assert.Equal(t, 11, result.ClassesFound)
	assert.Equal(t, 7, result.UsedClasses)
	assert.Equal(t, 3, result.ErrorCount)
	assert.Equal(t, 2, result.WarningCount)
	assert.Len(t, result.IssuesByCategory[categoryUnknown], 3)
	assert.Len(t, result.IssuesByCategory[categoryConflict], 2)
	require.NotEmpty(t, result.TopClasses)
	assert.Equal(t, ClassUsage{Class: "grid-cols-breakout", Occurrences: 2}, result.TopClasses[0])
	assert.True(t, result.HasFailures(false))

	byText := make(map[string]Issue)
	for _, issue := range result.Issues {
		byText[issue.Text] = issue
	}

	typo := byText[`unknown breakout class "col-contnet", did you mean "col-content"?`]
	assert.Equal(t, 2, typo.Pos.Line)
	assert.Equal(t, 13, typo.Pos.Column)
	assert.Equal(t, SeverityError, typo.Severity)
	assert.Equal(t, linterName, typo.FromLinter)
	require.NotNil(t, typo.Replacement)
	assert.Equal(t, "col-content", typo.Replacement.NewText)
	assert.Equal(t, len("col-contnet"), typo.Replacement.InlineLength)

	spacing := byText[`unknown breakout class "p-fullgap", did you mean "p-full-gap"?`]
	assert.Equal(t, 6, spacing.Pos.Line)

	unknown := byText[`unknown breakout class "col-wide"`]
	assert.Equal(t, 7, unknown.Pos.Line)
	assert.Nil(t, unknown.Replacement)

	conflict := byText[`conflicting column classes "col-feature" and "col-popout" on one element`]
	assert.Equal(t, SeverityWarning, conflict.Severity)
	assert.Equal(t, 27, conflict.Pos.Column)

	grids := byText[`conflicting grid containers "grid-cols-feature-left" and "grid-cols-breakout" on one element`]
	assert.Equal(t, 5, grids.Pos.Line)
}

func TestLintFromStylesheet(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "grid.css"), ".grid-cols-breakout { display: grid; }\n.col-content, .col-wide { grid-column: content; }\n")
	writeFile(t, filepath.Join(dir, "page.html"), `<div class="grid-cols-breakout"><p class="col-wide col-feature"></p></div>`+"\n")

	result, err := Lint(LintConfig{
		ScanPaths:  []string{filepath.Join(dir, "*.html")},
		Stylesheet: filepath.Join(dir, "grid.css"),
	})
	require.NoError(t, err)

	assert.Equal(t, 3, result.KnownClasses)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, `unknown breakout class "col-feature"`, result.Issues[0].Text)
}

func TestLintMissingStylesheet(t *testing.T) {
	_, err := Lint(LintConfig{ScanPaths: []string{"*.html"}, Stylesheet: filepath.Join(t.TempDir(), "nope.css")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read stylesheet")
}

func TestLintValidation(t *testing.T) {
	tests := []struct {
		name    string
		config  LintConfig
		wantErr string
	}{
		{
			name:    "no scan paths",
			config:  LintConfig{},
			wantErr: "ScanPaths is required",
		},
		{
			name:    "bad glob",
			config:  LintConfig{ScanPaths: []string{"web/[oops"}},
			wantErr: "ScanPaths[0] is not a valid glob pattern",
		},
		{
			name:    "negative limit",
			config:  LintConfig{ScanPaths: []string{"*.html"}, MaxSameIssues: -1},
			wantErr: "MaxSameIssues must be at least 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Lint(tt.config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLintDegradedConfigWarns(t *testing.T) {
	dir := lintFixtureDir(t)

	result, err := Lint(LintConfig{
		ScanPaths: []string{filepath.Join(dir, "*.html")},
		Grid:      "broken",
	})
	require.NoError(t, err)
	assert.Contains(t, result.Warnings, "grid configuration degraded to defaults output")
	assert.Equal(t, 89, result.KnownClasses)
}

func TestConflictIssues(t *testing.T) {
	ref := ClassReference{Value: "x", Location: FileLocation{File: "a.html", Line: 1, Column: 1}}

	tests := []struct {
		name    string
		classes []string
		want    int
	}{
		{"single column", []string{"col-content"}, 0},
		{"start and end", []string{"col-start-feature", "col-end-content"}, 0},
		{"two spans", []string{"col-content", "col-full"}, 1},
		{"span and start", []string{"col-start-feature", "col-content"}, 1},
		{"two starts", []string{"col-start-feature", "col-start-popout"}, 1},
		{"duplicate class", []string{"col-content", "col-content"}, 0},
		{"two containers", []string{"grid-cols-breakout", "grid-cols-content-left"}, 1},
		{"container and column", []string{"grid-cols-breakout", "col-full"}, 0},
		{"spacing ignored", []string{"px-gap", "p-gap"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, conflictIssues(ref, tt.classes), tt.want)
		})
	}
}

func TestSuggestClass(t *testing.T) {
	known := []string{"col-content", "col-content-left", "col-feature", "col-feature-left", "col-full", "px-full-gap", "px-gap"}

	tests := []struct {
		token string
		want  string
	}{
		{"col-featur", "col-feature"},
		{"col-contnet", "col-content"},
		{"px-fullgap", "px-full-gap"},
		{"col-content-lef", "col-content-left"},
		{"col-feat", "col-feature"},
		{"col-sidebar", ""},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, suggestClass(tt.token, known))
		})
	}
}

func TestEditDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"col-full", "col-full", 0},
		{"col-ful", "col-full", 1},
		{"col-contnet", "col-content", 2},
		{"kitten", "sitting", 3},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, editDistance(tt.a, tt.b))
		})
	}
}

func TestLimitIssues(t *testing.T) {
	issues := make([]Issue, 0, 6)
	for i := 0; i < 6; i++ {
		issues = append(issues, Issue{Text: fmt.Sprintf("issue %d", i%2)})
	}

	tests := []struct {
		name          string
		config        LintConfig
		wantLen       int
		wantTruncated int
	}{
		{"no limits", LintConfig{}, 6, 0},
		{"per linter", LintConfig{MaxIssuesPerLinter: 4}, 4, 2},
		{"same issues", LintConfig{MaxSameIssues: 1}, 2, 4},
		{"both", LintConfig{MaxIssuesPerLinter: 5, MaxSameIssues: 2}, 4, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, truncated := limitIssues(issues, tt.config)
			assert.Len(t, got, tt.wantLen)
			assert.Equal(t, tt.wantTruncated, truncated)
		})
	}
}

func TestHasFailures(t *testing.T) {
	assert.False(t, LintResult{}.HasFailures(true))
	assert.True(t, LintResult{ErrorCount: 1}.HasFailures(false))
	assert.False(t, LintResult{WarningCount: 1}.HasFailures(false))
	assert.True(t, LintResult{WarningCount: 1}.HasFailures(true))
}

func TestUsagePercentage(t *testing.T) {
	assert.Zero(t, LintResult{}.UsagePercentage())
	assert.InDelta(t, 25.0, LintResult{KnownClasses: 8, UsedClasses: 2}.UsagePercentage(), 0.001)
}
