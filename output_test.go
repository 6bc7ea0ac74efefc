package breakout

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetermineOutputFormat(t *testing.T) {
	tests := []struct {
		name       string
		formatFlag string
		quiet      bool
		expected   OutputFormat
	}{
		{"default", "", false, OutputIssues},
		{"issues", "issues", false, OutputIssues},
		{"summary", "summary", false, OutputSummary},
		{"full", "full", false, OutputFull},
		{"json", "json", false, OutputJSON},
		{"markdown", "markdown", false, OutputMarkdown},
		{"markdown shorthand", "md", false, OutputMarkdown},
		{"unknown falls back", "xml", false, OutputIssues},
		{"quiet wins", "full", true, OutputIssues},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetermineOutputFormat(tt.formatFlag, tt.quiet))
		})
	}
}

func sampleResult() *LintResult {
	issues := sampleIssues()
	issues[2].Replacement = &Replacement{NewText: "px-gap", InlineLength: 7}
	return &LintResult{
		Issues:          issues,
		FilesScanned:    2,
		ClassesFound:    6,
		KnownClasses:    10,
		UsedClasses:     5,
		UsageByCategory: map[ClassCategory]int{CategoryColumn: 4, CategorySpacing: 2},
		TopClasses:      []ClassUsage{{Class: "col-full", Occurrences: 3}},
		ErrorCount:      2,
		WarningCount:    1,
		TruncatedCount:  1,
		Warnings:        []string{"Unknown option 'foo' ignored"},
	}
}

func TestWriteOutputJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteOutput(&buf, sampleResult(), OutputJSON, LintConfig{}))

	var out JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	assert.Equal(t, "1.0", out.Version)
	assert.Equal(t, JSONSummary{TotalIssues: 3, Errors: 2, Warnings: 1, Truncated: 1, FilesScanned: 2}, out.Summary)
	assert.Equal(t, 10, out.Stats.KnownClasses)
	assert.InDelta(t, 50.0, out.Stats.UsagePercentage, 0.001)
	assert.Equal(t, map[string]int{"Column": 4, "Spacing": 2}, out.Stats.ByCategory)
	require.Len(t, out.Issues, 3)
	assert.Equal(t, "b.html", out.Issues[0].File)
	assert.Equal(t, `<p class="col-wide">`, out.Issues[0].Source)
	assert.Equal(t, "px-gap", out.Issues[2].Replacement)
	assert.Equal(t, []JSONClassUsage{{Class: "col-full", Occurrences: 3}}, out.TopClasses)
	assert.Equal(t, []string{"Unknown option 'foo' ignored"}, out.Warnings)
	assert.Contains(t, buf.String(), "\n  \"summary\": {")
}

func TestWriteOutputMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteOutput(&buf, sampleResult(), OutputMarkdown, LintConfig{}))
	out := buf.String()

	assert.Contains(t, out, "## Breakout grid lint\n")
	assert.Contains(t, out, "**3 issues** (2 errors, 1 warning) in 2 files. 1 issue truncated.\n")
	assert.Contains(t, out, "| `b.html:3:11` | error | unknown breakout class \"col-wide\" |\n")
	assert.Contains(t, out, "- Used classes: 5 (50.0%)\n")
	assert.Contains(t, out, "### Warnings\n\n- Unknown option 'foo' ignored\n")
}

func TestWriteMarkdownCountsListedIssues(t *testing.T) {
	result := sampleResult()
	// counted before max-issues-per-linter dropped two errors
	result.ErrorCount = 4
	result.WarningCount = 1
	result.TruncatedCount = 2

	var buf bytes.Buffer
	require.NoError(t, WriteMarkdown(&buf, result))
	assert.Contains(t, buf.String(), "**3 issues** (2 errors, 1 warning) in 2 files. 2 issues truncated.\n")

	result.TruncatedCount = 0
	buf.Reset()
	require.NoError(t, WriteMarkdown(&buf, result))
	assert.Contains(t, buf.String(), "in 2 files.\n")
	assert.NotContains(t, buf.String(), "truncated")
}

func TestWriteOutputText(t *testing.T) {
	t.Setenv("FORCE_COLOR", "")
	t.Setenv("GITHUB_ACTIONS", "")
	t.Setenv("NO_COLOR", "1")

	tests := []struct {
		format      OutputFormat
		contains    []string
		notContains []string
	}{
		{
			format:      OutputIssues,
			contains:    []string{"b.html:3:11:", "3 issues"},
			notContains: []string{"Breakout Grid Statistics"},
		},
		{
			format:      OutputSummary,
			contains:    []string{"Breakout Grid Statistics", "Most Used Classes"},
			notContains: []string{"b.html:3:11:"},
		},
		{
			format:   OutputFull,
			contains: []string{"b.html:3:11:", "3 issues", "Grid Coverage", "References by Category"},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteOutput(&buf, sampleResult(), tt.format, LintConfig{}))
			for _, s := range tt.contains {
				assert.Contains(t, buf.String(), s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, buf.String(), s)
			}
		})
	}
}
