package breakout

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// WriteMarkdown writes the lint result as a markdown report
func WriteMarkdown(w io.Writer, result *LintResult) error {
	b := bufio.NewWriter(w)

	fmt.Fprintln(b, "## Breakout grid lint")
	fmt.Fprintln(b)

	// counts describe the listed issues, after truncation
	var errors, warnings int
	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}
	}
	fmt.Fprintf(b, "**%s** (%s, %s) in %s.",
		pluralizeCount(len(result.Issues), "issue", "issues"),
		pluralizeCount(errors, "error", "errors"),
		pluralizeCount(warnings, "warning", "warnings"),
		pluralizeCount(result.FilesScanned, "file", "files"))
	if result.TruncatedCount > 0 {
		fmt.Fprintf(b, " %s truncated.", pluralizeCount(result.TruncatedCount, "issue", "issues"))
	}
	fmt.Fprintln(b)

	if len(result.Issues) > 0 {
		fmt.Fprintln(b)
		fmt.Fprintln(b, "| Location | Severity | Message |")
		fmt.Fprintln(b, "| --- | --- | --- |")
		for _, issue := range result.Issues {
			fmt.Fprintf(b, "| `%s:%d:%d` | %s | %s |\n",
				issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column,
				issue.Severity, escapeMarkdownCell(issue.Text))
		}
	}

	fmt.Fprintln(b)
	fmt.Fprintln(b, "### Usage")
	fmt.Fprintln(b)
	fmt.Fprintf(b, "- Known classes: %d\n", result.KnownClasses)
	fmt.Fprintf(b, "- Used classes: %d (%.1f%%)\n", result.UsedClasses, result.UsagePercentage())
	fmt.Fprintf(b, "- Grid references: %d\n", result.ClassesFound)

	if len(result.Warnings) > 0 {
		fmt.Fprintln(b)
		fmt.Fprintln(b, "### Warnings")
		fmt.Fprintln(b)
		for _, warning := range result.Warnings {
			fmt.Fprintf(b, "- %s\n", warning)
		}
	}

	return b.Flush()
}

func escapeMarkdownCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
