package breakout

import (
	"fmt"
	"io"
)

// OutputFormat is the lint output format
type OutputFormat string

// Lint output formats
const (
	// OutputIssues prints issues in golangci-lint format (default)
	OutputIssues OutputFormat = "issues"
	// OutputSummary prints statistics only
	OutputSummary OutputFormat = "summary"
	// OutputFull prints issues and statistics
	OutputFull OutputFormat = "full"
	// OutputJSON prints a machine readable report
	OutputJSON OutputFormat = "json"
	// OutputMarkdown prints a report for pull request comments
	OutputMarkdown OutputFormat = "markdown"
)

// DetermineOutputFormat selects the output format from flags. Quiet wins,
// unknown formats fall back to issues.
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	if quiet {
		return OutputIssues
	}

	switch formatFlag {
	case "issues":
		return OutputIssues
	case "summary":
		return OutputSummary
	case "full":
		return OutputFull
	case "json":
		return OutputJSON
	case "markdown", "md":
		return OutputMarkdown
	}
	return OutputIssues
}

// WriteOutput writes the lint result in the given format
func WriteOutput(w io.Writer, result *LintResult, format OutputFormat, config LintConfig) error {
	switch format {
	case OutputSummary:
		verbose := NewVerboseReporter(w, shouldUseColors(config))
		printStatistics(verbose, *result)

	case OutputFull:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)
		printStatistics(NewVerboseReporter(w, reporter.UseColors()), *result)

	case OutputJSON:
		if err := WriteJSON(w, result); err != nil {
			return fmt.Errorf("write json: %w", err)
		}

	case OutputMarkdown:
		if err := WriteMarkdown(w, result); err != nil {
			return fmt.Errorf("write markdown: %w", err)
		}

	default:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)
	}
	return nil
}

func printStatistics(r *VerboseReporter, result LintResult) {
	r.PrintStatistics(result)
	r.PrintCoverage(result)
	r.PrintCategories(result)
	r.PrintTopClasses(result)
	r.PrintWarnings(result)
}
