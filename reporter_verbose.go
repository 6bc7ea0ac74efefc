package breakout

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// VerboseReporter prints grid usage statistics
type VerboseReporter struct {
	w         io.Writer
	useColors bool
}

// NewVerboseReporter creates a verbose reporter
func NewVerboseReporter(w io.Writer, useColors bool) *VerboseReporter {
	return &VerboseReporter{
		w:         w,
		useColors: useColors,
	}
}

func (r *VerboseReporter) header(style lipgloss.Style, title string) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(style, title, r.useColors))
	fmt.Fprintln(r.w, strings.Repeat("-", len(title)))
}

// PrintStatistics outputs the scan totals
func (r *VerboseReporter) PrintStatistics(result LintResult) {
	r.header(StyleCyan, "Breakout Grid Statistics")

	fmt.Fprintf(r.w, "Known Classes:    %d\n", result.KnownClasses)
	fmt.Fprintf(r.w, "Used Classes:     %d (%.1f%%)\n", result.UsedClasses, result.UsagePercentage())
	fmt.Fprintf(r.w, "Files Scanned:    %d\n", result.FilesScanned)
	fmt.Fprintf(r.w, "Grid References:  %d\n", result.ClassesFound)
	fmt.Fprintf(r.w, "Errors:           %d\n", result.ErrorCount)
	fmt.Fprintf(r.w, "Warnings:         %d\n", result.WarningCount)
}

// PrintCoverage shows the share of grid classes in use as a bar
func (r *VerboseReporter) PrintCoverage(result LintResult) {
	r.header(StyleCyan, "Grid Coverage")
	printProgressBar(r.w, result.UsagePercentage())
}

// PrintCategories shows references per class category
func (r *VerboseReporter) PrintCategories(result LintResult) {
	if len(result.UsageByCategory) == 0 {
		return
	}

	r.header(StyleCyan, "References by Category")
	for _, category := range SortedCategories(result.UsageByCategory) {
		fmt.Fprintf(r.w, "%-10s %d\n", category+":", result.UsageByCategory[category])
	}
}

// PrintTopClasses lists the most referenced classes
func (r *VerboseReporter) PrintTopClasses(result LintResult) {
	if len(result.TopClasses) == 0 {
		return
	}

	r.header(StyleGreen, "Most Used Classes")
	for i, usage := range result.TopClasses {
		fmt.Fprintf(r.w, "%d. %s - %s\n", i+1, usage.Class,
			pluralizeCount(usage.Occurrences, "occurrence", "occurrences"))
	}
}

// PrintWarnings shows configuration warnings
func (r *VerboseReporter) PrintWarnings(result LintResult) {
	if len(result.Warnings) == 0 {
		return
	}

	r.header(StyleYellow, "Warnings")
	for _, warning := range result.Warnings {
		fmt.Fprintf(r.w, "• %s\n", warning)
	}
}

// printProgressBar prints a 20 cell bar for percentage
func printProgressBar(w io.Writer, percentage float64) {
	const barWidth = 20
	filled := int(percentage / 100 * barWidth)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}

	fmt.Fprintf(w, "[%s%s] %.1f%%\n",
		strings.Repeat("█", filled),
		strings.Repeat("░", barWidth-filled),
		percentage)
}
