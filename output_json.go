package breakout

import (
	"encoding/json"
	"io"
)

// JSONOutput is the JSON lint report schema
type JSONOutput struct {
	Version    string           `json:"version"`
	Summary    JSONSummary      `json:"summary"`
	Stats      JSONStats        `json:"stats"`
	Issues     []JSONIssue      `json:"issues"`
	TopClasses []JSONClassUsage `json:"top_classes"`
	Warnings   []string         `json:"warnings,omitempty"`
}

// JSONSummary contains issue counts
type JSONSummary struct {
	TotalIssues  int `json:"total_issues"`
	Errors       int `json:"errors"`
	Warnings     int `json:"warnings"`
	Truncated    int `json:"truncated"`
	FilesScanned int `json:"files_scanned"`
}

// JSONStats contains grid usage statistics
type JSONStats struct {
	KnownClasses    int            `json:"known_classes"`
	UsedClasses     int            `json:"used_classes"`
	UsagePercentage float64        `json:"usage_percentage"`
	GridReferences  int            `json:"grid_references"`
	ByCategory      map[string]int `json:"by_category"`
}

// JSONIssue is a single lint issue
type JSONIssue struct {
	File        string `json:"file"`
	Line        int    `json:"line"`
	Column      int    `json:"column"`
	Severity    string `json:"severity"`
	Message     string `json:"message"`
	Linter      string `json:"linter"`
	Source      string `json:"source,omitempty"`
	Replacement string `json:"replacement,omitempty"`
}

// JSONClassUsage is a class with its reference count
type JSONClassUsage struct {
	Class       string `json:"class"`
	Occurrences int    `json:"occurrences"`
}

// WriteJSON writes the lint result as indented JSON
func WriteJSON(w io.Writer, result *LintResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildJSONOutput(result))
}

// buildJSONOutput converts a LintResult to its JSON schema
func buildJSONOutput(result *LintResult) JSONOutput {
	var errors, warnings int
	issues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		switch issue.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}

		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		replacement := ""
		if issue.Replacement != nil {
			replacement = issue.Replacement.NewText
		}
		issues[i] = JSONIssue{
			File:        issue.Pos.Filename,
			Line:        issue.Pos.Line,
			Column:      issue.Pos.Column,
			Severity:    issue.Severity,
			Message:     issue.Text,
			Linter:      issue.FromLinter,
			Source:      source,
			Replacement: replacement,
		}
	}

	byCategory := make(map[string]int, len(result.UsageByCategory))
	for category, n := range result.UsageByCategory {
		byCategory[string(category)] = n
	}

	top := make([]JSONClassUsage, len(result.TopClasses))
	for i, usage := range result.TopClasses {
		top[i] = JSONClassUsage{Class: usage.Class, Occurrences: usage.Occurrences}
	}

	return JSONOutput{
		Version: "1.0",
		Summary: JSONSummary{
			TotalIssues:  len(result.Issues),
			Errors:       errors,
			Warnings:     warnings,
			Truncated:    result.TruncatedCount,
			FilesScanned: result.FilesScanned,
		},
		Stats: JSONStats{
			KnownClasses:    result.KnownClasses,
			UsedClasses:     result.UsedClasses,
			UsagePercentage: result.UsagePercentage(),
			GridReferences:  result.ClassesFound,
			ByCategory:      byCategory,
		},
		Issues:     issues,
		TopClasses: top,
		Warnings:   result.Warnings,
	}
}
