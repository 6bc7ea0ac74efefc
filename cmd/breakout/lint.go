package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/breakout"
)

// errIssuesFound fails the run after the issues were reported.
var errIssuesFound = errors.New("lint issues found")

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Lint breakout class usage in markup",
	Long: `Check class attributes in HTML, templ and JSX files against the classes
the grid defines. Reports unknown classes with a suggested fix and elements
that combine conflicting column or container classes.

Errors fail the run. With --strict, warnings fail it too.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runLint(cmd)
	},
}

func init() {
	f := lintCmd.Flags()
	f.StringSlice("paths", []string{"**/*.html", "**/*.templ"}, "File patterns to scan for class references")
	f.String("stylesheet", "", "Read known classes from a generated stylesheet instead of the grid config")
	f.Bool("strict", false, "Exit 1 on warnings too (CI mode)")
	f.String("output-format", "", "Output format: issues|summary|full|json|markdown")
	f.Int("max-issues-per-linter", 0, "Max issues to show per linter (0=unlimited)")
	f.Int("max-same-issues", 0, "Max repeated issues to show (0=unlimited)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (breakoutlint) suffix on issues")
}

// runLint is shared between `breakout lint` and `breakout generate --lint`.
func runLint(cmd *cobra.Command) error {
	lintConfig := buildLintConfig(newLogger())

	result, err := breakout.Lint(lintConfig)
	if err != nil {
		return fmt.Errorf("lint failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	format := breakout.DetermineOutputFormat(getStringWithFallback("output-format", "lint.output-format", ""), quiet)

	if !quiet {
		if err := breakout.WriteOutput(cmd.OutOrStdout(), result, format, lintConfig); err != nil {
			return err
		}
	}

	if result.HasFailures(lintConfig.Strict) {
		return errIssuesFound
	}
	return nil
}
