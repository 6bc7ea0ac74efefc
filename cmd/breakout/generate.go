package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/yacobolo/breakout"
	"github.com/yacobolo/breakout/internal/logger"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate the breakout grid stylesheet",
	Long: `Resolve the grid configuration and write the base styles and utility
classes as CSS, or as JSON or YAML for build tools.

Invalid values only produce warnings. A configuration that cannot be built
falls back to a minimal grid instead of failing the build.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringP("out", "o", "-", "Output file (- for stdout)")
	f.String("format", breakout.FormatCSS, "Output format: css|json|yaml")
	f.Bool("standalone", false, "Emit the fixed stylesheet for projects without a build step")
	f.Bool("watch", false, "Regenerate when the config file changes")
	f.Duration("debounce", 0, "Quiet period before regenerating in watch mode (default 250ms)")
	f.Bool("lint", false, "Run linter after generation")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	log := newLogger()

	if getBoolWithFallback("watch", "generate.watch", false) {
		return runWatch(cmd, log)
	}

	config := buildGenerateConfig(log)
	result, err := breakout.Generate(config)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	if !getBoolWithFallback("quiet", "quiet", false) {
		printGenerateResult(summaryWriter(cmd, result), result)
	}

	lint, _ := cmd.Flags().GetBool("lint")
	if lint || k.Bool("generate.lint") {
		return runLint(cmd)
	}

	return nil
}

// summaryWriter keeps stdout clean when the stylesheet itself went there.
func summaryWriter(cmd *cobra.Command, result *breakout.GenerateResult) io.Writer {
	if result.OutputPath == "" {
		return cmd.ErrOrStderr()
	}
	return cmd.OutOrStdout()
}

func printGenerateResult(w io.Writer, result *breakout.GenerateResult) {
	if result.OutputPath != "" {
		fmt.Fprintf(w, "Generated breakout grid in %s\n", result.OutputPath)
	} else {
		fmt.Fprintln(w, "Generated breakout grid")
	}
	fmt.Fprintf(w, "  Classes: %d\n", result.Classes)
	for _, category := range breakout.SortedCategories(result.ClassesByCategory) {
		fmt.Fprintf(w, "    %s: %d\n", category, result.ClassesByCategory[category])
	}
	fmt.Fprintf(w, "  Templates: %d\n", result.Templates)
	fmt.Fprintf(w, "  Media blocks: %d\n", result.MediaBlocks)
	if result.Degraded != "none" {
		fmt.Fprintf(w, "  Degraded: %s\n", result.Degraded)
	}

	for _, warning := range result.Warnings {
		fmt.Fprintf(w, "  Warning: %s\n", warning)
	}
}

func runWatch(cmd *cobra.Command, log *logger.Logger) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return breakout.Watch(ctx, breakout.WatchOptions{
		Paths:    []string{configPath(cmd)},
		Debounce: getDurationWithFallback("debounce", "generate.debounce", 0),
		Load: func() (breakout.Config, error) {
			if err := loadConfig(cmd); err != nil {
				return breakout.Config{}, err
			}
			return buildGenerateConfig(log), nil
		},
		OnResult: func(result *breakout.GenerateResult, err error) {
			if err != nil {
				log.Error(err, "generation failed")
				return
			}
			printGenerateResult(cmd.ErrOrStderr(), result)
		},
		Logger: log,
	})
}
