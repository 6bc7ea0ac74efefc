package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yacobolo/breakout"
	"github.com/yacobolo/breakout/internal/logger"
)

const defaultConfigPath = ".breakout.yaml"

var k = koanf.New(".")

// logOutput receives diagnostics; generated output stays on stdout.
var logOutput io.Writer = os.Stderr

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	k = koanf.New(".")

	if err := loadConfigFromPath(configPath(cmd)); err != nil {
		return err
	}

	// Only flags set on the command line, so that flag defaults never mask
	// values from the file or the environment.
	flags := cmd.Flags()
	provider := posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(flags, f)
	})
	if err := k.Load(provider, nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// configPath returns the --config value, or the default path.
func configPath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return defaultConfigPath
	}
	return path
}

// loadConfigFromPath loads a config file, if present, and the environment.
func loadConfigFromPath(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("BREAKOUT_", ".", func(s string) string {
		// BREAKOUT_GRID_CONTENT -> grid.content
		// BREAKOUT_LINT_STRICT -> lint.strict
		// BREAKOUT_VERBOSE -> verbose
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "BREAKOUT_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// newLogger builds the diagnostic logger from the verbosity flags.
func newLogger() *logger.Logger {
	level := "info"
	if getBoolWithFallback("verbose", "verbose", false) {
		level = "debug"
	}
	if getBoolWithFallback("quiet", "quiet", false) {
		level = "error"
	}

	log, err := logger.New(logger.Options{Level: level, HumanReadable: true, Writer: logOutput})
	if err != nil {
		return logger.Nop()
	}
	return log
}

// useColors reports whether terminal output should be colored.
func useColors() bool {
	return breakout.ColorsEnabled(getBoolWithFallback("color", "color", false))
}

// buildGenerateConfig constructs the library's Config from koanf state.
func buildGenerateConfig(log *logger.Logger) breakout.Config {
	return breakout.Config{
		Grid:        k.Get("grid"),
		Breakpoints: k.Get("breakpoints"),
		Standalone:  getBoolWithFallback("standalone", "generate.standalone", false),
		Format:      getStringWithFallback("format", "generate.format", breakout.FormatCSS),
		Output:      getStringWithFallback("out", "generate.output", "-"),
		Verbose:     getBoolWithFallback("verbose", "verbose", false),
		Logger:      log,
	}
}

// buildLintConfig constructs the library's LintConfig from koanf state.
func buildLintConfig(log *logger.Logger) breakout.LintConfig {
	var scanPaths []string
	if paths := k.Strings("paths"); len(paths) > 0 {
		scanPaths = paths
	} else if paths := k.Strings("lint.paths"); len(paths) > 0 {
		scanPaths = paths
	} else {
		scanPaths = []string{
			"**/*.html",
			"**/*.templ",
		}
	}

	return breakout.LintConfig{
		ScanPaths:          scanPaths,
		Grid:               k.Get("grid"),
		Breakpoints:        k.Get("breakpoints"),
		Stylesheet:         getStringWithFallback("stylesheet", "lint.stylesheet", ""),
		Verbose:            getBoolWithFallback("verbose", "verbose", false),
		Strict:             getBoolWithFallback("strict", "lint.strict", false),
		MaxIssuesPerLinter: getIntWithFallback("max-issues-per-linter", "lint.max-issues-per-linter", 0),
		MaxSameIssues:      getIntWithFallback("max-same-issues", "lint.max-same-issues", 0),
		PrintIssuedLines:   getBoolWithFallback("print-lines", "lint.print-lines", true),
		PrintLinterName:    getBoolWithFallback("print-linter-name", "lint.print-linter-name", true),
		UseColors:          getBoolWithFallback("color", "color", false),
		Logger:             log,
	}
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}

// getDurationWithFallback checks the flag key first, then the config file key, then returns the default.
func getDurationWithFallback(flagKey, configKey string, defaultVal time.Duration) time.Duration {
	if k.Exists(flagKey) {
		return k.Duration(flagKey)
	}
	if k.Exists(configKey) {
		return k.Duration(configKey)
	}
	return defaultVal
}
