package breakout

import (
	"github.com/yacobolo/breakout/internal/logger"
)

// Output formats of Generate
const (
	FormatCSS  = "css"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config holds generation configuration
type Config struct {
	// Grid is the user grid configuration: a map as decoded from YAML or
	// JSON, or nil for the defaults.
	Grid any `validate:"-"`
	// Breakpoints maps breakpoint names to min-widths.
	Breakpoints any `validate:"-"`

	Standalone bool   // fixed stylesheet with the default configuration
	Format     string `validate:"required,oneof=css json yaml"`
	Output     string // file path, or "-" / "" for stdout
	Verbose    bool

	Logger *logger.Logger `validate:"-"`
}

// GenerateResult contains generation statistics
type GenerateResult struct {
	Classes           int                   // utility classes emitted
	Templates         int                   // container templates
	MediaBlocks       int                   // responsive override blocks
	ClassesByCategory map[ClassCategory]int // utility classes per category
	Warnings          []string              // configuration warnings
	Degraded          string                // "none", "defaults", "fallback" or "noop"
	Bytes             int                   // size of the written output
	OutputPath        string                // "" when written to stdout
}

// toStdout reports whether the output goes to standard output
func (c Config) toStdout() bool {
	return c.Output == "" || c.Output == "-"
}
