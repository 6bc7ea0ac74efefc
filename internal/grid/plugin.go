package grid

import (
	"fmt"

	"github.com/yacobolo/breakout/internal/logger"
)

// Options is the input of Run. Config and Breakpoints are untyped so that
// decoded YAML, JSON or koanf subtrees can be passed as they are.
type Options struct {
	Config      any
	Breakpoints any
	Logger      *logger.Logger
}

// Base holds the styles a host puts in its base layer.
type Base struct {
	Root          []Decl
	DefaultColumn Rule
	Media         []MediaBlock
}

// Degradation records which fallback, if any, produced an Output.
type Degradation int

const (
	// DegradedNone is a complete output from the user configuration.
	DegradedNone Degradation = iota
	// DegradedDefaults is a complete output built from the defaults because
	// the configuration could not be read.
	DegradedDefaults
	// DegradedFallback is the minimal fallback output.
	DegradedFallback
	// DegradedNoop is an empty output.
	DegradedNoop
)

func (d Degradation) String() string {
	switch d {
	case DegradedNone:
		return "none"
	case DegradedDefaults:
		return "defaults"
	case DegradedFallback:
		return "fallback"
	case DegradedNoop:
		return "noop"
	}
	return fmt.Sprintf("Degradation(%d)", int(d))
}

// Output is everything one run produces.
type Output struct {
	Base      Base
	Utilities ClassTable
	Templates TemplateSet
	Warnings  []Warning
	Degraded  Degradation
}

// IsEmpty reports whether the output contains no styles.
func (o Output) IsEmpty() bool {
	return len(o.Base.Root) == 0 && len(o.Base.Media) == 0 && o.Utilities.Len() == 0
}

// Run resolves the configuration and builds the base styles and utilities.
// It never returns an error: failures are logged and degrade the output.
func Run(opts Options) Output {
	log := opts.Logger

	breakpoints, err := NormalizeBreakpoints(opts.Breakpoints)
	if err != nil {
		log.Error(err, "breakout grid disabled")
		return Output{Degraded: DegradedNoop}
	}

	degraded := DegradedNone
	cfg, warnings, err := Resolve(opts.Config)
	if err != nil {
		degraded = DegradedDefaults
		warnings = append(warnings, Warning{
			Code:    WarnInvalidConfig,
			Message: fmt.Sprintf("Invalid configuration, using defaults: %v", err),
		})
	}
	for _, w := range warnings {
		log.Warn(w.Code, w.Field, w.Message)
	}

	out, stage, err := build(cfg, breakpoints)
	if err != nil {
		log.With("stage", stage).Error(err, "using fallback grid")
		out = FallbackOutput()
		degraded = DegradedFallback
	}

	out.Warnings = warnings
	out.Degraded = degraded
	log.Debug(fmt.Sprintf("generated %d templates and %d utilities", out.Templates.Len(), out.Utilities.Len()))
	return out
}

// build runs each stage in order and reports the stage that failed.
func build(cfg ResolvedConfig, breakpoints []Breakpoint) (Output, string, error) {
	tiers := cfg.ActiveTiers()

	props, err := EmitProperties(cfg, tiers, breakpoints)
	if err != nil {
		return Output{}, "properties", err
	}

	set, err := GenerateTemplates(tiers)
	if err != nil {
		return Output{}, "templates", err
	}

	utilities, err := BuildUtilities(set)
	if err != nil {
		return Output{}, "utilities", err
	}

	defaultCol, err := DefaultColumnRule(set, cfg.DefaultCol)
	if err != nil {
		return Output{}, "default column", err
	}

	return Output{
		Base: Base{
			Root:          props.Root,
			DefaultColumn: defaultCol,
			Media:         props.Media,
		},
		Utilities: utilities,
		Templates: set,
	}, "", nil
}

// FallbackOutput is the minimal grid used when the configured one cannot be
// built: one gap, one content track and the full track.
func FallbackOutput() Output {
	set := fallbackSet()

	table := newClassTable()
	table.add(ContainerClass, container(set.Default())...)
	table.add("col-"+string(TierContent), Decl{"grid-column", string(TierContent)})

	return Output{
		Base: Base{
			Root: FallbackProperties().Root,
			DefaultColumn: Rule{
				Selector: "." + ContainerClass + " > *:not([class*='col-'])",
				Decls:    []Decl{{"grid-column", string(TierContent)}},
			},
		},
		Utilities: *table,
		Templates: set,
		Degraded:  DegradedFallback,
	}
}
