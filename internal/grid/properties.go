package grid

import (
	"fmt"
	"strings"
)

// computedGapDivisor spreads the viewport left over by the feature tier
// between the two full tracks and the gutters inside them.
const computedGapDivisor = 10

// WidthFormula is the reading-width expression: the clamped base width, capped
// so that Gaps gap-widths always remain beside it.
type WidthFormula struct {
	Base string
	Gaps int
}

func (f WidthFormula) String() string {
	return fmt.Sprintf("min(%s, 100%% - var(--gap) * %d)", f.Base, f.Gaps)
}

const clampedNarrow = "clamp(var(--narrow-min), var(--narrow-base), var(--narrow-max))"

// PlainWidth is the reading width of centered grids: a gap on each side.
func PlainWidth() WidthFormula { return WidthFormula{Base: clampedNarrow, Gaps: 2} }

// InsetWidth is the reading width of left/right grids, which are already
// flush with one edge and only keep a gap on the open side.
func InsetWidth() WidthFormula { return WidthFormula{Base: clampedNarrow, Gaps: 1} }

// PropertyTable is the set of custom properties on :root plus the
// breakpoint overrides.
type PropertyTable struct {
	Root  []Decl
	Media []MediaBlock
}

// Get returns the root value of a custom property.
func (p PropertyTable) Get(name string) (string, bool) {
	return lookupDecl(p.Root, name)
}

// FallbackProperties is the minimal property set used when the configured one
// cannot be built. It still renders a valid grid.
func FallbackProperties() PropertyTable {
	return PropertyTable{
		Root: []Decl{
			{"--gap", "1rem"},
			{"--content", "minmax(0, 40rem)"},
			{"--full", "minmax(var(--gap), 1fr)"},
		},
	}
}

// gapValue is the visual gap for a scale factor.
func gapValue(scale string) string {
	return "clamp(var(--base-gap), " + scale + ", var(--max-gap))"
}

// EmitProperties maps cfg to custom properties for the given tiers. The last
// tier is the innermost one: its track is half the reading width, drawn on
// both sides of center.
func EmitProperties(cfg ResolvedConfig, tiers []Tier, breakpoints []Breakpoint) (PropertyTable, error) {
	if err := validateTiers(tiers); err != nil {
		return PropertyTable{}, err
	}
	inner := tiers[len(tiers)-1]

	var table PropertyTable
	add := func(name, value string) {
		table.Root = append(table.Root, Decl{Property: name, Value: value})
	}

	add("--base-gap", cfg.BaseGap)
	add("--max-gap", cfg.MaxGap)
	add("--gap", gapValue(cfg.GapScale[defaultBreakpoint]))
	add("--narrow-min", cfg.NarrowMin)
	add("--narrow-base", cfg.NarrowBase)
	add("--narrow-max", cfg.NarrowMax)
	add("--narrow-width", PlainWidth().String())
	add("--narrow-width-inset", InsetWidth().String())

	// the rings between full and the innermost tier
	var rings []Tier
	for _, t := range tiers[1 : len(tiers)-1] {
		rings = append(rings, t)
		add("--"+string(t)+"-width", ringWidth(cfg, t))
	}

	add("--breakout-span", breakoutSpan(rings))
	add("--computed-gap", fmt.Sprintf("max(var(--gap), calc((100vw - var(--breakout-span)) / %d))", computedGapDivisor))

	add("--full", "minmax(var(--gap), 1fr)")
	for _, t := range rings {
		add("--"+string(t), "minmax(0, var(--"+string(t)+"-width))")
	}
	add("--"+string(inner), "minmax(0, calc(var(--narrow-width) / 2))")
	add("--"+string(inner)+"-inset", "minmax(0, calc(var(--narrow-width-inset) / 2))")

	add("--full-limit", cfg.FullLimit)
	add("--breakout-padding", cfg.BreakoutPadding[defaultBreakpoint])

	table.Media = responsiveOverrides(cfg, breakpoints)

	if err := checkSafe(table); err != nil {
		return PropertyTable{}, err
	}
	return table, nil
}

func ringWidth(cfg ResolvedConfig, t Tier) string {
	switch t {
	case TierFeaturePopout:
		return cfg.FeaturePopout
	case TierFeature:
		return cfg.Feature
	case TierPopout:
		return cfg.Popout
	case TierContent:
		return cfg.Content
	}
	return "0px"
}

// breakoutSpan is the width of the feature tier: the reading width plus every
// ring from feature inwards on both sides. feature-popout sits outside it.
func breakoutSpan(rings []Tier) string {
	var widths []string
	for _, t := range rings {
		if t == TierFeaturePopout {
			continue
		}
		widths = append(widths, "var(--"+string(t)+"-width)")
	}
	if len(widths) == 0 {
		return "var(--narrow-width)"
	}
	return "calc(var(--narrow-width) + 2 * (" + strings.Join(widths, " + ") + "))"
}

// responsiveOverrides builds one media block per host breakpoint that has a
// gapScale or breakoutPadding entry. Other breakpoints are skipped.
func responsiveOverrides(cfg ResolvedConfig, breakpoints []Breakpoint) []MediaBlock {
	var blocks []MediaBlock
	for _, bp := range breakpoints {
		var decls []Decl
		if scale, ok := cfg.GapScale[bp.Name]; ok {
			decls = append(decls, Decl{"--gap", gapValue(scale)})
		}
		if padding, ok := cfg.BreakoutPadding[bp.Name]; ok {
			decls = append(decls, Decl{"--breakout-padding", padding})
		}
		if len(decls) == 0 {
			continue
		}
		blocks = append(blocks, MediaBlock{
			Breakpoint: bp.Name,
			MinWidth:   bp.MinWidth,
			Rules:      []Rule{{Selector: ":root", Decls: decls}},
		})
	}
	return blocks
}

func checkSafe(table PropertyTable) error {
	for _, d := range table.Root {
		if isUnsafe(d.Value) {
			return fmt.Errorf("%w: %s: %q", ErrUnsafeValue, d.Property, d.Value)
		}
	}
	for _, block := range table.Media {
		if isUnsafe(block.MinWidth) {
			return fmt.Errorf("%w: breakpoint %s: %q", ErrUnsafeValue, block.Breakpoint, block.MinWidth)
		}
		for _, rule := range block.Rules {
			for _, d := range rule.Decls {
				if isUnsafe(d.Value) {
					return fmt.Errorf("%w: %s at %s: %q", ErrUnsafeValue, d.Property, block.Breakpoint, d.Value)
				}
			}
		}
	}
	return nil
}
