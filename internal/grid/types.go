// Package grid generates the breakout grid: custom properties, named-line
// templates for every tier and alignment, and the utility classes built on them.
//
// Everything in this package is a pure function of its input. The only side
// channel is the optional logger passed to Run.
package grid

import (
	"errors"
	"strings"
)

// Tier is a named content-width level of the grid.
type Tier string

// Tiers from widest to narrowest.
const (
	TierFull          Tier = "full"
	TierFeaturePopout Tier = "feature-popout"
	TierFeature       Tier = "feature"
	TierPopout        Tier = "popout"
	TierContent       Tier = "content"
	TierNarrow        Tier = "narrow"
)

// centerName is the zero-width line pair between the two innermost tracks.
const centerName = "center"

// tierOrder is the fixed order of all tiers, widest first.
var tierOrder = []Tier{TierFull, TierFeaturePopout, TierFeature, TierPopout, TierContent, TierNarrow}

// StandaloneTiers is the fixed tier set rendered by Standalone. Content is the
// innermost tier there, and narrow is emitted as an alias of it.
var StandaloneTiers = []Tier{TierFull, TierFeature, TierPopout, TierContent}

// AllTiers returns every tier in order, widest first.
func AllTiers() []Tier {
	return append([]Tier(nil), tierOrder...)
}

// ParseTier resolves a tier name.
func ParseTier(name string) (Tier, bool) {
	name = strings.TrimSpace(strings.ToLower(name))
	for _, t := range tierOrder {
		if string(t) == name {
			return t, true
		}
	}
	return "", false
}

// Start is the name of the grid line that opens the tier.
func (t Tier) Start() string { return string(t) + "-start" }

// End is the name of the grid line that closes the tier.
func (t Tier) End() string { return string(t) + "-end" }

// camel turns "feature-popout" into "featurePopout".
func (t Tier) camel() string {
	parts := strings.Split(string(t), "-")
	for i := 1; i < len(parts); i++ {
		if parts[i] != "" {
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
	}
	return strings.Join(parts, "")
}

// index returns the position of t in the fixed order, or -1.
func (t Tier) index() int {
	for i, o := range tierOrder {
		if o == t {
			return i
		}
	}
	return -1
}

// Alignment selects how a template is anchored in its row.
type Alignment string

// Alignments.
const (
	AlignCenter Alignment = "center"
	AlignLeft   Alignment = "left"
	AlignRight  Alignment = "right"
)

// ParseAlignment resolves an alignment name. The empty string means center.
func ParseAlignment(name string) (Alignment, bool) {
	switch Alignment(strings.TrimSpace(strings.ToLower(name))) {
	case "", AlignCenter:
		return AlignCenter, true
	case AlignLeft:
		return AlignLeft, true
	case AlignRight:
		return AlignRight, true
	}
	return AlignCenter, false
}

// Warning codes.
const (
	WarnInvalidUnit       = "invalid-unit"
	WarnInvalidDefaultCol = "invalid-default-col"
	WarnUnknownOption     = "unknown-option"
	WarnInvalidOption     = "invalid-option"
	WarnInvalidConfig     = "invalid-config"
	WarnUnknownTier       = "unknown-tier"
	WarnUnknownAlignment  = "unknown-alignment"
)

// Warning is a non-fatal diagnostic. Generation always continues after one.
type Warning struct {
	Code    string
	Field   string
	Message string
}

func (w Warning) String() string { return w.Message }

// Messages returns the text of each warning.
func Messages(warnings []Warning) []string {
	out := make([]string, len(warnings))
	for i, w := range warnings {
		out[i] = w.Message
	}
	return out
}

// Decl is a single CSS declaration.
type Decl struct {
	Property string
	Value    string
}

// Rule is a selector with its declarations, in output order.
type Rule struct {
	Selector string
	Decls    []Decl
}

// Value returns the value of the first declaration of property.
func (r Rule) Value(property string) (string, bool) {
	return lookupDecl(r.Decls, property)
}

// MediaBlock holds the overrides that apply from a breakpoint upwards.
type MediaBlock struct {
	Breakpoint string
	MinWidth   string
	Rules      []Rule
}

// Query is the media query of the block.
func (m MediaBlock) Query() string {
	return "(min-width: " + m.MinWidth + ")"
}

func lookupDecl(decls []Decl, property string) (string, bool) {
	for _, d := range decls {
		if d.Property == property {
			return d.Value, true
		}
	}
	return "", false
}

// Sentinel errors. Callers match them with errors.Is.
var (
	ErrInvalidConfig      = errors.New("invalid configuration")
	ErrInvalidBreakpoints = errors.New("invalid breakpoint map")
	ErrUnsafeValue        = errors.New("value would break the stylesheet")
	ErrNoTiers            = errors.New("no tiers to generate")
	ErrInvalidTierSet     = errors.New("invalid tier set")
	ErrMissingTemplate    = errors.New("missing template")
)
