package grid

import (
	"fmt"
	"strings"
)

// ClassTable is an ordered set of utility rules keyed by class name.
type ClassTable struct {
	rules []Rule
	index map[string]int
}

func newClassTable() *ClassTable {
	return &ClassTable{index: make(map[string]int)}
}

// add appends a class rule. A class that already exists is replaced in place.
func (c *ClassTable) add(class string, decls ...Decl) {
	rule := Rule{Selector: "." + class, Decls: decls}
	if i, ok := c.index[class]; ok {
		c.rules[i] = rule
		return
	}
	c.index[class] = len(c.rules)
	c.rules = append(c.rules, rule)
}

// Rules returns the rules in emission order.
func (c ClassTable) Rules() []Rule {
	return append([]Rule(nil), c.rules...)
}

// Get returns the rule of a class, without the leading dot.
func (c ClassTable) Get(class string) (Rule, bool) {
	i, ok := c.index[strings.TrimPrefix(class, ".")]
	if !ok {
		return Rule{}, false
	}
	return c.rules[i], true
}

// Classes returns the class names in emission order.
func (c ClassTable) Classes() []string {
	out := make([]string, len(c.rules))
	for i, r := range c.rules {
		out[i] = strings.TrimPrefix(r.Selector, ".")
	}
	return out
}

// Len returns the number of classes.
func (c ClassTable) Len() int { return len(c.rules) }

// ContainerClass is the primary grid container.
const ContainerClass = "grid-cols-breakout"

// spacingKeys maps each directional key to the properties it sets.
var spacingKeys = []struct {
	key   string
	props []string
}{
	{"p", []string{"padding"}},
	{"px", []string{"padding-left", "padding-right"}},
	{"py", []string{"padding-top", "padding-bottom"}},
	{"pt", []string{"padding-top"}},
	{"pr", []string{"padding-right"}},
	{"pb", []string{"padding-bottom"}},
	{"pl", []string{"padding-left"}},
	{"m", []string{"margin"}},
	{"mx", []string{"margin-left", "margin-right"}},
	{"my", []string{"margin-top", "margin-bottom"}},
	{"mt", []string{"margin-top"}},
	{"mr", []string{"margin-right"}},
	{"mb", []string{"margin-bottom"}},
	{"ml", []string{"margin-left"}},
}

// spacingVariants are the sizes each key comes in.
var spacingVariants = []struct {
	suffix string
	value  string
}{
	{"gap", "var(--gap)"},
	{"full-gap", "var(--computed-gap)"},
	{"feature", "var(--feature-width)"},
	{"breakout", "var(--breakout-padding)"},
}

// ContainerClassFor returns the container class of a tier and alignment.
func ContainerClassFor(t Tier, align Alignment) string {
	return "grid-cols-" + string(t) + "-" + string(align)
}

// BuildUtilities derives the container, column, spacing and full-limit
// classes from a template set.
func BuildUtilities(set TemplateSet) (ClassTable, error) {
	tiers := set.Tiers()
	if len(tiers) == 0 {
		return ClassTable{}, ErrNoTiers
	}

	table := newClassTable()

	def := set.Default()
	if def.IsZero() {
		return ClassTable{}, fmt.Errorf("%w: %s", ErrMissingTemplate, DefaultKey)
	}
	table.add(ContainerClass, container(def)...)

	for _, t := range tiers[1:] {
		for _, align := range []Alignment{AlignLeft, AlignRight} {
			tpl, ok := set.Get(KeyFor(t, align))
			if !ok {
				return ClassTable{}, fmt.Errorf("%w: %s", ErrMissingTemplate, KeyFor(t, align))
			}
			table.add(ContainerClassFor(t, align), container(tpl)...)
		}
	}

	addColumns(table, tiers)
	addSpacing(table)
	table.add("full-limit", fullLimit()...)

	return *table, nil
}

func container(tpl Template) []Decl {
	return []Decl{
		{"display", "grid"},
		{"grid-template-columns", tpl.String()},
	}
}

func addColumns(table *ClassTable, tiers []Tier) {
	for _, t := range tiers {
		name := string(t)
		table.add("col-"+name, Decl{"grid-column", name})
		table.add("col-start-"+name, Decl{"grid-column-start", t.Start()})
		table.add("col-end-"+name, Decl{"grid-column-end", t.End()})
		if t == TierFull {
			continue
		}
		table.add("col-"+name+"-left", Decl{"grid-column", TierFull.Start() + " / " + t.End()})
		table.add("col-"+name+"-right", Decl{"grid-column", t.Start() + " / " + TierFull.End()})
	}
}

func addSpacing(table *ClassTable) {
	for _, v := range spacingVariants {
		for _, k := range spacingKeys {
			decls := make([]Decl, len(k.props))
			for i, prop := range k.props {
				decls[i] = Decl{prop, v.value}
			}
			table.add(k.key+"-"+v.suffix, decls...)
		}
	}
}

func fullLimit() []Decl {
	return []Decl{
		{"box-sizing", "content-box"},
		{"max-width", "var(--full-limit)"},
		{"margin-left", "auto"},
		{"margin-right", "auto"},
		{"grid-column", string(TierFull)},
		{"width", "100%"},
	}
}

// DefaultColumnRule places grid children without a col-* class into the
// configured column, in the primary and every one-sided container.
func DefaultColumnRule(set TemplateSet, column string) (Rule, error) {
	column = strings.TrimSpace(column)
	if column == "" {
		column = string(TierContent)
	}
	if isUnsafe(column) {
		return Rule{}, fmt.Errorf("%w: defaultCol: %q", ErrUnsafeValue, column)
	}

	const children = " > *:not([class*='col-'])"
	selectors := []string{"." + ContainerClass + children}
	tiers := set.Tiers()
	if len(tiers) > 1 {
		for _, t := range tiers[1:] {
			for _, align := range []Alignment{AlignLeft, AlignRight} {
				selectors = append(selectors, "."+ContainerClassFor(t, align)+children)
			}
		}
	}

	return Rule{
		Selector: strings.Join(selectors, ", "),
		Decls:    []Decl{{"grid-column", column}},
	}, nil
}
