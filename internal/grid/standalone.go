package grid

import (
	"fmt"
	"strings"
)

// StandaloneBreakpoints are the breakpoints of the standalone stylesheet.
var StandaloneBreakpoints = []Breakpoint{
	{Name: "md", MinWidth: "768px"},
	{Name: "lg", MinWidth: "1024px"},
	{Name: "xl", MinWidth: "1280px"},
}

// aliasTier is kept as a column alias of the innermost standalone tier.
const aliasTier = TierNarrow

// StandaloneSheet is the rendered standalone stylesheet with the pieces it
// was built from.
type StandaloneSheet struct {
	CSS       string
	Templates TemplateSet
	Media     []MediaBlock
	// Classes are the class selectors in emission order, without the dot.
	Classes []string
}

// Standalone renders the fixed stylesheet for projects without a build
// integration. It uses the default configuration and StandaloneTiers.
func Standalone() (string, error) {
	sheet, err := BuildStandalone()
	if err != nil {
		return "", err
	}
	return sheet.CSS, nil
}

// BuildStandalone is Standalone, keeping the templates, media blocks and
// class names of the sheet.
func BuildStandalone() (StandaloneSheet, error) {
	cfg := DefaultConfig()
	tiers := StandaloneTiers
	inner := tiers[len(tiers)-1]

	props, err := EmitProperties(cfg, tiers, StandaloneBreakpoints)
	if err != nil {
		return StandaloneSheet{}, fmt.Errorf("standalone properties: %w", err)
	}
	set, err := GenerateTemplates(tiers)
	if err != nil {
		return StandaloneSheet{}, fmt.Errorf("standalone templates: %w", err)
	}
	utilities, err := BuildUtilities(set)
	if err != nil {
		return StandaloneSheet{}, fmt.Errorf("standalone utilities: %w", err)
	}
	defaultCol, err := DefaultColumnRule(set, string(inner))
	if err != nil {
		return StandaloneSheet{}, fmt.Errorf("standalone default column: %w", err)
	}

	sheet := StandaloneSheet{Templates: set, Media: props.Media}
	var w cssWriter
	class := func(r Rule) {
		sheet.Classes = append(sheet.Classes, strings.TrimPrefix(r.Selector, "."))
		w.rule(r, 0)
	}
	utility := func(name string) {
		r, _ := utilities.Get(name)
		class(r)
	}

	w.comment("Breakout grid")
	w.rule(Rule{Selector: ":root", Decls: props.Root}, 0)
	for _, m := range props.Media {
		w.media(m)
	}

	w.comment("Containers")
	for _, name := range containerClasses(tiers) {
		utility(name)
	}
	w.rule(defaultCol, 0)
	class(Rule{
		Selector: "." + ContainerClass + "-subgrid",
		Decls: []Decl{
			{"display", "grid"},
			{"grid-template-columns", "subgrid"},
			{"grid-column", string(TierFull)},
		},
	})

	w.comment("Collapse modifiers")
	for _, r := range collapseRules(tiers) {
		class(r)
	}

	w.comment("Columns")
	for _, name := range columnClasses(tiers) {
		utility(name)
	}
	for _, r := range aliasRules(inner) {
		class(r)
	}

	w.comment("Spacing")
	for _, name := range spacingClasses() {
		utility(name)
	}
	utility("full-limit")

	sheet.CSS = w.String()
	return sheet, nil
}

func containerClasses(tiers []Tier) []string {
	classes := []string{ContainerClass}
	for _, t := range tiers[1:] {
		classes = append(classes, ContainerClassFor(t, AlignLeft), ContainerClassFor(t, AlignRight))
	}
	return classes
}

func columnClasses(tiers []Tier) []string {
	var classes []string
	for _, t := range tiers {
		name := string(t)
		classes = append(classes, "col-"+name, "col-start-"+name, "col-end-"+name)
		if t != TierFull {
			classes = append(classes, "col-"+name+"-left", "col-"+name+"-right")
		}
	}
	return classes
}

func spacingClasses() []string {
	var classes []string
	for _, v := range spacingVariants {
		for _, k := range spacingKeys {
			classes = append(classes, k.key+"-"+v.suffix)
		}
	}
	return classes
}

// collapseRules builds .breakout-to-<tier>: every wider tier except full
// gets a zero track, so the row tops out at that tier.
func collapseRules(tiers []Tier) []Rule {
	var rules []Rule
	for i := 2; i < len(tiers); i++ {
		decls := make([]Decl, 0, i-1)
		for _, wider := range tiers[1:i] {
			decls = append(decls, Decl{"--" + string(wider), "minmax(0, 0px)"})
		}
		rules = append(rules, Rule{Selector: ".breakout-to-" + string(tiers[i]), Decls: decls})
	}
	return rules
}

// aliasRules maps the narrow column classes onto the innermost tier.
func aliasRules(inner Tier) []Rule {
	alias := string(aliasTier)
	return []Rule{
		{Selector: ".col-" + alias, Decls: []Decl{{"grid-column", string(inner)}}},
		{Selector: ".col-start-" + alias, Decls: []Decl{{"grid-column-start", inner.Start()}}},
		{Selector: ".col-end-" + alias, Decls: []Decl{{"grid-column-end", inner.End()}}},
		{Selector: ".col-" + alias + "-left", Decls: []Decl{{"grid-column", TierFull.Start() + " / " + inner.End()}}},
		{Selector: ".col-" + alias + "-right", Decls: []Decl{{"grid-column", inner.Start() + " / " + TierFull.End()}}},
	}
}
