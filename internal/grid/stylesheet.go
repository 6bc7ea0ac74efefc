package grid

import (
	"strings"
)

const indentUnit = "  "

// cssWriter serializes rules with two-space indentation and a blank line
// between top-level blocks.
type cssWriter struct {
	b      strings.Builder
	blocks int
}

func (w *cssWriter) rule(r Rule, depth int) {
	indent := strings.Repeat(indentUnit, depth)
	if depth == 0 {
		w.separate()
	}
	w.b.WriteString(indent + r.Selector + " {\n")
	for _, d := range r.Decls {
		w.b.WriteString(indent + indentUnit + d.Property + ": " + d.Value + ";\n")
	}
	w.b.WriteString(indent + "}\n")
}

func (w *cssWriter) media(m MediaBlock) {
	w.separate()
	w.b.WriteString("@media " + m.Query() + " {\n")
	for _, r := range m.Rules {
		w.rule(r, 1)
	}
	w.b.WriteString("}\n")
}

func (w *cssWriter) comment(text string) {
	w.separate()
	w.b.WriteString("/* " + text + " */\n")
	w.blocks = 0
}

func (w *cssWriter) separate() {
	if w.blocks > 0 {
		w.b.WriteString("\n")
	}
	w.blocks++
}

func (w *cssWriter) String() string { return w.b.String() }

// RenderCSS serializes an Output: root properties, media overrides, the
// default column rule, then every utility class. An empty output renders
// as the empty string.
func RenderCSS(out Output) string {
	if out.IsEmpty() {
		return ""
	}

	var w cssWriter
	if len(out.Base.Root) > 0 {
		w.rule(Rule{Selector: ":root", Decls: out.Base.Root}, 0)
	}
	for _, m := range out.Base.Media {
		w.media(m)
	}
	if out.Base.DefaultColumn.Selector != "" {
		w.rule(out.Base.DefaultColumn, 0)
	}
	for _, r := range out.Utilities.Rules() {
		w.rule(r, 0)
	}
	return w.String()
}
