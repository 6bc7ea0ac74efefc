package breakout

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/yacobolo/breakout/internal/grid"
)

// Export is the structured form of a generated grid, for build tools that
// consume the styles as data instead of CSS.
type Export struct {
	Version   string            `json:"version" yaml:"version"`
	Degraded  string            `json:"degraded" yaml:"degraded"`
	Root      map[string]string `json:"root" yaml:"root"`
	Media     []ExportMedia     `json:"media,omitempty" yaml:"media,omitempty"`
	Default   ExportRule        `json:"default_column" yaml:"default_column"`
	Templates []ExportTemplate  `json:"templates" yaml:"templates"`
	Utilities []ExportRule      `json:"utilities" yaml:"utilities"`
	Warnings  []string          `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// ExportMedia is one responsive override block
type ExportMedia struct {
	Breakpoint string            `json:"breakpoint" yaml:"breakpoint"`
	Query      string            `json:"query" yaml:"query"`
	Properties map[string]string `json:"properties" yaml:"properties"`
}

// ExportTemplate is one named grid template
type ExportTemplate struct {
	Key      string `json:"key" yaml:"key"`
	Template string `json:"template" yaml:"template"`
}

// ExportRule is a selector with its declarations. Declaration order is
// preserved as a list of pairs.
type ExportRule struct {
	Selector     string       `json:"selector" yaml:"selector"`
	Declarations []ExportDecl `json:"declarations" yaml:"declarations"`
}

// ExportDecl is one property: value pair
type ExportDecl struct {
	Property string `json:"property" yaml:"property"`
	Value    string `json:"value" yaml:"value"`
}

const exportVersion = "1.0"

// buildExport converts a grid output into its export schema
func buildExport(out grid.Output) Export {
	exp := Export{
		Version:  exportVersion,
		Degraded: out.Degraded.String(),
		Root:     declMap(out.Base.Root),
		Default:  exportRule(out.Base.DefaultColumn),
	}

	for _, m := range out.Base.Media {
		props := make(map[string]string)
		for _, r := range m.Rules {
			for k, v := range declMap(r.Decls) {
				props[k] = v
			}
		}
		exp.Media = append(exp.Media, ExportMedia{
			Breakpoint: m.Breakpoint,
			Query:      m.Query(),
			Properties: props,
		})
	}

	for _, key := range out.Templates.Keys() {
		tpl, _ := out.Templates.Get(key)
		exp.Templates = append(exp.Templates, ExportTemplate{Key: string(key), Template: tpl.String()})
	}

	for _, r := range out.Utilities.Rules() {
		exp.Utilities = append(exp.Utilities, exportRule(r))
	}

	if len(out.Warnings) > 0 {
		exp.Warnings = grid.Messages(out.Warnings)
	}

	return exp
}

func exportRule(r grid.Rule) ExportRule {
	decls := make([]ExportDecl, len(r.Decls))
	for i, d := range r.Decls {
		decls[i] = ExportDecl{Property: d.Property, Value: d.Value}
	}
	return ExportRule{Selector: r.Selector, Declarations: decls}
}

func declMap(decls []grid.Decl) map[string]string {
	m := make(map[string]string, len(decls))
	for _, d := range decls {
		m[d.Property] = d.Value
	}
	return m
}

// WriteExportJSON writes the export as indented JSON
func WriteExportJSON(w io.Writer, exp Export) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(exp)
}

// WriteExportYAML writes the export as YAML
func WriteExportYAML(w io.Writer, exp Export) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(exp); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return encoder.Close()
}
