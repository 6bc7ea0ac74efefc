// Package breakout generates the breakout grid stylesheet and lints markup
// that uses its classes.
//
// The grid itself (custom properties, named-line templates and utility
// classes) is computed by internal/grid. This package adds the file-level
// workflow around it.
//
// # Generation
//
//	result, err := breakout.Generate(breakout.Config{
//		Grid:        map[string]any{"feature": "10vw"},
//		Breakpoints: map[string]any{"md": "768px", "lg": "1024px"},
//		Format:      "css",
//		Output:      "web/static/breakout.css",
//	})
//
// Format may also be "json" or "yaml" to export the structured output for
// other tooling. Standalone renders the fixed stylesheet for projects
// without a build integration.
//
// # Linting
//
//	result, err := breakout.Lint(breakout.LintConfig{
//		ScanPaths: []string{"web/**/*.{html,templ}"},
//	})
//
// The linter reports unknown grid classes (with a suggestion when one is
// close) and elements that combine conflicting placement classes.
//
// # CLI Tool
//
//	go install github.com/yacobolo/breakout/cmd/breakout@latest
package breakout
