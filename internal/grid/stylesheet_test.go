package grid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func declMap(decls []Decl) map[string]string {
	m := make(map[string]string, len(decls))
	for _, d := range decls {
		m[d.Property] = d.Value
	}
	return m
}

func TestRenderCSSOrder(t *testing.T) {
	out := Run(Options{Breakpoints: map[string]any{"lg": "1024px"}})
	text := RenderCSS(out)

	require.NoError(t, CheckBalanced(text))
	assert.True(t, strings.HasPrefix(text, ":root {\n  --base-gap: 1rem;\n"))

	root := strings.Index(text, ":root {")
	media := strings.Index(text, "@media (min-width: 1024px) {\n  :root {\n    --gap:")
	defaultCol := strings.Index(text, ".grid-cols-breakout > *:not([class*='col-'])")
	container := strings.Index(text, ".grid-cols-breakout {")
	require.True(t, media > 0 && defaultCol > 0 && container > 0)
	assert.True(t, root < media && media < defaultCol && defaultCol < container)
}

func TestRenderCSSRoundTrip(t *testing.T) {
	out := Run(Options{Config: map[string]any{"featurePopout": "2rem"}})

	parsed, err := ParseStylesheet(RenderCSS(out))
	require.NoError(t, err)

	byName := make(map[string]ParsedClass, len(parsed))
	for _, c := range parsed {
		assert.Empty(t, c.Media)
		byName[c.Name] = c
	}

	rules := out.Utilities.Rules()
	assert.Len(t, byName, len(rules))
	for _, rule := range rules {
		name := strings.TrimPrefix(rule.Selector, ".")
		c, ok := byName[name]
		if assert.True(t, ok, name) {
			assert.Equal(t, declMap(rule.Decls), c.Properties, name)
		}
	}
}

func TestRenderCSSTemplatesValidate(t *testing.T) {
	parsed, err := ParseStylesheet(RenderCSS(Run(Options{})))
	require.NoError(t, err)

	for _, c := range parsed {
		if tpl, ok := c.Properties["grid-template-columns"]; ok {
			assert.NoError(t, ValidateTemplateText(tpl), c.Name)
		}
	}
}

func TestStandalone(t *testing.T) {
	text, err := Standalone()
	require.NoError(t, err)
	require.NoError(t, CheckBalanced(text))

	for _, want := range []string{
		"--gap:",
		"--computed-gap:",
		"--full:",
		"--feature:",
		"--popout:",
		"--content:",
		"@media (min-width: 768px)",
		"@media (min-width: 1024px)",
		"@media (min-width: 1280px)",
		".grid-cols-breakout {",
		".grid-cols-feature-left {",
		".grid-cols-content-right {",
		".grid-cols-breakout-subgrid {",
		".p-gap {",
		".px-full-gap {",
		".p-breakout {",
		".full-limit {",
	} {
		assert.Contains(t, text, want)
	}
	assert.NotContains(t, text, "--narrow:")
	assert.NotContains(t, text, ".grid-cols-narrow-left")

	parsed, err := ParseStylesheet(text)
	require.NoError(t, err)
	classes := make(map[string]map[string]string)
	for _, c := range parsed {
		classes[c.Name] = c.Properties
	}

	assert.Equal(t, "[full-start] var(--full) [feature-start] var(--feature) [popout-start] var(--popout) "+
		"[content-start] var(--content) [center-start center-end] var(--content) [content-end] var(--popout) "+
		"[popout-end] var(--feature) [feature-end] var(--full) [full-end]",
		classes["grid-cols-breakout"]["grid-template-columns"])

	assert.Equal(t, map[string]string{
		"display":               "grid",
		"grid-template-columns": "subgrid",
		"grid-column":           "full",
	}, classes["grid-cols-breakout-subgrid"])

	assert.Equal(t, map[string]string{"--feature": "minmax(0, 0px)"}, classes["breakout-to-popout"])
	assert.Equal(t, map[string]string{
		"--feature": "minmax(0, 0px)",
		"--popout":  "minmax(0, 0px)",
	}, classes["breakout-to-content"])
	assert.NotContains(t, classes, "breakout-to-feature")

	assert.Equal(t, "content", classes["col-narrow"]["grid-column"])
	assert.Equal(t, "content-start", classes["col-start-narrow"]["grid-column-start"])
	assert.Equal(t, "full-start / content-end", classes["col-narrow-left"]["grid-column"])
	assert.Equal(t, "content-start / full-end", classes["col-narrow-right"]["grid-column"])
}

func TestStandaloneMatchesParametrizedShapes(t *testing.T) {
	set, err := GenerateTemplates(StandaloneTiers)
	require.NoError(t, err)

	text, err := Standalone()
	require.NoError(t, err)
	for _, key := range set.Keys() {
		tpl, _ := set.Get(key)
		assert.Contains(t, text, "grid-template-columns: "+tpl.String()+";")
	}
}

func TestBuildStandalone(t *testing.T) {
	sheet, err := BuildStandalone()
	require.NoError(t, err)

	text, err := Standalone()
	require.NoError(t, err)
	assert.Equal(t, text, sheet.CSS)

	assert.Equal(t, 7, sheet.Templates.Len())
	assert.Len(t, sheet.Media, 3)
	assert.Len(t, sheet.Classes, 90)

	seen := make(map[string]bool)
	for _, class := range sheet.Classes {
		assert.False(t, seen[class], "duplicate class %s", class)
		seen[class] = true
		assert.Contains(t, sheet.CSS, "."+class+" {")
	}
	assert.True(t, seen["grid-cols-feature-right"])
	assert.True(t, seen["grid-cols-breakout-subgrid"])
	assert.True(t, seen["col-narrow-left"])
}
