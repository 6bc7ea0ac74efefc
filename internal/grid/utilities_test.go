package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildDefault(t *testing.T) ClassTable {
	t.Helper()
	table, err := BuildUtilities(defaultSet(t))
	require.NoError(t, err)
	return table
}

func TestBuildUtilitiesCount(t *testing.T) {
	table := buildDefault(t)
	// 9 containers, 23 column classes, 56 spacing classes, full-limit
	assert.Equal(t, 89, table.Len())
	assert.Len(t, table.Classes(), 89)
}

func TestBuildUtilitiesContainers(t *testing.T) {
	set := defaultSet(t)
	table := buildDefault(t)

	rule, ok := table.Get("grid-cols-breakout")
	require.True(t, ok)
	assert.Equal(t, ".grid-cols-breakout", rule.Selector)
	display, _ := rule.Value("display")
	assert.Equal(t, "grid", display)
	columns, _ := rule.Value("grid-template-columns")
	assert.Equal(t, set.Default().String(), columns)

	rule, ok = table.Get(".grid-cols-popout-right")
	require.True(t, ok)
	want, _ := set.Get("popoutRight")
	columns, _ = rule.Value("grid-template-columns")
	assert.Equal(t, want.String(), columns)

	_, ok = table.Get("grid-cols-full-left")
	assert.False(t, ok)
}

func TestBuildUtilitiesColumns(t *testing.T) {
	table := buildDefault(t)

	tests := []struct {
		class    string
		property string
		value    string
	}{
		{"col-full", "grid-column", "full"},
		{"col-content", "grid-column", "content"},
		{"col-start-feature", "grid-column-start", "feature-start"},
		{"col-end-narrow", "grid-column-end", "narrow-end"},
		{"col-popout-left", "grid-column", "full-start / popout-end"},
		{"col-popout-right", "grid-column", "popout-start / full-end"},
		{"col-narrow-left", "grid-column", "full-start / narrow-end"},
	}

	for _, tt := range tests {
		t.Run(tt.class, func(t *testing.T) {
			rule, ok := table.Get(tt.class)
			require.True(t, ok)
			value, ok := rule.Value(tt.property)
			require.True(t, ok)
			assert.Equal(t, tt.value, value)
		})
	}

	_, ok := table.Get("col-full-left")
	assert.False(t, ok)
}

func TestBuildUtilitiesSpacing(t *testing.T) {
	table := buildDefault(t)

	tests := []struct {
		class string
		decls []Decl
	}{
		{"p-gap", []Decl{{"padding", "var(--gap)"}}},
		{"px-gap", []Decl{{"padding-left", "var(--gap)"}, {"padding-right", "var(--gap)"}}},
		{"my-full-gap", []Decl{{"margin-top", "var(--computed-gap)"}, {"margin-bottom", "var(--computed-gap)"}}},
		{"ml-feature", []Decl{{"margin-left", "var(--feature-width)"}}},
		{"p-breakout", []Decl{{"padding", "var(--breakout-padding)"}}},
		{"py-breakout", []Decl{{"padding-top", "var(--breakout-padding)"}, {"padding-bottom", "var(--breakout-padding)"}}},
	}

	for _, tt := range tests {
		t.Run(tt.class, func(t *testing.T) {
			rule, ok := table.Get(tt.class)
			require.True(t, ok)
			assert.Equal(t, tt.decls, rule.Decls)
		})
	}
}

func TestBuildUtilitiesFullLimit(t *testing.T) {
	rule, ok := buildDefault(t).Get("full-limit")
	require.True(t, ok)
	assert.Equal(t, []Decl{
		{"box-sizing", "content-box"},
		{"max-width", "var(--full-limit)"},
		{"margin-left", "auto"},
		{"margin-right", "auto"},
		{"grid-column", "full"},
		{"width", "100%"},
	}, rule.Decls)
}

func TestBuildUtilitiesErrors(t *testing.T) {
	_, err := BuildUtilities(TemplateSet{})
	assert.ErrorIs(t, err, ErrNoTiers)

	broken := TemplateSet{
		tiers:     []Tier{TierFull, TierContent},
		templates: map[TemplateKey]Template{DefaultKey: FallbackTemplate()},
	}
	_, err = BuildUtilities(broken)
	assert.ErrorIs(t, err, ErrMissingTemplate)
}

func TestDefaultColumnRule(t *testing.T) {
	set := defaultSet(t)

	rule, err := DefaultColumnRule(set, "popout")
	require.NoError(t, err)
	assert.Contains(t, rule.Selector, ".grid-cols-breakout > *:not([class*='col-'])")
	assert.Contains(t, rule.Selector, ".grid-cols-feature-left > *:not([class*='col-'])")
	value, _ := rule.Value("grid-column")
	assert.Equal(t, "popout", value)

	rule, err = DefaultColumnRule(set, "")
	require.NoError(t, err)
	value, _ = rule.Value("grid-column")
	assert.Equal(t, "content", value)

	_, err = DefaultColumnRule(set, "content; color: red")
	assert.ErrorIs(t, err, ErrUnsafeValue)
}

func TestClassTableReplaces(t *testing.T) {
	table := newClassTable()
	table.add("a", Decl{"color", "red"})
	table.add("b", Decl{"color", "green"})
	table.add("a", Decl{"color", "blue"})

	assert.Equal(t, []string{"a", "b"}, table.Classes())
	rule, _ := table.Get("a")
	assert.Equal(t, []Decl{{"color", "blue"}}, rule.Decls)
}
