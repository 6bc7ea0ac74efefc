package breakout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorizeClass(t *testing.T) {
	tests := []struct {
		class    string
		expected ClassCategory
	}{
		{"grid-cols-breakout", CategoryContainer},
		{"grid-cols-feature-left", CategoryContainer},
		{"grid-cols-breakout-subgrid", CategoryContainer},
		{"col-full", CategoryColumn},
		{"col-start-popout", CategoryColumn},
		{"col-content-right", CategoryColumn},
		{"px-gap", CategorySpacing},
		{"p-full-gap", CategorySpacing},
		{"ml-feature", CategorySpacing},
		{"py-breakout", CategorySpacing},
		{"breakout-to-content", CategoryModifier},
		{"full-limit", CategoryModifier},
		{"mx-auto", CategoryOther},
		{"p-4", CategoryOther},
		{"text-lg", CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.class, func(t *testing.T) {
			assert.Equal(t, tt.expected, categorizeClass(tt.class))
		})
	}
}

func TestIsGridClass(t *testing.T) {
	tests := []struct {
		class    string
		expected bool
	}{
		{"col-feature", true},
		{"col-contnet", true},
		{"px-fullgap", true},
		{"grid-cols-breakout", true},
		{"col-span-2", false},
		{"col-auto", false},
		{"col-start-1", false},
		{"col-end-auto", false},
		{"col-12", false},
		{"col-md-6", false},
		{"grid-cols-3", false},
		{"grid-cols-subgrid", false},
		{"mx-auto", false},
		{"flex", false},
	}

	for _, tt := range tests {
		t.Run(tt.class, func(t *testing.T) {
			assert.Equal(t, tt.expected, isGridClass(tt.class))
		})
	}
}

func TestSortedCategories(t *testing.T) {
	counts := categorizeClasses([]string{"px-gap", "col-full", "flex", "grid-cols-breakout", "col-content"})

	assert.Equal(t, 2, counts[CategoryColumn])
	assert.Equal(t, []ClassCategory{
		CategoryContainer,
		CategoryColumn,
		CategorySpacing,
		CategoryOther,
	}, SortedCategories(counts))
}
