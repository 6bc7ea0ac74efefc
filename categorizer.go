package breakout

import (
	"regexp"
	"sort"
	"strings"
)

// ClassCategory groups utility classes by what they do
type ClassCategory string

// Class categories, in report order
const (
	CategoryContainer ClassCategory = "Container"
	CategoryColumn    ClassCategory = "Column"
	CategorySpacing   ClassCategory = "Spacing"
	CategoryModifier  ClassCategory = "Modifier"
	CategoryOther     ClassCategory = "Other"
)

// categoryOrder is the order categories are printed in
var categoryOrder = []ClassCategory{
	CategoryContainer,
	CategoryColumn,
	CategorySpacing,
	CategoryModifier,
	CategoryOther,
}

// spacingSuffixes are the size variants of the spacing utilities
var spacingSuffixes = []string{"full-gap", "gap", "feature", "breakout"}

var (
	// spacingPattern matches the key part of a spacing class: p, px, mt, ...
	spacingPattern = regexp.MustCompile(`^[pm][xytrbl]?-`)

	// foreignPattern matches grid classes from other frameworks that share
	// our prefixes, e.g. Tailwind's col-span-2 or Bootstrap's col-md-6.
	foreignPattern = regexp.MustCompile(`^(col-span-.+|col-auto|col-\d+|col-(sm|md|lg|xl|xxl)(-.+)?|col-(start|end)-(\d+|auto)|grid-cols-(\d+|none|subgrid))$`)
)

// categorizeClass determines the category of a grid class
func categorizeClass(name string) ClassCategory {
	switch {
	case strings.HasPrefix(name, "grid-cols-"):
		return CategoryContainer
	case strings.HasPrefix(name, "col-"):
		return CategoryColumn
	case strings.HasPrefix(name, "breakout-to-"), name == "full-limit":
		return CategoryModifier
	case isSpacingClass(name):
		return CategorySpacing
	}
	return CategoryOther
}

// isSpacingClass reports whether name is one of the grid spacing utilities
// or looks like a misspelling of one.
func isSpacingClass(name string) bool {
	loc := spacingPattern.FindStringIndex(name)
	if loc == nil {
		return false
	}
	rest := name[loc[1]:]
	for _, suffix := range spacingSuffixes {
		if strings.HasPrefix(rest, suffix[:3]) {
			return true
		}
	}
	return false
}

// isGridClass reports whether a class token belongs to the grid's namespace
// and should therefore be checked against the known classes.
func isGridClass(name string) bool {
	if foreignPattern.MatchString(name) {
		return false
	}
	return categorizeClass(name) != CategoryOther
}

// categorizeClasses counts classes per category
func categorizeClasses(classes []string) map[ClassCategory]int {
	result := make(map[ClassCategory]int)
	for _, c := range classes {
		result[categorizeClass(c)]++
	}
	return result
}

// SortedCategories returns the categories present in counts, in report order
func SortedCategories(counts map[ClassCategory]int) []ClassCategory {
	var out []ClassCategory
	for _, c := range categoryOrder {
		if counts[c] > 0 {
			out = append(out, c)
		}
	}
	// categories outside categoryOrder, should any appear
	var extra []ClassCategory
	for c := range counts {
		known := false
		for _, k := range categoryOrder {
			if c == k {
				known = true
				break
			}
		}
		if !known && counts[c] > 0 {
			extra = append(extra, c)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	return append(out, extra...)
}
