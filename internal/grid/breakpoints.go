package grid

import (
	"fmt"
	"sort"
)

// Breakpoint is a host breakpoint: a name and the minimum width it starts at.
type Breakpoint struct {
	Name     string
	MinWidth string
}

// NormalizeBreakpoints reads the host breakpoint map. Values are either a
// length or a mapping with a "min" key. The result is ordered by ascending
// minimum width; widths that cannot be compared sort last, by name.
func NormalizeBreakpoints(input any) ([]Breakpoint, error) {
	if input == nil {
		return nil, nil
	}

	raw, ok := toStringMap(input)
	if !ok {
		return nil, fmt.Errorf("%w: expected a mapping, got %T", ErrInvalidBreakpoints, input)
	}

	breakpoints := make([]Breakpoint, 0, len(raw))
	for name, value := range raw {
		minWidth, err := breakpointMin(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidBreakpoints, name, err)
		}
		breakpoints = append(breakpoints, Breakpoint{Name: name, MinWidth: minWidth})
	}

	sortBreakpoints(breakpoints)
	return breakpoints, nil
}

func breakpointMin(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case int, int64, float64:
		return fmt.Sprintf("%vpx", v), nil
	}
	if m, ok := toStringMap(value); ok {
		if minWidth, ok := m["min"].(string); ok {
			return minWidth, nil
		}
		return "", fmt.Errorf("mapping without a string 'min' key")
	}
	return "", fmt.Errorf("unsupported value %T", value)
}

func sortBreakpoints(bps []Breakpoint) {
	sort.SliceStable(bps, func(i, j int) bool {
		pi, okI := toPixels(bps[i].MinWidth)
		pj, okJ := toPixels(bps[j].MinWidth)
		switch {
		case okI && okJ && pi != pj:
			return pi < pj
		case okI != okJ:
			return okI
		}
		return bps[i].Name < bps[j].Name
	})
}
