package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidLength(t *testing.T) {
	tests := []struct {
		value string
		valid bool
	}{
		{"1rem", true},
		{"10px", true},
		{"4vw", true},
		{"1.5rem", true},
		{"-2em", true},
		{"50%", true},
		{"0", true},
		{" 12vw ", true},
		{"2ex", true},
		{"clamp(1rem, 4vw, 2rem)", true},
		{"calc(100% - 2rem)", true},
		{"min(10px, 5vw)", true},
		{"max(10px, 5vw)", true},
		{"var(--gap)", true},
		{"banana", false},
		{"", false},
		{"10", false},
		{"10 px", false},
		{"1rem 2rem", false},
		{"5parsecs", false},
		{"1rem;", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidLength(tt.value))
		})
	}
}

func TestParseLength(t *testing.T) {
	tests := []struct {
		value string
		num   float64
		unit  string
	}{
		{"1.5rem", 1.5, "rem"},
		{"768px", 768, "px"},
		{"25%", 25, "%"},
		{"3EM", 3, "em"},
		{"0", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			num, unit, ok := ParseLength(tt.value)
			assert.True(t, ok)
			assert.InDelta(t, tt.num, num, 1e-9)
			assert.Equal(t, tt.unit, unit)
		})
	}
}

func TestToPixels(t *testing.T) {
	px, ok := toPixels("48rem")
	assert.True(t, ok)
	assert.InDelta(t, 768.0, px, 1e-9)

	_, ok = toPixels("40vw")
	assert.False(t, ok)
}

func TestIsUnsafe(t *testing.T) {
	assert.False(t, isUnsafe("clamp(1rem, 4vw, 2rem)"))
	assert.True(t, isUnsafe("1rem; color: red"))
	assert.True(t, isUnsafe("1rem }"))
	assert.True(t, isUnsafe("1rem\n"))
}
