package grid

import (
	"io"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// functionPrefixes are accepted without further parsing.
var functionPrefixes = []string{"clamp(", "calc(", "min(", "max(", "var("}

// lengthUnits are the dimension units a length field may use.
var lengthUnits = map[string]bool{
	"px": true, "rem": true, "em": true, "ex": true, "ch": true, "lh": true, "rlh": true,
	"cap": true, "ic": true,
	"vw": true, "vh": true, "vmin": true, "vmax": true, "vi": true, "vb": true,
	"svw": true, "svh": true, "lvw": true, "lvh": true, "dvw": true, "dvh": true,
	"cqw": true, "cqh": true, "cqi": true, "cqb": true, "cqmin": true, "cqmax": true,
	"cm": true, "mm": true, "q": true, "in": true, "pt": true, "pc": true,
	"fr": true,
}

// rootFontSize is used to compare rem/em breakpoints with px ones.
const rootFontSize = 16

// IsValidLength reports whether value is a CSS length, a percentage, unitless
// zero, or one of the accepted functions.
func IsValidLength(value string) bool {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return false
	}
	for _, prefix := range functionPrefixes {
		if strings.HasPrefix(v, prefix) {
			return true
		}
	}
	_, _, ok := ParseLength(v)
	return ok
}

// ParseLength tokenizes value and splits a single dimension into its number and
// unit. Percentages report the unit "%". A bare number is only accepted when it
// is zero.
func ParseLength(value string) (float64, string, bool) {
	lexer := css.NewLexer(parse.NewInputString(strings.TrimSpace(value)))

	var (
		num   float64
		unit  string
		found bool
	)
	for {
		tt, text := lexer.Next()
		switch tt {
		case css.ErrorToken:
			// EOF ends the value; anything else is a tokenizer error
			if err := lexer.Err(); err != nil && err != io.EOF {
				return 0, "", false
			}
			return num, unit, found
		case css.WhitespaceToken:
			continue
		case css.DimensionToken, css.PercentageToken, css.NumberToken:
			if found {
				return 0, "", false
			}
			n, u, ok := splitDimension(string(text))
			if !ok {
				return 0, "", false
			}
			switch tt {
			case css.PercentageToken:
				u = "%"
			case css.NumberToken:
				if n != 0 || u != "" {
					return 0, "", false
				}
			default:
				if !lengthUnits[strings.ToLower(u)] {
					return 0, "", false
				}
			}
			num, unit, found = n, strings.ToLower(u), true
		default:
			return 0, "", false
		}
	}
}

// splitDimension splits "1.5rem" into 1.5 and "rem".
func splitDimension(text string) (float64, string, bool) {
	i := 0
	if i < len(text) && (text[i] == '+' || text[i] == '-') {
		i++
	}
	for i < len(text) && (isDigit(text[i]) || text[i] == '.') {
		i++
	}
	// exponent, but not the "e" of "em" or "ex"
	if i+1 < len(text) && (text[i] == 'e' || text[i] == 'E') {
		j := i + 1
		if text[j] == '+' || text[j] == '-' {
			j++
		}
		if j < len(text) && isDigit(text[j]) {
			for j < len(text) && isDigit(text[j]) {
				j++
			}
			i = j
		}
	}
	n, err := strconv.ParseFloat(text[:i], 64)
	if err != nil {
		return 0, "", false
	}
	return n, strings.TrimSuffix(text[i:], "%"), true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// toPixels converts px, rem and em lengths to pixels for ordering.
func toPixels(value string) (float64, bool) {
	n, unit, ok := ParseLength(value)
	if !ok {
		return 0, false
	}
	switch unit {
	case "px", "":
		return n, true
	case "rem", "em":
		return n * rootFontSize, true
	}
	return 0, false
}

// isUnsafe reports values that would end a declaration or block early.
func isUnsafe(value string) bool {
	return strings.ContainsAny(value, ";{}\n\r")
}
