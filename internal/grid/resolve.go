package grid

import (
	"fmt"
	"sort"
	"strings"
)

// defaultBreakpoint is the responsive key that applies without a media query.
const defaultBreakpoint = "default"

// ResolvedConfig is the configuration after defaults were merged in.
type ResolvedConfig struct {
	BaseGap         string
	MaxGap          string
	NarrowMin       string
	NarrowBase      string
	NarrowMax       string
	Content         string
	Popout          string
	Feature         string
	FeaturePopout   string // empty disables the feature-popout tier
	FullLimit       string
	DefaultCol      string
	GapScale        map[string]string
	BreakoutPadding map[string]string
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() ResolvedConfig {
	return ResolvedConfig{
		BaseGap:    "1rem",
		MaxGap:     "15rem",
		NarrowMin:  "40rem",
		NarrowBase: "52vw",
		NarrowMax:  "48rem",
		Content:    "4vw",
		Popout:     "5rem",
		Feature:    "12vw",
		FullLimit:  "115rem",
		DefaultCol: string(TierContent),
		GapScale: map[string]string{
			defaultBreakpoint: "4vw",
			"lg":              "5vw",
			"xl":              "6vw",
		},
		BreakoutPadding: map[string]string{
			defaultBreakpoint: "1.5rem",
			"md":              "4rem",
			"lg":              "8rem",
		},
	}
}

// ActiveTiers returns the tiers the configuration enables, widest first.
func (c ResolvedConfig) ActiveTiers() []Tier {
	tiers := make([]Tier, 0, len(tierOrder))
	for _, t := range tierOrder {
		if t == TierFeaturePopout && c.FeaturePopout == "" {
			continue
		}
		tiers = append(tiers, t)
	}
	return tiers
}

// lengthField binds a configuration key to its field.
type lengthField struct {
	key string
	ptr func(*ResolvedConfig) *string
}

// lengthFields lists the scalar length options in validation order.
var lengthFields = []lengthField{
	{"baseGap", func(c *ResolvedConfig) *string { return &c.BaseGap }},
	{"maxGap", func(c *ResolvedConfig) *string { return &c.MaxGap }},
	{"narrowMin", func(c *ResolvedConfig) *string { return &c.NarrowMin }},
	{"narrowBase", func(c *ResolvedConfig) *string { return &c.NarrowBase }},
	{"narrowMax", func(c *ResolvedConfig) *string { return &c.NarrowMax }},
	{"content", func(c *ResolvedConfig) *string { return &c.Content }},
	{"popout", func(c *ResolvedConfig) *string { return &c.Popout }},
	{"feature", func(c *ResolvedConfig) *string { return &c.Feature }},
	{"featurePopout", func(c *ResolvedConfig) *string { return &c.FeaturePopout }},
	{"fullLimit", func(c *ResolvedConfig) *string { return &c.FullLimit }},
}

// validColumnNames are accepted for defaultCol.
var validColumnNames = []string{
	string(TierFull), string(TierFeaturePopout), string(TierFeature),
	string(TierPopout), string(TierContent), string(TierNarrow), centerName,
}

// Resolve merges user configuration over the defaults and validates it.
//
// Invalid values only produce warnings and are kept as given. The error is
// reserved for input that is not a mapping at all; the returned config is then
// the defaults.
func Resolve(input any) (ResolvedConfig, []Warning, error) {
	cfg := DefaultConfig()
	if input == nil {
		return cfg, nil, nil
	}

	raw, ok := toStringMap(input)
	if !ok {
		return cfg, nil, fmt.Errorf("%w: expected a mapping, got %T", ErrInvalidConfig, input)
	}

	var warnings []Warning
	for _, name := range sortedKeys(raw) {
		value := raw[name]
		if value == nil {
			continue
		}
		key := canonicalKey(name)

		if field, ok := findLengthField(key); ok {
			*field.ptr(&cfg) = stringify(value)
			continue
		}

		switch key {
		case "defaultCol":
			cfg.DefaultCol = stringify(value)
		case "gapScale":
			if w, ok := mergeResponsive(cfg.GapScale, key, value); !ok {
				warnings = append(warnings, w)
			}
		case "breakoutPadding":
			if w, ok := mergeResponsive(cfg.BreakoutPadding, key, value); !ok {
				warnings = append(warnings, w)
			}
		default:
			warnings = append(warnings, Warning{
				Code:    WarnUnknownOption,
				Field:   name,
				Message: fmt.Sprintf("Unknown option '%s' ignored", name),
			})
		}
	}

	warnings = append(warnings, Validate(cfg)...)
	return cfg, warnings, nil
}

// Validate checks every length field and the default column.
func Validate(cfg ResolvedConfig) []Warning {
	var warnings []Warning

	for _, field := range lengthFields {
		value := *field.ptr(&cfg)
		if field.key == "featurePopout" && value == "" {
			continue
		}
		if !IsValidLength(value) {
			warnings = append(warnings, invalidUnit(field.key, value))
		}
	}

	for _, group := range []struct {
		name   string
		values map[string]string
	}{
		{"gapScale", cfg.GapScale},
		{"breakoutPadding", cfg.BreakoutPadding},
	} {
		for _, bp := range responsiveKeys(group.values) {
			value := group.values[bp]
			if !IsValidLength(value) {
				warnings = append(warnings, invalidUnit(group.name+"."+bp, value))
			}
		}
	}

	if !isValidColumnName(cfg.DefaultCol) {
		warnings = append(warnings, Warning{
			Code:  WarnInvalidDefaultCol,
			Field: "defaultCol",
			Message: fmt.Sprintf("Invalid defaultCol '%s'. Valid options: %s",
				cfg.DefaultCol, strings.Join(validColumnNames, ", ")),
		})
	}

	return warnings
}

func invalidUnit(field, value string) Warning {
	return Warning{
		Code:  WarnInvalidUnit,
		Field: field,
		Message: fmt.Sprintf("Invalid CSS unit for '%s': '%s'. Expected a valid CSS unit like '1rem', '10px', '4vw', etc.",
			field, value),
	}
}

func isValidColumnName(name string) bool {
	for _, valid := range validColumnNames {
		if name == valid {
			return true
		}
	}
	return false
}

// mapOptions are the options that are not plain lengths.
var mapOptions = []string{"defaultCol", "gapScale", "breakoutPadding"}

// canonicalKey maps an option name to its canonical spelling, ignoring case,
// dashes and underscores. Environment variables arrive lowercased, so
// "gapscale" and "gap_scale" both mean gapScale. Unknown names are returned
// unchanged.
func canonicalKey(name string) string {
	folded := foldKey(name)
	for _, f := range lengthFields {
		if foldKey(f.key) == folded {
			return f.key
		}
	}
	for _, k := range mapOptions {
		if foldKey(k) == folded {
			return k
		}
	}
	return name
}

var keyFolder = strings.NewReplacer("-", "", "_", "")

func foldKey(name string) string {
	return strings.ToLower(keyFolder.Replace(name))
}

func findLengthField(key string) (lengthField, bool) {
	for _, f := range lengthFields {
		if f.key == key {
			return f, true
		}
	}
	return lengthField{}, false
}

// mergeResponsive merges a scalar or a per-breakpoint mapping into dst.
// A scalar only replaces the default entry.
func mergeResponsive(dst map[string]string, field string, value any) (Warning, bool) {
	if s, ok := value.(string); ok {
		dst[defaultBreakpoint] = s
		return Warning{}, true
	}

	m, ok := toStringMap(value)
	if !ok {
		return Warning{
			Code:    WarnInvalidOption,
			Field:   field,
			Message: fmt.Sprintf("Invalid '%s': expected a value or a mapping of breakpoints, got %T", field, value),
		}, false
	}
	for bp, v := range m {
		if v == nil {
			continue
		}
		dst[bp] = stringify(v)
	}
	return Warning{}, true
}

// responsiveKeys returns the default key first, then the rest by name.
func responsiveKeys(values map[string]string) []string {
	keys := make([]string, 0, len(values))
	for k := range values {
		if k != defaultBreakpoint {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	if _, ok := values[defaultBreakpoint]; ok {
		keys = append([]string{defaultBreakpoint}, keys...)
	}
	return keys
}

// toStringMap accepts the map shapes produced by YAML and JSON decoders.
func toStringMap(value any) (map[string]any, bool) {
	switch m := value.(type) {
	case map[string]any:
		return m, true
	case map[string]string:
		out := make(map[string]any, len(m))
		for k, v := range m {
			out[k] = v
		}
		return out, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, v := range m {
			out[fmt.Sprint(k)] = v
		}
		return out, true
	}
	return nil, false
}

func stringify(value any) string {
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s)
	}
	return fmt.Sprint(value)
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
