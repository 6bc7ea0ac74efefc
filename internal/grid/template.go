package grid

import (
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// TrackRef names the custom property that sizes a track.
type TrackRef string

func (r TrackRef) String() string {
	if r == "" {
		return ""
	}
	return "var(--" + string(r) + ")"
}

// Line is a group of grid line names followed by the track after them. The
// closing line of a template has no track.
type Line struct {
	Names []string
	Track TrackRef
}

// Template is a grid-template-columns value kept as lines and tracks until it
// is serialized.
type Template struct {
	lines []Line
}

// Lines returns a copy of the template's lines.
func (t Template) Lines() []Line {
	out := make([]Line, len(t.lines))
	for i, l := range t.lines {
		out[i] = Line{Names: append([]string(nil), l.Names...), Track: l.Track}
	}
	return out
}

// Tracks returns the track references from left to right.
func (t Template) Tracks() []TrackRef {
	var tracks []TrackRef
	for _, l := range t.lines {
		if l.Track != "" {
			tracks = append(tracks, l.Track)
		}
	}
	return tracks
}

// String serializes the template, e.g. "[full-start] var(--full) [full-end]".
func (t Template) String() string {
	parts := make([]string, 0, len(t.lines)*2)
	for _, l := range t.lines {
		parts = append(parts, "["+strings.Join(l.Names, " ")+"]")
		if l.Track != "" {
			parts = append(parts, l.Track.String())
		}
	}
	return strings.Join(parts, " ")
}

// IsZero reports whether the template has no lines.
func (t Template) IsZero() bool { return len(t.lines) == 0 }

// Mirror flips the template horizontally: line order is reversed, -start and
// -end swap, and merged names keep reading outside-in.
func (t Template) Mirror() Template {
	n := len(t.lines)
	if n == 0 {
		return t
	}
	lines := make([]Line, n)
	for i := 0; i < n; i++ {
		src := t.lines[n-1-i]
		names := make([]string, len(src.Names))
		for j, name := range src.Names {
			names[len(names)-1-j] = swapEdge(name)
		}
		var track TrackRef
		if i < n-1 {
			track = t.lines[n-2-i].Track
		}
		lines[i] = Line{Names: names, Track: track}
	}
	return Template{lines: lines}
}

func swapEdge(name string) string {
	switch {
	case strings.HasSuffix(name, "-start"):
		return strings.TrimSuffix(name, "-start") + "-end"
	case strings.HasSuffix(name, "-end"):
		return strings.TrimSuffix(name, "-end") + "-start"
	}
	return name
}

// Validate checks the structural invariants every template must hold.
func (t Template) Validate() error {
	if len(t.lines) < 2 {
		return fmt.Errorf("template needs at least two lines, has %d", len(t.lines))
	}
	starts, ends := 0, 0
	for i, l := range t.lines {
		last := i == len(t.lines)-1
		if len(l.Names) == 0 {
			return fmt.Errorf("line %d has no names", i)
		}
		for _, name := range l.Names {
			if name == "" {
				return fmt.Errorf("line %d has an empty name", i)
			}
			switch name {
			case TierFull.Start():
				starts++
			case TierFull.End():
				ends++
			}
		}
		if last && l.Track != "" {
			return fmt.Errorf("closing line has a track %s", l.Track)
		}
		if !last && l.Track == "" {
			return fmt.Errorf("line %d has no track", i)
		}
	}
	if starts != 1 || ends != 1 {
		return fmt.Errorf("want one full-start and one full-end, got %d and %d", starts, ends)
	}
	if !contains(t.lines[0].Names, TierFull.Start()) {
		return fmt.Errorf("template does not open with full-start")
	}
	if !contains(t.lines[len(t.lines)-1].Names, TierFull.End()) {
		return fmt.Errorf("template does not close with full-end")
	}
	return nil
}

// TemplateKey identifies a template: "default" or tier + alignment, e.g.
// "featureLeft".
type TemplateKey string

// DefaultKey is the key of the symmetric template.
const DefaultKey TemplateKey = "default"

// KeyFor returns the key of a one-sided template.
func KeyFor(tier Tier, align Alignment) TemplateKey {
	a := string(align)
	if a != "" {
		a = strings.ToUpper(a[:1]) + a[1:]
	}
	return TemplateKey(tier.camel() + a)
}

// TemplateSet holds every template generated for one tier set.
type TemplateSet struct {
	tiers     []Tier
	templates map[TemplateKey]Template
}

// Tiers returns the tiers of the set, widest first.
func (s TemplateSet) Tiers() []Tier { return append([]Tier(nil), s.tiers...) }

// Default returns the symmetric template.
func (s TemplateSet) Default() Template { return s.templates[DefaultKey] }

// Get returns the template stored under key.
func (s TemplateSet) Get(key TemplateKey) (Template, bool) {
	t, ok := s.templates[key]
	return t, ok
}

// Keys returns the keys in generation order.
func (s TemplateSet) Keys() []TemplateKey {
	keys := []TemplateKey{DefaultKey}
	for _, t := range s.tiers[1:] {
		for _, align := range []Alignment{AlignLeft, AlignRight} {
			if _, ok := s.templates[KeyFor(t, align)]; ok {
				keys = append(keys, KeyFor(t, align))
			}
		}
	}
	return keys
}

// Len returns the number of templates.
func (s TemplateSet) Len() int { return len(s.templates) }

// Lookup returns the template for a tier name and alignment. An unknown tier
// falls back to the default template with one warning. Full, and any tier
// with center alignment, is the default template.
func (s TemplateSet) Lookup(tier string, align Alignment) (Template, []Warning) {
	if tier == "" {
		return s.Default(), nil
	}

	t, ok := ParseTier(tier)
	if !ok || !s.has(t) {
		return s.Default(), []Warning{{
			Code:    WarnUnknownTier,
			Field:   "tier",
			Message: fmt.Sprintf("Unknown tier '%s', using the default template", tier),
		}}
	}
	if t == TierFull || align == AlignCenter || align == "" {
		return s.Default(), nil
	}

	tpl, ok := s.templates[KeyFor(t, align)]
	if !ok {
		return s.Default(), []Warning{{
			Code:    WarnUnknownAlignment,
			Field:   "alignment",
			Message: fmt.Sprintf("Unknown alignment '%s', using the default template", align),
		}}
	}
	return tpl, nil
}

func (s TemplateSet) has(t Tier) bool {
	for _, o := range s.tiers {
		if o == t {
			return true
		}
	}
	return false
}

// GenerateTemplates builds the default template and the left and right
// template of every tier except full.
func GenerateTemplates(tiers []Tier) (TemplateSet, error) {
	if err := validateTiers(tiers); err != nil {
		return TemplateSet{}, err
	}

	set := TemplateSet{
		tiers:     append([]Tier(nil), tiers...),
		templates: make(map[TemplateKey]Template, 1+2*(len(tiers)-1)),
	}
	set.templates[DefaultKey] = centered(tiers)

	for i := 1; i < len(tiers); i++ {
		left := leftAligned(tiers, i)
		set.templates[KeyFor(tiers[i], AlignLeft)] = left
		set.templates[KeyFor(tiers[i], AlignRight)] = left.Mirror()
	}

	for key, tpl := range set.templates {
		if err := tpl.Validate(); err != nil {
			return TemplateSet{}, fmt.Errorf("template %s: %w", key, err)
		}
	}
	return set, nil
}

// validateTiers requires full first, at least one more tier, and the fixed
// order throughout.
func validateTiers(tiers []Tier) error {
	if len(tiers) == 0 {
		return ErrNoTiers
	}
	if tiers[0] != TierFull || len(tiers) < 2 {
		return fmt.Errorf("%w: must start with full and contain an inner tier", ErrInvalidTierSet)
	}
	prev := -1
	for _, t := range tiers {
		idx := t.index()
		if idx < 0 {
			return fmt.Errorf("%w: unknown tier %q", ErrInvalidTierSet, t)
		}
		if idx <= prev {
			return fmt.Errorf("%w: %q is out of order", ErrInvalidTierSet, t)
		}
		prev = idx
	}
	return nil
}

// openSide is the left half shared by every template: from full-start in to
// the center lines. The innermost track uses ref.
func openSide(tiers []Tier, inner TrackRef) []Line {
	lines := make([]Line, 0, len(tiers)*2)
	for i, t := range tiers {
		track := TrackRef(t)
		if i == len(tiers)-1 {
			track = inner
		}
		lines = append(lines, Line{Names: []string{t.Start()}, Track: track})
	}
	return append(lines, Line{Names: []string{centerName + "-start", centerName + "-end"}, Track: inner})
}

// centered is the symmetric template.
func centered(tiers []Tier) Template {
	inner := TrackRef(tiers[len(tiers)-1])
	lines := openSide(tiers, inner)
	for i := len(tiers) - 1; i >= 1; i-- {
		lines = append(lines, Line{Names: []string{tiers[i].End()}, Track: TrackRef(tiers[i-1])})
	}
	lines = append(lines, Line{Names: []string{TierFull.End()}})
	return Template{lines: lines}
}

// leftAligned keeps the left side open and closes the row at the end of
// tiers[target]. Nothing beyond that tier is reserved.
func leftAligned(tiers []Tier, target int) Template {
	inner := TrackRef(string(tiers[len(tiers)-1]) + "-inset")
	lines := openSide(tiers, inner)
	for i := len(tiers) - 1; i > target; i-- {
		lines = append(lines, Line{Names: []string{tiers[i].End()}, Track: TrackRef(tiers[i-1])})
	}
	lines = append(lines, Line{Names: []string{tiers[target].End(), TierFull.End()}})
	return Template{lines: lines}
}

// FallbackTemplate is the single-tier template of the minimal output.
func FallbackTemplate() Template {
	return Template{lines: []Line{
		{Names: []string{TierFull.Start()}, Track: TrackRef(TierFull)},
		{Names: []string{TierContent.Start()}, Track: TrackRef(TierContent)},
		{Names: []string{TierContent.End()}, Track: TrackRef(TierFull)},
		{Names: []string{TierFull.End()}},
	}}
}

// fallbackSet wraps FallbackTemplate so lookups keep working on degraded output.
func fallbackSet() TemplateSet {
	return TemplateSet{
		tiers:     []Tier{TierFull, TierContent},
		templates: map[TemplateKey]Template{DefaultKey: FallbackTemplate()},
	}
}

// ValidateTemplateText tokenizes a serialized template and checks that it
// alternates bracketed line names with var() tracks, starting and ending
// with a line group, with exactly one full-start and one full-end.
func ValidateTemplateText(text string) error {
	lexer := css.NewLexer(parse.NewInputString(text))

	const (
		wantGroup = iota
		inGroup
		wantTrack
		inTrack
	)
	state := wantGroup
	names, depth := 0, 0
	starts, ends := 0, 0
	groups, tracks := 0, 0

	for {
		tt, data := lexer.Next()
		if tt == css.ErrorToken {
			if err := lexer.Err(); err != nil && err != io.EOF {
				return fmt.Errorf("tokenize: %w", err)
			}
			break
		}
		if tt == css.WhitespaceToken && state != inTrack {
			continue
		}

		switch state {
		case wantGroup:
			if tt != css.LeftBracketToken {
				return fmt.Errorf("expected '[', got %q", data)
			}
			state, names = inGroup, 0
		case inGroup:
			switch tt {
			case css.IdentToken:
				names++
				switch string(data) {
				case TierFull.Start():
					starts++
				case TierFull.End():
					ends++
				}
			case css.RightBracketToken:
				if names == 0 {
					return fmt.Errorf("empty line name group")
				}
				groups++
				state = wantTrack
			default:
				return fmt.Errorf("unexpected %q in line names", data)
			}
		case wantTrack:
			if tt != css.FunctionToken || !strings.EqualFold(string(data), "var(") {
				return fmt.Errorf("track %q does not reference a custom property", data)
			}
			state, depth = inTrack, 1
		case inTrack:
			switch tt {
			case css.FunctionToken, css.LeftParenthesisToken:
				depth++
			case css.RightParenthesisToken:
				depth--
				if depth == 0 {
					tracks++
					state = wantGroup
				}
			}
		}
	}

	switch {
	case state == inGroup || state == inTrack:
		return fmt.Errorf("unterminated template")
	case state == wantGroup:
		return fmt.Errorf("template must end with a line name group")
	case groups != tracks+1:
		return fmt.Errorf("unbalanced template: %d groups, %d tracks", groups, tracks)
	case starts != 1 || ends != 1:
		return fmt.Errorf("want one full-start and one full-end, got %d and %d", starts, ends)
	}
	return nil
}

func contains(slice []string, val string) bool {
	for _, item := range slice {
		if item == val {
			return true
		}
	}
	return false
}
