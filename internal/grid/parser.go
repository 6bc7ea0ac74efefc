package grid

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ParsedClass is a class rule read back from a stylesheet.
type ParsedClass struct {
	Name       string
	Properties map[string]string
	Media      string // media query of the enclosing block, if any
}

// parserState keeps context while walking the token stream.
type parserState struct {
	lexer   *css.Lexer
	classes map[string]*ParsedClass
	media   string
	depth   int
	// mediaDepth is the brace depth the current @media block opened at.
	mediaDepth int
}

// ParseStylesheet reads the class rules of a stylesheet. Only rules whose
// selector is a plain class, or a comma list of plain classes, are recorded;
// later rules for the same class and media query merge into earlier ones.
func ParseStylesheet(content string) ([]ParsedClass, error) {
	s := &parserState{
		lexer:   css.NewLexer(parse.NewInputString(content)),
		classes: make(map[string]*ParsedClass),
	}

	for {
		tt, text := s.lexer.Next()
		if tt == css.ErrorToken {
			if err := s.lexer.Err(); err != nil && err != io.EOF {
				return nil, fmt.Errorf("tokenize stylesheet: %w", err)
			}
			break
		}

		switch {
		case tt == css.AtKeywordToken:
			s.handleAtRule(strings.EqualFold(string(text), "@media"))
		case tt == css.LeftBraceToken:
			// a block we don't record, e.g. :root
			s.skipBlock()
		case tt == css.RightBraceToken:
			s.depth--
			if s.media != "" && s.depth == s.mediaDepth {
				s.media = ""
			}
		case tt == css.DelimToken && len(text) > 0 && text[0] == '.':
			s.handleClassRule()
		}
	}

	result := make([]ParsedClass, 0, len(s.classes))
	for _, c := range s.classes {
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Media != result[j].Media {
			return result[i].Media < result[j].Media
		}
		return result[i].Name < result[j].Name
	})
	return result, nil
}

// handleAtRule reads an at-rule prelude up to its opening brace. Rules inside
// @media remember the query; other block at-rules such as @layer are entered
// transparently.
func (s *parserState) handleAtRule(media bool) {
	var query strings.Builder
	for {
		tt, text := s.lexer.Next()
		if tt == css.ErrorToken || tt == css.SemicolonToken {
			return
		}
		if tt == css.LeftBraceToken {
			if media && s.media == "" {
				s.mediaDepth = s.depth
				s.media = strings.TrimSpace(query.String())
			}
			s.depth++
			return
		}
		query.Write(text)
	}
}

// handleClassRule is entered after a '.' delimiter.
func (s *parserState) handleClassRule() {
	tt, name := s.lexer.Next()
	if tt != css.IdentToken {
		return
	}

	names := []string{string(name)}
	simple := true
	expectClass := false

	for {
		tt, text := s.lexer.Next()
		switch {
		case tt == css.ErrorToken:
			return
		case tt == css.WhitespaceToken:
			continue
		case tt == css.CommaToken:
			expectClass = true
		case expectClass && tt == css.DelimToken && len(text) > 0 && text[0] == '.':
			tt2, next := s.lexer.Next()
			if tt2 != css.IdentToken {
				simple = false
				continue
			}
			names = append(names, string(next))
			expectClass = false
		case tt == css.LeftBraceToken:
			props := s.extractDeclarations()
			if !simple || expectClass {
				return
			}
			for _, n := range names {
				s.record(n, props)
			}
			return
		default:
			simple = false
		}
	}
}

func (s *parserState) record(name string, props map[string]string) {
	key := s.media + "\x00" + name
	class, ok := s.classes[key]
	if !ok {
		class = &ParsedClass{Name: name, Properties: make(map[string]string), Media: s.media}
		s.classes[key] = class
	}
	for k, v := range props {
		class.Properties[k] = v
	}
}

// extractDeclarations reads property: value pairs until the closing brace.
func (s *parserState) extractDeclarations() map[string]string {
	props := make(map[string]string)

	var prop string
	var value []string
	flush := func() {
		if prop != "" && len(value) > 0 {
			props[prop] = strings.TrimSpace(strings.Join(value, ""))
		}
		prop, value = "", nil
	}

	seenColon := false
	for {
		tt, text := s.lexer.Next()
		if tt == css.ErrorToken || tt == css.RightBraceToken {
			flush()
			return props
		}

		switch {
		case prop == "" && (tt == css.IdentToken || tt == css.CustomPropertyNameToken):
			prop = string(text)
			seenColon = false
		case tt == css.ColonToken && prop != "" && !seenColon:
			seenColon = true
		case tt == css.SemicolonToken:
			flush()
		case prop != "" && seenColon:
			value = append(value, string(text))
		}
	}
}

// skipBlock consumes a block whose opening brace was just read.
func (s *parserState) skipBlock() {
	depth := 1
	for depth > 0 {
		tt, _ := s.lexer.Next()
		switch tt {
		case css.ErrorToken:
			return
		case css.LeftBraceToken:
			depth++
		case css.RightBraceToken:
			depth--
		}
	}
}

// CheckBalanced reports unbalanced braces, brackets or parentheses in css.
func CheckBalanced(content string) error {
	lexer := css.NewLexer(parse.NewInputString(content))
	var stack []css.TokenType
	closing := map[css.TokenType]css.TokenType{
		css.RightBraceToken:       css.LeftBraceToken,
		css.RightBracketToken:     css.LeftBracketToken,
		css.RightParenthesisToken: css.LeftParenthesisToken,
	}

	for {
		tt, text := lexer.Next()
		switch tt {
		case css.ErrorToken:
			if err := lexer.Err(); err != nil && err != io.EOF {
				return fmt.Errorf("tokenize: %w", err)
			}
			if len(stack) > 0 {
				return fmt.Errorf("%d unclosed blocks", len(stack))
			}
			return nil
		case css.LeftBraceToken, css.LeftBracketToken, css.LeftParenthesisToken:
			stack = append(stack, tt)
		case css.FunctionToken:
			stack = append(stack, css.LeftParenthesisToken)
		case css.RightBraceToken, css.RightBracketToken, css.RightParenthesisToken:
			if len(stack) == 0 || stack[len(stack)-1] != closing[tt] {
				return fmt.Errorf("unexpected %q", text)
			}
			stack = stack[:len(stack)-1]
		case css.BadStringToken, css.BadURLToken:
			return fmt.Errorf("malformed token %q", text)
		}
	}
}
