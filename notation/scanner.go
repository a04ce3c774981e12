package notation

import (
	"strings"
	"unicode"
)

// atom is one whitespace-delimited unit of rule notation, together
// with its rune offset in the (normalized) rule text.
type atom struct {
	Text string
	Pos  int
	// Escaped marks atoms that contained a backslash escape; such an
	// atom is always literal notation, never a structural delimiter.
	Escaped bool
}

// scanner splits rule text into atoms. Unlike a plain strings.Fields
// split, the scanner is bracket-aware: whitespace inside a modifier
// ("[+front, -rounded]") or a set ("{u | o}") does not end the atom.
type scanner struct {
	input []rune
	pos   int
}

func newScanner(text string) *scanner {
	return &scanner{input: []rune(text)}
}

// next returns the next atom, or ok == false at the end of input.
func (s *scanner) next() (atom, bool) {
	for s.pos < len(s.input) && unicode.IsSpace(s.input[s.pos]) {
		s.pos++
	}
	if s.pos >= len(s.input) {
		return atom{}, false
	}
	a := atom{Pos: s.pos}
	var sb strings.Builder
	depth := 0
	escaped := false
	for s.pos < len(s.input) {
		ch := s.input[s.pos]
		if escaped {
			sb.WriteRune(ch)
			escaped = false
			s.pos++
			continue
		}
		if unicode.IsSpace(ch) && depth == 0 {
			break
		}
		switch ch {
		case '\\':
			escaped = true
			a.Escaped = true
		case '[', '{':
			depth++
			sb.WriteRune(ch)
		case ']', '}':
			if depth > 0 {
				depth--
			}
			sb.WriteRune(ch)
		default:
			sb.WriteRune(ch)
		}
		s.pos++
	}
	a.Text = sb.String()
	return a, true
}

// scanAtoms runs the scanner over the whole input.
func scanAtoms(text string) []atom {
	s := newScanner(text)
	var atoms []atom
	for {
		a, ok := s.next()
		if !ok {
			return atoms
		}
		atoms = append(atoms, a)
	}
}

// splitAlternatives splits the text of a choice or set atom on the
// separator runes, honoring bracket nesting, so that a modifier inside
// an alternative ("a[+long]|e") stays intact. Sets accept both "|" and
// "," as separators.
func splitAlternatives(text string, seps string) []string {
	var parts []string
	var sb strings.Builder
	depth := 0
	for _, ch := range text {
		switch {
		case ch == '[' || ch == '{':
			depth++
			sb.WriteRune(ch)
		case ch == ']' || ch == '}':
			if depth > 0 {
				depth--
			}
			sb.WriteRune(ch)
		case depth == 0 && strings.ContainsRune(seps, ch):
			parts = append(parts, sb.String())
			sb.Reset()
		default:
			sb.WriteRune(ch)
		}
	}
	parts = append(parts, sb.String())
	return parts
}

// hasTopLevel reports whether any of the runes in seps occurs in text
// outside of brackets.
func hasTopLevel(text string, seps string) bool {
	depth := 0
	for _, ch := range text {
		switch {
		case ch == '[' || ch == '{':
			depth++
		case ch == ']' || ch == '}':
			if depth > 0 {
				depth--
			}
		case depth == 0 && strings.ContainsRune(seps, ch):
			return true
		}
	}
	return false
}
