package soundlaw

import (
	"fmt"
)

// SyntaxError reports malformed rule notation. No partial rule is ever
// returned alongside a SyntaxError. Atom and Pos locate the offending
// part in the original rule text; Atom may be empty for structural
// faults (such as a missing arrow).
type SyntaxError struct {
	Rule string // the offending rule text
	Atom string // the offending atom, if identifiable
	Pos  int    // rune offset of Atom within Rule, -1 if unknown
	Msg  string
}

func (e *SyntaxError) Error() string {
	if e.Atom == "" {
		return fmt.Sprintf("syntax error in rule %q: %s", e.Rule, e.Msg)
	}
	return fmt.Sprintf("syntax error in rule %q at %q (offset %d): %s", e.Rule, e.Atom, e.Pos, e.Msg)
}

// RefError reports a back-reference pointing outside the paired ante
// pattern, or a capture that cannot be satisfied. This is a
// rule-authoring bug; it is detected when the rule is compiled, never
// during application.
type RefError struct {
	Rule string
	Ref  int // 1-based index, as written in the notation
	Msg  string
}

func (e *RefError) Error() string {
	return fmt.Sprintf("invalid reference @%d in rule %q: %s", e.Ref, e.Rule, e.Msg)
}

// UnresolvedModifier reports that a feature delta cannot be realized
// as any known grapheme (forward direction), or that no inverse
// mapping is known for it (backward direction). Translation never
// silently substitutes a wrong grapheme; this error propagates to the
// caller instead.
type UnresolvedModifier struct {
	Grapheme string
	Delta    Features
	Inverse  bool
}

func (e *UnresolvedModifier) Error() string {
	dir := "forward"
	if e.Inverse {
		dir = "inverse"
	}
	return fmt.Sprintf("cannot resolve %s modifier %s for grapheme %q", dir, e.Delta.String(), e.Grapheme)
}
