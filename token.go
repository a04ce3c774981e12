package soundlaw

import (
	"strconv"
	"strings"
)

// BoundaryMark is the unit delimiting words in a sequence.
const BoundaryMark = "#"

// Token is a single position of a compiled rule pattern. The set of
// variants is closed: Boundary, Focus, Empty, Segment, SoundClass,
// BackRef, Choice and Set. Consumers switch exhaustively over these
// types; a position holding an unknown token is a programming error.
//
// Tokens are immutable once constructed. Operations that need a
// variation of a token (shifted back-reference index, carried-over
// modifier) return a fresh token.
type Token interface {
	String() string
	token() // marker; restricts implementations to this package
}

// Boundary matches the literal word-boundary marker "#".
type Boundary struct{}

// Focus marks the split position inside a context ("left _ right").
// It never appears in a compiled ante or post pattern.
type Focus struct{}

// Empty denotes "no output" (written ":null:" in the notation). It is
// filtered out before matching and translation.
type Empty struct{}

// Segment is a literal sound. With Partial set, Grapheme is empty and
// the token matches any unit whose feature descriptors subsume the
// Modifier delta, instead of requiring grapheme equality.
type Segment struct {
	Grapheme string
	Modifier *Features
	Partial  bool
}

// SoundClass names a set of graphemes resolved through the Phonology
// service, with an optional feature delta applied to every member.
type SoundClass struct {
	Name     string
	Modifier *Features
}

// BackRef refers positionally to a token of the paired ante pattern.
// Index is 0-based; the surface notation ("@1") is 1-based.
type BackRef struct {
	Index    int
	Modifier *Features
}

// Choice matches if any alternative matches. It is non-capturing: no
// later rewrite needs to know which alternative was realized.
type Choice struct {
	Alternatives []Token
}

// Set is a capturing disjunction: matching records the 1-based index
// of the alternative that matched, so that a paired Set in the post
// pattern (or a backward reconstruction) can select the corresponding
// alternative.
type Set struct {
	Alternatives []Token
}

func (Boundary) token()   {}
func (Focus) token()      {}
func (Empty) token()      {}
func (Segment) token()    {}
func (SoundClass) token() {}
func (BackRef) token()    {}
func (Choice) token()     {}
func (Set) token()        {}

func (Boundary) String() string { return BoundaryMark }
func (Focus) String() string    { return "_" }
func (Empty) String() string    { return ":null:" }

func (t Segment) String() string {
	return t.Grapheme + t.Modifier.String()
}

func (t SoundClass) String() string {
	return t.Name + t.Modifier.String()
}

func (t BackRef) String() string {
	return "@" + strconv.Itoa(t.Index+1) + t.Modifier.String()
}

func (t Choice) String() string {
	return joinAlternatives(t.Alternatives, "|")
}

func (t Set) String() string {
	return "{" + joinAlternatives(t.Alternatives, "|") + "}"
}

func joinAlternatives(alts []Token, sep string) string {
	var sb strings.Builder
	for i, alt := range alts {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(alt.String())
	}
	return sb.String()
}

// Shifted returns a copy of the back-reference with its index moved by
// off positions. Used during context splicing.
func (t BackRef) Shifted(off int) BackRef {
	return BackRef{Index: t.Index + off, Modifier: t.Modifier}
}

// ShiftBackRefs copies a pattern, shifting every back-reference index
// by off. Tokens without back-references are shared, not copied; they
// are immutable anyway.
func ShiftBackRefs(pattern []Token, off int) []Token {
	if off == 0 {
		return pattern
	}
	shifted := make([]Token, len(pattern))
	for i, tok := range pattern {
		if br, ok := tok.(BackRef); ok {
			shifted[i] = br.Shifted(off)
		} else {
			shifted[i] = tok
		}
	}
	return shifted
}
