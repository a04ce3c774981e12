package notation

import (
	"strconv"
	"strings"

	"github.com/npillmayer/soundlaw"
	"github.com/npillmayer/soundlaw/internal/tracing"
	"golang.org/x/text/unicode/norm"
)

// Option configures the compiler.
type Option func(*config)

type config struct {
	normalize bool
}

// WithoutNormalization disables Unicode NFC normalization and
// whitespace collapsing of the rule text. Callers that maintain their
// own canonical form use this to save cycles; rule equality is by
// source text, so mixing normalized and un-normalized compilation of
// the same rule yields unequal rules.
func WithoutNormalization() Option {
	return func(cfg *config) {
		cfg.normalize = false
	}
}

// Parse compiles a sound-change rule from its linear notation. Context
// is spliced into the returned ante/post patterns and back-references
// are re-indexed accordingly. Parse fails with *soundlaw.SyntaxError on
// malformed notation and with *soundlaw.RefError on invalid
// back-references; it never returns a partial rule.
func Parse(text string, opts ...Option) (*soundlaw.Rule, error) {
	cfg := config{normalize: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.normalize {
		text = norm.NFC.String(text)
		text = strings.Join(strings.Fields(text), " ")
	}
	atoms := scanAtoms(text)
	if len(atoms) == 0 {
		return nil, &soundlaw.SyntaxError{Rule: text, Pos: -1, Msg: "empty rule"}
	}

	antePost, context, err := splitContext(text, atoms)
	if err != nil {
		return nil, err
	}
	anteAtoms, postAtoms, err := splitArrow(text, antePost)
	if err != nil {
		return nil, err
	}

	ante, err := parsePattern(text, anteAtoms)
	if err != nil {
		return nil, err
	}
	post, err := parsePattern(text, postAtoms)
	if err != nil {
		return nil, err
	}
	ctx, err := parsePattern(text, context)
	if err != nil {
		return nil, err
	}

	ante, post, err = spliceContext(text, ante, post, ctx)
	if err != nil {
		return nil, err
	}
	rule, err := soundlaw.NewRule(text, ante, post)
	if err != nil {
		return nil, err
	}
	tracing.P("rule", text).Debugf("compiled into %d ante and %d post tokens",
		len(rule.Ante), len(rule.Post))
	return rule, nil
}

// splitContext cuts the atom list at the first slash atom. A slash
// produced by a backslash escape is literal notation and does not cut.
func splitContext(rule string, atoms []atom) (antePost, context []atom, err error) {
	for i, a := range atoms {
		if a.Text == "/" && !a.Escaped {
			if len(atoms[i+1:]) == 0 {
				return nil, nil, &soundlaw.SyntaxError{Rule: rule, Atom: "/", Pos: a.Pos,
					Msg: "empty context after slash"}
			}
			return atoms[:i], atoms[i+1:], nil
		}
	}
	return atoms, nil, nil
}

// splitArrow cuts ante and post apart at the arrow atom (">", "->" or
// the legacy "=>").
func splitArrow(rule string, atoms []atom) (ante, post []atom, err error) {
	for i, a := range atoms {
		if a.Escaped {
			continue
		}
		if a.Text == ">" || a.Text == "->" || a.Text == "=>" {
			if i == 0 {
				return nil, nil, &soundlaw.SyntaxError{Rule: rule, Atom: a.Text, Pos: a.Pos,
					Msg: "empty source pattern before arrow"}
			}
			if i == len(atoms)-1 {
				return nil, nil, &soundlaw.SyntaxError{Rule: rule, Atom: a.Text, Pos: a.Pos,
					Msg: "empty target pattern after arrow"}
			}
			return atoms[:i], atoms[i+1:], nil
		}
	}
	return nil, nil, &soundlaw.SyntaxError{Rule: rule, Pos: -1, Msg: "no arrow found"}
}

func parsePattern(rule string, atoms []atom) ([]soundlaw.Token, error) {
	if len(atoms) == 0 {
		return nil, nil
	}
	pattern := make([]soundlaw.Token, 0, len(atoms))
	for _, a := range atoms {
		tok, err := parseAtom(a.Text)
		if err != nil {
			return nil, &soundlaw.SyntaxError{Rule: rule, Atom: a.Text, Pos: a.Pos,
				Msg: err.Error()}
		}
		pattern = append(pattern, tok)
	}
	return pattern, nil
}

// parseAtom classifies a single atom. Alternatives recurse through the
// same function, so anything that stands alone can also stand inside a
// choice or set.
func parseAtom(text string) (soundlaw.Token, error) {
	switch text {
	case "":
		return nil, errEmptyAtom
	case soundlaw.BoundaryMark:
		return soundlaw.Boundary{}, nil
	case "_":
		return soundlaw.Focus{}, nil
	case ":null:":
		return soundlaw.Empty{}, nil
	}
	if strings.HasPrefix(text, "{") {
		return parseSet(text)
	}
	if hasTopLevel(text, "|") {
		return parseChoice(text)
	}
	if strings.HasPrefix(text, "@") {
		return parseBackRef(text)
	}
	base, mod, err := splitModifier(text)
	if err != nil {
		return nil, err
	}
	if base == "" {
		if mod == nil {
			return nil, errEmptyAtom
		}
		return soundlaw.Segment{Partial: true, Modifier: mod}, nil
	}
	if isClassName(base) {
		return soundlaw.SoundClass{Name: base, Modifier: mod}, nil
	}
	return soundlaw.Segment{Grapheme: base, Modifier: mod}, nil
}

// parseSet parses "{a|b}" (and, tolerated for symmetry with older rule
// collections, "{a,b}") into a capturing set.
func parseSet(text string) (soundlaw.Token, error) {
	if !strings.HasSuffix(text, "}") {
		return nil, errUnbalanced
	}
	inner := text[1 : len(text)-1]
	parts := splitAlternatives(inner, "|,")
	alts := make([]soundlaw.Token, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		alt, err := parseAtom(part)
		if err != nil {
			return nil, err
		}
		alts = append(alts, alt)
	}
	if len(alts) < 2 {
		return nil, errLonelyAlternative
	}
	return soundlaw.Set{Alternatives: alts}, nil
}

func parseChoice(text string) (soundlaw.Token, error) {
	parts := splitAlternatives(text, "|")
	alts := make([]soundlaw.Token, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		alt, err := parseAtom(part)
		if err != nil {
			return nil, err
		}
		alts = append(alts, alt)
	}
	if len(alts) < 2 {
		return nil, errLonelyAlternative
	}
	return soundlaw.Choice{Alternatives: alts}, nil
}

// parseBackRef parses "@N" or "@N[modifier]". Surface indices are
// 1-based; the compiled token is 0-based.
func parseBackRef(text string) (soundlaw.Token, error) {
	rest := text[1:]
	digits := 0
	for digits < len(rest) && rest[digits] >= '0' && rest[digits] <= '9' {
		digits++
	}
	if digits == 0 {
		return nil, errBadBackRef
	}
	index, err := strconv.Atoi(rest[:digits])
	if err != nil || index < 1 {
		return nil, errBadBackRef
	}
	var mod *soundlaw.Features
	if digits < len(rest) {
		if mod, err = parseModifier(rest[digits:]); err != nil {
			return nil, err
		}
	}
	return soundlaw.BackRef{Index: index - 1, Modifier: mod}, nil
}

// splitModifier splits "t[+voiced]" into its grapheme and modifier
// parts. Atoms without a bracket have a nil modifier.
func splitModifier(text string) (string, *soundlaw.Features, error) {
	idx := strings.IndexRune(text, '[')
	if idx < 0 {
		return text, nil, nil
	}
	mod, err := parseModifier(text[idx:])
	if err != nil {
		return "", nil, err
	}
	return text[:idx], mod, nil
}

func parseModifier(text string) (*soundlaw.Features, error) {
	if !strings.HasPrefix(text, "[") || !strings.HasSuffix(text, "]") {
		return nil, errUnbalanced
	}
	feats := soundlaw.ParseFeatures(text)
	if feats.IsZero() {
		return nil, errEmptyModifier
	}
	return &feats, nil
}

// isClassName reports whether the atom names a sound class. Following
// the notation's convention, class names are all-uppercase ASCII.
func isClassName(text string) bool {
	for i := 0; i < len(text); i++ {
		if text[i] < 'A' || text[i] > 'Z' {
			return false
		}
	}
	return len(text) > 0
}

// spliceContext merges the context into ante and post. Ante receives
// the context tokens themselves (with back-references shifted), while
// in post the context positions surface only as back-references: a
// class or alternative matched in context cannot be re-literalized, so
// the exact matched unit must be carried through.
func spliceContext(rule string, ante, post, context []soundlaw.Token) ([]soundlaw.Token, []soundlaw.Token, error) {
	if len(context) == 0 {
		return ante, post, nil
	}
	focus := -1
	for i, tok := range context {
		if _, ok := tok.(soundlaw.Focus); ok {
			if focus >= 0 {
				return nil, nil, &soundlaw.SyntaxError{Rule: rule, Atom: "_", Pos: -1,
					Msg: "more than one focus in context"}
			}
			focus = i
		}
	}
	if focus < 0 {
		return nil, nil, &soundlaw.SyntaxError{Rule: rule, Pos: -1,
			Msg: "context without focus"}
	}
	left, right := context[:focus], context[focus+1:]
	offLeft := len(left)
	offAnte := offLeft + len(ante)

	newAnte := make([]soundlaw.Token, 0, offAnte+len(right))
	newAnte = append(newAnte, left...)
	newAnte = append(newAnte, soundlaw.ShiftBackRefs(ante, offLeft)...)
	newAnte = append(newAnte, soundlaw.ShiftBackRefs(right, offAnte)...)

	newPost := make([]soundlaw.Token, 0, offLeft+len(post)+len(right))
	for i := range left {
		newPost = append(newPost, soundlaw.BackRef{Index: i})
	}
	newPost = append(newPost, soundlaw.ShiftBackRefs(post, offLeft)...)
	for i := range right {
		newPost = append(newPost, soundlaw.BackRef{Index: i + offAnte})
	}
	return newAnte, newPost, nil
}
