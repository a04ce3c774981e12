package soundlaw

// Rule is an immutable pair of compiled patterns, derived from one
// source string. Context, if the source had one, is already spliced
// into both patterns, so application never deals with environments.
//
// Rules are compared and hashed by their source string.
type Rule struct {
	Source string
	Ante   []Token
	Post   []Token
}

// NewRule wraps the compiled patterns into a Rule, validating every
// reference eagerly, so that rule application cannot fail on a
// malformed index. The checks:
//
//   ▪ back-references may only appear in post, and must point into ante;
//   ▪ the focus marker may not survive into either pattern;
//   ▪ post may not carry more capturing sets than ante provides, and
//     each post set must offer an alternative for every alternative of
//     its order-paired ante set;
//   ▪ post tokens must be emittable (no sound classes, choices, or
//     bare feature bundles on the output side).
func NewRule(source string, ante, post []Token) (*Rule, error) {
	var anteSetArity []int
	for _, tok := range ante {
		switch t := tok.(type) {
		case BackRef:
			return nil, &RefError{Rule: source, Ref: t.Index + 1,
				Msg: "back-references are not allowed in the source pattern"}
		case Focus:
			return nil, &SyntaxError{Rule: source, Atom: t.String(), Pos: -1,
				Msg: "focus marker is only allowed in a context"}
		case Set:
			anteSetArity = append(anteSetArity, len(t.Alternatives))
		}
	}
	postSets := 0
	for _, tok := range post {
		switch t := tok.(type) {
		case BackRef:
			if t.Index < 0 || t.Index >= len(ante) {
				return nil, &RefError{Rule: source, Ref: t.Index + 1,
					Msg: "back-reference points outside the source pattern"}
			}
		case Focus:
			return nil, &SyntaxError{Rule: source, Atom: t.String(), Pos: -1,
				Msg: "focus marker is only allowed in a context"}
		case SoundClass:
			return nil, &SyntaxError{Rule: source, Atom: t.String(), Pos: -1,
				Msg: "a sound class cannot be emitted; back-reference the matched unit instead"}
		case Choice:
			return nil, &SyntaxError{Rule: source, Atom: t.String(), Pos: -1,
				Msg: "a choice cannot be emitted; use a capturing set"}
		case Segment:
			if t.Partial {
				return nil, &SyntaxError{Rule: source, Atom: t.String(), Pos: -1,
					Msg: "a feature bundle without grapheme cannot be emitted"}
			}
		case Set:
			// translation selects the alternative by the capture of the
			// order-paired source set, so the target set must cover
			// every index that capture can take
			if postSets < len(anteSetArity) && len(t.Alternatives) < anteSetArity[postSets] {
				return nil, &RefError{Rule: source, Ref: postSets + 1,
					Msg: "target set has fewer alternatives than its paired source set"}
			}
			postSets++
			for _, alt := range t.Alternatives {
				seg, ok := alt.(Segment)
				if !ok || seg.Partial {
					return nil, &SyntaxError{Rule: source, Atom: t.String(), Pos: -1,
						Msg: "set alternatives on the output side must be literal segments"}
				}
			}
		}
	}
	if postSets > len(anteSetArity) {
		return nil, &RefError{Rule: source, Ref: postSets,
			Msg: "more capturing sets in target than in source pattern"}
	}
	return &Rule{Source: source, Ante: ante, Post: post}, nil
}

// Equal compares rules by source string.
func (r *Rule) Equal(other *Rule) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.Source == other.Source
}

func (r *Rule) String() string {
	return r.Source
}
