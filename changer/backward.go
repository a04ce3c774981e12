package changer

import (
	"strings"

	"github.com/npillmayer/soundlaw"
	"github.com/npillmayer/soundlaw/internal/tracing"
)

// Backward reconstructs the ante-sequences a rule could have rewritten
// into the given output. The result is never empty for a non-empty
// input: at minimum it contains the output itself (the "rule did not
// apply anywhere" reading). Ambiguity is surfaced, not resolved:
// every combination of "applied" and "did not apply" at each matched
// window yields one candidate, and class or alternative positions
// without a back-reference reconstruct as constraint placeholders.
//
// Backward materializes the full candidate list; callers worried about
// combinatorial blow-up on pathological rules should drive the lazy
// Reconstruct iterator themselves and stop early.
func (c *Changer) Backward(seq soundlaw.Sequence, rule *soundlaw.Rule) ([]soundlaw.Sequence, error) {
	if len(seq) == 0 {
		return nil, nil
	}
	recon, err := c.Reconstruct(seq, rule)
	if err != nil {
		return nil, err
	}
	out := make([]soundlaw.Sequence, 0, recon.Len())
	for recon.Next() {
		out = append(out, recon.Candidate())
	}
	return out, nil
}

// Reconstruct scans the output sequence and returns a lazy enumerator
// over all candidate ante-sequences. The scan itself is eager (it is
// linear in the sequence length); only the cartesian combination of
// per-window candidates is deferred.
func (c *Changer) Reconstruct(seq soundlaw.Sequence, rule *soundlaw.Rule) (*Reconstruction, error) {
	effective := c.effectivePost(rule)
	width := len(effective)
	var slots [][][]string
	idx := 0
	for idx < len(seq) {
		if width > 0 {
			end := idx + width
			if end > len(seq) {
				end = len(seq) // a short trailing window fails the length pre-check
			}
			window := seq[idx:end]
			if c.Match(window, effective).Matched() {
				ante, err := c.backwardTranslate(window, rule)
				if err != nil {
					return nil, err
				}
				// two readings per window: the rule did not apply here,
				// or it did and the window descends from ante
				slots = append(slots, [][]string{window, ante})
				idx += width
				continue
			}
		}
		slots = append(slots, [][]string{{seq[idx]}})
		idx++
	}
	recon := newReconstruction(slots)
	tracing.P("rule", rule.Source).Debugf("reconstruction with %d slots, %d candidates",
		len(slots), recon.Len())
	return recon, nil
}

// effectivePost derives the pattern used for backward matching: empty
// tokens are dropped, and every back-reference is substituted by the
// ante token it points to, carrying the back-reference's modifier onto
// a copy. This "fakes" the forward rule, so that d > @1[+voiceless]
// is treated, for matching purposes, as t > @1.
func (c *Changer) effectivePost(rule *soundlaw.Rule) []soundlaw.Token {
	eff := make([]soundlaw.Token, 0, len(rule.Post))
	for _, tok := range rule.Post {
		switch t := tok.(type) {
		case soundlaw.Empty:
			// dropped before matching
		case soundlaw.BackRef:
			eff = append(eff, carryModifier(rule.Ante[t.Index], t.Modifier))
		default:
			eff = append(eff, tok)
		}
	}
	return eff
}

// carryModifier copies an ante token with a back-reference's modifier
// attached. Alternatives keep their own structure; a modifier on a
// back-reference to a set position has no principled inverse and is
// left alone.
func carryModifier(tok soundlaw.Token, mod *soundlaw.Features) soundlaw.Token {
	if mod == nil {
		return tok
	}
	switch t := tok.(type) {
	case soundlaw.Segment:
		return soundlaw.Segment{Grapheme: t.Grapheme, Modifier: mod, Partial: t.Partial}
	case soundlaw.SoundClass:
		return soundlaw.SoundClass{Name: t.Name, Modifier: mod}
	}
	return tok
}

// backwardTranslate reconstructs the ante reading of one matched
// window. Positions of ante that some post back-reference points to
// receive the inverse-modifier-adjusted matched unit; every other
// position reconstructs as the ante constraint itself: a literal
// grapheme, a class name, or an "alt1|alt2" disjunction, since the
// forward direction is lossy there and no unique inverse exists.
func (c *Changer) backwardTranslate(window soundlaw.Sequence, rule *soundlaw.Rule) ([]string, error) {
	matched := make(map[int]string)
	pos := 0
	for _, tok := range rule.Post {
		if _, isEmpty := tok.(soundlaw.Empty); isEmpty {
			continue
		}
		if br, isRef := tok.(soundlaw.BackRef); isRef {
			unit := window[pos]
			if br.Modifier != nil {
				adjusted, err := c.phon.ApplyModifier(unit, *br.Modifier, true)
				if err != nil {
					return nil, err
				}
				unit = adjusted
			}
			matched[br.Index] = unit
		}
		pos++
	}
	ante := make([]string, 0, len(rule.Ante))
	for i, tok := range rule.Ante {
		if _, isEmpty := tok.(soundlaw.Empty); isEmpty {
			continue
		}
		if unit, ok := matched[i]; ok {
			ante = append(ante, unit)
			continue
		}
		ante = append(ante, placeholder(tok))
	}
	return ante, nil
}

// placeholder renders the reconstruction stand-in for an unreferenced
// ante position.
func placeholder(tok soundlaw.Token) string {
	switch t := tok.(type) {
	case soundlaw.Boundary:
		return soundlaw.BoundaryMark
	case soundlaw.Segment:
		if t.Partial {
			return t.String()
		}
		return t.Grapheme
	case soundlaw.SoundClass:
		return t.Name
	case soundlaw.Choice:
		return placeholderAlternatives(t.Alternatives)
	case soundlaw.Set:
		return placeholderAlternatives(t.Alternatives)
	}
	return tok.String()
}

func placeholderAlternatives(alts []soundlaw.Token) string {
	parts := make([]string, len(alts))
	for i, alt := range alts {
		parts[i] = placeholder(alt)
	}
	return strings.Join(parts, "|")
}
