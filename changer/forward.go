package changer

import (
	"github.com/npillmayer/soundlaw"
	"github.com/npillmayer/soundlaw/internal/tracing"
)

// Forward applies a rule to a sequence, left to right. Windows of
// len(rule.Ante) units are matched against the ante pattern; a
// matching window is rewritten according to the post pattern and
// consumed whole (non-overlapping), a non-matching position is copied
// verbatim and the cursor advances by one unit.
//
// Forward fails only when a modifier of the post pattern cannot be
// realized (*soundlaw.UnresolvedModifier); malformed back-references
// are impossible at this point, compilation rejects them.
func (c *Changer) Forward(seq soundlaw.Sequence, rule *soundlaw.Rule) (soundlaw.Sequence, error) {
	if len(seq) == 0 {
		return seq, nil
	}
	width := len(rule.Ante)
	out := make([]string, 0, len(seq))
	idx := 0
	for idx < len(seq) {
		end := idx + width
		if end > len(seq) {
			end = len(seq)
		}
		window := seq[idx:end]
		result := c.Match(window, rule.Ante)
		if result.Matched() {
			tracing.P("rule", rule.Source).Debugf("window %v matches at %d", window, idx)
			units, err := c.forwardTranslate(window, rule, result.Captures())
			if err != nil {
				return nil, err
			}
			out = append(out, units...)
			idx += width
		} else {
			out = append(out, seq[idx])
			idx++
		}
	}
	return soundlaw.NewSequenceUnits(out), nil
}

// forwardTranslate turns one matched window into output units, driven
// by the post pattern. captures holds the 1-based set-alternative
// indices recorded by the matcher, in window order; each capturing set
// of the post pattern consumes the next one.
func (c *Changer) forwardTranslate(window soundlaw.Sequence, rule *soundlaw.Rule, captures []int) ([]string, error) {
	var out []string
	for _, tok := range rule.Post {
		switch t := tok.(type) {
		case soundlaw.Empty:
			// no output
		case soundlaw.Boundary:
			out = append(out, soundlaw.BoundaryMark)
		case soundlaw.Segment:
			grapheme := t.Grapheme
			if t.Modifier != nil {
				modified, err := c.phon.ApplyModifier(grapheme, *t.Modifier, false)
				if err != nil {
					return nil, err
				}
				grapheme = modified
			}
			out = append(out, grapheme)
		case soundlaw.Set:
			alt := captures[0]
			captures = captures[1:]
			seg := t.Alternatives[alt-1].(soundlaw.Segment) // guaranteed by rule validation
			out = append(out, seg.Grapheme)
		case soundlaw.BackRef:
			unit := window[t.Index]
			if t.Modifier != nil {
				modified, err := c.phon.ApplyModifier(unit, *t.Modifier, false)
				if err != nil {
					return nil, err
				}
				unit = modified
			}
			out = append(out, unit)
		case soundlaw.SoundClass, soundlaw.Choice, soundlaw.Focus:
			// rejected by rule validation; unreachable
		}
	}
	return out, nil
}
