package changer

import (
	"github.com/npillmayer/soundlaw"
)

// Match compares a run of sequence units against a pattern, position
// by position. A window whose length differs from the pattern's is
// reported as all-failed without evaluating any token; this makes the
// pre-check cheap for the scanning transducers, which probe truncated
// windows near the end of a sequence.
//
// Match never fails: a class member whose modifier cannot be resolved
// simply cannot be matched. Only translation (Forward/Backward) turns
// unresolvable modifiers into errors.
func (c *Changer) Match(window []string, pattern []soundlaw.Token) soundlaw.MatchResult {
	if len(window) != len(pattern) {
		return soundlaw.NoMatches(len(window))
	}
	result := make(soundlaw.MatchResult, len(window))
	for i, tok := range pattern {
		result[i] = c.matchUnit(window[i], tok)
	}
	return result
}

// matchUnit evaluates one unit against one token, independent of its
// neighbors. The switch is exhaustive over the token variants; kinds
// that have no meaning in a pattern position (focus, empty output,
// back-references) never match.
func (c *Changer) matchUnit(unit string, tok soundlaw.Token) soundlaw.Match {
	switch t := tok.(type) {
	case soundlaw.Boundary:
		return soundlaw.Match{OK: unit == soundlaw.BoundaryMark}
	case soundlaw.Segment:
		if t.Partial {
			return soundlaw.Match{OK: c.matchPartial(unit, t)}
		}
		target := t.Grapheme
		if t.Modifier != nil {
			modified, err := c.phon.ApplyModifier(t.Grapheme, *t.Modifier, false)
			if err != nil {
				return soundlaw.Match{}
			}
			target = modified
		}
		return soundlaw.Match{OK: unit == target}
	case soundlaw.SoundClass:
		return soundlaw.Match{OK: c.matchClass(unit, t)}
	case soundlaw.Choice:
		for _, alt := range t.Alternatives {
			if c.matchUnit(unit, alt).OK {
				return soundlaw.Match{OK: true}
			}
		}
		return soundlaw.Match{}
	case soundlaw.Set:
		for i, alt := range t.Alternatives {
			if c.matchUnit(unit, alt).OK {
				// 1-based, so that a match on the first alternative is
				// distinguishable from a failed position
				return soundlaw.Match{OK: true, Alt: i + 1}
			}
		}
		return soundlaw.Match{}
	case soundlaw.Focus, soundlaw.Empty, soundlaw.BackRef:
		return soundlaw.Match{}
	}
	return soundlaw.Match{}
}

// matchPartial checks a feature-subset segment: the unit must itself
// carry descriptors, all positive features of the bundle must be
// present and all negative ones absent.
func (c *Changer) matchPartial(unit string, seg soundlaw.Segment) bool {
	if seg.Modifier == nil {
		return false
	}
	descriptors, ok := c.phon.Descriptors(unit)
	if !ok {
		return false
	}
	have := make(map[string]bool, len(descriptors))
	for _, d := range descriptors {
		have[d] = true
	}
	for _, want := range seg.Modifier.Positive {
		if !have[want] {
			return false
		}
	}
	for _, banned := range seg.Modifier.Negative {
		if have[banned] {
			return false
		}
	}
	return true
}

// matchClass checks membership of the unit in the (modifier-adjusted)
// grapheme set of a sound class.
func (c *Changer) matchClass(unit string, class soundlaw.SoundClass) bool {
	for _, member := range c.phon.ClassMembers(class.Name) {
		if class.Modifier != nil {
			modified, err := c.phon.ApplyModifier(member, *class.Modifier, false)
			if err != nil {
				continue // this member cannot be realized under the modifier
			}
			member = modified
		}
		if unit == member {
			return true
		}
	}
	return false
}
