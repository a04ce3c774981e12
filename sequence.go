package soundlaw

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Sequence is an ordered list of sound units (graphemes), always
// bounded by the boundary marker at both ends. Sequences are treated
// as immutable: rewriting produces new sequences.
type Sequence []string

// NewSequence builds a sequence from a space-separated string of
// units. The text is NFC-normalized and whitespace is collapsed;
// missing boundary markers are inserted at both ends.
func NewSequence(text string) Sequence {
	text = norm.NFC.String(text)
	return NewSequenceUnits(strings.Fields(text))
}

// NewSequenceUnits builds a sequence from a unit list, normalizing
// each unit to NFC and inserting missing boundary markers. The input
// slice is copied, never aliased.
func NewSequenceUnits(units []string) Sequence {
	seq := make(Sequence, 0, len(units)+2)
	if len(units) == 0 || units[0] != BoundaryMark {
		seq = append(seq, BoundaryMark)
	}
	for _, u := range units {
		seq = append(seq, norm.NFC.String(u))
	}
	if seq[len(seq)-1] != BoundaryMark {
		seq = append(seq, BoundaryMark)
	}
	return seq
}

// String joins the units with single spaces, including the boundary
// markers.
func (s Sequence) String() string {
	return strings.Join(s, " ")
}

// Equal compares two sequences unit by unit.
func (s Sequence) Equal(other Sequence) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}
