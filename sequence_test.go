package soundlaw

import "testing"

func TestNewSequenceBounds(t *testing.T) {
	seq := NewSequence("p a t e")
	if seq.String() != "# p a t e #" {
		t.Errorf("expected boundaries to be inserted, have %q", seq.String())
	}
	bounded := NewSequence("# p a t e #")
	if !seq.Equal(bounded) {
		t.Errorf("expected %q to equal %q", seq, bounded)
	}
}

func TestNewSequenceNormalizes(t *testing.T) {
	decomposed := NewSequence("é") // e plus combining acute
	composed := NewSequence("é")

	if !decomposed.Equal(composed) {
		t.Errorf("expected NFC normalization, have %q and %q", decomposed, composed)
	}
}

func TestNewSequenceUnitsCopies(t *testing.T) {
	units := []string{"p", "a"}
	seq := NewSequenceUnits(units)
	units[0] = "x"
	if seq[1] != "p" {
		t.Errorf("expected the unit slice to be copied, have %q", seq)
	}
	if len(seq) != 4 {
		t.Errorf("expected 4 units including boundaries, have %d", len(seq))
	}
}

func TestSequenceEqual(t *testing.T) {
	a := NewSequence("p a")
	b := NewSequence("p a t")
	if a.Equal(b) {
		t.Errorf("expected %q and %q to differ", a, b)
	}
}
