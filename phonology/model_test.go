package phonology

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/soundlaw"
)

func delta(text string) soundlaw.Features {
	return soundlaw.ParseFeatures(text)
}

func TestApplyModifierForward(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	m := TestModel()
	cases := []struct {
		grapheme, modifier, want string
	}{
		{"p", "+voiced", "b"},
		{"t", "+voiced", "d"},
		{"g", "+voiceless", "k"},
		{"s", "+stop", "t"},
		{"u", "+front,-rounded", "i"},
		{"o", "+front,-rounded", "e"},
	}
	for _, c := range cases {
		have, err := m.ApplyModifier(c.grapheme, delta(c.modifier), false)
		if err != nil {
			t.Errorf("%s%s: %v", c.grapheme, c.modifier, err)
			continue
		}
		if have != c.want {
			t.Errorf("%s%s: expected %s, have %s", c.grapheme, c.modifier, c.want, have)
		}
	}
}

func TestApplyModifierZeroDelta(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	m := TestModel()
	have, err := m.ApplyModifier("p", soundlaw.Features{}, false)
	if err != nil || have != "p" {
		t.Errorf("expected the grapheme to pass through, have %s (%v)", have, err)
	}
}

func TestApplyModifierUnresolved(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	m := TestModel()
	_, err := m.ApplyModifier("a", delta("+voiced"), false)
	var unresolved *soundlaw.UnresolvedModifier
	if !errors.As(err, &unresolved) {
		t.Fatalf("expected an unresolved modifier, have %v", err)
	}
	if unresolved.Grapheme != "a" || unresolved.Inverse {
		t.Errorf("unexpected error detail %v", unresolved)
	}
	if _, err := m.ApplyModifier("x", delta("+voiced"), false); err == nil {
		t.Errorf("expected an unknown grapheme to be unresolved")
	}
}

func TestApplyModifierInverse(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	m := TestModel()
	have, err := m.ApplyModifier("t", delta("+voiceless"), true)
	if err != nil {
		t.Fatal(err)
	}
	if have != "d" {
		t.Errorf("expected the pre-image of t under devoicing to be d, have %s", have)
	}
	have, err = m.ApplyModifier("b", delta("+voiced"), true)
	if err != nil {
		t.Fatal(err)
	}
	if have != "p" {
		t.Errorf("expected the pre-image of b under voicing to be p, have %s", have)
	}
}

func TestApplyModifierInverseException(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	m := TestModel()
	m.AddInverse("t", delta("+voiceless"), "t")
	have, err := m.ApplyModifier("t", delta("+voiceless"), true)
	if err != nil {
		t.Fatal(err)
	}
	if have != "t" {
		t.Errorf("expected the exception to win over the search, have %s", have)
	}
}

func TestApplyModifierInverseIdentity(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	m := TestModel()
	// no non-identity pre-image of r exists under +voiced
	have, err := m.ApplyModifier("r", delta("+voiced"), true)
	if err != nil {
		t.Fatal(err)
	}
	if have != "r" {
		t.Errorf("expected the identity pre-image, have %s", have)
	}
}

func TestDescriptors(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	m := TestModel()
	descs, ok := m.Descriptors("p")
	if !ok {
		t.Fatalf("expected p to be part of the inventory")
	}
	want := []string{"bilabial", "consonant", "stop", "voiceless"}
	if len(descs) != len(want) {
		t.Fatalf("expected %v, have %v", want, descs)
	}
	for i := range want {
		if descs[i] != want[i] {
			t.Fatalf("expected %v, have %v", want, descs)
		}
	}
	if _, ok := m.Descriptors("x"); ok {
		t.Errorf("expected x not to be part of the inventory")
	}
}

func TestClassMembers(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	m := TestModel()
	if members := m.ClassMembers("V"); len(members) != 5 {
		t.Errorf("expected 5 vowels, have %v", members)
	}
	if members := m.ClassMembers("X"); members != nil {
		t.Errorf("expected an unknown class to be empty, have %v", members)
	}
}

func TestModifierCache(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	m := TestModel()
	first, err := m.ApplyModifier("p", delta("+voiced"), false)
	if err != nil {
		t.Fatal(err)
	}
	second, err := m.ApplyModifier("p", delta("+voiced"), false)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("expected cached and computed results to agree: %s vs %s", first, second)
	}
}
