package changer_test

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/soundlaw"
	"github.com/npillmayer/soundlaw/changer"
	"github.com/npillmayer/soundlaw/phonology"
)

func modifier(text string) *soundlaw.Features {
	f := soundlaw.ParseFeatures(text)
	return &f
}

func TestMatchLengthMismatch(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ch := changer.New(phonology.TestModel())
	pattern := []soundlaw.Token{
		soundlaw.Segment{Grapheme: "p"},
		soundlaw.Segment{Grapheme: "a"},
	}
	result := ch.Match([]string{"p"}, pattern)
	if result.Matched() {
		t.Errorf("expected a short window not to match")
	}
	if len(result) != 1 {
		t.Errorf("expected one entry per window unit, have %d", len(result))
	}
}

func TestMatchSegmentAndClass(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ch := changer.New(phonology.TestModel())
	pattern := []soundlaw.Token{
		soundlaw.SoundClass{Name: "V"},
		soundlaw.Segment{Grapheme: "s"},
	}
	if !ch.Match([]string{"a", "s"}, pattern).Matched() {
		t.Errorf("expected [V s] to match [a s]")
	}
	if ch.Match([]string{"t", "s"}, pattern).Matched() {
		t.Errorf("expected [V s] not to match [t s]")
	}
}

func TestMatchModifiedSegment(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ch := changer.New(phonology.TestModel())
	pattern := []soundlaw.Token{
		soundlaw.Segment{Grapheme: "p", Modifier: modifier("+voiced")},
	}
	if !ch.Match([]string{"b"}, pattern).Matched() {
		t.Errorf("expected p[+voiced] to match b")
	}
	if ch.Match([]string{"p"}, pattern).Matched() {
		t.Errorf("expected p[+voiced] not to match p")
	}
}

func TestMatchModifiedClass(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ch := changer.New(phonology.TestModel())
	pattern := []soundlaw.Token{
		soundlaw.SoundClass{Name: "S", Modifier: modifier("+voiced")},
	}
	if !ch.Match([]string{"b"}, pattern).Matched() {
		t.Errorf("expected S[+voiced] to match b")
	}
	if ch.Match([]string{"t"}, pattern).Matched() {
		t.Errorf("expected S[+voiced] not to match t")
	}
}

func TestMatchPartialSegment(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ch := changer.New(phonology.TestModel())
	pattern := []soundlaw.Token{
		soundlaw.Segment{Partial: true, Modifier: modifier("+fricative,-voiced")},
	}
	if !ch.Match([]string{"s"}, pattern).Matched() {
		t.Errorf("expected [+fricative,-voiced] to match s")
	}
	if ch.Match([]string{"z"}, pattern).Matched() {
		t.Errorf("expected [+fricative,-voiced] not to match z")
	}
}

func TestMatchSetCapture(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ch := changer.New(phonology.TestModel())
	pattern := []soundlaw.Token{
		soundlaw.Set{Alternatives: []soundlaw.Token{
			soundlaw.Segment{Grapheme: "u"},
			soundlaw.Segment{Grapheme: "o"},
		}},
	}
	result := ch.Match([]string{"o"}, pattern)
	if !result.Matched() {
		t.Fatalf("expected {u|o} to match o")
	}
	if result[0].Alt != 2 {
		t.Errorf("expected the second alternative to be captured, have %d", result[0].Alt)
	}
	if captures := result.Captures(); len(captures) != 1 || captures[0] != 2 {
		t.Errorf("unexpected captures %v", captures)
	}
}

func TestMatchBoundary(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ch := changer.New(phonology.TestModel())
	pattern := []soundlaw.Token{soundlaw.Boundary{}, soundlaw.Segment{Grapheme: "p"}}
	if !ch.Match([]string{"#", "p"}, pattern).Matched() {
		t.Errorf("expected [# p] to match the sequence start")
	}
}
