package notation_test

import (
	"fmt"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/soundlaw"
	"github.com/npillmayer/soundlaw/notation"
)

func ExampleParse() {
	rule, _ := notation.Parse("p|t r > @1[+voiced] / V _")
	fmt.Println(rule.Ante)
	fmt.Println(rule.Post)
	// Output: [V p|t r]
	// [@1 @2[+voiced]]
}

func TestParseSimple(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	rule, err := notation.Parse("p > b")
	if err != nil {
		t.Fatal(err)
	}
	if len(rule.Ante) != 1 || len(rule.Post) != 1 {
		t.Fatalf("expected single-token patterns, have %v and %v", rule.Ante, rule.Post)
	}
	seg, ok := rule.Ante[0].(soundlaw.Segment)
	if !ok || seg.Grapheme != "p" {
		t.Errorf("expected source pattern [p], have %v", rule.Ante)
	}
}

func TestParseArrowVariants(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, text := range []string{"p > b", "p -> b", "p => b"} {
		rule, err := notation.Parse(text)
		if err != nil {
			t.Fatalf("compiling %q: %v", text, err)
		}
		if len(rule.Ante) != 1 || len(rule.Post) != 1 {
			t.Errorf("compiling %q: expected single-token patterns", text)
		}
	}
}

func TestParseSetSeparators(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, text := range []string{"{u|o} > @1[+front,-rounded]", "{u,o} > @1[+front,-rounded]"} {
		rule, err := notation.Parse(text)
		if err != nil {
			t.Fatalf("compiling %q: %v", text, err)
		}
		set, ok := rule.Ante[0].(soundlaw.Set)
		if !ok || len(set.Alternatives) != 2 {
			t.Errorf("compiling %q: expected a two-way set, have %v", text, rule.Ante[0])
		}
		ref, ok := rule.Post[0].(soundlaw.BackRef)
		if !ok || ref.Index != 0 || ref.Modifier == nil {
			t.Errorf("compiling %q: expected a modified back-reference, have %v", text, rule.Post[0])
		}
	}
}

// The compiled post pattern carries the context positions only as
// back-references, and references of the original post are shifted by
// the length of the left context.
func TestParseContextSplicing(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	rule, err := notation.Parse("V s > @1 z @1 / # p|b r _ t|d")
	if err != nil {
		t.Fatal(err)
	}
	if have := fmt.Sprint(rule.Ante); have != "[# p|b r V s t|d]" {
		t.Errorf("unexpected source pattern %s", have)
	}
	if have := fmt.Sprint(rule.Post); have != "[@1 @2 @3 @4 z @4 @6]" {
		t.Errorf("unexpected target pattern %s", have)
	}
}

func TestParseDeletionAndInsertion(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	rule, err := notation.Parse("a > :null:")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := rule.Post[0].(soundlaw.Empty); !ok {
		t.Errorf("expected an empty target token, have %v", rule.Post[0])
	}
}

func TestParseErrors(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	bad := []string{
		"",                // empty rule
		"p b a",           // no arrow
		"p >",             // empty target pattern
		"> b",             // empty source pattern
		"p > @2",          // reference outside the source pattern
		"@1 > p",          // back-reference in the source pattern
		"p > b / p t",     // context without focus
		"p > b / _ a _",   // more than one focus
		"p > V",           // sound class emission
		"p > @0",          // references are 1-based
		"{u} > o",         // lonely set alternative
		"{p|t|k} > {b|d}", // target set cannot cover every capture
	}
	for _, text := range bad {
		if _, err := notation.Parse(text); err == nil {
			t.Errorf("expected compilation of %q to fail", text)
		}
	}
}
