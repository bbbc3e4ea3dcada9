package packrat

import (
	"strings"
	"testing"
)

func TestInputCachesHitsAndMisses(t *testing.T) {
	in := NewInput("aaa")
	rule := Literal("a")

	m1 := in.Match(rule, 0)
	if m1 == nil {
		t.Fatal("expected match at offset 0")
	}
	if in.CacheHits() != 0 {
		t.Fatalf("first lookup should miss, CacheHits() = %d", in.CacheHits())
	}

	m2 := in.Match(rule, 0)
	if in.CacheHits() != 1 {
		t.Fatalf("second lookup at the same (rule, offset) should hit, CacheHits() = %d", in.CacheHits())
	}
	if m1 != m2 {
		t.Error("cached lookup should return the exact same *Match pointer")
	}
}

func TestInputCachesFailures(t *testing.T) {
	in := NewInput("b")
	rule := Literal("a")

	if m := in.Match(rule, 0); m != nil {
		t.Fatal("expected no match")
	}
	if in.CacheHits() != 0 {
		t.Fatalf("first lookup should miss, CacheHits() = %d", in.CacheHits())
	}
	if m := in.Match(rule, 0); m != nil {
		t.Fatal("expected cached failure to still be nil")
	}
	if in.CacheHits() != 1 {
		t.Fatalf("second lookup of a cached failure should hit, CacheHits() = %d", in.CacheHits())
	}
}

func TestInputMaxOffsetMonotonic(t *testing.T) {
	in := NewInput("abcdef")
	in.Match(Literal("abc"), 0)
	if in.MaxOffset() != 0 {
		t.Fatalf("MaxOffset() = %d, want 0 after probing at offset 0", in.MaxOffset())
	}
	in.Match(Literal("def"), 3)
	if in.MaxOffset() != 3 {
		t.Fatalf("MaxOffset() = %d, want 3", in.MaxOffset())
	}
	// probing an earlier offset again must not move MaxOffset backwards.
	in.Match(Literal("abc"), 0)
	if in.MaxOffset() != 3 {
		t.Fatalf("MaxOffset() = %d, want 3 (monotonic non-decreasing)", in.MaxOffset())
	}
}

func TestParseDeterministicAcrossFreshCaches(t *testing.T) {
	g := NewGrammar("g")
	g.Define("digits", OneOrMore(Regex(`[0-9]`)))
	g.Root("digits")

	m1, err1 := g.Parse("12345")
	m2, err2 := g.Parse("12345")
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if m1.Text() != m2.Text() || m1.Length() != m2.Length() {
		t.Error("parsing the same grammar and input twice should be deterministic")
	}
}

// buildParenGrammar constructs the recursive grammar from spec.md §8 scenario
// 5: paren = (, paren, ) | [a-z].
func buildParenGrammar() *Grammar {
	g := NewGrammar("paren")
	g.Define("paren", Choice(
		Sequence(Literal("("), Alias("paren"), Literal(")")),
		Regex(`[a-z]`),
	))
	g.Root("paren")
	return g
}

func TestDeeplyNestedParensParsesLinearly(t *testing.T) {
	g := buildParenGrammar()

	input := strings.Repeat("(", 200) + "a" + strings.Repeat(")", 200)
	m, err := g.Parse(input)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if m.Length() != len(input) {
		t.Errorf("match length = %d, want %d", m.Length(), len(input))
	}
}

func TestPackratMemoizationBoundsWorkPerRulePerOffset(t *testing.T) {
	// Without memoizing failures, matching the recursive "paren" rule
	// against a long run of unmatched opens would make Choice retry the
	// alias at the same offset once per enclosing level, an amount of work
	// quadratic (or worse) in nesting depth. With memoization, each
	// (rule, offset) pair is evaluated exactly once, so CacheHits() should
	// grow roughly linearly with depth once the grammar is exercised
	// repeatedly at overlapping offsets.
	g := buildParenGrammar()
	paren, _ := g.Rule("paren")

	depth := 50
	input := strings.Repeat("(", depth) + "a" + strings.Repeat(")", depth)
	in := NewInput(input)

	// Match at every offset along the opening run; each probe reuses the
	// cached outcome of every rule/offset pair it has already visited.
	for offset := 0; offset <= depth; offset++ {
		in.Match(paren, offset)
	}
	if in.CacheHits() == 0 {
		t.Error("expected repeated probing over overlapping offsets to produce cache hits")
	}
}
