package packrat

import "testing"

func TestRepeatBounds(t *testing.T) {
	cases := []struct {
		name    string
		min     int
		max     int
		text    string
		wantLen int // -1 means no match
	}{
		{"min0 on no matches", 0, Unbounded, "", 0},
		{"min1 on no matches fails", 1, Unbounded, "", -1},
		{"exact count satisfied", 2, 2, "aa", 2},
		{"exact count too few", 2, 2, "a", -1},
		{"exact count too many stops at max", 2, 2, "aaa", 2},
		{"range satisfied at lower bound", 1, 3, "a", 1},
		{"range satisfied at upper bound", 1, 3, "aaa", 3},
		{"range not satisfied below min", 2, 3, "a", -1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			in := NewInput(c.text)
			rule := Repeat(c.min, c.max, Literal("a"))
			m := in.Match(rule, 0)
			if c.wantLen == -1 {
				if m != nil {
					t.Errorf("expected no match, got length %d", m.Length())
				}
				return
			}
			if m == nil {
				t.Fatalf("expected a match of length %d, got none", c.wantLen)
			}
			if m.Length() != c.wantLen {
				t.Errorf("match length = %d, want %d", m.Length(), c.wantLen)
			}
		})
	}
}

func TestRepeatZeroWidthSaturatesInsteadOfLooping(t *testing.T) {
	// AndPred never consumes input; an unbounded ZeroOrMore over it must
	// still terminate rather than looping until max (spec.md §9's open
	// question, resolved as "safer implementation" in DESIGN.md).
	in := NewInput("x")
	rule := ZeroOrMore(AndPred(Literal("x")))
	m := in.Match(rule, 0)
	if m == nil {
		t.Fatal("expected a match")
	}
	if m.Length() != 0 {
		t.Errorf("match length = %d, want 0 (zero-width repeats never advance the offset)", m.Length())
	}
	if len(m.Children()) != 1 {
		t.Errorf("expected exactly one zero-width iteration to be collected before saturating, got %d", len(m.Children()))
	}
}

func TestRepeatZeroWidthWithBoundedMaxCollectsUpToMax(t *testing.T) {
	in := NewInput("x")
	rule := Repeat(0, 3, AndPred(Literal("x")))
	m := in.Match(rule, 0)
	if m == nil {
		t.Fatal("expected a match")
	}
	if len(m.Children()) != 3 {
		t.Errorf("expected 3 zero-width iterations up to the bounded max, got %d", len(m.Children()))
	}
}

func TestOneOrMoreZeroOrMoreOptionalHelpers(t *testing.T) {
	in := NewInput("aaa")

	if m := in.Match(OneOrMore(Literal("a")), 0); m == nil || m.Length() != 3 {
		t.Errorf("OneOrMore: got %v, want length 3", m)
	}
	if m := in.Match(ZeroOrMore(Literal("b")), 0); m == nil || m.Length() != 0 {
		t.Errorf("ZeroOrMore over a non-matching rule should match empty, got %v", m)
	}
	if m := in.Match(Optional(Literal("a")), 0); m == nil || m.Length() != 1 {
		t.Errorf("Optional: got %v, want length 1", m)
	}
	if m := in.Match(Optional(Literal("z")), 0); m == nil || m.Length() != 0 {
		t.Errorf("Optional over a non-matching rule should match empty, got %v", m)
	}
}
