package packrat

import "fmt"

// Unbounded is the sentinel max value meaning "no upper bound" for Repeat.
const Unbounded = -1

// repeatRule is Repeat(min, max, r): it greedily matches r until it fails
// or max matches have been collected, succeeding iff the collected count
// lies in [min, max].
type repeatRule struct {
	ruleBase
	min, max int // max == Unbounded means infinite
	sub      Rule
}

// Repeat builds a Repeat rule matching def between min and max times
// (max == Unbounded for no upper bound). Panics with a GrammarError if
// min > max, since that can never succeed and is a grammar-construction
// mistake rather than something any input could satisfy.
func Repeat(min, max int, def any) Rule {
	if max != Unbounded && min > max {
		panic(GrammarError{Message: fmt.Sprintf("repeat bounds invalid: min %d > max %d", min, max)})
	}
	return &repeatRule{ruleBase: newRuleBase(), min: min, max: max, sub: toRule(def)}
}

// OneOrMore builds Repeat(1, Unbounded, def).
func OneOrMore(def any) Rule { return Repeat(1, Unbounded, def) }

// ZeroOrMore builds Repeat(0, Unbounded, def).
func ZeroOrMore(def any) Rule { return Repeat(0, Unbounded, def) }

// Optional builds Repeat(0, 1, def).
func Optional(def any) Rule { return Repeat(0, 1, def) }

func (r *repeatRule) match(in *Input, offset int) *Match {
	at := offset
	var children []*Match
	count := 0
	for r.max == Unbounded || count < r.max {
		m := in.Match(r.sub, at)
		if m == nil {
			break
		}
		children = append(children, m)
		count++

		// A zero-width match still counts toward the repetition count and
		// the offset does not advance. Looping forever on an unbounded
		// zero-width repeat is a grammar bug (spec.md §9's open question);
		// the resolved policy here is to treat the repetition as
		// saturated as soon as one iteration fails to advance the offset,
		// rather than looping until max (which would never arrive).
		if m.Length() == 0 {
			if r.max == Unbounded {
				break
			}
			continue
		}
		at += m.Length()
	}

	if count < r.min || (r.max != Unbounded && count > r.max) {
		return nil
	}
	return newNonterminalMatch(in.text, offset, children).withName(r.name).withExt(r.ext)
}

func (r *repeatRule) propagateGrammar(g *Grammar) {
	r.sub.propagateGrammar(g)
}

func (r *repeatRule) String() string {
	sub := r.sub.String()
	switch {
	case r.min == 0 && r.max == 1:
		return sub + "?"
	case r.min == 1 && r.max == Unbounded:
		return sub + "+"
	case r.min == 0 && r.max == Unbounded:
		return sub + "*"
	case r.max == Unbounded:
		return fmt.Sprintf("%s%d*", sub, r.min)
	default:
		return fmt.Sprintf("%s%d*%d", sub, r.min, r.max)
	}
}
