package packrat

import (
	"fmt"
	"strings"
)

// sequenceRule is Sequence: it matches iff every sub-rule matches in
// order, the offset advancing by each sub-match's length; it fails (no
// partial match is returned) on the first sub-rule failure.
type sequenceRule struct {
	ruleBase
	subs []Rule
}

// Sequence builds a Sequence rule over the given definitions, each
// converted via the same rules Grammar.Define uses.
func Sequence(defs ...any) Rule {
	subs := make([]Rule, len(defs))
	for i, d := range defs {
		subs[i] = toRule(d)
	}
	return &sequenceRule{ruleBase: newRuleBase(), subs: subs}
}

// Seq is an alias for Sequence, matching the external combinator naming.
func Seq(defs ...any) Rule {
	return Sequence(defs...)
}

func (r *sequenceRule) match(in *Input, offset int) *Match {
	at := offset
	children := make([]*Match, 0, len(r.subs))
	for _, sub := range r.subs {
		m := in.Match(sub, at)
		if m == nil {
			return nil
		}
		children = append(children, m)
		at += m.Length()
	}
	return newNonterminalMatch(in.text, offset, children).withName(r.name).withExt(r.ext)
}

func (r *sequenceRule) propagateGrammar(g *Grammar) {
	for _, sub := range r.subs {
		sub.propagateGrammar(g)
	}
}

func (r *sequenceRule) String() string {
	return embed(r.subs, " ")
}

// embed renders a list of rules, parenthesizing when there is more than
// one element, matching the precedence convention used throughout the PEG
// rendering: a single sub-rule never needs grouping, but a list of two or
// more does when embedded inside another rendering.
func embed(rules []Rule, sep string) string {
	strs := make([]string, len(rules))
	for i, sub := range rules {
		strs[i] = sub.String()
	}
	joined := strings.Join(strs, sep)
	if len(rules) > 1 {
		return fmt.Sprintf("(%s)", joined)
	}
	return joined
}
