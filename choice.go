package packrat

// choiceRule is Choice: it tries each sub-rule in order at the same
// offset and returns the first success, wrapped as a single-child match;
// it fails only once every alternative has failed.
type choiceRule struct {
	ruleBase
	subs []Rule
}

// Choice builds a Choice rule over already-built rules.
func Choice(rules ...Rule) Rule {
	return &choiceRule{ruleBase: newRuleBase(), subs: rules}
}

// Alt builds a Choice rule over the given definitions, each converted via
// the same rules Grammar.Define uses (so a Span or a raw string may be
// mixed in alongside rule objects).
func Alt(defs ...any) Rule {
	subs := make([]Rule, len(defs))
	for i, d := range defs {
		subs[i] = toRule(d)
	}
	return &choiceRule{ruleBase: newRuleBase(), subs: subs}
}

func (r *choiceRule) match(in *Input, offset int) *Match {
	for _, sub := range r.subs {
		if m := in.Match(sub, offset); m != nil {
			return newNonterminalMatch(in.text, offset, []*Match{m}).withName(r.name).withExt(r.ext)
		}
	}
	return nil
}

func (r *choiceRule) propagateGrammar(g *Grammar) {
	for _, sub := range r.subs {
		sub.propagateGrammar(g)
	}
}

func (r *choiceRule) String() string {
	return embed(r.subs, " | ")
}
