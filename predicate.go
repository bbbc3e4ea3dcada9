package packrat

// andPredicateRule is AndPredicate: it matches iff its sub-rule matches,
// producing an empty match that consumes no input either way.
type andPredicateRule struct {
	ruleBase
	sub Rule
}

// notPredicateRule is NotPredicate: it matches iff its sub-rule does not
// match, producing an empty match that consumes no input either way.
type notPredicateRule struct {
	ruleBase
	sub Rule
}

// AndPred builds an AndPredicate rule (positive lookahead).
func AndPred(def any) Rule {
	return &andPredicateRule{ruleBase: newRuleBase(), sub: toRule(def)}
}

// NotPred builds a NotPredicate rule (negative lookahead).
func NotPred(def any) Rule {
	return &notPredicateRule{ruleBase: newRuleBase(), sub: toRule(def)}
}

func (r *andPredicateRule) match(in *Input, offset int) *Match {
	// The cache still participates here: a predicate lookup memoizes its
	// sub-rule's outcome keyed by the sub-rule's own identity, shared with
	// any other rule that happens to probe the same sub-rule at the same
	// offset.
	if in.Match(r.sub, offset) == nil {
		return nil
	}
	return newEmptyMatch(in.text, offset).withName(r.name).withExt(r.ext)
}

func (r *notPredicateRule) match(in *Input, offset int) *Match {
	if in.Match(r.sub, offset) != nil {
		return nil
	}
	return newEmptyMatch(in.text, offset).withName(r.name).withExt(r.ext)
}

func (r *andPredicateRule) propagateGrammar(g *Grammar) { r.sub.propagateGrammar(g) }
func (r *notPredicateRule) propagateGrammar(g *Grammar) { r.sub.propagateGrammar(g) }

func (r *andPredicateRule) String() string { return "&" + r.sub.String() }
func (r *notPredicateRule) String() string { return "!" + r.sub.String() }
