package packrat

import "fmt"

// aliasRule is Alias(name): a proxy that resolves name to a rule in the
// enclosing grammar (or an included grammar if not found locally) and
// delegates to it. Resolution happens on first use and is cached on the
// alias itself, which is what lets forward references and mutually
// recursive rules work: by the time an alias is actually invoked during a
// parse, every rule it might need has normally already been defined.
type aliasRule struct {
	ruleBase
	target   string
	grammar  *Grammar
	resolved Rule
}

// Alias builds an Alias rule referring to the rule named target in its
// enclosing grammar.
func Alias(target string) Rule {
	return &aliasRule{ruleBase: newRuleBase(), target: target}
}

func (r *aliasRule) resolve() Rule {
	if r.resolved != nil {
		return r.resolved
	}
	if r.grammar == nil {
		panic(GrammarError{Message: fmt.Sprintf("alias %q used outside of any grammar", r.target)})
	}
	target, ok := r.grammar.Rule(r.target)
	if !ok {
		panic(GrammarError{Message: fmt.Sprintf("alias %q: no such rule in grammar %q or its ancestors", r.target, r.grammar.name)})
	}
	r.resolved = target
	return target
}

func (r *aliasRule) match(in *Input, offset int) *Match {
	m := in.Match(r.resolve(), offset)
	if m == nil {
		return nil
	}
	// The alias renames the result to its own installed name, if any; an
	// anonymous alias leaves the target's name untouched.
	return m.withName(r.name)
}

func (r *aliasRule) propagateGrammar(g *Grammar) {
	r.grammar = g
}

func (r *aliasRule) String() string {
	return r.target
}
