package packrat

import "fmt"

// superRule is Super(name): a proxy that resolves name to a rule of that
// name in the enclosing grammar's ancestor chain only, skipping the
// grammar itself. It otherwise behaves like Alias. Resolution failure is a
// fatal grammar misconfiguration (no ancestor defines the name), not a
// parse failure.
type superRule struct {
	ruleBase
	target   string // explicit target name, or "" to use this rule's own installed name
	grammar  *Grammar
	resolved Rule
}

// Super builds a Super rule referring to the rule named target in an
// ancestor grammar.
func Super(target string) Rule {
	return &superRule{ruleBase: newRuleBase(), target: target}
}

// SuperRef builds a Super rule. With no argument, it infers its target
// name from whatever name it is installed under via Grammar.Define — the
// common "override the same-named ancestor rule" usage. A zero-argument
// SuperRef nested inside another rule (a Sequence, say) is not itself
// installed, has no name, and panics with a GrammarError when resolved.
// With an argument, it behaves exactly like Super.
func SuperRef(target ...string) Rule {
	if len(target) > 0 {
		return Super(target[0])
	}
	return &superRule{ruleBase: newRuleBase()}
}

func (r *superRule) resolve() Rule {
	if r.resolved != nil {
		return r.resolved
	}
	if r.grammar == nil {
		panic(GrammarError{Message: "super reference used outside of any grammar"})
	}
	name := r.target
	if name == "" {
		name = r.name
	}
	if name == "" {
		panic(GrammarError{Message: "super reference has no name to resolve (neither an explicit target nor an installed name)"})
	}
	target, ok := r.grammar.SuperRule(name)
	if !ok {
		panic(GrammarError{Message: fmt.Sprintf("super %q: no ancestor of grammar %q defines it", name, r.grammar.name)})
	}
	r.resolved = target
	return target
}

func (r *superRule) match(in *Input, offset int) *Match {
	m := in.Match(r.resolve(), offset)
	if m == nil {
		return nil
	}
	return m.withName(r.name)
}

func (r *superRule) propagateGrammar(g *Grammar) {
	r.grammar = g
}

func (r *superRule) String() string {
	return "super"
}
