package packrat

import "fmt"

// labelRule is Label(name, r): it matches iff r matches, renaming the
// resulting match to name before returning it. The renaming does not
// affect caching — the sub-rule's cache entry is shared by every label
// pointing at it.
type labelRule struct {
	ruleBase
	label string
	sub   Rule
}

// Label builds a Label rule that matches def and renames the result to
// label.
func Label(label string, def any) Rule {
	return &labelRule{ruleBase: newRuleBase(), label: label, sub: toRule(def)}
}

func (r *labelRule) match(in *Input, offset int) *Match {
	m := in.Match(r.sub, offset)
	if m == nil {
		return nil
	}
	return m.withName(r.label)
}

func (r *labelRule) propagateGrammar(g *Grammar) { r.sub.propagateGrammar(g) }

func (r *labelRule) String() string {
	return fmt.Sprintf("%s:%s", r.label, r.sub.String())
}
