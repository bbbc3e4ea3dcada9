package packrat

import (
	"fmt"
	"regexp"
	"strconv"
)

// Span stands in for "a bounded range of small integers/characters" from
// the rule-definition conversion table: Grammar.Define and the Seq/Alt
// combinators convert a Span into a Choice over the single-rune FixedWidth
// enumeration of Lo..Hi.
type Span struct {
	Lo, Hi rune
}

// maxSpanWidth guards against accidentally enumerating an enormous range,
// e.g. Span{0, math.MaxInt32}.
const maxSpanWidth = 1 << 12

func spanToRule(s Span) Rule {
	if s.Hi < s.Lo {
		panic(GrammarError{Message: fmt.Sprintf("span %v has Hi < Lo", s)})
	}
	width := int(s.Hi-s.Lo) + 1
	if width > maxSpanWidth {
		panic(GrammarError{Message: fmt.Sprintf("span %v is too wide to enumerate (%d code points)", s, width)})
	}
	choices := make([]Rule, 0, width)
	for r := s.Lo; r <= s.Hi; r++ {
		choices = append(choices, Literal(string(r)))
	}
	return Choice(choices...)
}

// toRule converts a rule definition into a Rule per the table: a Rule is
// used as-is, a string becomes FixedWidth, a *regexp.Regexp becomes
// Expression, an int becomes FixedWidth of its decimal rendering, a []any
// becomes Sequence over each converted element, and a Span becomes Choice
// over its enumeration.
func toRule(def any) Rule {
	switch v := def.(type) {
	case Rule:
		return v
	case string:
		return Literal(v)
	case *regexp.Regexp:
		return RegexCompiled(v)
	case int:
		return Literal(strconv.Itoa(v))
	case []any:
		return Sequence(v...)
	case Span:
		return spanToRule(v)
	default:
		panic(GrammarError{Message: fmt.Sprintf("unsupported rule definition of type %T", def)})
	}
}

// Grammar is a named, ordered collection of rules with an inheritance
// chain. A rule may invoke a rule by name in its own grammar (Alias), or
// the same-named rule from an ancestor grammar (Super). Grammars are open
// for rule insertion at any time; once a rule object is embedded in an
// in-flight parse tree it must not be mutated.
type Grammar struct {
	name      string
	ruleNames []string
	rules     map[string]Rule
	ancestors []*Grammar // index 0 = most recently included
	rootName  string
}

// NewGrammar creates an empty, named grammar. name may be empty for an
// anonymous grammar.
func NewGrammar(name string) *Grammar {
	return &Grammar{name: name, rules: make(map[string]Rule)}
}

// Name returns the grammar's own name.
func (g *Grammar) Name() string {
	return g.name
}

// Define installs def, converted via toRule, under name and returns the
// installed rule. Re-defining an existing name replaces it for future
// lookups (existing parses already holding the old rule are unaffected,
// since rules are immutable once built).
func (g *Grammar) Define(name string, def any) Rule {
	rule := toRule(def)
	rule.setName(name)
	rule.propagateGrammar(g)

	if _, exists := g.rules[name]; !exists {
		g.ruleNames = append(g.ruleNames, name)
	}
	g.rules[name] = rule
	return rule
}

// Rule returns the local rule registered under name if present, otherwise
// walks included grammars in inclusion order (most recently included
// first) and returns the first match.
func (g *Grammar) Rule(name string) (Rule, bool) {
	if r, ok := g.rules[name]; ok {
		return r, true
	}
	return g.SuperRule(name)
}

// SuperRule walks only the ancestor chain (skipping this grammar's own
// local rules), most recently included first.
func (g *Grammar) SuperRule(name string) (Rule, bool) {
	for _, ancestor := range g.ancestors {
		if r, ok := ancestor.Rule(name); ok {
			return r, true
		}
	}
	return nil, false
}

// Include prepends other to this grammar's ancestor list, making its rules
// visible to Rule/SuperRule lookups (and thus to Alias/Super resolution)
// after this grammar's own rules.
func (g *Grammar) Include(other *Grammar) {
	if other == nil {
		panic(GrammarError{Message: "Include called with a nil grammar"})
	}
	g.ancestors = append([]*Grammar{other}, g.ancestors...)
}

// Root gets or sets the root rule name. Called with no arguments it
// returns the current root (explicitly set, or the first rule ever
// defined if none was set, or "" for an empty grammar). Called with an
// argument it sets the root and returns it.
func (g *Grammar) Root(name ...string) string {
	if len(name) > 0 {
		g.rootName = name[0]
	}
	if g.rootName != "" {
		return g.rootName
	}
	if len(g.ruleNames) > 0 {
		return g.ruleNames[0]
	}
	return ""
}

// RuleNames returns the grammar's own rule names in insertion order.
func (g *Grammar) RuleNames() []string {
	out := make([]string, len(g.ruleNames))
	copy(out, g.ruleNames)
	return out
}
