// Package packrat implements Parsing Expression Grammars matched by the
// packrat algorithm: a memoizing recursive-descent recognizer that, given a
// grammar of terminal and nonterminal rules and an input string, produces
// either a rooted tree of match nodes or a structured parse failure.
//
// The rule algebra is a closed set of ten variants: FixedWidth and
// Expression terminals, Sequence and Choice composition, bounded Repeat,
// AndPredicate/NotPredicate syntactic lookahead, Label renaming, and
// Alias/Super name references that enable recursion and grammar
// inheritance. Every rule goes through Input's memoized dispatch rather
// than calling its sub-rules directly, which is what makes parsing linear
// in the input length for any fixed grammar.
//
// Grammars are named collections of rules with an ordered inheritance
// chain: a rule may invoke a rule by name in its own grammar (Alias), or
// the same-named rule from an ancestor grammar (Super), with resolution
// deferred to first use so forward references and mutually recursive
// rules are permitted.
//
// Textual PEG-notation parsing, grammar file loading, XML serialization of
// match trees, and any command-line or editor surface are out of scope;
// see contract.go for the narrow interfaces an embedding application
// implements to provide them.
package packrat

import "sync/atomic"

// Ext is an opaque extension tag an embedding application may attach to a
// rule. It is propagated onto every match the rule produces; the engine
// never inspects it. A typical embedding uses it as an index into a table
// of host-language callbacks that evaluate a match into a semantic value.
type Ext = any

var nextRuleID int64

func allocRuleID() int {
	return int(atomic.AddInt64(&nextRuleID, 1))
}

// Rule is the closed set of PEG rule variants. Every rule carries a stable
// identity distinct from its name (an Alias and its target share a name but
// must never share a cache entry), an optional name (set only once the
// rule is installed into a Grammar under that name), and an optional Ext
// tag.
type Rule interface {
	// match attempts the rule against in starting at offset, going through
	// no caching of its own — callers that want memoization must route
	// through Input.Match instead of calling this directly.
	match(in *Input, offset int) *Match

	// id returns the rule's stable cache identity.
	id() int

	// Name returns the name this rule was installed under, or "" if the
	// rule was never installed into a grammar (an anonymous sub-rule).
	Name() string

	// Ext returns the rule's extension tag, or nil if none was attached.
	Ext() Ext

	// setExt attaches an extension tag, used by the package-level Tag
	// helper below.
	setExt(tag Ext)

	// String renders the rule back to canonical PEG notation.
	String() string

	// propagateGrammar forwards a grammar back-reference recursively to
	// any Alias/Super rules nested in this rule's tree, so they can
	// resolve names against the grammar they were installed into even
	// when buried inside freshly built Sequence/Choice/Repeat/Label
	// wrappers.
	propagateGrammar(g *Grammar)

	// setName installs the rule's name. Called once, by Grammar.Define.
	setName(name string)
}

// ruleBase is embedded by every rule variant and implements the identity,
// name and Ext bookkeeping shared by all of them.
type ruleBase struct {
	ruleID int
	name   string
	ext    Ext
}

func newRuleBase() ruleBase {
	return ruleBase{ruleID: allocRuleID()}
}

func (b *ruleBase) id() int      { return b.ruleID }
func (b *ruleBase) Name() string { return b.name }
func (b *ruleBase) Ext() Ext     { return b.ext }

func (b *ruleBase) setName(n string) {
	if b.name == "" {
		b.name = n
	}
}

func (b *ruleBase) setExt(tag Ext) { b.ext = tag }

// Tag attaches an extension tag to a rule and returns it, so construction
// can be chained: Tag(Literal("x"), myTag). The engine never interprets
// tag; it only propagates it onto matches the rule produces.
func Tag(r Rule, tag Ext) Rule {
	r.setExt(tag)
	return r
}

// withNamedResult renames a successful match to name, if name is non-empty.
// Shared by Label and by Alias/Super when they themselves are named.
func withNamedResult(m *Match, name string) *Match {
	if m == nil || name == "" {
		return m
	}
	renamed := *m
	renamed.name = name
	return &renamed
}
