// Package pegutil provides a small library of ready-made packrat rules for
// common lexical shapes: digit/letter classes, numeric literals, quoted
// strings, and a handful of network/URI address grammars. It exists to show
// the rule algebra composed into realistic grammars, not as a complete
// lexer toolkit.
//
// None of these rules belong to any *packrat.Grammar — they are built from
// FixedWidth, Expression, Sequence, Choice, Repeat and Label only, so they never
// need Alias/Super resolution and can be matched directly against an ad hoc
// *packrat.Input via FullMatch/Prefix.
package pegutil

import "github.com/parsekit/packrat"

// FullMatch reports whether rule matches all of text, starting at offset 0.
func FullMatch(rule packrat.Rule, text string) bool {
	in := packrat.NewInput(text)
	m := in.Match(rule, 0)
	return m != nil && m.Length() == len(text)
}

// Prefix returns the prefix of text that rule matches at offset 0, and
// whether rule matched at all. This is the rule's single PEG match (ordered
// choice keeps the first alternative that succeeds), not necessarily the
// longest prefix any alternative could match.
func Prefix(rule packrat.Rule, text string) (string, bool) {
	in := packrat.NewInput(text)
	m := in.Match(rule, 0)
	if m == nil {
		return "", false
	}
	return m.Text(), true
}
