package packrat

// This file documents the narrow interfaces an embedding application
// implements to provide functionality this module intentionally leaves
// out of scope: parsing PEG notation into a *Grammar, loading grammar
// source from disk, and evaluating a Match into a semantic value. The
// core never imports a concrete implementation of any of these — see
// spec.md §1 and SPEC_FULL.md §1.

// GrammarSource is implemented by an external PEG-notation parser that
// turns grammar source text into a *Grammar. Such a parser is itself
// ordinarily written using this package's Rule/Grammar API (it has to
// bootstrap), but no concrete implementation ships here.
type GrammarSource interface {
	ParseGrammar(name, source string) (*Grammar, error)
}

// GrammarLoader is implemented by an external collaborator that reads
// grammar source from disk (or any byte-oriented store) and hands it to a
// GrammarSource.
type GrammarLoader interface {
	Load(path string) (source string, err error)
}

// Evaluator is implemented by an embedding application that interprets a
// Match's Ext tag into a semantic value — the "semantic action"
// evaluation strategy spec.md deliberately leaves unspecified. A typical
// Evaluator keyed by Ext looks up a host-language callback and invokes it
// with the match's children already evaluated.
type Evaluator interface {
	Eval(m *Match) (any, error)
}
