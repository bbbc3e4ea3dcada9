package packrat

import (
	"fmt"
)

// ParseOptions configures a single call to Grammar.ParseWithOptions,
// mirroring the Config/ConfiguredMatch pairing used throughout this
// lineage of PEG libraries: a zero-value-friendly options struct plus a
// constructor for its defaults.
type ParseOptions struct {
	// Offset is the starting byte offset into the input. Defaults to 0.
	Offset int

	// ConsumeAll requires the root match's length to equal
	// len(input)-Offset; otherwise a ParseError is raised even if the
	// root rule matched a prefix. Defaults to true.
	ConsumeAll bool

	// Root overrides the grammar's configured root rule name for this
	// parse only. Empty means "use Grammar.Root()".
	Root string
}

// DefaultParseOptions returns the default options: start at offset 0,
// require full consumption, use the grammar's configured root.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{Offset: 0, ConsumeAll: true}
}

// Parse runs ParseWithOptions using DefaultParseOptions.
func (g *Grammar) Parse(input string) (*Match, error) {
	return g.ParseWithOptions(input, DefaultParseOptions())
}

// ParseWithOptions constructs an Input over input, invokes the grammar's
// root rule at opts.Offset, and enforces opts.ConsumeAll. It returns a
// *ParseError (never panics) for an ordinary parse failure. It panics with
// a GrammarError if the grammar has no rules, or the effective root name
// does not resolve to a rule — those are programmer errors, not parse
// failures.
func (g *Grammar) ParseWithOptions(input string, opts ParseOptions) (*Match, error) {
	rootName := opts.Root
	if rootName == "" {
		rootName = g.Root()
	}
	if rootName == "" {
		panic(GrammarError{Message: fmt.Sprintf("grammar %q has no rules to parse with", g.name)})
	}
	root, ok := g.Rule(rootName)
	if !ok {
		panic(GrammarError{Message: fmt.Sprintf("grammar %q: root rule %q does not resolve", g.name, rootName)})
	}
	if opts.Offset < 0 || opts.Offset > len(input) {
		panic(GrammarError{Message: fmt.Sprintf("grammar %q: parse offset %d is out of range for input of length %d", g.name, opts.Offset, len(input))})
	}

	in := NewInput(input)
	match := in.Match(root, opts.Offset)
	if match == nil {
		return nil, newParseError(in)
	}
	if opts.ConsumeAll && match.Length() != len(input)-opts.Offset {
		return nil, newParseError(in)
	}
	return match, nil
}

// ParseError reports that a grammar's root rule did not match the input,
// or (when full consumption was required) did not cover it. It carries
// the Input so callers can inspect the furthest offset reached, the
// consumed prefix, and compute a line/column position.
type ParseError struct {
	input *Input
}

func newParseError(in *Input) *ParseError {
	return &ParseError{input: in}
}

// Input returns the Input the failed parse ran against.
func (e *ParseError) Input() *Input {
	return e.input
}

// MaxOffset returns the furthest offset any rule attempt reached.
func (e *ParseError) MaxOffset() int {
	return e.input.MaxOffset()
}

// ConsumedPrefix returns the input text up to the furthest offset
// reached.
func (e *ParseError) ConsumedPrefix() string {
	max := e.input.MaxOffset()
	if max > len(e.input.text) {
		max = len(e.input.text)
	}
	return e.input.text[:max]
}

// Position returns the line/column position of the furthest offset
// reached.
func (e *ParseError) Position() Position {
	return e.input.Position(e.input.MaxOffset())
}

// Error implements the error interface: `packrat: failed to parse input at
// offset N, just after "<last <=40 chars of consumed prefix>"` (the prefix
// is Go-quoted).
func (e *ParseError) Error() string {
	prefix := e.ConsumedPrefix()
	if len(prefix) > 40 {
		prefix = prefix[len(prefix)-40:]
	}
	return fmt.Sprintf("packrat: failed to parse input at offset %d, just after %q",
		e.input.MaxOffset(), prefix)
}
