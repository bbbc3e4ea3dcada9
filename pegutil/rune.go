package pegutil

import "github.com/parsekit/packrat"

// Single-character classes. Each is an Expression terminal, grounded on
// spec.md §4.1's "matches iff regex r matches at the current offset
// anchored to position 0 of the remaining slice" — a one-rune character
// class is the natural use of that variant.
var (
	OctDigit = packrat.Regex(`[0-7]`)
	DecDigit = packrat.Regex(`[0-9]`)
	HexDigit = packrat.Regex(`[0-9a-fA-F]`)

	ASCIILetter      = packrat.Regex(`[a-zA-Z]`)
	ASCIILetterDigit = packrat.Regex(`[a-zA-Z0-9]`)
	ASCIIWhitespace  = packrat.Regex(`[ \t\n\r\v\f]`)

	// Letter/LetterDigit extend ASCIILetter/ASCIILetterDigit with Unicode
	// word characters, for Identifier below.
	Letter      = packrat.Regex(`[\pL_]`)
	LetterDigit = packrat.Regex(`[\pL\pN_]`)
)

// AnySpaces matches zero or more whitespace runes; Spaces requires at least
// one.
var (
	AnySpaces = packrat.ZeroOrMore(ASCIIWhitespace)
	Spaces    = packrat.OneOrMore(ASCIIWhitespace)
	Newline   = packrat.Choice(packrat.Literal("\r\n"), packrat.Regex(`[\r\n]`))
)
