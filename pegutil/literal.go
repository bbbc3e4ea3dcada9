package pegutil

import "github.com/parsekit/packrat"

// DecInteger, HexInteger and OctInteger are bare digit runs with no sign
// and no base prefix.
var (
	DecInteger = packrat.OneOrMore(DecDigit)
	HexInteger = packrat.OneOrMore(HexDigit)
	OctInteger = packrat.OneOrMore(OctDigit)
)

// Integer matches a "0x"-prefixed hexadecimal, "0"-prefixed octal, or
// decimal integer literal, in that preference order (Choice tries
// alternatives left to right per spec.md §4.1).
var Integer = packrat.Choice(
	packrat.Sequence(packrat.Regex(`0[xX]`), HexInteger),
	packrat.Sequence(packrat.Literal("0"), OctInteger),
	DecInteger,
)

// Decimal matches a decimal-point number such as "1", "1.5", ".5" or "1.".
var Decimal = packrat.Choice(
	packrat.Sequence(packrat.ZeroOrMore(DecDigit), packrat.Literal("."), packrat.OneOrMore(DecDigit)),
	packrat.Sequence(packrat.OneOrMore(DecDigit), packrat.Literal("."), packrat.ZeroOrMore(DecDigit)),
	DecInteger,
)

// Float extends Decimal with an optional signed exponent.
var Float = packrat.Sequence(
	Decimal,
	packrat.Optional(packrat.Sequence(
		packrat.Regex(`[eE]`),
		packrat.Optional(packrat.Regex(`[+-]`)),
		DecInteger,
	)),
)

// Number matches Integer or Float. A "0x"-prefixed hexadecimal integer is
// tried first (Float would otherwise stop at its leading "0"), then Float
// before Integer so "1.5" is not cut short at "1".
var Number = packrat.Choice(packrat.Sequence(packrat.Regex(`0[xX]`), HexInteger), Float, Integer)

// Identifier matches a letter/underscore followed by letters, digits or
// underscores — the usual C-family identifier shape, using Unicode letter
// classes so non-ASCII identifiers are accepted.
var Identifier = packrat.Sequence(Letter, packrat.ZeroOrMore(LetterDigit))

// stringEscape matches one backslash escape sequence recognized inside a
// String literal: a short rune escape, a byte escape, an octal triple, a
// short 4/8-digit Unicode escape, or a single-character escape.
var stringEscape = packrat.Choice(
	packrat.Sequence(packrat.Literal(`\U`), packrat.Repeat(8, 8, HexDigit)),
	packrat.Sequence(packrat.Literal(`\u`), packrat.Repeat(4, 4, HexDigit)),
	packrat.Sequence(packrat.Literal(`\x`), packrat.Repeat(2, 2, HexDigit)),
	packrat.Sequence(packrat.Literal(`\`), packrat.Repeat(3, 3, OctDigit)),
	packrat.Sequence(packrat.Literal(`\`), packrat.Regex(`[abfnrtv\\'"]`)),
)

// String matches a double-quoted string literal with Go-style escapes.
var String = packrat.Sequence(
	packrat.Literal(`"`),
	packrat.ZeroOrMore(packrat.Choice(stringEscape, packrat.Regex(`[^"\\\n\r]`))),
	packrat.Literal(`"`),
)
