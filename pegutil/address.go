package pegutil

import "github.com/parsekit/packrat"

// joinExact builds a Sequence matching exactly n copies of item separated
// by sep, the "N*M" repeat rendering's degenerate case (n==m) wired
// through Sequence instead of Repeat because each copy must be separated,
// not merely counted.
func joinExact(n int, item, sep packrat.Rule) packrat.Rule {
	defs := make([]any, 0, 2*n-1)
	defs = append(defs, item)
	for i := 1; i < n; i++ {
		defs = append(defs, sep, item)
	}
	return packrat.Sequence(defs...)
}

// octet matches a decimal byte 0-255 with no redundant leading zero
// handling delegated to the regex itself.
var octet = packrat.Regex(`25[0-5]|2[0-4][0-9]|1[0-9]{2}|[1-9]?[0-9]`)

// IPv4 matches a dot-decimal IPv4 address.
var IPv4 = joinExact(4, octet, packrat.Literal("."))

// CIDRv4 matches an IPv4 address with a /0-32 subnet mask.
var CIDRv4 = packrat.Sequence(
	packrat.Label("addr", IPv4),
	packrat.Literal("/"),
	packrat.Label("bits", packrat.Regex(`3[0-2]|[12][0-9]|[0-9]`)),
)

// MAC matches a 48-bit hardware address in colon, hyphen or dot-grouped
// notation.
var MAC = packrat.Choice(
	joinExact(6, packrat.Repeat(2, 2, HexDigit), packrat.Literal(":")),
	joinExact(6, packrat.Repeat(2, 2, HexDigit), packrat.Literal("-")),
	joinExact(3, packrat.Repeat(4, 4, HexDigit), packrat.Literal(".")),
)

// domainLabel matches one DNS label: alphanumeric, optionally hyphenated,
// bounded at 63 characters by the regex itself.
var domainLabel = packrat.Regex(`[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?`)

// Domain matches a dot-separated DNS name with an optional trailing dot.
var Domain = packrat.Sequence(
	domainLabel,
	packrat.ZeroOrMore(packrat.Sequence(packrat.Literal("."), domainLabel)),
	packrat.Optional(packrat.Literal(".")),
)

// Host matches an IPv4 address, a bracketed IPv6 literal, or a DNS domain
// name — the URI host alternatives from RFC 3986 §3.2.2, simplified to the
// two address families this package implements.
var Host = packrat.Choice(
	packrat.Sequence(packrat.Literal("["), packrat.OneOrMore(packrat.Regex(`[0-9a-fA-F:]`)), packrat.Literal("]")),
	IPv4,
	Domain,
)

var (
	uriSchemeRune = packrat.Regex(`[a-zA-Z0-9+.-]`)
	uriPathRune   = packrat.Regex(`[^ \t\r\n?#]`)
	uriQueryRune  = packrat.Regex(`[^ \t\r\n#]`)
)

// URI matches an absolute URI: scheme ":" ["//" authority] path ["?"
// query] ["#" fragment], labeling each part so callers can pull them out
// with Match.First. The authority is taken as the raw run of characters up
// to the next "/", "?" or "#": its userinfo, host and port are neither
// separated nor checked against Host. It accepts the common case, not every
// corner of the RFC.
var URI = packrat.Sequence(
	packrat.Label("scheme", packrat.Sequence(ASCIILetter, packrat.ZeroOrMore(uriSchemeRune))),
	packrat.Literal(":"),
	packrat.Optional(packrat.Sequence(
		packrat.Literal("//"),
		packrat.Label("authority", packrat.ZeroOrMore(packrat.Regex(`[^/?#]`))),
	)),
	packrat.Label("path", packrat.ZeroOrMore(uriPathRune)),
	packrat.Optional(packrat.Sequence(packrat.Literal("?"), packrat.Label("query", packrat.ZeroOrMore(uriQueryRune)))),
	packrat.Optional(packrat.Sequence(packrat.Literal("#"), packrat.Label("fragment", packrat.ZeroOrMore(uriQueryRune)))),
)

// emailLocal matches the unquoted local part of an email address; the
// quoted-string form from RFC 5322 is out of scope here.
var emailLocal = packrat.Sequence(
	packrat.Regex(`[a-zA-Z0-9!#$%&'*+/=?^_` + "`" + `{|}~-]+`),
	packrat.ZeroOrMore(packrat.Sequence(packrat.Literal("."), packrat.Regex(`[a-zA-Z0-9!#$%&'*+/=?^_`+"`"+`{|}~-]+`))),
)

// EMail matches local@domain.
var EMail = packrat.Sequence(
	packrat.Label("local", emailLocal),
	packrat.Literal("@"),
	packrat.Label("domain", Domain),
)
