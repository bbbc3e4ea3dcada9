package packrat

import (
	"fmt"
	"regexp"
)

// expressionRule is the Expression terminal: it matches iff re matches at
// the current offset, anchored to position 0 of the remaining slice.
type expressionRule struct {
	ruleBase
	re  *regexp.Regexp
	src string
}

// Regex builds an Expression rule from a regular expression pattern. The
// pattern is compiled at construction time (a grammar-construction-time
// host error, never a mid-parse one): a bad pattern panics with a
// GrammarError naming the pattern, since this is a programmer error rather
// than a parse failure.
func Regex(pattern string) Rule {
	re, err := regexp.Compile(pattern)
	if err != nil {
		panic(GrammarError{Message: fmt.Sprintf("invalid regex %q: %s", pattern, err)})
	}
	return RegexCompiled(re)
}

// RegexCompiled builds an Expression rule from an already-compiled regular
// expression, for callers that want to share compilation or set flags
// regexp.Compile alone cannot express.
func RegexCompiled(re *regexp.Regexp) Rule {
	return &expressionRule{ruleBase: newRuleBase(), re: re, src: re.String()}
}

func (r *expressionRule) match(in *Input, offset int) *Match {
	if offset < 0 || offset > len(in.text) {
		return nil
	}
	loc := r.re.FindStringSubmatchIndex(in.text[offset:])
	if loc == nil || loc[0] != 0 {
		// Reject matches that begin past position 0: some regex engines
		// may find a match later in the remaining slice, which is not a
		// match of this rule at offset.
		return nil
	}

	length := loc[1]
	m := newTerminalMatch(in.text, offset, length)
	if n := len(loc) / 2; n > 1 {
		caps := make([]string, 0, n-1)
		for i := 1; i < n; i++ {
			if loc[2*i] < 0 {
				caps = append(caps, "")
				continue
			}
			caps = append(caps, in.text[offset+loc[2*i]:offset+loc[2*i+1]])
		}
		m = m.withCaptures(caps)
	}
	return m.withName(r.name).withExt(r.ext)
}

func (r *expressionRule) propagateGrammar(g *Grammar) {}

func (r *expressionRule) String() string {
	return "/" + r.src + "/"
}
