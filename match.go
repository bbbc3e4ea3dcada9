package packrat

// Match is a node in the output parse tree: a text span, ordered children,
// optional regex captures, an optional name, and an optional extension tag
// inherited from the rule that produced it.
//
// The text span is never copied out of the source string: Text slices the
// original input, so even a deeply nested nonterminal match is effectively
// lazy — Go string slicing shares the backing array and costs O(1).
type Match struct {
	src    string
	start  int
	length int

	children []*Match
	captures []string
	name     string
	ext      Ext
}

func newTerminalMatch(src string, start, length int) *Match {
	return &Match{src: src, start: start, length: length}
}

func newNonterminalMatch(src string, start int, children []*Match) *Match {
	length := 0
	for _, c := range children {
		length += c.length
	}
	return &Match{src: src, start: start, length: length, children: children}
}

func newEmptyMatch(src string, start int) *Match {
	return &Match{src: src, start: start, length: 0}
}

// Text returns the matched substring.
func (m *Match) Text() string {
	return m.src[m.start : m.start+m.length]
}

// Length returns the code-unit (byte) length of the matched text.
func (m *Match) Length() int {
	return m.length
}

// Offset returns the byte offset into the source text where this match
// begins.
func (m *Match) Offset() int {
	return m.start
}

// Children returns the ordered list of sub-matches. Sequence and Repeat
// children appear in source order; Choice always has exactly one child;
// terminals and predicates have none.
func (m *Match) Children() []*Match {
	return m.children
}

// Captures returns the ordered list of regex captures. It is empty unless
// this match originated from an Expression rule whose pattern defined
// capture groups.
func (m *Match) Captures() []string {
	return m.captures
}

// Name returns the match's name, set by the originating rule (if it was
// installed under a name) or overridden by an enclosing Label or a named
// Alias/Super.
func (m *Match) Name() string {
	return m.name
}

// Ext returns the extension tag inherited from the originating rule.
func (m *Match) Ext() Ext {
	return m.ext
}

// IsTerminal reports whether the match has no children.
func (m *Match) IsTerminal() bool {
	return len(m.children) == 0
}

// Equals reports whether the match's text equals s.
func (m *Match) Equals(s string) bool {
	return m.Text() == s
}

// Find returns all descendant matches with the given name. When deep is
// false, only immediate children are searched; when true, the full subtree
// is searched in pre-order. Calling Find twice returns equal-valued (if not
// identical) slices, since it never mutates the tree.
func (m *Match) Find(name string, deep bool) []*Match {
	var found []*Match
	if !deep {
		for _, c := range m.children {
			if c.name == name {
				found = append(found, c)
			}
		}
		return found
	}
	var walk func(*Match)
	walk = func(node *Match) {
		for _, c := range node.children {
			if c.name == name {
				found = append(found, c)
			}
			walk(c)
		}
	}
	walk(m)
	return found
}

// First returns the first immediate child with the given name, or the
// first child overall if no name is given. It returns nil if there is no
// such child.
func (m *Match) First(name ...string) *Match {
	if len(name) == 0 || name[0] == "" {
		if len(m.children) == 0 {
			return nil
		}
		return m.children[0]
	}
	for _, c := range m.children {
		if c.name == name[0] {
			return c
		}
	}
	return nil
}

func (m *Match) withName(name string) *Match {
	return withNamedResult(m, name)
}

func (m *Match) withExt(ext Ext) *Match {
	if m == nil || ext == nil {
		return m
	}
	tagged := *m
	tagged.ext = ext
	return &tagged
}

func (m *Match) withCaptures(caps []string) *Match {
	if m == nil || len(caps) == 0 {
		return m
	}
	withCaps := *m
	withCaps.captures = caps
	return &withCaps
}
