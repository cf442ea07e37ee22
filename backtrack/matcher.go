// Package backtrack implements the matcher half of the engine: executing
// an ast.Node tree against a candidate line while tracking capture groups
// and resolving backreferences.
//
// Backreferences make the pattern language non-regular, which rules out
// the teacher's Thompson-NFA/lazy-DFA approach outright (see this repo's
// DESIGN.md). The matcher here is instead structured the way
// coregx-coregex/nfa/backtrack.go structures its BoundedBacktracker: a
// small struct separating engine-immutable fields from per-search scratch,
// with a single recursive dispatch over node kinds — generalized from
// dispatch-over-NFA-state-kind to dispatch-over-AST-node-kind, and from a
// single bool return to a continuation-passing walk so that greedy
// ordering and capture isolation fall out of the recursion structure
// itself rather than an explicit possibility list (see the backtrack
// entry in DESIGN.md on the possibility-list vs. lazy-iterator choice).
package backtrack

import "github.com/coregx/ggrep/ast"

// cont is the "rest of the match" a node's own match attempt is evaluated
// against: given the position reached and the captures accumulated so
// far, it reports whether the overall match can still succeed. Yielding
// the longest candidate (pos, caps) pair to cont first — and only trying
// shorter ones if cont rejects all of them — is what gives greedy
// quantifiers their leftmost-longest behavior without ever materializing
// the full list of candidates spec.md's Design Notes call out as
// memory-heavy.
type cont func(pos int, caps []*string) bool

// Matcher executes a compiled pattern against input lines.
//
// A Matcher is built once per pattern (ast.Node tree is immutable after
// parsing, see package ast) and may be reused, concurrently, across many
// calls to Find/FindSubmatch — each call allocates its own captures
// buffer, so there is no shared mutable state between calls.
type Matcher struct {
	root       *ast.Node
	groupCount int
}

// New returns a Matcher for root, a tree with groupCount capture groups
// (as returned by parser.Parse).
func New(root *ast.Node, groupCount int) *Matcher {
	return &Matcher{root: root, groupCount: groupCount}
}

// Find reports whether some starting offset in line lets root consume a
// prefix of line[s:], honoring ^ / $ anchors at the positions they occur.
//
// Starting offsets are tried in ascending order and the first successful
// offset wins (spec.md §5's single-threaded ordering guarantee); within
// one offset, alternatives are tried in the deterministic order documented
// on each ast.Kind in package ast.
func (m *Matcher) Find(line string) bool {
	_, ok := m.search(line)
	return ok
}

// FindSubmatch reports whether line matches and, if so, returns the
// captures recorded by the winning match attempt. caps[0] is always ""
// (slot 0 is reserved, per spec.md §3, and never written); caps[i] for
// i in 1..=groupCount is the substring captured by group i, or "" if
// that group did not participate in the winning match.
func (m *Matcher) FindSubmatch(line string) (caps []string, ok bool) {
	raw, ok := m.search(line)
	if !ok {
		return nil, false
	}
	out := make([]string, len(raw))
	for i, s := range raw {
		if s != nil {
			out[i] = *s
		}
	}
	return out, true
}

// search tries each starting offset in order and returns the captures of
// the first one that succeeds.
func (m *Matcher) search(line string) ([]*string, bool) {
	last := len(line)
	if anchoredAtStart(m.root) {
		// ^ at the very front of the pattern can only ever succeed at
		// offset 0; every later offset is guaranteed to fail the same way
		// offset 0 would, so there is nothing to gain by trying them.
		last = 0
	}

	for s := 0; s <= last; s++ {
		caps := make([]*string, m.groupCount+1)
		var winner []*string
		ok := m.matchNode(m.root, line, s, caps, func(_ int, c []*string) bool {
			winner = c
			return true
		})
		if ok {
			return winner, true
		}
	}
	return nil, false
}

// anchoredAtStart reports whether n's leftmost sub-node (descending
// through Concat's first child and Group's child) is a start anchor.
// Alternation and quantifiers are not descended into: their branches may
// differ in whether they are anchored, so no single offset bound is safe.
func anchoredAtStart(n *ast.Node) bool {
	for n != nil {
		switch n.Kind {
		case ast.KindAnchor:
			return n.AnchorKind == ast.AnchorStart
		case ast.KindGroup:
			n = n.Child()
		case ast.KindConcat:
			if len(n.Children) == 0 {
				return false
			}
			n = n.Children[0]
		default:
			return false
		}
	}
	return false
}

func cloneCaps(caps []*string) []*string {
	out := make([]*string, len(caps))
	copy(out, caps)
	return out
}

// matchNode dispatches on n.Kind, the AST analogue of BoundedBacktracker's
// switch over StateKind.
func (m *Matcher) matchNode(n *ast.Node, line string, pos int, caps []*string, k cont) bool {
	if n == nil {
		return k(pos, caps)
	}

	switch n.Kind {
	case ast.KindLiteral:
		if pos < len(line) && line[pos] == n.Char {
			return k(pos+1, caps)
		}
		return false

	case ast.KindDot:
		if pos < len(line) {
			return k(pos+1, caps)
		}
		return false

	case ast.KindCharClass:
		if pos < len(line) && classMatches(n.Class, line[pos]) {
			return k(pos+1, caps)
		}
		return false

	case ast.KindCharSet:
		if pos < len(line) {
			_, in := n.Set[line[pos]]
			if in != n.Negated {
				return k(pos+1, caps)
			}
		}
		return false

	case ast.KindAnchor:
		if n.AnchorKind == ast.AnchorStart {
			if pos == 0 {
				return k(pos, caps)
			}
			return false
		}
		if pos == len(line) {
			return k(pos, caps)
		}
		return false

	case ast.KindBackref:
		// n.Index can exceed len(caps) if the pattern refers to a group
		// number higher than any it actually opened (e.g. "\1" with no
		// groups at all); the matcher is total, so that is just a
		// never-participated capture rather than a panic.
		if n.Index >= len(caps) {
			return false
		}
		captured := caps[n.Index]
		if captured == nil {
			return false
		}
		t := *captured
		if pos+len(t) <= len(line) && line[pos:pos+len(t)] == t {
			return k(pos+len(t), caps)
		}
		return false

	case ast.KindGroup:
		child := n.Child()
		index := n.Index
		return m.matchNode(child, line, pos, caps, func(end int, caps2 []*string) bool {
			caps3 := cloneCaps(caps2)
			captured := line[pos:end]
			caps3[index] = &captured
			return k(end, caps3)
		})

	case ast.KindAlt:
		for _, branch := range n.Children {
			if m.matchNode(branch, line, pos, cloneCaps(caps), k) {
				return true
			}
		}
		return false

	case ast.KindConcat:
		return m.matchSeq(n.Children, 0, line, pos, caps, k)

	case ast.KindQuant:
		return m.matchQuant(n, line, pos, caps, k)
	}

	return false
}

// matchSeq chains Concat's children: child i's continuation is "match
// children[i+1:] then k", so the whole sequence is explored depth-first
// left to right with no separate choice point of its own — any
// backtracking within a Concat comes entirely from the Alt/Quant nodes
// among its children.
func (m *Matcher) matchSeq(children []*ast.Node, i int, line string, pos int, caps []*string, k cont) bool {
	if i >= len(children) {
		return k(pos, caps)
	}
	return m.matchNode(children[i], line, pos, caps, func(pos2 int, caps2 []*string) bool {
		return m.matchSeq(children, i+1, line, pos2, caps2, k)
	})
}

func (m *Matcher) matchQuant(n *ast.Node, line string, pos int, caps []*string, k cont) bool {
	child := n.Child()

	switch n.QuantKind {
	case ast.QuantOpt:
		one := func() bool {
			return m.matchNode(child, line, pos, cloneCaps(caps), k)
		}
		zero := func() bool {
			return k(pos, caps)
		}
		if n.Greedy {
			return one() || zero()
		}
		return zero() || one()

	case ast.QuantStar:
		return m.matchStar(child, line, pos, caps, k, n.Greedy)

	case ast.QuantPlus:
		return m.matchNode(child, line, pos, cloneCaps(caps), func(pos2 int, caps2 []*string) bool {
			return m.matchStar(child, line, pos2, caps2, k, n.Greedy)
		})
	}
	return false
}

// matchStar matches child zero or more times starting at pos, then hands
// off to k. Greedy order explores "one more repetition, then recurse for
// even more" before falling back to "stop repeating here"; non-greedy
// reverses that. Either way, a repetition that consumed no input (pos2 ==
// pos) is not allowed to recurse again — without this guard, a pattern
// like "()*" or "(a*)*" would recurse forever matching the empty string.
func (m *Matcher) matchStar(child *ast.Node, line string, pos int, caps []*string, k cont, greedy bool) bool {
	more := func() bool {
		return m.matchNode(child, line, pos, cloneCaps(caps), func(pos2 int, caps2 []*string) bool {
			if pos2 == pos {
				return k(pos2, caps2)
			}
			return m.matchStar(child, line, pos2, caps2, k, greedy)
		})
	}
	stop := func() bool {
		return k(pos, caps)
	}
	if greedy {
		return more() || stop()
	}
	return stop() || more()
}

func classMatches(class ast.ClassKind, c byte) bool {
	switch class {
	case ast.ClassDigit:
		return c >= '0' && c <= '9'
	case ast.ClassWord:
		return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_'
	}
	return false
}
