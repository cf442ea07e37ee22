package literal

import "github.com/coregx/ggrep/ast"

// Extract inspects root and returns a Seq of literal alternates required
// for root to match, or nil if no such guarantee can be derived cheaply.
//
// Two shapes are recognized, mirroring the two prefilter strategies
// package ggrep/prefilter offers:
//
//   - A node that reduces to a single run of literal characters (possibly
//     wrapped in Concat/Group) yields a one-element Seq: any matching line
//     must contain that exact run.
//   - A top-level Alt whose every branch reduces to a literal run (e.g.
//     "cat|dog|fish") yields a multi-element Seq: any matching line must
//     contain at least one of the runs.
//
// Patterns that don't fit either shape (they contain Dot, CharClass,
// CharSet, Quant, Backref, or a non-literal Alt branch) yield a nil Seq:
// no literal can be guaranteed required, so the caller should run the
// matcher unconditionally.
func Extract(root *ast.Node, cfg Config) *Seq {
	if root == nil {
		return nil
	}

	if root.Kind == ast.KindAlt {
		return extractAlt(root, cfg)
	}

	if run, ok := literalRun(root); ok && len(run) >= cfg.MinLen {
		return &Seq{Alternates: []Literal{{Bytes: run}}}
	}
	return nil
}

func extractAlt(alt *ast.Node, cfg Config) *Seq {
	if len(alt.Children) > cfg.MaxAlternates {
		return nil
	}

	alternates := make([]Literal, 0, len(alt.Children))
	for _, branch := range alt.Children {
		run, ok := literalRun(branch)
		if !ok || len(run) < cfg.MinLen {
			return nil
		}
		alternates = append(alternates, Literal{Bytes: run})
	}
	return &Seq{Alternates: alternates}
}

// literalRun reports whether n matches exactly one fixed byte sequence
// with no other possibility, and returns that sequence. Anchors are
// transparent: "^cat$" still yields the run "cat".
func literalRun(n *ast.Node) ([]byte, bool) {
	var out []byte
	ok := collectLiteralRun(n, &out)
	return out, ok
}

func collectLiteralRun(n *ast.Node, out *[]byte) bool {
	if n == nil {
		return true
	}
	switch n.Kind {
	case ast.KindLiteral:
		*out = append(*out, n.Char)
		return true
	case ast.KindAnchor:
		return true
	case ast.KindGroup:
		return collectLiteralRun(n.Child(), out)
	case ast.KindConcat:
		for _, child := range n.Children {
			if !collectLiteralRun(child, out) {
				return false
			}
		}
		return true
	default:
		// Dot, CharClass, CharSet, Alt, Quant, Backref: no single fixed
		// byte sequence is guaranteed, so this node breaks the run.
		return false
	}
}
