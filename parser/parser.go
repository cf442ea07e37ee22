// Package parser implements a recursive-descent compiler for a subset of
// POSIX-ERE syntax, turning a pattern string into an ast.Node tree plus a
// capture-group count.
//
// Grammar (one routine per non-terminal, one character of lookahead):
//
//	alternation   := concatenation ( '|' alternation )?
//	concatenation := atom+                        -- until '|' ')' or EOF
//	atom          := primary quantifier?
//	primary       := group | charset | escape | '.' | anchor | literal
//	group         := '(' alternation ')'
//	charset       := '[' '^'? char+ ']'
//	escape        := '\' ( digit | 'd' | 'w' | any )
//	quantifier    := '+' | '*' | '?'
//	anchor        := '^' | '$'
//	literal       := any char not in the metacharacter set
//
// Grounded on the recursive-descent shape of the codecrafters grep-go
// reference parser, restructured onto package ast's closed node set and
// this package's wrapped ParseError.
package parser

import "github.com/coregx/ggrep/ast"

func isQuantifier(c byte) bool {
	return c == '+' || c == '*' || c == '?'
}

// parser holds the mutable state of one Parse call: the pattern being
// consumed, the current read position, and the next capture-group index
// to assign.
type parser struct {
	pattern string
	pos     int
	nextGrp int
}

// Parse compiles pattern into an AST and reports the number of capture
// groups it contains (excluding the reserved whole-match slot 0).
//
// An empty pattern yields a nil root and groupCount 0: matching it
// succeeds with a zero-width match at any position, per spec.
func Parse(pattern string) (root *ast.Node, groupCount int, err error) {
	if len(pattern) == 0 {
		return nil, 0, nil
	}

	p := &parser{pattern: pattern, nextGrp: 1}

	root, err = p.parseAlternation()
	if err != nil {
		return nil, 0, err
	}
	if !p.isEOF() {
		return nil, 0, &ParseError{Pattern: pattern, Pos: p.pos, Err: ErrUnexpectedInput}
	}
	return root, p.nextGrp - 1, nil
}

func (p *parser) isEOF() bool {
	return p.pos >= len(p.pattern)
}

func (p *parser) peek() byte {
	if p.isEOF() {
		return 0
	}
	return p.pattern[p.pos]
}

func (p *parser) advance() byte {
	c := p.peek()
	p.pos++
	return c
}

// parseAlternation := concatenation ( '|' alternation )?
func (p *parser) parseAlternation() (*ast.Node, error) {
	var branches []*ast.Node

	for {
		branch, err := p.parseConcatenation()
		if err != nil {
			return nil, err
		}
		branches = append(branches, branch)

		if p.peek() != '|' {
			break
		}
		p.advance() // consume '|'
	}

	if len(branches) == 1 {
		return branches[0], nil
	}
	return ast.NewAlt(branches), nil
}

// parseConcatenation := atom+ until '|', ')', or EOF.
func (p *parser) parseConcatenation() (*ast.Node, error) {
	var nodes []*ast.Node

	for !p.isEOF() && p.peek() != '|' && p.peek() != ')' {
		node, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}

	if len(nodes) == 0 {
		// Empty branch, e.g. "a|" or "()": represent it as a zero-child
		// Concat, which the matcher treats as a zero-width match (a
		// sequence with no children hands pos straight to its continuation).
		return emptyNode(), nil
	}
	if len(nodes) == 1 {
		return nodes[0], nil
	}
	return ast.NewConcat(nodes), nil
}

// emptyNode returns the sentinel AST for a zero-width, always-succeeding
// sub-pattern (an empty alternation branch, or the body of "()").
func emptyNode() *ast.Node {
	return &ast.Node{Kind: ast.KindConcat, Children: nil}
}

// parseAtom := primary quantifier?
func (p *parser) parseAtom() (*ast.Node, error) {
	primary, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	if p.isEOF() || !isQuantifier(p.peek()) {
		return primary, nil
	}

	q := p.advance()
	var kind ast.QuantKind
	switch q {
	case '+':
		kind = ast.QuantPlus
	case '*':
		kind = ast.QuantStar
	case '?':
		kind = ast.QuantOpt
	}
	return ast.NewQuant(primary, kind, true), nil
}

// parsePrimary := group | charset | escape | '.' | anchor | literal
func (p *parser) parsePrimary() (*ast.Node, error) {
	if p.isEOF() {
		return nil, &ParseError{Pattern: p.pattern, Pos: p.pos, Err: ErrUnexpectedInput}
	}

	// A bare quantifier with nothing preceding it is the only case where
	// parseAtom's start position coincides with a meta char we must reject
	// before consuming it as a literal.
	if isQuantifier(p.peek()) {
		return nil, &ParseError{Pattern: p.pattern, Pos: p.pos, Err: ErrDanglingQuantifier}
	}

	c := p.advance()
	switch c {
	case '(':
		return p.parseGroup()
	case '[':
		return p.parseCharSet()
	case '\\':
		return p.parseEscape()
	case '.':
		return ast.NewDot(), nil
	case '^':
		return ast.NewAnchor(ast.AnchorStart), nil
	case '$':
		return ast.NewAnchor(ast.AnchorEnd), nil
	default:
		return ast.NewLiteral(c), nil
	}
}

// parseGroup := '(' alternation ')'. The group's index is assigned the
// instant '(' is consumed, before descending into the body, so indices
// reflect opening order even across nested groups.
func (p *parser) parseGroup() (*ast.Node, error) {
	openPos := p.pos - 1
	index := p.nextGrp
	p.nextGrp++

	body, err := p.parseAlternation()
	if err != nil {
		return nil, err
	}

	if p.isEOF() || p.peek() != ')' {
		return nil, &ParseError{Pattern: p.pattern, Pos: openPos, Err: ErrUnterminatedGroup}
	}
	p.advance() // consume ')'

	return ast.NewGroup(body, index), nil
}

// parseCharSet := '[' '^'? char+ ']'
//
// The grammar calls for at least one char before ']', but an empty "[]" or
// "[^]" is accepted too rather than rejected: it falls out of the loop
// below doing zero iterations, yielding a CharSet that matches nothing
// ("[]") or any character ("[^]"). Harmless, so it isn't special-cased.
func (p *parser) parseCharSet() (*ast.Node, error) {
	openPos := p.pos - 1

	negated := false
	if p.peek() == '^' {
		p.advance()
		negated = true
	}

	set := make(map[byte]struct{})
	for !p.isEOF() && p.peek() != ']' {
		set[p.advance()] = struct{}{}
	}

	if p.isEOF() {
		return nil, &ParseError{Pattern: p.pattern, Pos: openPos, Err: ErrUnterminatedClass}
	}
	p.advance() // consume ']'

	return ast.NewCharSet(set, negated), nil
}

// parseEscape := '\' ( digit | 'd' | 'w' | any )
//
// \d -> digit class, \w -> word class, \<1-9> -> backreference, any other
// \x -> literal x. A trailing lone '\' is an error.
func (p *parser) parseEscape() (*ast.Node, error) {
	escPos := p.pos - 1
	if p.isEOF() {
		return nil, &ParseError{Pattern: p.pattern, Pos: escPos, Err: ErrTrailingEscape}
	}

	c := p.advance()
	switch {
	case c == 'd':
		return ast.NewCharClass(ast.ClassDigit), nil
	case c == 'w':
		return ast.NewCharClass(ast.ClassWord), nil
	case c >= '1' && c <= '9':
		return ast.NewBackref(int(c - '0')), nil
	default:
		return ast.NewLiteral(c), nil
	}
}
