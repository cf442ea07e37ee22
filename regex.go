// Package ggrep is a minimal grep-compatible regular-expression engine:
// a recursive-descent compiler for a subset of POSIX-ERE (package parser)
// feeding a backtracking matcher with capture groups and backreferences
// (package backtrack), fronted by an optional literal prefilter (packages
// literal and prefilter) and a line-oriented CLI driver (cmd/ggrep).
//
// Grounded on coregx-coregex/regex.go's top-level API shape
// (Compile/MustCompile/CompileWithConfig returning a *Regex wrapping an
// internal engine), narrowed to the operations spec.md's matcher actually
// supports: no DFA compilation, no linear-time guarantee — backreferences
// require backtracking, and backtracking is what this engine is for.
//
// Example:
//
//	re, err := ggrep.Compile(`(\w+) and \1`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if re.MatchString("pick and pick") {
//	    fmt.Println("matched!")
//	}
package ggrep

import (
	"github.com/coregx/ggrep/ast"
	"github.com/coregx/ggrep/backtrack"
	"github.com/coregx/ggrep/literal"
	"github.com/coregx/ggrep/parser"
	"github.com/coregx/ggrep/prefilter"
)

// Regex is a compiled pattern, ready to test lines against.
//
// A Regex is immutable after Compile returns and is safe to use
// concurrently from multiple goroutines: the AST it wraps is read-only,
// and every match allocates its own captures buffer (package backtrack).
type Regex struct {
	pattern    string
	root       *ast.Node
	groupCount int
	matcher    *backtrack.Matcher
	pf         prefilter.Prefilter
}

// Compile parses pattern and returns a ready-to-use Regex, or a
// *parser.ParseError describing where the pattern is malformed.
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile is like Compile but panics instead of returning an error.
// Useful for patterns known to be valid at compile time, e.g. a package
// level var initializer.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("ggrep: Compile(" + pattern + "): " + err.Error())
	}
	return re
}

// CompileWithConfig is like Compile but lets the caller tune the optional
// accelerants described by Config.
func CompileWithConfig(pattern string, config Config) (*Regex, error) {
	root, groupCount, err := parser.Parse(pattern)
	if err != nil {
		return nil, err
	}

	re := &Regex{
		pattern:    pattern,
		root:       root,
		groupCount: groupCount,
		matcher:    backtrack.New(root, groupCount),
		pf:         prefilter.Build(nil),
	}

	if config.EnablePrefilter {
		litCfg := literal.Config{MinLen: config.MinLiteralLen, MaxAlternates: config.MaxAlternates}
		if seq := literal.Extract(root, litCfg); !seq.IsEmpty() {
			re.pf = prefilter.Build(seq)
		}
	}

	return re, nil
}

// String returns the source pattern text re was compiled from.
func (re *Regex) String() string {
	return re.pattern
}

// NumSubexp returns the number of capture groups in re, not counting the
// reserved whole-match slot 0.
func (re *Regex) NumSubexp() int {
	return re.groupCount
}

// MatchString reports whether line contains a match of re anywhere.
//
// The prefilter, if enabled and applicable to this pattern, may reject
// line without invoking the matcher; it never changes the result — see
// SPEC_FULL.md property 9.
func (re *Regex) MatchString(line string) bool {
	if !re.pf.MayMatch([]byte(line)) {
		return false
	}
	return re.matcher.Find(line)
}

// FindStringSubmatch is like MatchString but additionally returns the
// captured groups of the first successful starting offset. result[0] is
// always empty (slot 0 is reserved, see package backtrack); result[i] is the
// text captured by group i, or "" if group i did not participate in the
// match. ok is false if line does not match at all.
func (re *Regex) FindStringSubmatch(line string) (result []string, ok bool) {
	if !re.pf.MayMatch([]byte(line)) {
		return nil, false
	}
	return re.matcher.FindSubmatch(line)
}
