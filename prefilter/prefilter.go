// Package prefilter provides fast, semantics-preserving rejection of
// lines that cannot possibly match a pattern, letting the CLI driver (and
// any other caller) skip the backtracking matcher entirely on lines a
// prefilter has proven unmatchable.
//
// Grounded on coregx-coregex/prefilter's strategy-selection shape
// (single byte/substring → direct scan, many literal alternates →
// Aho-Corasick automaton) and on meta/compile.go's buildStrategyEngines /
// meta/find.go's findAhoCorasick for how the ahocorasick dependency is
// invoked. Narrowed from that package's five strategies (Teddy, fat
// Teddy, memchr/memmem SIMD, Aho-Corasick, digit runs) to the two this
// engine's literal.Extract can actually produce: a single required run,
// and a flat set of literal alternates.
package prefilter

import (
	"bytes"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/ggrep/literal"
	"github.com/coregx/ggrep/simd"
)

// Prefilter quickly tests whether a line could possibly satisfy the
// pattern it was built from.
//
// A false result is definitive: the caller must not invoke the matcher.
// A true result is not a guarantee of a match — it only means the
// prefilter could not rule the line out, and the matcher must still run
// to decide. This is property 9 in SPEC_FULL.md: enabling a prefilter
// never changes whether find(p, l) returns true, it only changes whether
// the matcher is invoked to find out.
type Prefilter interface {
	MayMatch(line []byte) bool
}

// Build constructs a Prefilter for seq, the literal alternates extracted
// from a compiled pattern via literal.Extract. A nil or empty seq yields
// a Prefilter that always defers to the matcher (no rejection is
// possible without a literal to search for).
func Build(seq *literal.Seq) Prefilter {
	if seq.IsEmpty() {
		return alwaysMaybe{}
	}
	if len(seq.Alternates) == 1 {
		return newByteScanner(seq.Alternates[0].Bytes)
	}
	return newAhoCorasickScanner(seq.Alternates)
}

type alwaysMaybe struct{}

func (alwaysMaybe) MayMatch([]byte) bool { return true }

// byteScanner rejects lines that don't contain a single required literal.
// Grounded on prefilter.MemchrPrefilter / MemmemPrefilter (the
// single-literal strategies), using simd.IndexByte for the one-byte case
// to benefit from its unrolled scan, and bytes.Contains (stdlib,
// substring search is not itself a teacher dependency) for longer runs.
type byteScanner struct {
	needle []byte
}

func newByteScanner(needle []byte) *byteScanner {
	return &byteScanner{needle: needle}
}

func (b *byteScanner) MayMatch(line []byte) bool {
	if len(b.needle) == 1 {
		return simd.IndexByte(string(line), b.needle[0]) >= 0
	}
	return bytes.Contains(line, b.needle)
}

// ahoCorasickScanner rejects lines containing none of a pattern's literal
// alternates (e.g. the three branches of "cat|dog|fish"), in one linear
// pass via an Aho-Corasick automaton — grounded on
// meta/compile.go's UseAhoCorasick strategy construction
// (ahocorasick.NewBuilder / AddPattern / Build) and meta/find.go's use of
// Automaton.Find to test for any hit.
type ahoCorasickScanner struct {
	automaton *ahocorasick.Automaton
}

func newAhoCorasickScanner(alternates []literal.Literal) Prefilter {
	builder := ahocorasick.NewBuilder()
	for _, lit := range alternates {
		builder.AddPattern(lit.Bytes)
	}
	automaton, err := builder.Build()
	if err != nil {
		// Same fallback meta/compile.go takes when Aho-Corasick
		// construction fails: defer entirely to the matcher rather than
		// propagate a prefilter-construction error out of Build, which
		// per SPEC_FULL.md property 9 must never affect match outcome.
		return alwaysMaybe{}
	}
	return &ahoCorasickScanner{automaton: automaton}
}

func (a *ahoCorasickScanner) MayMatch(line []byte) bool {
	return a.automaton.IsMatch(line)
}
