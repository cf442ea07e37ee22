// Package literal extracts literal byte sequences from a compiled pattern
// for use as a prefilter (package ggrep/prefilter): substrings that must
// be present in any line the pattern can match, usable to reject lines
// without ever invoking the backtracking matcher.
//
// Grounded on coregx-coregex/literal's Literal/Seq split (a literal plus a
// completeness flag, bundled into an alternative set) and on
// ExtractorConfig's size limits, narrowed to the two shapes this engine's
// grammar can actually produce a useful prefilter from: a single required
// literal run, and a flat alternation of literal-only branches.
package literal

// Config bounds how much work extraction does on pathological patterns.
// Grounded on coregx-coregex/literal.ExtractorConfig.
type Config struct {
	// MaxAlternates caps how many Alt branches are extracted as literal
	// alternates before extraction gives up (an Alt with more branches
	// than this is assumed not worth prefiltering). Default: 64.
	MaxAlternates int

	// MinLen is the shortest literal extraction will bother reporting;
	// single-character literals reject too little text to be worth the
	// prefilter's bookkeeping. Default: 2.
	MinLen int
}

// DefaultConfig returns the limits used unless a caller overrides them.
func DefaultConfig() Config {
	return Config{MaxAlternates: 64, MinLen: 2}
}

// Literal is a literal byte sequence required for a pattern to match.
type Literal struct {
	Bytes []byte
}

// Seq is a set of alternative literals, any one of which must be present
// for the originating pattern to have a chance of matching — i.e. the
// logical OR of each Literal's presence is a necessary (not sufficient)
// condition for a match.
type Seq struct {
	Alternates []Literal
}

// IsEmpty reports whether s carries no usable literals.
func (s *Seq) IsEmpty() bool {
	return s == nil || len(s.Alternates) == 0
}
