package ggrep

// Config controls optional accelerants around the matcher. It never
// changes match semantics (SPEC_FULL.md property 9) — every field here
// trades "how much work is done before falling back to the backtracking
// matcher" against "how much bookkeeping that work costs on patterns it
// can't help".
//
// Grounded on coregx-coregex/meta.Config's shape: a struct of booleans
// and thresholds plus a DefaultConfig constructor, narrowed to the one
// strategy (literal prefiltering) this engine has room for once DFA
// compilation is off the table (spec.md's Non-goals rule it out, and
// backreferences rule it out unconditionally regardless).
type Config struct {
	// EnablePrefilter turns on literal.Extract + prefilter.Build ahead of
	// the matcher. Default: true.
	EnablePrefilter bool

	// MinLiteralLen is the shortest literal the prefilter will bother
	// extracting; see literal.Config.MinLen. Default: 2.
	MinLiteralLen int

	// MaxAlternates caps how many Alt branches literal extraction will
	// examine before giving up; see literal.Config.MaxAlternates.
	// Default: 64.
	MaxAlternates int
}

// DefaultConfig returns the configuration used by Compile and MustCompile.
func DefaultConfig() Config {
	return Config{
		EnablePrefilter: true,
		MinLiteralLen:   2,
		MaxAlternates:   64,
	}
}
