package parser

import (
	"errors"
	"testing"

	"github.com/coregx/ggrep/ast"
)

func TestParseEmptyPattern(t *testing.T) {
	root, groups, err := Parse("")
	if err != nil {
		t.Fatalf("Parse(\"\") error: %v", err)
	}
	if root != nil {
		t.Errorf("Parse(\"\") root = %v, want nil", root)
	}
	if groups != 0 {
		t.Errorf("Parse(\"\") groupCount = %d, want 0", groups)
	}
}

func TestParseGroupIndexingOpenOrder(t *testing.T) {
	// Indices reflect the order '(' is consumed, not the order groups close.
	root, groups, err := Parse("((a)(b))")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if groups != 3 {
		t.Fatalf("groupCount = %d, want 3", groups)
	}

	outer := root
	if outer.Kind != ast.KindGroup || outer.Index != 1 {
		t.Fatalf("outer group index = %d, want 1", outer.Index)
	}
	inner := outer.Child()
	if inner.Kind != ast.KindConcat {
		t.Fatalf("expected Concat inside outer group, got %v", inner.Kind)
	}
	if inner.Children[0].Index != 2 {
		t.Errorf("first inner group index = %d, want 2", inner.Children[0].Index)
	}
	if inner.Children[1].Index != 3 {
		t.Errorf("second inner group index = %d, want 3", inner.Children[1].Index)
	}
}

func TestParseBackreferenceIndex(t *testing.T) {
	root, groups, err := Parse(`(\w+) and \1`)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if groups != 1 {
		t.Fatalf("groupCount = %d, want 1", groups)
	}
	concat := root
	if concat.Kind != ast.KindConcat {
		t.Fatalf("root kind = %v, want Concat", concat.Kind)
	}
	last := concat.Children[len(concat.Children)-1]
	if last.Kind != ast.KindBackref || last.Index != 1 {
		t.Errorf("last node = %+v, want Backref(1)", last)
	}
}

func TestParseEscapes(t *testing.T) {
	tests := []struct {
		pattern string
		kind    ast.Kind
	}{
		{`\d`, ast.KindCharClass},
		{`\w`, ast.KindCharClass},
		{`\n`, ast.KindLiteral}, // unrecognized escape -> literal 'n'
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			root, _, err := Parse(tt.pattern)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.pattern, err)
			}
			if root.Kind != tt.kind {
				t.Errorf("Parse(%q) root kind = %v, want %v", tt.pattern, root.Kind, tt.kind)
			}
		})
	}
}

func TestParseCharSetNegationAndDedup(t *testing.T) {
	root, _, err := Parse("[^aeiou]")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if root.Kind != ast.KindCharSet || !root.Negated {
		t.Fatalf("root = %+v, want negated CharSet", root)
	}
	if len(root.Set) != 5 {
		t.Errorf("len(Set) = %d, want 5", len(root.Set))
	}

	dup, _, err := Parse("[aaa]")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(dup.Set) != 1 {
		t.Errorf("[aaa] Set size = %d, want 1 (deduplicated)", len(dup.Set))
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		pattern string
		want    error
	}{
		{"+abc", ErrDanglingQuantifier},
		{"a[", ErrUnterminatedClass},
		{"(ab", ErrUnterminatedGroup},
		{`a\`, ErrTrailingEscape},
		{"a)", ErrUnexpectedInput},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			_, _, err := Parse(tt.pattern)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", tt.pattern)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse(%q) error = %v, want wrapping %v", tt.pattern, err, tt.want)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Errorf("Parse(%q) error is not a *ParseError: %T", tt.pattern, err)
			}
		})
	}
}

func TestParseAlternationSingleBranchCollapses(t *testing.T) {
	root, _, err := Parse("a")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if root.Kind != ast.KindLiteral {
		t.Errorf("Parse(\"a\") = %v, want a bare Literal (no Alt/Concat wrapping)", root.Kind)
	}
}

func TestParseAlternationMultiBranch(t *testing.T) {
	root, _, err := Parse("cat|dog")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if root.Kind != ast.KindAlt || len(root.Children) != 2 {
		t.Fatalf("Parse(\"cat|dog\") = %+v, want 2-branch Alt", root)
	}
}
