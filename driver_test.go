package ggrep

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestSearcher(t *testing.T, pattern string) (*Searcher, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	re, err := Compile(pattern)
	if err != nil {
		t.Fatalf("Compile(%q) error: %v", pattern, err)
	}
	var out, errOut bytes.Buffer
	return &Searcher{Regex: re, Stdout: &out, Stderr: &errOut}, &out, &errOut
}

func TestRunSingleFileNoPrefix(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lines.txt")
	if err := os.WriteFile(path, []byte("abc123xyz\nno digits here\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s, out, _ := newTestSearcher(t, `\d+`)
	result := s.Run([]string{path}, false)

	if !result.Matched {
		t.Error("Matched = false, want true")
	}
	if got := out.String(); got != "abc123xyz\n" {
		t.Errorf("stdout = %q, want %q (no path prefix for a single file)", got, "abc123xyz\n")
	}
}

func TestRunMultipleFilesPrefixed(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	os.WriteFile(a, []byte("cat\n"), 0o644)
	os.WriteFile(b, []byte("dog\n"), 0o644)

	s, out, _ := newTestSearcher(t, "cat|dog")
	result := s.Run([]string{a, b}, false)

	if !result.Matched {
		t.Error("Matched = false, want true")
	}
	got := out.String()
	if !strings.Contains(got, a+":cat") || !strings.Contains(got, b+":dog") {
		t.Errorf("stdout = %q, want both paths prefixed", got)
	}
}

func TestRunUnreadablePathSkippedNotFatal(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "does-not-exist.txt")
	present := filepath.Join(dir, "present.txt")
	os.WriteFile(present, []byte("cat\n"), 0o644)

	s, out, errOut := newTestSearcher(t, "cat")
	result := s.Run([]string{missing, present}, false)

	if !result.Matched {
		t.Error("Matched = false, want true: the readable path should still be searched")
	}
	if errOut.Len() == 0 {
		t.Error("Stderr is empty, want a report about the unreadable path")
	}
	if !strings.Contains(out.String(), "cat") {
		t.Errorf("stdout = %q, want the matching line from the readable file", out.String())
	}
}

func TestRunRecursiveWalksDirectory(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	os.WriteFile(filepath.Join(dir, "top.txt"), []byte("cat\n"), 0o644)
	os.WriteFile(filepath.Join(sub, "nested.txt"), []byte("dog\n"), 0o644)

	s, out, _ := newTestSearcher(t, "cat|dog")
	result := s.Run([]string{dir}, true)

	if !result.Matched {
		t.Error("Matched = false, want true")
	}
	if !strings.Contains(out.String(), "cat") || !strings.Contains(out.String(), "dog") {
		t.Errorf("stdout = %q, want lines from both top-level and nested files", out.String())
	}
}

func TestRunStdin(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	w.WriteString("abc123\nnothing\n")
	w.Close()

	origStdin := os.Stdin
	os.Stdin = r
	defer func() { os.Stdin = origStdin }()

	s, out, _ := newTestSearcher(t, `\d+`)
	result := s.Run(nil, false)

	if !result.Matched {
		t.Error("Matched = false, want true")
	}
	if got := out.String(); got != "abc123\n" {
		t.Errorf("stdout = %q, want %q", got, "abc123\n")
	}
}

// erroringReader yields one line, then a read error, exercising the
// mid-stream IoError path (spec.md §7) rather than just EOF.
type erroringReader struct {
	data []byte
	read bool
}

func (r *erroringReader) Read(p []byte) (int, error) {
	if !r.read {
		r.read = true
		n := copy(p, r.data)
		return n, nil
	}
	return 0, errors.New("simulated read failure")
}

// TestRunStdinReadErrorReported is a regression test: a mid-read failure
// on stdin (label "(standard input)", as Run passes it) must still be
// reported to Stderr, not swallowed, even though stdin is never printed
// with a path prefix.
func TestRunStdinReadErrorReported(t *testing.T) {
	s, _, errOut := newTestSearcher(t, `\d+`)
	matched := s.searchReader("(standard input)", &erroringReader{data: []byte("abc123\n")}, false)

	if !matched {
		t.Error("matched = false, want true: the one good line should still be found before the error")
	}
	if errOut.Len() == 0 {
		t.Error("Stderr is empty, want a report about the stdin read failure")
	}
}
