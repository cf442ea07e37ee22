// Command ggrep is the CLI driver described in spec.md §6: it parses
// flags, enumerates inputs, feeds lines to a compiled ggrep.Regex, and
// prints results.
//
// Usage:
//
//	ggrep [-r] -E <pattern> [path ...]
//	ggrep -E <pattern>             (stdin mode)
//	ggrep <pattern> [path ...]     (legacy convenience, no -E)
//
// Grounded on the codecrafters grep-go reference main.go's flag dispatch
// and exit-code conventions, restructured around ggrep.Compile +
// ggrep.Searcher instead of a free matchLine function.
package main

import (
	"fmt"
	"os"

	"github.com/coregx/ggrep"
	"github.com/coregx/ggrep/simd"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: ggrep [-r] -E <pattern> [path ...]")
}

func main() {
	os.Exit(run(os.Args[1:]))
}

// run implements main's logic and returns the process exit code, so tests
// can exercise argument handling without calling os.Exit.
func run(args []string) int {
	recursive := false
	pattern := ""
	havePattern := false
	var paths []string

	i := 0
	for i < len(args) {
		switch args[i] {
		case "--version":
			fmt.Printf("ggrep (backtracking ERE engine) [%s]\n", simd.Detected.Summary())
			return 0
		case "-r":
			recursive = true
			i++
		case "-E":
			if i+1 >= len(args) {
				usage()
				return 2
			}
			pattern = args[i+1]
			havePattern = true
			i += 2
		default:
			if !havePattern {
				// Legacy convenience: a bare positional pattern when -E
				// is absent, per spec.md §6.
				pattern = args[i]
				havePattern = true
				i++
				continue
			}
			paths = append(paths, args[i])
			i++
		}
	}

	if !havePattern {
		usage()
		return 2
	}

	re, err := ggrep.Compile(pattern)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	searcher := ggrep.NewSearcher(re)
	result := searcher.Run(paths, recursive)

	if !result.Matched {
		return 1
	}
	return 0
}
