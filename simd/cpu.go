// Package simd reports which CPU-accelerated byte-search primitives are
// available on the current machine, and provides the portable fallback
// used when none are.
//
// Grounded on coregx-coregex/simd/memchr_amd64.go's feature-detection
// style (golang.org/x/sys/cpu flags set at package init). The
// hand-written AVX2 assembly that package pairs the flags with is not
// reproduced here: see this repo's DESIGN.md for why a line-oriented grep
// over typically-short lines doesn't warrant it. The flags are still
// worth reporting — ggrep --version surfaces them — but nothing
// dispatches on them: package prefilter calls the small unrolled
// IndexByte scan below on every machine.
package simd

import "golang.org/x/sys/cpu"

// Features summarizes the CPU-accelerated search primitives this process
// could use, detected once at package initialization.
type Features struct {
	// HasAVX2 mirrors cpu.X86.HasAVX2, set on amd64 with AVX2 support
	// (Intel Haswell / AMD Excavator and later). Relevant only on amd64;
	// false on every other architecture.
	HasAVX2 bool
	// HasSSE42 mirrors cpu.X86.HasSSE42, the baseline the teacher's
	// prefilter falls back to when AVX2 is unavailable.
	HasSSE42 bool
}

// Detected holds the features available on this process's CPU, computed
// once at package init.
var Detected = Features{
	HasAVX2:  cpu.X86.HasAVX2,
	HasSSE42: cpu.X86.HasSSE42,
}

// Summary renders Detected as a short human-readable string, suitable for
// `ggrep --version` diagnostics output.
func (f Features) Summary() string {
	switch {
	case f.HasAVX2:
		return "avx2"
	case f.HasSSE42:
		return "sse4.2"
	default:
		return "scalar"
	}
}

// IndexByte returns the index of the first occurrence of c in s, or -1 if
// c is not present. It unrolls the scan 8 bytes at a time to reduce loop
// overhead; it does not itself issue any vector instructions, but
// benefits from the same cache-friendly access pattern the teacher's
// vectorized scanners rely on, making it a reasonable stand-in on
// architectures or builds where AVX2/SSE4.2 are unavailable.
func IndexByte(s string, c byte) int {
	n := len(s)
	i := 0
	for ; i+8 <= n; i += 8 {
		chunk := s[i : i+8]
		if chunk[0] == c {
			return i
		}
		if chunk[1] == c {
			return i + 1
		}
		if chunk[2] == c {
			return i + 2
		}
		if chunk[3] == c {
			return i + 3
		}
		if chunk[4] == c {
			return i + 4
		}
		if chunk[5] == c {
			return i + 5
		}
		if chunk[6] == c {
			return i + 6
		}
		if chunk[7] == c {
			return i + 7
		}
	}
	for ; i < n; i++ {
		if s[i] == c {
			return i
		}
	}
	return -1
}
