// Package leopard16 implements systematic Reed-Solomon erasure coding
// over GF(2^16) using the Leopard-RS additive-FFT construction (an
// O(n log n) encoder/decoder built on an FFT over the Cantor basis).
//
// The package is a generalized, from-scratch port of the FF16 path in
// bpfs-defs/reedsolomon (itself a fork of github.com/klauspost/reedsolomon),
// which in turn is a Go port of catid/leopard. See DESIGN.md for the
// per-component grounding ledger.
package leopard16

import "github.com/klauspost/cpuid/v2"

// Variant names an Engine implementation of the six hot kernels.
type Variant int

const (
	// Naive multiplies element-by-element via LOG/EXP, matching the math
	// directly at the cost of speed. Useful as an oracle in tests.
	Naive Variant = iota
	// NoSimd multiplies through byte-split lookup tables (one 256-entry
	// table per byte of the element) with plain Go loops.
	NoSimd
	// Ssse3 walks the 16-entry-per-nibble tables an SSSE3 byte shuffle
	// consumes, one element at a time in plain Go; it issues no SIMD
	// instructions.
	Ssse3
	// Avx2 uses the same plain-Go nibble-table walk as Ssse3; it issues
	// no AVX2 instructions.
	Avx2
	// Neon uses the same plain-Go nibble-table walk as Ssse3; it issues
	// no NEON instructions.
	Neon
)

func (v Variant) String() string {
	switch v {
	case Naive:
		return "Naive"
	case NoSimd:
		return "NoSimd"
	case Ssse3:
		return "Ssse3"
	case Avx2:
		return "Avx2"
	case Neon:
		return "Neon"
	default:
		return "Unknown"
	}
}

// Engine is the capability set of six hot kernels the rate/algorithm
// layer (L3) needs, operating on shard-sized byte buffers interpreted as
// little-endian-packed GF(2^16) element arrays. Implementations do not
// allocate and cannot fail; callers guarantee shape preconditions (equal
// lengths, multiples of 64 bytes). See spec.md §4.2.
type Engine interface {
	// XorWithin XORs src into dst elementwise. Equal-length, multiple of
	// 64 bytes.
	XorWithin(dst, src []byte)

	// Mul replaces every element x of buf with 0 if x==0, else
	// EXP[(LOG[x]+logM) mod 65535].
	Mul(buf []byte, logM ffe)

	// FFTButterfly performs the forward additive-FFT butterfly:
	// x ^= y*m; y ^= x (m identified by its log, logM).
	FFTButterfly(x, y []byte, logM ffe)

	// IFFTButterfly performs the inverse additive-FFT butterfly:
	// y ^= x; x ^= y*m.
	IFFTButterfly(x, y []byte, logM ffe)

	// FFT runs the truncated additive forward FFT over work[0:size),
	// touching only the first truncated rows' worth of nonzero
	// butterflies, using skewLUT as the skew-factor source (indexed
	// relative to its start, matching ifftDITDecoder/fftDIT's layout).
	FFT(work [][]byte, truncated, size int, skewLUT []ffe)

	// IFFT is FFT's dual. If xorOut is non-nil, the first size rows of
	// the result are XORed into it (used by the encoder to accumulate
	// partial recovery blocks).
	IFFT(data [][]byte, truncated int, work, xorOut [][]byte, size int, skewLUT []ffe)

	// Variant identifies which implementation this Engine is, primarily
	// for diagnostics and WithVariant-forced testing.
	Variant() Variant
}

// Select detects CPU features once (via github.com/klauspost/cpuid/v2,
// the teacher's own dependency) and returns the fastest Engine variant
// available: on x86(-64), Avx2 if present, else Ssse3, else NoSimd; on
// arm64, Neon if present, else NoSimd; otherwise NoSimd. Detection is
// cached process-wide.
func Select() Engine {
	ensureTables()
	return selectPlatform()
}

// ForVariant returns the named Engine regardless of CPU support,
// primarily for the engine-equivalence property test (spec.md §8.3) and
// for WithVariant.
func ForVariant(v Variant) Engine {
	ensureTables()
	switch v {
	case Naive:
		return naiveEngine{}
	case NoSimd:
		return noSimdEngine{}
	case Ssse3:
		return ssse3Engine{}
	case Avx2:
		return avx2Engine{}
	case Neon:
		return neonEngine{}
	default:
		return noSimdEngine{}
	}
}

// hasAVX2/hasSSSE3 are small testable wrappers over cpuid so platform
// selection files can be unit tested without mocking cpuid.CPU directly.
func hasAVX2() bool  { return cpuid.CPU.Has(cpuid.AVX2) }
func hasSSSE3() bool { return cpuid.CPU.Has(cpuid.SSSE3) }
