package leopard16

import "encoding/binary"

// ssse3Engine, avx2Engine and neonEngine all perform the same nibble-split,
// PSHUFB-style lookup against multiply256LUT that a real byte-shuffle
// instruction would: each 16-bit element is split into four nibbles, each
// nibble indexes a 16-entry table for the low and high product byte, and
// the four partial products are XORed together. Real SSSE3/AVX2/NEON code
// does exactly this sixteen or thirty-two lanes at a time; without the
// matching assembly in the retrieved teacher sources (see DESIGN.md), these
// variants exercise the identical table and data flow through plain Go
// loops instead of actual shuffle intrinsics. Every variant must therefore
// be bit-identical to noSimdEngine and naiveEngine, which the
// engine-equivalence property test checks directly.
//
// Grounded on bpfs-defs/reedsolomon/galois_amd64.go's ifftDIT4/fftDIT4
// AVX2/SSSE3 dispatch and leopard.go's initMulLUTs table layout.

func simdMulElement(v uint16, table *[8 * 16]byte) uint16 {
	n0 := v & 0xF
	n1 := (v >> 4) & 0xF
	n2 := (v >> 8) & 0xF
	n3 := (v >> 12) & 0xF
	lo := table[n0] ^ table[16+n1] ^ table[32+n2] ^ table[48+n3]
	hi := table[64+n0] ^ table[80+n1] ^ table[96+n2] ^ table[112+n3]
	return uint16(lo) | uint16(hi)<<8
}

func simdMulInto(buf []byte, logM ffe) {
	table := &multiply256LUT[logM]
	for i := 0; i < len(buf); i += 2 {
		v := binary.LittleEndian.Uint16(buf[i:])
		binary.LittleEndian.PutUint16(buf[i:], simdMulElement(v, table))
	}
}

func simdMulAddInto(x, y []byte, logM ffe) {
	table := &multiply256LUT[logM]
	for i := 0; i < len(x); i += 2 {
		yw := binary.LittleEndian.Uint16(y[i:])
		xw := binary.LittleEndian.Uint16(x[i:])
		xw ^= simdMulElement(yw, table)
		binary.LittleEndian.PutUint16(x[i:], xw)
	}
}

func simdXorWithin(dst, src []byte) {
	for i := range dst {
		dst[i] ^= src[i]
	}
}

func simdFFTButterfly(x, y []byte, logM ffe) {
	simdMulAddInto(x, y, logM)
	simdXorWithin(y, x)
}

func simdIFFTButterfly(x, y []byte, logM ffe) {
	simdXorWithin(y, x)
	simdMulAddInto(x, y, logM)
}

type ssse3Engine struct{}

func (ssse3Engine) Variant() Variant                       { return Ssse3 }
func (ssse3Engine) XorWithin(dst, src []byte)               { simdXorWithin(dst, src) }
func (ssse3Engine) Mul(buf []byte, logM ffe)                { simdMulInto(buf, logM) }
func (ssse3Engine) FFTButterfly(x, y []byte, logM ffe)      { simdFFTButterfly(x, y, logM) }
func (ssse3Engine) IFFTButterfly(x, y []byte, logM ffe)     { simdIFFTButterfly(x, y, logM) }
func (e ssse3Engine) FFT(work [][]byte, truncated, size int, skewLUT []ffe) {
	runFFT(e, work, truncated, size, skewLUT)
}
func (e ssse3Engine) IFFT(data [][]byte, truncated int, work, xorOut [][]byte, size int, skewLUT []ffe) {
	runIFFTEncode(e, data, truncated, work, xorOut, size, skewLUT)
}

type avx2Engine struct{}

func (avx2Engine) Variant() Variant                    { return Avx2 }
func (avx2Engine) XorWithin(dst, src []byte)            { simdXorWithin(dst, src) }
func (avx2Engine) Mul(buf []byte, logM ffe)             { simdMulInto(buf, logM) }
func (avx2Engine) FFTButterfly(x, y []byte, logM ffe)   { simdFFTButterfly(x, y, logM) }
func (avx2Engine) IFFTButterfly(x, y []byte, logM ffe)  { simdIFFTButterfly(x, y, logM) }
func (e avx2Engine) FFT(work [][]byte, truncated, size int, skewLUT []ffe) {
	runFFT(e, work, truncated, size, skewLUT)
}
func (e avx2Engine) IFFT(data [][]byte, truncated int, work, xorOut [][]byte, size int, skewLUT []ffe) {
	runIFFTEncode(e, data, truncated, work, xorOut, size, skewLUT)
}

type neonEngine struct{}

func (neonEngine) Variant() Variant                    { return Neon }
func (neonEngine) XorWithin(dst, src []byte)            { simdXorWithin(dst, src) }
func (neonEngine) Mul(buf []byte, logM ffe)             { simdMulInto(buf, logM) }
func (neonEngine) FFTButterfly(x, y []byte, logM ffe)   { simdFFTButterfly(x, y, logM) }
func (neonEngine) IFFTButterfly(x, y []byte, logM ffe)  { simdIFFTButterfly(x, y, logM) }
func (e neonEngine) FFT(work [][]byte, truncated, size int, skewLUT []ffe) {
	runFFT(e, work, truncated, size, skewLUT)
}
func (e neonEngine) IFFT(data [][]byte, truncated int, work, xorOut [][]byte, size int, skewLUT []ffe) {
	runIFFTEncode(e, data, truncated, work, xorOut, size, skewLUT)
}
