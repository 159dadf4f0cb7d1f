package leopard16

import "encoding/binary"

// naiveEngine implements every kernel by going through LOG/EXP one GF(2^16)
// element at a time via mulLog. It exists as a slow, obviously-correct
// oracle for the engine-equivalence property test (spec.md §8.3); every
// other variant must agree with it bit-for-bit. Not ported from any single
// teacher function — it inlines the same mulLog used by tables.go's own
// initialization code, just called per element instead of per LUT entry.
type naiveEngine struct{}

func (naiveEngine) Variant() Variant { return Naive }

func (naiveEngine) XorWithin(dst, src []byte) {
	for i := range dst {
		dst[i] ^= src[i]
	}
}

func (naiveEngine) Mul(buf []byte, logM ffe) {
	for i := 0; i < len(buf); i += 2 {
		v := binary.LittleEndian.Uint16(buf[i:])
		binary.LittleEndian.PutUint16(buf[i:], mulLog(v, logM))
	}
}

func (naiveEngine) FFTButterfly(x, y []byte, logM ffe) {
	for i := 0; i < len(x); i += 2 {
		xw := binary.LittleEndian.Uint16(x[i:])
		yw := binary.LittleEndian.Uint16(y[i:])
		xw ^= mulLog(yw, logM)
		binary.LittleEndian.PutUint16(x[i:], xw)
		yw ^= xw
		binary.LittleEndian.PutUint16(y[i:], yw)
	}
}

func (naiveEngine) IFFTButterfly(x, y []byte, logM ffe) {
	for i := 0; i < len(x); i += 2 {
		xw := binary.LittleEndian.Uint16(x[i:])
		yw := binary.LittleEndian.Uint16(y[i:])
		yw ^= xw
		binary.LittleEndian.PutUint16(y[i:], yw)
		xw ^= mulLog(yw, logM)
		binary.LittleEndian.PutUint16(x[i:], xw)
	}
}

func (e naiveEngine) FFT(work [][]byte, truncated, size int, skewLUT []ffe) {
	runFFT(e, work, truncated, size, skewLUT)
}

func (e naiveEngine) IFFT(data [][]byte, truncated int, work, xorOut [][]byte, size int, skewLUT []ffe) {
	runIFFTEncode(e, data, truncated, work, xorOut, size, skewLUT)
}
