package leopard16

import "encoding/binary"

// noSimdEngine implements the kernels with the byte-split lookup tables
// (mul16LUTs), built from the same per-nibble products as the SIMD
// variants' multiply256LUT, and walks them with plain Go loops. Ported
// directly from
// bpfs-defs/reedsolomon/galois_amd64.go's "Reference version" branches
// of fftDIT2/ifftDIT2, and leopard.go's refMulAdd/refMul.
type noSimdEngine struct{}

func (noSimdEngine) Variant() Variant { return NoSimd }

func (noSimdEngine) XorWithin(dst, src []byte) {
	for i := range dst {
		dst[i] ^= src[i]
	}
}

func (noSimdEngine) Mul(buf []byte, logM ffe) {
	lut := &mul16LUTs[logM]
	for i := 0; i < len(buf); i += 2 {
		v := binary.LittleEndian.Uint16(buf[i:])
		prod := lut.Lo[byte(v)] ^ lut.Hi[byte(v>>8)]
		binary.LittleEndian.PutUint16(buf[i:], prod)
	}
}

// refMulAddInto XORs table(y)*logM into x, matching leopard.go's refMulAdd.
func refMulAddInto(x, y []byte, logM ffe) {
	lut := &mul16LUTs[logM]
	for i := 0; i < len(x); i += 2 {
		yw := binary.LittleEndian.Uint16(y[i:])
		prod := lut.Lo[byte(yw)] ^ lut.Hi[byte(yw>>8)]
		xw := binary.LittleEndian.Uint16(x[i:])
		xw ^= prod
		binary.LittleEndian.PutUint16(x[i:], xw)
	}
}

func (noSimdEngine) FFTButterfly(x, y []byte, logM ffe) {
	// Reference version: refMulAdd(x, y, log_m); sliceXor(x, y).
	refMulAddInto(x, y, logM)
	for i := range x {
		y[i] ^= x[i]
	}
}

func (noSimdEngine) IFFTButterfly(x, y []byte, logM ffe) {
	// Reference version: sliceXor(x, y); refMulAdd(x, y, log_m).
	for i := range x {
		y[i] ^= x[i]
	}
	refMulAddInto(x, y, logM)
}

func (e noSimdEngine) FFT(work [][]byte, truncated, size int, skewLUT []ffe) {
	runFFT(e, work, truncated, size, skewLUT)
}

func (e noSimdEngine) IFFT(data [][]byte, truncated int, work, xorOut [][]byte, size int, skewLUT []ffe) {
	runIFFTEncode(e, data, truncated, work, xorOut, size, skewLUT)
}
