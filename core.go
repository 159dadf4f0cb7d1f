package leopard16

import "github.com/bits-and-blooms/bitset"

// core.go implements the two primitives every HighRate and LowRate
// shape (rate.go) is built from: encodeCore, the direct IFFT->FFT
// construction used when the known set (data) occupies the high
// positions, and solveCore, the general erasure-solver used for every
// decode and for LowRate's encode (where the known set occupies the
// low positions instead, and a direct IFFT->FFT can't be truncated to
// just the wanted positions).

// encodeCore computes parityShards recovery blocks from dataShards
// original blocks, for the HighRate position layout (parity at low
// positions, data at high positions starting at m=ceilPow2(parityShards)).
// All shards must already be shardLen bytes. Ported from
// leopardFF16.encode: an IFFT of the originals (processed in m-sized
// blocks, accumulating each block's contribution into a shared work
// buffer), followed by a single truncated forward FFT that materializes
// the recovery blocks.
func encodeCore(eng Engine, data, parity [][]byte, s shape) {
	m := s.m
	shardLen := len(data[0])

	work := make([][]byte, m*2)
	for i := range work {
		work[i] = make([]byte, shardLen)
	}

	mtrunc := m
	if s.dataShards < mtrunc {
		mtrunc = s.dataShards
	}

	skewLUT := fftSkew[m-1:]
	runIFFTEncode(eng, data, mtrunc, work, nil, m, skewLUT)

	lastCount := s.dataShards % m
	skewLUT2 := fftSkew[m+m-1:]
	if m < s.dataShards {
		for i := m; i+m <= s.dataShards; i += m {
			skewLUT2 = fftSkew[m+i-1:]
			runIFFTEncode(eng, data[i:i+m], m, work[m:], work, m, skewLUT2)
		}
		if lastCount != 0 {
			start := m * (s.dataShards / m)
			runIFFTEncode(eng, data[start:s.dataShards], lastCount, work[m:], work, m, fftSkew[m+start-1:])
		}
	}

	runFFT(eng, work, s.parityShards, m, fftSkew[:])

	for i := 0; i < s.parityShards; i++ {
		copy(parity[i], work[i])
	}
}

// solveCore is the general erasure solver spec.md §4.3.2 describes:
// given a presence pattern over data/parity and the shape's position
// layout (rate.go's dataPos/parityPos), it scales every present shard
// by the erasure locator, runs inverse-FFT/formal-derivative/forward-FFT
// over the full n-wide transform, and unscales every absent position —
// data or parity alike — back out. Both HighRate and LowRate decode
// and lowRateCodec.encode (treating every parity shard as "erased" and
// every data shard as present) are instances of this one solve. Ported
// from leopardFF16.reconstruct, generalized from always-data-is-missing
// to either side being the unknown.
func solveCore(eng Engine, data, parity [][]byte, dataPresent, parityPresent []bool, s shape, shardLen int) (recoveredData, recoveredParity [][]byte) {
	m := s.m
	n := s.n

	erased := bitset.New(uint(n))
	for i := s.anchorCount(); i < m; i++ {
		erased.Set(uint(i))
	}
	for i := 0; i < s.dataShards; i++ {
		if !dataPresent[i] {
			erased.Set(uint(s.dataPos(i)))
		}
	}
	for i := 0; i < s.parityShards; i++ {
		if !parityPresent[i] {
			erased.Set(uint(s.parityPos(i)))
		}
	}

	mtrunc := m + s.extCount()
	errLocs := errorLocatorPolynomial(erased, mtrunc)

	work := make([][]byte, n)
	for i := range work {
		work[i] = make([]byte, shardLen)
	}

	for i := 0; i < s.dataShards; i++ {
		if dataPresent[i] {
			pos := s.dataPos(i)
			copy(work[pos], data[i])
			eng.Mul(work[pos], errLocs[pos])
		}
	}
	for i := 0; i < s.parityShards; i++ {
		if parityPresent[i] {
			pos := s.parityPos(i)
			copy(work[pos], parity[i])
			eng.Mul(work[pos], errLocs[pos])
		}
	}

	if bits, ok := buildErrorBitfield(erased, n, mtrunc); ok {
		runIFFTDecode(eng, mtrunc, work, n, fftSkew[:])
		formalDerivative(work, n, eng)
		bits.fftDIT(work, mtrunc, n, fftSkew[:], eng)
	} else {
		runIFFTDecode(eng, mtrunc, work, n, fftSkew[:])
		formalDerivative(work, n, eng)
		runFFT(eng, work, mtrunc, n, fftSkew[:])
	}

	recoveredData = make([][]byte, s.dataShards)
	for i := 0; i < s.dataShards; i++ {
		if dataPresent[i] {
			recoveredData[i] = data[i]
			continue
		}
		pos := s.dataPos(i)
		out := make([]byte, shardLen)
		copy(out, work[pos])
		eng.Mul(out, subMod(0, errLocs[pos]))
		recoveredData[i] = out
	}

	recoveredParity = make([][]byte, s.parityShards)
	for i := 0; i < s.parityShards; i++ {
		if parityPresent[i] {
			recoveredParity[i] = parity[i]
			continue
		}
		pos := s.parityPos(i)
		out := make([]byte, shardLen)
		copy(out, work[pos])
		eng.Mul(out, subMod(0, errLocs[pos]))
		recoveredParity[i] = out
	}

	return recoveredData, recoveredParity
}

// buildErrorBitfield constructs the errorBitfield mip pyramid from the
// erased positions and reports whether it is worth using: leopard.go only
// bothers with it when erasures are sparse enough that most of the
// truncated forward FFT's subtrees can be skipped outright.
func buildErrorBitfield(erased *bitset.BitSet, n, mtrunc int) (*errorBitfield, bool) {
	count := erased.Count()
	if count == 0 || int(count)*2 >= mtrunc {
		return nil, false
	}
	eb := newErrorBitfield()
	for i, ok := erased.NextSet(0); ok; i, ok = erased.NextSet(i + 1) {
		if int(i) >= mtrunc {
			break
		}
		eb.set(int(i))
	}
	eb.prepare()
	return eb, true
}
