package leopard16

import (
	"math/bits"

	"github.com/bits-and-blooms/bitset"
)

// walshHadamard applies an in-place, length-mtrunc-truncated Walsh-Hadamard
// transform over Z/65535 to the first mtrunc entries of data (length
// order). Butterflies are (a, b) <- (a+b mod 65535, a-b mod 65535); the
// transform is its own inverse since 65536 mod 65535 == 1 needs no
// extra normalization for a full-length (order) transform. Ported from
// bpfs-defs/reedsolomon/leopard.go's fwht/fwht2alt, unrolled two layers
// at a time to keep butterfly state in registers.
func walshHadamard(data *[order]ffe, mtrunc int) {
	dist := 1
	dist4 := 4
	for dist4 <= order {
		for r := 0; r < mtrunc; r += dist4 {
			dist := uint16(dist)
			off := uint16(r)
			for i := uint16(0); i < dist; i++ {
				t0 := data[off]
				t1 := data[off+dist]
				t2 := data[off+dist*2]
				t3 := data[off+dist*3]

				t0, t1 = addMod(t0, t1), subMod(t0, t1)
				t2, t3 = addMod(t2, t3), subMod(t2, t3)
				t0, t2 = addMod(t0, t2), subMod(t0, t2)
				t1, t3 = addMod(t1, t3), subMod(t1, t3)

				data[off] = t0
				data[off+dist] = t1
				data[off+dist*2] = t2
				data[off+dist*3] = t3
				off++
			}
		}
		dist = dist4
		dist4 <<= 2
	}
}

// errorLocatorPolynomial builds the log-domain erasure locator Λ(j) from
// the erased positions within [0, n): the input vector holds 1 at an
// erased position and 0 at a received one, and the result holds a log
// scalar for every position, by which solveCore scales each received
// shard and unscales each erased one. Spec.md §4.3.2 step 1.
func errorLocatorPolynomial(erased *bitset.BitSet, n int) *[order]ffe {
	ensureTables()
	var errLocs [order]ffe
	for i, ok := erased.NextSet(0); ok; i, ok = erased.NextSet(i + 1) {
		if int(i) >= n {
			break
		}
		errLocs[i] = 1
	}

	walshHadamard(&errLocs, n)
	for i := 0; i < order; i++ {
		errLocs[i] = ffe((uint(errLocs[i]) * uint(logWalsh[i])) % modulus)
	}
	walshHadamard(&errLocs, order)
	return &errLocs
}

// formalDerivative applies the Cantor-basis formal derivative in place
// over work[0:n]: for each i, it XORs the block of width
// ((i^(i-1))+1)>>1 starting at i into the equal-sized block ending just
// before i. No multiplications. Ported from leopard.go's reconstruct
// loop, factored out as a standalone operator per spec.md §4.3.4.
func formalDerivative(work [][]byte, n int, eng Engine) {
	for i := 1; i < n; i++ {
		width := ((i ^ (i - 1)) + 1) >> 1
		lo := work[i-width : i]
		hi := work[i : i+width]
		for j := range lo {
			eng.XorWithin(lo[j], hi[j])
		}
	}
}

// errorBitfield mirrors leopard.go's mip-map of the erasure pattern: a
// small pyramid of coarser-grained "is any bit in this span set" summaries
// that lets the truncated decode-side FFT skip whole subtrees that touch
// no erasure. Built only when fewer than half of the truncated transform
// width's positions are erased (see buildErrorBitfield).
const (
	wordMips    = 5
	bitWords    = order / 64
	bigMips     = 6
	bigWords    = (bitWords + 63) / 64
	biggestMips = 4
)

type errorBitfield struct {
	leaf         *bitset.BitSet
	words        [wordMips][bitWords]uint64
	bigWords     [bigMips][bigWords]uint64
	biggestWords [biggestMips]uint64
}

func newErrorBitfield() *errorBitfield {
	return &errorBitfield{leaf: bitset.New(order)}
}

func (e *errorBitfield) set(i int) {
	e.leaf.Set(uint(i))
}

var hiMasks = [5]uint64{
	0xAAAAAAAAAAAAAAAA,
	0xCCCCCCCCCCCCCCCC,
	0xF0F0F0F0F0F0F0F0,
	0xFF00FF00FF00FF00,
	0xFFFF0000FFFF0000,
}

// prepare builds each mip level from the leaf bitset. Must be called
// after every set() and before isNeeded queries.
func (e *errorBitfield) prepare() {
	leafWords := e.leaf.Bytes()
	for i := 0; i < bitWords; i++ {
		var wi uint64
		if i < len(leafWords) {
			wi = leafWords[i]
		}
		hi2lo0 := wi | ((wi & hiMasks[0]) >> 1)
		lo2hi0 := (wi & (hiMasks[0] >> 1)) << 1
		wi = hi2lo0 | lo2hi0
		e.words[0][i] = wi

		shiftBits := 2
		for j := 1; j < wordMips; j++ {
			hi2lo := wi | ((wi & hiMasks[j]) >> shiftBits)
			lo2hi := (wi & (hiMasks[j] >> shiftBits)) << shiftBits
			wi = hi2lo | lo2hi
			e.words[j][i] = wi
			shiftBits <<= 1
		}
	}

	for i := 0; i < bigWords; i++ {
		var wi uint64
		bit := uint64(1)
		src := e.words[wordMips-1][i*64 : i*64+64]
		for _, w := range src {
			wi |= (w | (w >> 32) | (w << 32)) & bit
			bit <<= 1
		}
		e.bigWords[0][i] = wi

		shiftBits := 1
		for j := 1; j < bigMips; j++ {
			hi2lo := wi | ((wi & hiMasks[j-1]) >> shiftBits)
			lo2hi := (wi & (hiMasks[j-1] >> shiftBits)) << shiftBits
			wi = hi2lo | lo2hi
			e.bigWords[j][i] = wi
			shiftBits <<= 1
		}
	}

	var wi uint64
	bit := uint64(1)
	for _, w := range e.bigWords[bigMips-1][:bigWords] {
		wi |= (w | (w >> 32) | (w << 32)) & bit
		bit <<= 1
	}
	e.biggestWords[0] = wi

	shiftBits := uint64(1)
	for j := 1; j < biggestMips; j++ {
		hi2lo := wi | ((wi & hiMasks[j-1]) >> shiftBits)
		lo2hi := (wi & (hiMasks[j-1] >> shiftBits)) << shiftBits
		wi = hi2lo | lo2hi
		e.biggestWords[j] = wi
		shiftBits <<= 1
	}
}

func (e *errorBitfield) isNeeded(mipLevel int, bit uint) bool {
	if mipLevel >= 16 {
		return true
	}
	if mipLevel >= 12 {
		bit /= 4096
		return e.biggestWords[mipLevel-12]&(uint64(1)<<bit) != 0
	}
	if mipLevel >= 6 {
		bit /= 64
		return e.bigWords[mipLevel-6][bit/64]&(uint64(1)<<(bit%64)) != 0
	}
	return e.words[mipLevel-1][bit/64]&(uint64(1)<<(bit%64)) != 0
}

func (e *errorBitfield) isNeededFn(mipLevel int) func(bit int) bool {
	if mipLevel >= 16 {
		return func(int) bool { return true }
	}
	return func(bit int) bool { return e.isNeeded(mipLevel, uint(bit)) }
}

// fftDIT runs a truncated forward FFT skipping any dist4-group whose span
// the error bitfield marks as untouched by an erasure, using eng for the
// actual butterflies. Ported from leopard.go's errorBitfield.fftDIT.
func (e *errorBitfield) fftDIT(work [][]byte, mtrunc, m int, skewLUT []ffe, eng Engine) {
	mipLevel := bits.Len32(uint32(m)) - 1

	dist4 := m
	dist := m >> 2
	needed := e.isNeededFn(mipLevel)
	for dist != 0 {
		for r := 0; r < mtrunc; r += dist4 {
			if !needed(r) {
				continue
			}
			iEnd := r + dist
			logM01 := skewLUT[iEnd-1]
			logM02 := skewLUT[iEnd+dist-1]
			logM23 := skewLUT[iEnd+dist*2-1]
			for i := r; i < iEnd; i++ {
				fftDIT4(work[i:], dist, logM01, logM23, logM02, eng)
			}
		}
		dist4 = dist
		dist >>= 2
		mipLevel -= 2
		needed = e.isNeededFn(mipLevel)
	}

	if dist4 == 2 {
		for r := 0; r < mtrunc; r += 2 {
			if !needed(r) {
				continue
			}
			logM := skewLUT[r]
			if logM == modulus {
				eng.XorWithin(work[r+1], work[r])
			} else {
				eng.FFTButterfly(work[r], work[r+1], logM)
			}
		}
	}
}
