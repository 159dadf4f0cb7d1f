// Package presence tracks which shard indices an accumulator has seen,
// backed by github.com/bits-and-blooms/bitset instead of a hand-rolled
// bool slice — grounded on bpfs-defs/defs/v2/bitset, which the teacher
// vendors for exactly this kind of membership tracking elsewhere in the
// repo.
package presence

import "github.com/bits-and-blooms/bitset"

// Tracker records which of n indices have been marked present.
type Tracker struct {
	bits  *bitset.BitSet
	count int
	n     int
}

// New returns a Tracker over the index range [0, n).
func New(n int) *Tracker {
	return &Tracker{bits: bitset.New(uint(n)), n: n}
}

// Has reports whether index i has been marked.
func (t *Tracker) Has(i int) bool {
	return t.bits.Test(uint(i))
}

// Mark records index i as present. Returns false if it was already
// marked, leaving the tracker unchanged.
func (t *Tracker) Mark(i int) bool {
	if t.bits.Test(uint(i)) {
		return false
	}
	t.bits.Set(uint(i))
	t.count++
	return true
}

// Count returns how many distinct indices have been marked.
func (t *Tracker) Count() int {
	return t.count
}

// Full reports whether every index in [0, n) has been marked.
func (t *Tracker) Full() bool {
	return t.count == t.n
}

// Reset clears every marked index.
func (t *Tracker) Reset() {
	t.bits.ClearAll()
	t.count = 0
}

// Bools materializes the tracked set as a []bool of length n, the shape
// the L3 decode core consumes.
func (t *Tracker) Bools() []bool {
	out := make([]bool, t.n)
	for i, ok := t.bits.NextSet(0); ok; i, ok = t.bits.NextSet(i + 1) {
		if int(i) >= t.n {
			break
		}
		out[i] = true
	}
	return out
}
