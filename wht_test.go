package leopard16

import (
	"math/rand"
	"testing"

	"github.com/bits-and-blooms/bitset"
)

// WHT involutivity (spec.md §8): the full-length (order) Walsh-Hadamard
// transform over Z/65535 is its own inverse, since 65536 mod 65535 == 1.
func TestWalshHadamardInvolutive(t *testing.T) {
	ensureTables()
	rng := rand.New(rand.NewSource(1))

	var original, work [order]ffe
	for i := range original {
		original[i] = ffe(rng.Intn(modulus))
	}
	work = original

	walshHadamard(&work, order)
	walshHadamard(&work, order)

	for i := range original {
		if work[i] != original[i] {
			t.Fatalf("WHT not involutive at index %d: got %d, want %d", i, work[i], original[i])
		}
	}
}

func TestErrorLocatorPolynomialZeroForNoErasures(t *testing.T) {
	ensureTables()
	erased := bitset.New(64)
	locs := errorLocatorPolynomial(erased, 64)
	for i := 0; i < 64; i++ {
		if locs[i] != 0 {
			t.Fatalf("errLocs[%d] = %d, want 0 with no erasures", i, locs[i])
		}
	}
}

// Formal-derivative linearity (spec.md §8): the operator is a pure XOR
// over GF(2^16) element vectors, so it distributes over XOR combination
// of two independent inputs.
func TestFormalDerivativeLinearity(t *testing.T) {
	ensureTables()
	eng := ForVariant(NoSimd)
	const n = 8
	const shardLen = 64

	mkWork := func(seed int64) [][]byte {
		rng := rand.New(rand.NewSource(seed))
		w := make([][]byte, n)
		for i := range w {
			w[i] = make([]byte, shardLen)
			rng.Read(w[i])
		}
		return w
	}

	a := mkWork(1)
	b := mkWork(2)
	sum := make([][]byte, n)
	for i := range sum {
		sum[i] = make([]byte, shardLen)
		for j := range sum[i] {
			sum[i][j] = a[i][j] ^ b[i][j]
		}
	}

	formalDerivative(a, n, eng)
	formalDerivative(b, n, eng)
	formalDerivative(sum, n, eng)

	for i := range sum {
		for j := range sum[i] {
			want := a[i][j] ^ b[i][j]
			if sum[i][j] != want {
				t.Fatalf("formalDerivative not linear at shard %d byte %d: got %d want %d", i, j, sum[i][j], want)
			}
		}
	}
}
