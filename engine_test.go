package leopard16

import (
	"math/rand"
	"testing"
)

var allVariants = []Variant{Naive, NoSimd, Ssse3, Avx2, Neon}

// Engine equivalence (spec.md §8.3): every variant must agree bit-for-bit
// on every kernel.
func TestEngineEquivalenceXorAndMul(t *testing.T) {
	ensureTables()
	rng := rand.New(rand.NewSource(42))
	buf := make([]byte, 128)
	rng.Read(buf)
	logM := ffe(rng.Intn(order))

	src0 := make([]byte, len(buf))
	rng.Read(src0)

	var wantMul, wantXor []byte
	for _, v := range allVariants {
		eng := ForVariant(v)

		m := append([]byte(nil), buf...)
		eng.Mul(m, logM)
		if wantMul == nil {
			wantMul = m
		} else if string(m) != string(wantMul) {
			t.Fatalf("variant %s Mul mismatch", v)
		}

		dst := append([]byte(nil), buf...)
		src := append([]byte(nil), src0...)
		srcCopy := append([]byte(nil), src...)
		eng.XorWithin(dst, src)
		if wantXor == nil {
			wantXor = dst
		} else if string(dst) != string(wantXor) {
			t.Fatalf("variant %s XorWithin mismatch", v)
		}
		if string(src) != string(srcCopy) {
			t.Fatalf("variant %s XorWithin mutated src", v)
		}
	}
}

func TestEngineEquivalenceButterflies(t *testing.T) {
	ensureTables()
	rng := rand.New(rand.NewSource(7))
	logM := ffe(rng.Intn(order))

	x0 := make([]byte, 64)
	y0 := make([]byte, 64)
	rng.Read(x0)
	rng.Read(y0)

	var wantFFTx, wantFFTy, wantIFFTx, wantIFFTy []byte
	for _, v := range allVariants {
		eng := ForVariant(v)

		x := append([]byte(nil), x0...)
		y := append([]byte(nil), y0...)
		eng.FFTButterfly(x, y, logM)
		if wantFFTx == nil {
			wantFFTx, wantFFTy = x, y
		} else if string(x) != string(wantFFTx) || string(y) != string(wantFFTy) {
			t.Fatalf("variant %s FFTButterfly mismatch", v)
		}

		x2 := append([]byte(nil), x0...)
		y2 := append([]byte(nil), y0...)
		eng.IFFTButterfly(x2, y2, logM)
		if wantIFFTx == nil {
			wantIFFTx, wantIFFTy = x2, y2
		} else if string(x2) != string(wantIFFTx) || string(y2) != string(wantIFFTy) {
			t.Fatalf("variant %s IFFTButterfly mismatch", v)
		}
	}
}

func TestFFTIFFTButterflyAreInverse(t *testing.T) {
	ensureTables()
	eng := ForVariant(NoSimd)
	rng := rand.New(rand.NewSource(99))
	logM := ffe(rng.Intn(order))

	x := make([]byte, 64)
	y := make([]byte, 64)
	rng.Read(x)
	rng.Read(y)
	origX := append([]byte(nil), x...)
	origY := append([]byte(nil), y...)

	eng.FFTButterfly(x, y, logM)
	eng.IFFTButterfly(x, y, logM)

	if string(x) != string(origX) || string(y) != string(origY) {
		t.Fatalf("FFTButterfly/IFFTButterfly not inverse for logM=%d", logM)
	}
}

func TestVariantString(t *testing.T) {
	for _, v := range allVariants {
		if v.String() == "Unknown" {
			t.Fatalf("variant %d stringified as Unknown", v)
		}
	}
}
