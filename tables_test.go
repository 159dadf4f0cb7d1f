package leopard16

import "testing"

// Field identities (spec.md §8, quantified invariant on EXP/LOG).
func TestFieldIdentities(t *testing.T) {
	ensureTables()

	for x := 1; x < order; x++ {
		if got := expLUT[logLUT[x]]; got != ffe(x) {
			t.Fatalf("EXP[LOG[%d]] = %d, want %d", x, got, x)
		}
	}

	seen := make(map[ffe]bool, modulus)
	for i := ffe(0); i < modulus; i++ {
		v := expLUT[i]
		if seen[v] {
			t.Fatalf("EXP table not injective: value %d repeats at log %d", v, i)
		}
		seen[v] = true
	}
}

func TestAddSubModRoundTrip(t *testing.T) {
	ensureTables()
	cases := []struct{ a, b ffe }{
		{0, 0}, {1, 1}, {modulus, 1}, {100, 200}, {modulus - 1, modulus - 1},
	}
	for _, c := range cases {
		sum := addMod(c.a, c.b)
		if got := subMod(sum, c.b); got != c.a {
			t.Fatalf("subMod(addMod(%d,%d),%d) = %d, want %d", c.a, c.b, c.b, got, c.a)
		}
		if sum >= order {
			t.Fatalf("addMod(%d,%d) = %d out of ffe range", c.a, c.b, sum)
		}
	}
}

func TestMulLogIdentity(t *testing.T) {
	ensureTables()
	// Multiplying by log(1) == 0 is the identity.
	for x := 0; x < order; x += 997 {
		if got := mulLog(ffe(x), 0); got != ffe(x) {
			t.Fatalf("mulLog(%d, 0) = %d, want %d", x, got, x)
		}
	}
}

func TestCeilPow2(t *testing.T) {
	cases := map[int]int{1: 1, 2: 2, 3: 4, 4: 4, 5: 8, 255: 256, 256: 256, 32768: 32768, 32769: 65536}
	for n, want := range cases {
		if got := ceilPow2(n); got != want {
			t.Fatalf("ceilPow2(%d) = %d, want %d", n, got, want)
		}
	}
}
