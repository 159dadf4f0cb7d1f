//go:build amd64

package leopard16

// selectPlatform prefers Avx2, then Ssse3, then the portable NoSimd table
// walk. Grounded on bpfs-defs/reedsolomon's o.useAVX2/o.useSSSE3 detection
// sequence in galois_amd64.go, generalized from the *options bitmask to
// klauspost/cpuid/v2 queried directly.
func selectPlatform() Engine {
	switch {
	case hasAVX2():
		return avx2Engine{}
	case hasSSSE3():
		return ssse3Engine{}
	default:
		return noSimdEngine{}
	}
}
