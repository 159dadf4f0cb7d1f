//go:build !amd64 && !arm64

package leopard16

// selectPlatform has no known SIMD family to probe on this architecture
// and always falls back to the portable table walk.
func selectPlatform() Engine {
	return noSimdEngine{}
}
