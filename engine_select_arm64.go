//go:build arm64

package leopard16

import "github.com/klauspost/cpuid/v2"

// selectPlatform prefers Neon, the only SIMD family cpuid reports on
// arm64, falling back to the portable table walk otherwise.
func selectPlatform() Engine {
	if cpuid.CPU.Has(cpuid.ASIMD) {
		return neonEngine{}
	}
	return noSimdEngine{}
}
