package leopard16

// Rate/algorithm layer (L3). Ported from leopard.go's leopardFF16, but
// generalized into a genuine dual arrangement rather than one formula
// applied blindly to both regimes: leopardFF16's single
// m=ceilPow2(parityShards)/n=ceilPow2(m+dataShards) pair only fits the
// HighRate region (parityShards<=dataShards); the far end of spec.md
// §6's asymmetric table (e.g. dataShards=4096, parityShards=61440)
// overflows n past the order-65536 transform under that formula even
// though the code length dataShards+parityShards never exceeds it.
// HighRate and LowRate below anchor m on whichever shard count is
// smaller and place the larger count at the high end of the transform,
// mirroring each other exactly — see DESIGN.md's Open Question entry.

// shape holds the resolved transform sizes and position layout for a
// (dataShards, parityShards) pair. m is a power of two derived from the
// smaller of the two shard counts; that smaller count occupies
// positions [0, m) (padded past its own count with always-erased
// filler), and the larger count occupies positions [m, m+larger). n is
// the full transform width, the smallest power of two >= m+larger.
type shape struct {
	dataShards   int
	parityShards int
	m            int
	n            int
}

// validateShape checks dataShards/parityShards against spec.md §6's
// supported region and, if valid, resolves the transform sizes used by
// every L3 operation.
func validateShape(dataShards, parityShards int) (shape, error) {
	if dataShards < 1 || dataShards > 65535 || parityShards < 1 || parityShards > 65535 {
		return shape{}, ErrShardCountOutOfRange
	}
	var m, n int
	if parityShards <= dataShards {
		m = ceilPow2(parityShards)
		n = ceilPow2(m + dataShards)
	} else {
		m = ceilPow2(dataShards)
		n = ceilPow2(m + parityShards)
	}
	if n > order {
		return shape{}, ErrUnsupportedShape
	}
	return shape{dataShards: dataShards, parityShards: parityShards, m: m, n: n}, nil
}

// rate classifies a shape as HighRate (parityShards <= dataShards) or
// LowRate (parityShards > dataShards). The two regimes anchor m on
// opposite shard counts; see dataPos/parityPos.
type rate int

const (
	highRate rate = iota
	lowRate
)

func (s shape) rate() rate {
	if s.parityShards <= s.dataShards {
		return highRate
	}
	return lowRate
}

// dataPos returns the transform position of data shard i.
func (s shape) dataPos(i int) int {
	if s.rate() == highRate {
		return s.m + i
	}
	return i
}

// parityPos returns the transform position of parity shard i.
func (s shape) parityPos(i int) int {
	if s.rate() == highRate {
		return i
	}
	return s.m + i
}

// anchorCount is the shard count m is derived from — the low-position,
// padded-to-m side: parityShards for HighRate, dataShards for LowRate.
func (s shape) anchorCount() int {
	if s.rate() == highRate {
		return s.parityShards
	}
	return s.dataShards
}

// extCount is the shard count occupying the high positions [m, m+ext):
// dataShards for HighRate, parityShards for LowRate.
func (s shape) extCount() int {
	if s.rate() == highRate {
		return s.dataShards
	}
	return s.parityShards
}
