package leopard16

// lowRateCodec is the orientation wrapper used when parityShards >
// dataShards: data occupies the low positions [0,m) (m=ceilPow2
// (dataShards)), parity occupies the high positions [m,m+parityShards).
// This is the dimension-swapped dual of highRateCodec's layout, needed
// because encodeCore's direct IFFT->FFT construction assumes the known
// set sits at the high positions and can be truncated to exactly the
// wanted output count — neither holds once the roles are swapped.
// encode therefore treats every parity shard as "erased" against the
// fully-present data shards and solves for it with the same general
// erasure solver (solveCore) decode uses; this is the standard
// systematic-code equivalence between encoding and decoding-from-full-
// knowledge, not a separate algorithm to keep in sync with decode.
type lowRateCodec struct {
	eng Engine
	s   shape
}

func (c lowRateCodec) encode(data, parity [][]byte) {
	shardLen := len(data[0])
	dataPresent := make([]bool, c.s.dataShards)
	for i := range dataPresent {
		dataPresent[i] = true
	}
	parityPresent := make([]bool, c.s.parityShards)

	_, recoveredParity := solveCore(c.eng, data, parity, dataPresent, parityPresent, c.s, shardLen)
	for i := range parity {
		copy(parity[i], recoveredParity[i])
	}
}

func (c lowRateCodec) decode(data, parity [][]byte, dataPresent, parityPresent []bool, shardLen int) [][]byte {
	recoveredData, _ := solveCore(c.eng, data, parity, dataPresent, parityPresent, c.s, shardLen)
	return recoveredData
}

// codec is the common interface highRateCodec and lowRateCodec satisfy,
// selected once per shape by newCodec.
type codec interface {
	encode(data, parity [][]byte)
	decode(data, parity [][]byte, dataPresent, parityPresent []bool, shardLen int) [][]byte
}

func newCodec(eng Engine, s shape) codec {
	if s.rate() == highRate {
		return highRateCodec{eng: eng, s: s}
	}
	return lowRateCodec{eng: eng, s: s}
}
