package leopard16

// highRateCodec is the orientation wrapper used when parityShards <=
// dataShards: parity occupies the low positions [0,m), data occupies
// the high positions [m,m+dataShards). encode uses the direct
// IFFT->FFT construction (encodeCore); decode uses the general
// erasure solver (solveCore). See DESIGN.md's Open Question entry on
// HighRate/LowRate unification.
type highRateCodec struct {
	eng Engine
	s   shape
}

func (c highRateCodec) encode(data, parity [][]byte) {
	encodeCore(c.eng, data, parity, c.s)
}

func (c highRateCodec) decode(data, parity [][]byte, dataPresent, parityPresent []bool, shardLen int) [][]byte {
	recoveredData, _ := solveCore(c.eng, data, parity, dataPresent, parityPresent, c.s, shardLen)
	return recoveredData
}
