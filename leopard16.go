package leopard16

// Encode is a one-shot convenience wrapper around Encoder for callers
// that already have every original shard in hand. It returns the
// parityShards recovery shards. Grounded on bpfs-defs/reedsolomon's
// package-level Encode(shards) convenience on top of its Encoder.
func Encode(dataShards, parityShards int, originals [][]byte, opts ...Option) ([][]byte, error) {
	enc, err := NewEncoder(dataShards, parityShards, opts...)
	if err != nil {
		return nil, err
	}
	for i, shard := range originals {
		if err := enc.SetShard(i, shard); err != nil {
			return nil, err
		}
	}
	return enc.Encode()
}

// Decode is a one-shot convenience wrapper around Decoder. originals and
// recoveries are sparse: a nil entry means that shard is absent. It
// returns the full set of dataShards original shards, using whichever
// ones were already present verbatim — unless every original shard was
// already present, per spec.md §4.3.2's tie-break, in which case no
// recovery work is necessary and Decode returns an empty slice.
func Decode(dataShards, parityShards int, originals, recoveries [][]byte, opts ...Option) ([][]byte, error) {
	dec, err := NewDecoder(dataShards, parityShards, opts...)
	if err != nil {
		return nil, err
	}
	for i, shard := range originals {
		if shard == nil {
			continue
		}
		if err := dec.SetDataShard(i, shard); err != nil {
			return nil, err
		}
	}
	for i, shard := range recoveries {
		if shard == nil {
			continue
		}
		if err := dec.SetParityShard(i, shard); err != nil {
			return nil, err
		}
	}
	return dec.Reconstruct()
}
