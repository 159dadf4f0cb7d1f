package leopard16

import "github.com/dep2p/leopard16/internal/presence"

// Encoder is the L4 accumulator for the encode direction: callers add
// original shards one at a time (in any order), and Encode computes the
// recovery shards once every original shard is present. Thin by design
// per spec.md §4.4 — all algorithmic weight lives in L3 (rate.go/core.go).
// Ported from bpfs-defs/reedsolomon's Encoder.Split/Encode accumulation
// pattern, generalized to incremental SetShard calls.
type Encoder struct {
	s        shape
	eng      Engine
	shardLen int
	data     [][]byte
	present  *presence.Tracker
}

// NewEncoder validates the (dataShards, parityShards) shape against
// spec.md §6's supported region and returns a fresh accumulator.
func NewEncoder(dataShards, parityShards int, opts ...Option) (*Encoder, error) {
	s, err := validateShape(dataShards, parityShards)
	if err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)
	return &Encoder{
		s:       s,
		eng:     cfg.engine(),
		data:    make([][]byte, dataShards),
		present: presence.New(dataShards),
	}, nil
}

// SetShard records the original shard at index i. Every original shard
// must be the same length, a positive multiple of 64 bytes, and set
// exactly once before Encode.
func (e *Encoder) SetShard(i int, shard []byte) error {
	if i < 0 || i >= e.s.dataShards {
		log.Warnf("leopard16: SetShard index %d out of range [0,%d)", i, e.s.dataShards)
		return ErrIndexOutOfRange
	}
	if e.present.Has(i) {
		log.Warnf("leopard16: SetShard index %d already set", i)
		return ErrDuplicateShardIndex
	}
	if len(shard) == 0 || len(shard)%64 != 0 {
		return ErrInvalidShardSize
	}
	if e.shardLen == 0 {
		e.shardLen = len(shard)
	} else if len(shard) != e.shardLen {
		return ErrShardSizeMismatch
	}
	e.data[i] = shard
	e.present.Mark(i)
	return nil
}

// Encode computes the parityShards recovery shards for the original
// shards added so far. Every original shard must have been set.
func (e *Encoder) Encode() ([][]byte, error) {
	if !e.present.Full() {
		log.Warnf("leopard16: Encode called with %d/%d original shards set", e.present.Count(), e.s.dataShards)
		return nil, ErrNotEnoughOriginalShardsAdded
	}
	parity := make([][]byte, e.s.parityShards)
	for i := range parity {
		parity[i] = make([]byte, e.shardLen)
	}
	newCodec(e.eng, e.s).encode(e.data, parity)
	return parity, nil
}

// Reset clears every accumulated shard so the Encoder can be reused for a
// new set of original shards of the same shape.
func (e *Encoder) Reset() {
	for i := range e.data {
		e.data[i] = nil
	}
	e.present.Reset()
	e.shardLen = 0
}
