package leopard16

import "github.com/dep2p/leopard16/internal/presence"

// Decoder is the L4 accumulator for the decode direction: callers add
// whatever original and recovery shards they have, indexed, in any order,
// and Reconstruct recovers every missing original shard once at least
// dataShards total shards are present. Thin by design per spec.md §4.4.
// Ported from bpfs-defs/reedsolomon's Reconstruct/ReconstructData
// accumulation pattern.
type Decoder struct {
	s             shape
	eng           Engine
	shardLen      int
	data          [][]byte
	parity        [][]byte
	dataPresent   *presence.Tracker
	parityPresent *presence.Tracker
}

// NewDecoder validates the (dataShards, parityShards) shape against
// spec.md §6's supported region and returns a fresh accumulator.
func NewDecoder(dataShards, parityShards int, opts ...Option) (*Decoder, error) {
	s, err := validateShape(dataShards, parityShards)
	if err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)
	return &Decoder{
		s:             s,
		eng:           cfg.engine(),
		data:          make([][]byte, dataShards),
		parity:        make([][]byte, parityShards),
		dataPresent:   presence.New(dataShards),
		parityPresent: presence.New(parityShards),
	}, nil
}

// SetDataShard records an available original shard at index i.
func (d *Decoder) SetDataShard(i int, shard []byte) error {
	if i < 0 || i >= d.s.dataShards {
		log.Warnf("leopard16: SetDataShard index %d out of range [0,%d)", i, d.s.dataShards)
		return ErrIndexOutOfRange
	}
	if d.dataPresent.Has(i) {
		return ErrDuplicateShardIndex
	}
	if err := d.checkLen(shard); err != nil {
		return err
	}
	d.data[i] = shard
	d.dataPresent.Mark(i)
	return nil
}

// SetParityShard records an available recovery shard at index i.
func (d *Decoder) SetParityShard(i int, shard []byte) error {
	if i < 0 || i >= d.s.parityShards {
		log.Warnf("leopard16: SetParityShard index %d out of range [0,%d)", i, d.s.parityShards)
		return ErrIndexOutOfRange
	}
	if d.parityPresent.Has(i) {
		return ErrDuplicateShardIndex
	}
	if err := d.checkLen(shard); err != nil {
		return err
	}
	d.parity[i] = shard
	d.parityPresent.Mark(i)
	return nil
}

func (d *Decoder) checkLen(shard []byte) error {
	if len(shard) == 0 || len(shard)%64 != 0 {
		return ErrInvalidShardSize
	}
	if d.shardLen == 0 {
		d.shardLen = len(shard)
	} else if len(shard) != d.shardLen {
		return ErrShardSizeMismatch
	}
	return nil
}

// Reconstruct recovers every missing original shard. Requires at least
// dataShards shards total (original plus recovery) to be present. Per
// spec.md §4.3.2's tie-break, if every data shard is already present no
// recovery work is needed; Reconstruct returns an empty restoration set
// rather than running the FFT pipeline to produce a pass-through copy
// of shards the caller already has.
func (d *Decoder) Reconstruct() ([][]byte, error) {
	if d.dataPresent.Full() {
		return [][]byte{}, nil
	}
	total := d.dataPresent.Count() + d.parityPresent.Count()
	if total < d.s.dataShards {
		log.Warnf("leopard16: Reconstruct called with %d/%d shards present", total, d.s.dataShards)
		return nil, ErrInsufficientShards
	}
	c := newCodec(d.eng, d.s)
	return c.decode(d.data, d.parity, d.dataPresent.Bools(), d.parityPresent.Bools(), d.shardLen), nil
}

// Reset clears every accumulated shard so the Decoder can be reused.
func (d *Decoder) Reset() {
	for i := range d.data {
		d.data[i] = nil
	}
	for i := range d.parity {
		d.parity[i] = nil
	}
	d.dataPresent.Reset()
	d.parityPresent.Reset()
	d.shardLen = 0
}
