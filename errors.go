package leopard16

import "errors"

// Sentinel errors returned across the public API. All of them are
// contract violations in the sense of spec.md §7: surfaced to the caller
// verbatim, never wrapped, never retried.
var (
	// ErrInvalidShardSize is returned when a shard's length is zero or not
	// a multiple of 64 bytes.
	ErrInvalidShardSize = errors.New("leopard16: shard size must be a positive multiple of 64 bytes")

	// ErrShardCountOutOfRange is returned when dataShards or parityShards
	// falls outside [1, 65535].
	ErrShardCountOutOfRange = errors.New("leopard16: shard count out of range")

	// ErrUnsupportedShape is returned when (dataShards, parityShards) does
	// not fall inside the supported region described in spec.md §6.
	ErrUnsupportedShape = errors.New("leopard16: unsupported (dataShards, parityShards) shape")

	// ErrDuplicateShardIndex is returned when the same shard index is
	// added to an accumulator twice.
	ErrDuplicateShardIndex = errors.New("leopard16: duplicate shard index")

	// ErrIndexOutOfRange is returned when a shard index is negative or
	// not below the accumulator's configured shard count.
	ErrIndexOutOfRange = errors.New("leopard16: shard index out of range")

	// ErrInsufficientShards is returned when fewer than dataShards total
	// shards (original + recovery) are available to decode.
	ErrInsufficientShards = errors.New("leopard16: insufficient shards to reconstruct")

	// ErrNotEnoughOriginalShardsAdded is returned by Encoder.Encode when
	// not all dataShards original shards have been added yet.
	ErrNotEnoughOriginalShardsAdded = errors.New("leopard16: not all original shards have been added")

	// ErrShardSizeMismatch is returned when shards passed to the same
	// call or accumulator disagree on length.
	ErrShardSizeMismatch = errors.New("leopard16: shard length mismatch")
)
