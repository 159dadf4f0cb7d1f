package leopard16

import logging "github.com/dep2p/log"

// log emits warn-level diagnostics at the L4 accumulator boundaries only
// (duplicate/out-of-range shard indices, premature Encode/Reconstruct
// calls); the L1-L3 hot path never logs. Ported from
// bpfs-defs/reedsolomon/log.go's SetupLogging call.
var log = logging.Logger("leopard16")

func init() {
	logging.SetupLogging(logging.Config{
		Format: logging.JSONOutput,
		Stderr: true,
		Level:  logging.LevelInfo,
	})
}
