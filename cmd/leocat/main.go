// Command leocat is a minimal demonstration of the leopard16 encode/decode
// round trip: it reads a file, splits it into dataShards equal-sized
// shards (padding the last with zeros to a 64-byte multiple), computes
// parityShards recovery shards, discards up to parityShards of the
// original shards at random, and reconstructs the original to prove the round trip works.
// Grounded on bpfs-defs/reedsolomon/examples' simple-encoder.go shape;
// not part of the library's tested surface.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/dep2p/leopard16"
)

func main() {
	dataShards := flag.Int("data", 4, "number of original shards")
	parityShards := flag.Int("parity", 4, "number of recovery shards")
	path := flag.String("file", "", "file to round-trip")
	flag.Parse()

	if *path == "" {
		fmt.Fprintln(os.Stderr, "usage: leocat -file <path> [-data N] [-parity N]")
		os.Exit(2)
	}

	content, err := os.ReadFile(*path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "read:", err)
		os.Exit(1)
	}

	shardLen := (len(content) + *dataShards - 1) / *dataShards
	if rem := shardLen % 64; rem != 0 {
		shardLen += 64 - rem
	}
	if shardLen == 0 {
		shardLen = 64
	}

	originals := make([][]byte, *dataShards)
	for i := range originals {
		originals[i] = make([]byte, shardLen)
		start := i * shardLen
		if start < len(content) {
			end := start + shardLen
			if end > len(content) {
				end = len(content)
			}
			copy(originals[i], content[start:end])
		}
	}

	recoveries, err := leopard16.Encode(*dataShards, *parityShards, originals)
	if err != nil {
		fmt.Fprintln(os.Stderr, "encode:", err)
		os.Exit(1)
	}

	lossy := make([][]byte, *dataShards)
	copy(lossy, originals)
	drop := *parityShards
	if drop > *dataShards {
		drop = *dataShards
	}
	for _, i := range rand.Perm(*dataShards)[:drop] {
		lossy[i] = nil
	}

	recovered, err := leopard16.Decode(*dataShards, *parityShards, lossy, recoveries)
	if err != nil {
		fmt.Fprintln(os.Stderr, "decode:", err)
		os.Exit(1)
	}

	for i := range originals {
		if string(recovered[i]) != string(originals[i]) {
			fmt.Fprintf(os.Stderr, "shard %d mismatch after reconstruct\n", i)
			os.Exit(1)
		}
	}
	fmt.Printf("round trip OK: %d data + %d parity shards of %d bytes\n", *dataShards, *parityShards, shardLen)
}
