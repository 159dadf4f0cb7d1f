package leopard16

import (
	"bytes"
	"testing"
)

func TestEncoderReset(t *testing.T) {
	enc, err := NewEncoder(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	a := bytes.Repeat([]byte{1}, 64)
	b := bytes.Repeat([]byte{2}, 64)
	if err := enc.SetShard(0, a); err != nil {
		t.Fatal(err)
	}
	if err := enc.SetShard(1, b); err != nil {
		t.Fatal(err)
	}
	if _, err := enc.Encode(); err != nil {
		t.Fatal(err)
	}

	enc.Reset()
	if _, err := enc.Encode(); err != ErrNotEnoughOriginalShardsAdded {
		t.Fatalf("Encode after Reset = %v, want ErrNotEnoughOriginalShardsAdded", err)
	}

	c := bytes.Repeat([]byte{3}, 64)
	d := bytes.Repeat([]byte{4}, 64)
	if err := enc.SetShard(0, c); err != nil {
		t.Fatal(err)
	}
	if err := enc.SetShard(1, d); err != nil {
		t.Fatal(err)
	}
	if _, err := enc.Encode(); err != nil {
		t.Fatal(err)
	}
}

func TestDecoderReset(t *testing.T) {
	dec, err := NewDecoder(3, 2)
	if err != nil {
		t.Fatal(err)
	}
	if err := dec.SetDataShard(0, make([]byte, 64)); err != nil {
		t.Fatal(err)
	}
	dec.Reset()
	if err := dec.SetDataShard(0, make([]byte, 64)); err != nil {
		t.Fatalf("SetDataShard after Reset = %v, want nil", err)
	}
}
