package truststore

import (
	"bytes"
	"testing"
)

func TestCompressEvenY(t *testing.T) {
	key := make([]byte, 65)
	key[0] = 0x04
	key[1] = 0xAB // first byte of X
	key[64] = 0x02

	got := Compress(key)
	if len(got) != 33 || got[0] != 0x02 {
		t.Fatalf("Compress = %x; want 33 bytes with 0x02 prefix", got)
	}
	if !bytes.Equal(got[1:], key[1:33]) {
		t.Error("compressed key does not carry X coordinate")
	}
}

func TestCompressOddY(t *testing.T) {
	key := make([]byte, 65)
	key[0] = 0x04
	key[64] = 0x03

	if got := Compress(key); got[0] != 0x03 {
		t.Errorf("prefix = 0x%02X; want 0x03 for odd Y", got[0])
	}
}

func TestCompressPassesThroughOtherShapes(t *testing.T) {
	in := []byte{0x02, 0x01, 0x02}
	got := Compress(in)
	if !bytes.Equal(got, in) {
		t.Errorf("Compress(%x) = %x; want unchanged copy", in, got)
	}
	got[0] = 0xFF
	if in[0] == 0xFF {
		t.Error("Compress must return a copy, not alias the input")
	}
}
