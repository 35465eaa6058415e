//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha1

import (
	"bytes"
	stdsha1 "crypto/sha1"
	"encoding/binary"
	"strings"
	"testing"
)

var hashTests = []struct {
	in  string
	out Digest
}{
	{
		in:  "",
		out: Digest{0xda39a3ee, 0x5e6b4b0d, 0x3255bfef, 0x95601890, 0xafd80709},
	},
	{
		in:  "abc",
		out: Digest{0xa9993e36, 0x4706816a, 0xba3e2571, 0x7850c26c, 0x9cd0d89d},
	},
	{
		in:  "hello world",
		out: Digest{0x2aae6c35, 0xc94fcfb4, 0x15dbe95f, 0x408b9ce9, 0x1ee846ed},
	},
	{
		in:  "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq",
		out: Digest{0x84983e44, 0x1c3bd26e, 0xbaae4aa1, 0xf95129e5, 0xe54670f1},
	},
	{
		in:  strings.Repeat("abc", 5000),
		out: Digest{0x2ed315e2, 0x3eb0067f, 0xca759bce, 0x85eae2dc, 0xf180ac79},
	},
}

func TestHash(t *testing.T) {
	for idx, test := range hashTests {
		got := Hash([]byte(test.in))
		if got != test.out {
			t.Errorf("test %d: Hash=%08x, expected %08x", idx, got, test.out)
		}
	}
}

func TestHashMillionA(t *testing.T) {
	got := Hash(bytes.Repeat([]byte{'a'}, 1000000))
	expected := Digest{0x34aa973c, 0xd4c4daa4, 0xf61eeb2b, 0xdbad2731, 0x6534016f}
	if got != expected {
		t.Fatalf("Hash=%08x, expected %08x", got, expected)
	}
}

func TestSumReference(t *testing.T) {
	var data []byte
	for i := 0; i < 3*BlockSize+7; i++ {
		got := Sum(data)
		expected := stdsha1.Sum(data)
		if got != expected {
			t.Fatalf("len %d: Sum=%x, expected %x", i, got, expected)
		}
		data = append(data, byte(i*7+3))
	}
}

func TestHashDeterministic(t *testing.T) {
	msg := []byte("The quick brown fox jumps over the lazy dog")
	if Hash(msg) != Hash(msg) {
		t.Fatal("Hash is not deterministic")
	}
}

func TestPad(t *testing.T) {
	for l := 0; l <= 3*BlockSize; l++ {
		msg := bytes.Repeat([]byte{0xff}, l)
		padded := Pad(msg)

		if len(padded)%BlockSize != 0 {
			t.Fatalf("len %d: padded length %d not multiple of %d",
				l, len(padded), BlockSize)
		}
		if len(padded) < l+1+LengthSize || len(padded) >= l+1+LengthSize+BlockSize {
			t.Fatalf("len %d: padded length %d not minimal", l, len(padded))
		}
		if !bytes.Equal(padded[:l], msg) {
			t.Fatalf("len %d: message bytes modified", l)
		}
		if padded[l] != 0x80 {
			t.Fatalf("len %d: sentinel %02x", l, padded[l])
		}
		for i := l + 1; i < len(padded)-LengthSize; i++ {
			if padded[i] != 0 {
				t.Fatalf("len %d: non-zero fill at %d", l, i)
			}
		}
		bits := binary.BigEndian.Uint64(padded[len(padded)-LengthSize:])
		if bits != uint64(l)*8 {
			t.Fatalf("len %d: length field %d, expected %d", l, bits, l*8)
		}
	}
}

func TestPadBoundary(t *testing.T) {
	// 55 bytes + sentinel + length fills exactly one block.
	if n := len(Pad(make([]byte, 55))); n != BlockSize {
		t.Errorf("Pad(55)=%d bytes, expected %d", n, BlockSize)
	}
	if n := len(Pad(make([]byte, 56))); n != 2*BlockSize {
		t.Errorf("Pad(56)=%d bytes, expected %d", n, 2*BlockSize)
	}
	if n := len(Pad(nil)); n != BlockSize {
		t.Errorf("Pad(nil)=%d bytes, expected %d", n, BlockSize)
	}
}

func TestExpand(t *testing.T) {
	block := Pad([]byte("abc"))
	w := Expand(block)

	if w[0] != 0x61626380 {
		t.Errorf("W[0]=%08x", w[0])
	}
	if w[15] != 0x00000018 {
		t.Errorf("W[15]=%08x", w[15])
	}
	for i := 16; i < Rounds; i++ {
		v := w[i-3] ^ w[i-8] ^ w[i-14] ^ w[i-16]
		if w[i] != v<<1|v>>31 {
			t.Fatalf("W[%d]=%08x", i, w[i])
		}
	}
}

func TestBlockChaining(t *testing.T) {
	msg := bytes.Repeat([]byte("0123456789"), 20)
	padded := Pad(msg)
	if len(padded) < 2*BlockSize {
		t.Fatalf("message too short for chaining test")
	}
	state := Digest(H)
	for i := 0; i < len(padded); i += BlockSize {
		state = Block(state, padded[i:i+BlockSize])
	}
	if state != Hash(msg) {
		t.Fatalf("chained state %08x != Hash %08x", state, Hash(msg))
	}
	if state.Bytes() != stdsha1.Sum(msg) {
		t.Fatalf("chained state differs from crypto/sha1")
	}
}

func BenchmarkHash(b *testing.B) {
	data := make([]byte, 8192)
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Hash(data)
	}
}
