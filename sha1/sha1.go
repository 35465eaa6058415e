//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package sha1 implements the SHA-1 hash algorithm as defined in FIPS
// 180-1. The implementation follows the standard step by step and it
// is intended as a reference for the test vectors, not as a hardened
// primitive.
//
// SHA-1 is cryptographically broken and should not be used for secure
// applications.
package sha1

import (
	"encoding/binary"
	"math/bits"
)

const (
	// Size is the size of a SHA-1 checksum in bytes.
	Size = 20
	// BlockSize is the block size of SHA-1 in bytes.
	BlockSize = 64
	// LengthSize is the size of the message length trailer in bytes.
	LengthSize = 8
	// Rounds is the number of compression rounds per block.
	Rounds = 80
)

// K holds the round constants. Each constant is used for 20
// consecutive rounds.
var K = [4]uint32{0x5A827999, 0x6ED9EBA1, 0x8F1BBCDC, 0xCA62C1D6}

// H holds the initial hash value.
var H = [5]uint32{0x67452301, 0xEFCDAB89, 0x98BADCFE, 0x10325476, 0xC3D2E1F0}

// Digest contains the five state words of the hash.
type Digest [5]uint32

// Schedule contains the expanded message words of one block.
type Schedule [Rounds]uint32

// Bytes returns the digest words serialized in big-endian order.
func (d Digest) Bytes() [Size]byte {
	var result [Size]byte
	for i, v := range d {
		binary.BigEndian.PutUint32(result[i*4:], v)
	}
	return result
}

// Pad pads the message to a multiple of BlockSize bytes. The padded
// message contains the message bytes, one 0x80 byte, zero fill, and the
// message length in bits as a 64-bit big-endian integer.
func Pad(message []byte) []byte {
	l := len(message)
	p := (BlockSize - (l+1+LengthSize)%BlockSize) % BlockSize

	padded := make([]byte, l+1+p+LengthSize)
	copy(padded, message)
	padded[l] = 0x80
	binary.BigEndian.PutUint64(padded[len(padded)-LengthSize:], uint64(l)<<3)

	return padded
}

// Words decodes the block into 16 big-endian words.
func Words(block []byte) [16]uint32 {
	_ = block[BlockSize-1]

	var w [16]uint32
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(block[i*4:])
	}
	return w
}

// Expand computes the message schedule for the block.
func Expand(block []byte) Schedule {
	var w Schedule

	in := Words(block)
	copy(w[:], in[:])

	for t := 16; t < Rounds; t++ {
		w[t] = bits.RotateLeft32(w[t-3]^w[t-8]^w[t-14]^w[t-16], 1)
	}
	return w
}

// Compress runs the 80 rounds over the schedule w and returns the state
// with the final working variables added into it.
func Compress(state Digest, w *Schedule) Digest {
	a, b, c, d, e := state[0], state[1], state[2], state[3], state[4]

	// The four 20-round ranges differ only in the function f and the
	// constant K.
	t := 0
	for ; t < 20; t++ {
		f := b&c | ^b&d
		tmp := bits.RotateLeft32(a, 5) + f + e + w[t] + K[0]
		a, b, c, d, e = tmp, a, bits.RotateLeft32(b, 30), c, d
	}
	for ; t < 40; t++ {
		f := b ^ c ^ d
		tmp := bits.RotateLeft32(a, 5) + f + e + w[t] + K[1]
		a, b, c, d, e = tmp, a, bits.RotateLeft32(b, 30), c, d
	}
	for ; t < 60; t++ {
		f := b&c | b&d | c&d
		tmp := bits.RotateLeft32(a, 5) + f + e + w[t] + K[2]
		a, b, c, d, e = tmp, a, bits.RotateLeft32(b, 30), c, d
	}
	for ; t < Rounds; t++ {
		f := b ^ c ^ d
		tmp := bits.RotateLeft32(a, 5) + f + e + w[t] + K[3]
		a, b, c, d, e = tmp, a, bits.RotateLeft32(b, 30), c, d
	}

	state[0] += a
	state[1] += b
	state[2] += c
	state[3] += d
	state[4] += e

	return state
}

// Block processes one BlockSize block and returns the updated state.
func Block(state Digest, block []byte) Digest {
	w := Expand(block)
	return Compress(state, &w)
}

// Hash returns the SHA-1 state words of the message.
func Hash(message []byte) Digest {
	state := Digest(H)

	padded := Pad(message)
	for len(padded) > 0 {
		state = Block(state, padded[:BlockSize])
		padded = padded[BlockSize:]
	}
	return state
}

// Sum returns the SHA-1 checksum of the message.
func Sum(message []byte) [Size]byte {
	return Hash(message).Bytes()
}
