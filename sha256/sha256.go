//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package sha256 implements the SHA-256 hash algorithm as defined in
// FIPS 180-2.
package sha256

import (
	"encoding/binary"
	"math/bits"
)

const (
	// Size is the size of a SHA-256 checksum in bytes.
	Size = 32
	// BlockSize is the block size of SHA-256 in bytes.
	BlockSize = 64
	// LengthSize is the size of the message length trailer in bytes.
	LengthSize = 8
	// Rounds is the number of compression rounds per block.
	Rounds = 64
)

// H holds the initial hash value: the first 32 bits of the fractional
// parts of the square roots of the first 8 primes.
var H = [8]uint32{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

// K holds the round constants: the first 32 bits of the fractional
// parts of the cube roots of the first 64 primes.
var K = [Rounds]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5,
	0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3,
	0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc,
	0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7,
	0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13,
	0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3,
	0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5,
	0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208,
	0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

// Digest contains the eight state words of the hash.
type Digest [8]uint32

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

// Ch returns the choose function: bits of y where x is set, bits of z
// elsewhere.
func Ch(x, y, z uint32) uint32 {
	return x&y ^ ^x&z
}

// Maj returns the bitwise majority of x, y, and z.
func Maj(x, y, z uint32) uint32 {
	return x&y ^ x&z ^ y&z
}

// BigSigma0 is the Σ0 function applied to the working variable a.
func BigSigma0(x uint32) uint32 {
	return bits.RotateLeft32(x, -2) ^ bits.RotateLeft32(x, -13) ^
		bits.RotateLeft32(x, -22)
}

// BigSigma1 is the Σ1 function applied to the working variable e.
func BigSigma1(x uint32) uint32 {
	return bits.RotateLeft32(x, -6) ^ bits.RotateLeft32(x, -11) ^
		bits.RotateLeft32(x, -25)
}

// SmallSigma0 is the σ0 function of the message schedule.
func SmallSigma0(x uint32) uint32 {
	return bits.RotateLeft32(x, -7) ^ bits.RotateLeft32(x, -18) ^ x>>3
}

// SmallSigma1 is the σ1 function of the message schedule.
func SmallSigma1(x uint32) uint32 {
	return bits.RotateLeft32(x, -17) ^ bits.RotateLeft32(x, -19) ^ x>>10
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
		w[t] = SmallSigma1(w[t-2]) + w[t-7] + SmallSigma0(w[t-15]) + w[t-16]
	}
	return w
}

// Compress runs the 64 rounds over the schedule w and returns the state
// with the final working variables added into it.
func Compress(state Digest, w *Schedule) Digest {
	a, b, c, d := state[0], state[1], state[2], state[3]
	e, f, g, h := state[4], state[5], state[6], state[7]

	for t := 0; t < Rounds; t++ {
		t1 := h + BigSigma1(e) + Ch(e, f, g) + K[t] + w[t]
		t2 := BigSigma0(a) + Maj(a, b, c)

		h = g
		g = f
		f = e
		e = d + t1
		d = c
		c = b
		b = a
		a = t1 + t2
	}

	state[0] += a
	state[1] += b
	state[2] += c
	state[3] += d
	state[4] += e
	state[5] += f
	state[6] += g
	state[7] += h

	return state
}

// Block processes one BlockSize block and returns the updated state.
func Block(state Digest, block []byte) Digest {
	w := Expand(block)
	return Compress(state, &w)
}

// Hash returns the SHA-256 state words of the message.
func Hash(message []byte) Digest {
	state := Digest(H)

	padded := Pad(message)
	for len(padded) > 0 {
		state = Block(state, padded[:BlockSize])
		padded = padded[BlockSize:]
	}
	return state
}

// Sum returns the SHA-256 checksum of the message.
func Sum(message []byte) [Size]byte {
	return Hash(message).Bytes()
}
