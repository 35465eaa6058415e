//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package prg implements a deterministic ChaCha20-based pseudorandom
// generator. It produces reproducible messages for self tests and
// benchmarks and it must not be used as a source of secrets.
package prg

import (
	"encoding/binary"

	"golang.org/x/crypto/chacha20"

	"github.com/markkurossi/fips180/sha256"
)

// PRG expands a seed into a ChaCha20 keystream. PRG is not safe for
// concurrent use.
type PRG struct {
	cipher *chacha20.Cipher
	buf    [8]byte
}

// New creates a generator for the seed. The ChaCha20 key is the
// SHA-256 digest of the seed and the nonce is zero, so equal seeds
// produce equal streams.
func New(seed []byte) *PRG {
	key := sha256.Sum(seed)
	var nonce [chacha20.NonceSize]byte

	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		// Key and nonce sizes are constants.
		panic(err)
	}
	return &PRG{
		cipher: c,
	}
}

// Read fills p with keystream bytes. It never fails.
func (prg *PRG) Read(p []byte) (int, error) {
	clear(p)
	prg.cipher.XORKeyStream(p, p)
	return len(p), nil
}

// Message returns n pseudorandom bytes.
func (prg *PRG) Message(n int) []byte {
	result := make([]byte, n)
	prg.Read(result)
	return result
}

// Uint64 returns a pseudorandom 64-bit value.
func (prg *PRG) Uint64() uint64 {
	prg.Read(prg.buf[:])
	return binary.BigEndian.Uint64(prg.buf[:])
}

// Intn returns a pseudorandom value in [0,n). It panics if n <= 0.
func (prg *PRG) Intn(n int) int {
	if n <= 0 {
		panic("prg: invalid argument to Intn")
	}
	// Rejection sampling removes the modulo bias.
	limit := ^uint64(0) - ^uint64(0)%uint64(n)
	for {
		v := prg.Uint64()
		if v < limit {
			return int(v % uint64(n))
		}
	}
}
