//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package digest selects the hash algorithms by name and serializes
// their state words into byte and text form.
package digest

import (
	stdsha1 "crypto/sha1"
	stdsha256 "crypto/sha256"
	stdsha512 "crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/markkurossi/fips180/sha1"
	"github.com/markkurossi/fips180/sha256"
	"github.com/markkurossi/fips180/sha512"
)

// ErrUnknownAlgorithm is returned for unsupported algorithm names.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// Algorithm identifies a hash algorithm.
type Algorithm int

// Supported algorithms.
const (
	SHA1 Algorithm = iota
	SHA256
	SHA512
)

var algorithmNames = map[Algorithm]string{
	SHA1:   "SHA-1",
	SHA256: "SHA-256",
	SHA512: "SHA-512",
}

func (alg Algorithm) String() string {
	name, ok := algorithmNames[alg]
	if ok {
		return name
	}
	return fmt.Sprintf("{Algorithm %d}", alg)
}

// Size returns the digest size in bytes.
func (alg Algorithm) Size() int {
	switch alg {
	case SHA1:
		return sha1.Size
	case SHA256:
		return sha256.Size
	case SHA512:
		return sha512.Size
	default:
		panic(fmt.Sprintf("invalid algorithm %v", alg))
	}
}

// BlockSize returns the block size in bytes.
func (alg Algorithm) BlockSize() int {
	switch alg {
	case SHA1:
		return sha1.BlockSize
	case SHA256:
		return sha256.BlockSize
	case SHA512:
		return sha512.BlockSize
	default:
		panic(fmt.Sprintf("invalid algorithm %v", alg))
	}
}

// WordSize returns the size of the state words in bytes.
func (alg Algorithm) WordSize() int {
	if alg == SHA512 {
		return 8
	}
	return 4
}

// Algorithms returns all supported algorithms.
func Algorithms() []Algorithm {
	return []Algorithm{SHA1, SHA256, SHA512}
}

// Parse parses the algorithm name. The names are case-insensitive and
// the dash is optional: "sha256", "SHA-256".
func Parse(name string) (Algorithm, error) {
	switch strings.ReplaceAll(strings.ToLower(name), "-", "") {
	case "sha1":
		return SHA1, nil
	case "sha256":
		return SHA256, nil
	case "sha512":
		return SHA512, nil
	default:
		return 0, errors.Wrapf(ErrUnknownAlgorithm, "%q", name)
	}
}

// Words returns the digest state words of data. The 32-bit words of
// SHA-1 and SHA-256 are widened to 64 bits.
func Words(alg Algorithm, data []byte) []uint64 {
	switch alg {
	case SHA1:
		d := sha1.Hash(data)
		return widen32(d[:])
	case SHA256:
		d := sha256.Hash(data)
		return widen32(d[:])
	case SHA512:
		return words64(sha512.Hash(data))
	default:
		panic(fmt.Sprintf("invalid algorithm %v", alg))
	}
}

func widen32(words []uint32) []uint64 {
	result := make([]uint64, len(words))
	for i, w := range words {
		result[i] = uint64(w)
	}
	return result
}

func words64(d sha512.Digest) []uint64 {
	return d[:]
}

// Sum returns the digest of data as bytes.
func Sum(alg Algorithm, data []byte) []byte {
	switch alg {
	case SHA1:
		d := sha1.Sum(data)
		return d[:]
	case SHA256:
		d := sha256.Sum(data)
		return d[:]
	case SHA512:
		d := sha512.Sum(data)
		return d[:]
	default:
		panic(fmt.Sprintf("invalid algorithm %v", alg))
	}
}

// Hex returns the digest of data as a lowercase hex string.
func Hex(alg Algorithm, data []byte) string {
	return hex.EncodeToString(Sum(alg, data))
}

// FormatWords formats the state words as space separated, zero padded
// hex numbers.
func FormatWords(alg Algorithm, words []uint64) string {
	width := alg.WordSize() * 2

	var sb strings.Builder
	for i, w := range words {
		if i > 0 {
			sb.WriteRune(' ')
		}
		fmt.Fprintf(&sb, "%0*x", width, w)
	}
	return sb.String()
}

// Chain returns the intermediate hash values of data: the initial
// hash value followed by the state after each padded block.
func Chain(alg Algorithm, data []byte) [][]uint64 {
	var result [][]uint64

	switch alg {
	case SHA1:
		state := sha1.Digest(sha1.H)
		result = append(result, widen32(state[:]))
		padded := sha1.Pad(data)
		for i := 0; i < len(padded); i += sha1.BlockSize {
			state = sha1.Block(state, padded[i:i+sha1.BlockSize])
			result = append(result, widen32(state[:]))
		}

	case SHA256:
		state := sha256.Digest(sha256.H)
		result = append(result, widen32(state[:]))
		padded := sha256.Pad(data)
		for i := 0; i < len(padded); i += sha256.BlockSize {
			state = sha256.Block(state, padded[i:i+sha256.BlockSize])
			result = append(result, widen32(state[:]))
		}

	case SHA512:
		state := sha512.Digest(sha512.H)
		result = append(result, words64(state))
		padded := sha512.Pad(data)
		for i := 0; i < len(padded); i += sha512.BlockSize {
			state = sha512.Block(state, padded[i:i+sha512.BlockSize])
			result = append(result, words64(state))
		}

	default:
		panic(fmt.Sprintf("invalid algorithm %v", alg))
	}
	return result
}

// Reference returns the Go standard library implementation of the
// algorithm.
func Reference(alg Algorithm) hash.Hash {
	switch alg {
	case SHA1:
		return stdsha1.New()
	case SHA256:
		return stdsha256.New()
	case SHA512:
		return stdsha512.New()
	default:
		panic(fmt.Sprintf("invalid algorithm %v", alg))
	}
}

// SumFile returns the digest of the file contents.
func SumFile(alg Algorithm, file string) ([]byte, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read '%s'", file)
	}
	return Sum(alg, data), nil
}
