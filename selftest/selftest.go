//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package selftest verifies the hash implementations against known
// answers and against the Go standard library.
package selftest

import (
	"bytes"
	"fmt"
	"io"
	"math/bits"
	"strings"

	"github.com/markkurossi/tabulate"
	"github.com/pkg/errors"

	"github.com/markkurossi/fips180/digest"
	"github.com/markkurossi/fips180/prg"
)

// ErrMismatch is returned when a digest differs from the reference.
var ErrMismatch = errors.New("digest mismatch")

// Vector defines a known-answer test. The message is Text repeated
// Repeat times.
type Vector struct {
	Alg    digest.Algorithm
	Name   string
	Text   string
	Repeat int
	Digest string
}

// Message returns the test message.
func (v Vector) Message() []byte {
	n := v.Repeat
	if n == 0 {
		n = 1
	}
	return []byte(strings.Repeat(v.Text, n))
}

const (
	msg448 = "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq"
	msg896 = "abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmn" +
		"hijklmnoijklmnopjklmnopqklmnopqrlmnopqrsmnopqrstnopqrstu"
)

var vectors = []Vector{
	{digest.SHA1, "empty", "", 1,
		"da39a3ee5e6b4b0d3255bfef95601890afd80709"},
	{digest.SHA1, "abc", "abc", 1,
		"a9993e364706816aba3e25717850c26c9cd0d89d"},
	{digest.SHA1, "hello world", "hello world", 1,
		"2aae6c35c94fcfb415dbe95f408b9ce91ee846ed"},
	{digest.SHA1, "448 bits", msg448, 1,
		"84983e441c3bd26ebaae4aa1f95129e5e54670f1"},
	{digest.SHA1, "abc×5000", "abc", 5000,
		"2ed315e23eb0067fca759bce85eae2dcf180ac79"},
	{digest.SHA1, "a×10⁶", "a", 1000000,
		"34aa973cd4c4daa4f61eeb2bdbad27316534016f"},

	{digest.SHA256, "empty", "", 1,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
	{digest.SHA256, "abc", "abc", 1,
		"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
	{digest.SHA256, "hello world", "hello world", 1,
		"b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"},
	{digest.SHA256, "448 bits", msg448, 1,
		"248d6a61d20638b8e5c026930c3e6039a33ce45964ff2167f6ecedd419db06c1"},
	{digest.SHA256, "a×1000", "a", 1000,
		"41edece42d63e8d9bf515a9ba6932e1c20cbc9f5a5d134645adb5db1b9737ea3"},
	{digest.SHA256, "a×10⁶", "a", 1000000,
		"cdc76e5c9914fb9281a1c7e284d73e67f1809a48a497200e046d39ccc7112cd0"},

	{digest.SHA512, "empty", "", 1,
		"cf83e1357eefb8bdf1542850d66d8007d620e4050b5715dc83f4a921d36ce9ce" +
			"47d0d13c5d85f2b0ff8318d2877eec2f63b931bd47417a81a538327af927da3e"},
	{digest.SHA512, "abc", "abc", 1,
		"ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a" +
			"2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f"},
	{digest.SHA512, "hello world", "hello world", 1,
		"309ecc489c12d6eb4cc40f50c902f2b4d0ed77ee511a7c7a9bcd3ca86d4cd86f" +
			"989dd35bc5ff499670da34255b45b0cfd830e81f605dcf7dc5542e93ae9cd76f"},
	{digest.SHA512, "896 bits", msg896, 1,
		"8e959b75dae313da8cf4f72814fc143f8f7779c6eb9f7fa17299aeadb6889018" +
			"501d289e4900f7e4331b99dec4b5433ac7d329eeb6dd26545e96e55b874be909"},
	{digest.SHA512, "a×10⁶", "a", 1000000,
		"e718483d0ce769644e2e42c7bc15b4638e1f98b13b2044285632a803afa973eb" +
			"de0ff244877ea60a4cb0432ce577c31beb009c5c2c49aa2e4eadb217ad8cc09b"},
}

// Vectors returns the known-answer tests.
func Vectors() []Vector {
	return vectors
}

// Result contains the outcome of one known-answer test.
type Result struct {
	Vector Vector
	Got    string
}

// OK tests if the computed digest matched the expected one.
func (r Result) OK() bool {
	return r.Got == r.Vector.Digest
}

// Run runs the known-answer tests.
func Run(vectors []Vector) []Result {
	var results []Result
	for _, v := range vectors {
		results = append(results, Result{
			Vector: v,
			Got:    digest.Hex(v.Alg, v.Message()),
		})
	}
	return results
}

// Failed returns the number of failed results.
func Failed(results []Result) int {
	var count int
	for _, r := range results {
		if !r.OK() {
			count++
		}
	}
	return count
}

// Print prints the results as a table.
func Print(w io.Writer, results []Result) {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Algorithm").SetAlign(tabulate.ML)
	tab.Header("Message").SetAlign(tabulate.ML)
	tab.Header("Digest").SetAlign(tabulate.ML)
	tab.Header("Result").SetAlign(tabulate.ML)

	for _, r := range results {
		row := tab.Row()
		row.Column(r.Vector.Alg.String())
		row.Column(r.Vector.Name)
		row.Column(r.Got)
		if r.OK() {
			row.Column("ok")
		} else {
			row.Column("FAIL").SetFormat(tabulate.FmtBold)
		}
	}
	tab.Print(w)
}

// CrossCheck compares the algorithm against the Go standard library
// implementation. It checks all message lengths up to two blocks,
// which cover every padding boundary, and count random messages of at
// most maxLen bytes.
func CrossCheck(alg digest.Algorithm, rand *prg.PRG, count, maxLen int) error {
	check := func(data []byte) error {
		ref := digest.Reference(alg)
		ref.Write(data)
		expected := ref.Sum(nil)

		got := digest.Sum(alg, data)
		if !bytes.Equal(got, expected) {
			return errors.Wrapf(ErrMismatch, "%v: length %d: got %x, expected %x",
				alg, len(data), got, expected)
		}
		return nil
	}

	for l := 0; l <= 2*alg.BlockSize()+1; l++ {
		if err := check(rand.Message(l)); err != nil {
			return err
		}
	}
	if maxLen <= 0 {
		return nil
	}
	for i := 0; i < count; i++ {
		if err := check(rand.Message(rand.Intn(maxLen + 1))); err != nil {
			return err
		}
	}
	return nil
}

// Avalanche flips one random input bit of random messages of msgLen
// bytes and returns the mean fraction of changed output bits.
func Avalanche(alg digest.Algorithm, rand *prg.PRG, trials, msgLen int) (
	float64, error) {

	if trials <= 0 || msgLen <= 0 {
		return 0, fmt.Errorf("invalid avalanche parameters: trials=%d, len=%d",
			trials, msgLen)
	}

	var changed int
	for i := 0; i < trials; i++ {
		msg := rand.Message(msgLen)
		a := digest.Sum(alg, msg)

		bit := rand.Intn(msgLen * 8)
		msg[bit/8] ^= 1 << (bit % 8)
		b := digest.Sum(alg, msg)

		for j := range a {
			changed += bits.OnesCount8(a[j] ^ b[j])
		}
	}
	return float64(changed) / float64(trials*alg.Size()*8), nil
}
