//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package digest

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var hexTests = []struct {
	alg Algorithm
	in  string
	out string
}{
	{SHA1, "hello world", "2aae6c35c94fcfb415dbe95f408b9ce91ee846ed"},
	{SHA256, "hello world",
		"b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"},
	{SHA512, "hello world",
		"309ecc489c12d6eb4cc40f50c902f2b4d0ed77ee511a7c7a9bcd3ca86d4cd86f" +
			"989dd35bc5ff499670da34255b45b0cfd830e81f605dcf7dc5542e93ae9cd76f"},
	{SHA1, "", "da39a3ee5e6b4b0d3255bfef95601890afd80709"},
}

func TestHex(t *testing.T) {
	for _, test := range hexTests {
		require.Equal(t, test.out, Hex(test.alg, []byte(test.in)),
			"%v(%q)", test.alg, test.in)
	}
}

func TestParse(t *testing.T) {
	for name, expected := range map[string]Algorithm{
		"sha1":    SHA1,
		"SHA-1":   SHA1,
		"sha256":  SHA256,
		"Sha-256": SHA256,
		"sha512":  SHA512,
		"SHA-512": SHA512,
	} {
		alg, err := Parse(name)
		require.NoError(t, err, name)
		require.Equal(t, expected, alg, name)
	}

	_, err := Parse("md5")
	require.ErrorIs(t, err, ErrUnknownAlgorithm)
	require.Contains(t, err.Error(), "md5")
}

func TestSizes(t *testing.T) {
	for _, alg := range Algorithms() {
		require.Len(t, Sum(alg, nil), alg.Size(), alg.String())
		require.Len(t, Words(alg, nil), alg.Size()/alg.WordSize(), alg.String())
	}
	require.Equal(t, 64, SHA256.BlockSize())
	require.Equal(t, 128, SHA512.BlockSize())
	require.Equal(t, "{Algorithm 7}", Algorithm(7).String())
}

func TestReference(t *testing.T) {
	data := bytes.Repeat([]byte("reference "), 100)
	for _, alg := range Algorithms() {
		h := Reference(alg)
		h.Write(data)
		require.Equal(t, h.Sum(nil), Sum(alg, data), alg.String())
	}
}

func TestFormatWords(t *testing.T) {
	require.Equal(t, "a9993e36 4706816a ba3e2571 7850c26c 9cd0d89d",
		FormatWords(SHA1, Words(SHA1, []byte("abc"))))
	require.Equal(t, "0000000000000001 00000000000000ff",
		FormatWords(SHA512, []uint64{1, 255}))
}

func TestChain(t *testing.T) {
	data := bytes.Repeat([]byte{'x'}, 300)
	for _, alg := range Algorithms() {
		chain := Chain(alg, data)

		blocks := (len(data) + 1 + 2*alg.WordSize() + alg.BlockSize() - 1) /
			alg.BlockSize()
		require.Len(t, chain, blocks+1, alg.String())
		require.Equal(t, Words(alg, data), chain[len(chain)-1], alg.String())

		// Every intermediate value must be distinct.
		for i := 1; i < len(chain); i++ {
			require.NotEqual(t, chain[i-1], chain[i], "%v block %d", alg, i)
		}
	}
}

func TestSumFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "data")
	require.NoError(t, os.WriteFile(file, []byte("hello world"), 0o644))

	sum, err := SumFile(SHA256, file)
	require.NoError(t, err)
	require.Equal(t, Sum(SHA256, []byte("hello world")), sum)

	_, err = SumFile(SHA256, filepath.Join(dir, "missing"))
	require.Error(t, err)
	require.ErrorIs(t, err, fs.ErrNotExist)
	require.Contains(t, err.Error(), "missing")
}
