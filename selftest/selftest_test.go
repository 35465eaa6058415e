//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package selftest

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/markkurossi/fips180/digest"
	"github.com/markkurossi/fips180/prg"
)

func TestVectors(t *testing.T) {
	results := Run(Vectors())
	require.Len(t, results, len(Vectors()))
	for _, r := range results {
		require.True(t, r.OK(), "%v %s: got %s, expected %s",
			r.Vector.Alg, r.Vector.Name, r.Got, r.Vector.Digest)
	}
	require.Zero(t, Failed(results))

	var buf bytes.Buffer
	Print(&buf, results)
	require.Contains(t, buf.String(), "SHA-512")
	require.NotContains(t, buf.String(), "FAIL")
}

func TestFailedVector(t *testing.T) {
	results := Run([]Vector{
		{digest.SHA1, "wrong", "abc", 1, "00"},
	})
	require.Equal(t, 1, Failed(results))

	var buf bytes.Buffer
	Print(&buf, results)
	require.Contains(t, buf.String(), "FAIL")
}

func TestCrossCheck(t *testing.T) {
	rand := prg.New([]byte("cross-check"))
	for _, alg := range digest.Algorithms() {
		require.NoError(t, CrossCheck(alg, rand, 20, 4*alg.BlockSize()),
			alg.String())
	}
}

func TestAvalanche(t *testing.T) {
	rand := prg.New([]byte("avalanche"))
	for _, alg := range digest.Algorithms() {
		ratio, err := Avalanche(alg, rand, 64, 100)
		require.NoError(t, err)
		require.InDelta(t, 0.5, ratio, 0.1, alg.String())
	}

	_, err := Avalanche(digest.SHA256, rand, 0, 10)
	require.Error(t, err)
}
