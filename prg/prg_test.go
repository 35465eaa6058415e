//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package prg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeterministic(t *testing.T) {
	a := New([]byte("seed"))
	b := New([]byte("seed"))
	require.Equal(t, a.Message(1000), b.Message(1000))
	require.Equal(t, a.Uint64(), b.Uint64())
}

func TestSeedsDiffer(t *testing.T) {
	a := New([]byte("seed-a")).Message(64)
	b := New([]byte("seed-b")).Message(64)
	require.NotEqual(t, a, b)
}

func TestStreamContinues(t *testing.T) {
	whole := New(nil).Message(96)

	prg := New(nil)
	first := prg.Message(32)
	rest := prg.Message(64)

	require.Equal(t, whole[:32], first)
	require.Equal(t, whole[32:], rest)
}

func TestIntn(t *testing.T) {
	prg := New([]byte("intn"))
	var seen [7]int
	for i := 0; i < 7000; i++ {
		v := prg.Intn(7)
		require.True(t, v >= 0 && v < 7, "Intn(7)=%d", v)
		seen[v]++
	}
	for v, count := range seen {
		require.Greater(t, count, 0, "value %d never generated", v)
	}
	require.Panics(t, func() { prg.Intn(0) })
}
