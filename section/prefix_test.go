// Copyright (C) 2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package section

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrefixMatches(t *testing.T) {
	require := require.New(t)

	// Prefix "10" matches any name whose top two bits are 1,0.
	p := Prefix{Bits: []byte{0b1000_0000}, Len: 2}

	var inRange XorName
	inRange[0] = 0b1011_1111
	require.True(p.Matches(inRange))

	var outOfRange XorName
	outOfRange[0] = 0b0011_1111
	require.False(p.Matches(outOfRange))
}

func TestPrefixStringRendersBits(t *testing.T) {
	p := Prefix{Bits: []byte{0b1010_0000}, Len: 4}
	require.Equal(t, "Prefix(1010)", p.String())
}

func TestPrefixIsCompatibleWithAncestor(t *testing.T) {
	require := require.New(t)

	parent := Prefix{Bits: []byte{0b1000_0000}, Len: 1}
	child := Prefix{Bits: []byte{0b1100_0000}, Len: 2}
	unrelated := Prefix{Bits: []byte{0b0100_0000}, Len: 2}

	require.True(parent.IsCompatibleWith(child))
	require.True(child.IsCompatibleWith(parent))
	require.False(parent.IsCompatibleWith(unrelated))
}
