// Copyright (C) 2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package quorum

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/sectionmembership/config"
	"github.com/luxfi/sectionmembership/crypto"
)

func testKey(b byte) crypto.PublicKey {
	raw := make([]byte, crypto.Ed25519PKSize)
	raw[0] = b
	pk, err := crypto.Ed25519FromHex(hexOf(raw))
	if err != nil {
		panic(err)
	}
	return pk
}

func hexOf(b []byte) string {
	const digits = "0123456789abcdef"
	out := make([]byte, len(b)*2)
	for i, v := range b {
		out[i*2] = digits[v>>4]
		out[i*2+1] = digits[v&0xf]
	}
	return string(out)
}

func testName(b byte) (n XorName) {
	n[0] = b
	return n
}

func TestMergeMajorityWins(t *testing.T) {
	require := require.New(t)

	target := testName(0xAA)
	n1, n2, n3, n4 := testName(1), testName(2), testName(3), testName(4)
	k1, k2, k3, k4 := testKey(1), testKey(2), testKey(3), testKey(4)

	r0 := Response{TargetID: target, PublicSignKeys: []KeyPair{{n1, k1}, {n2, k2}, {n3, k3}}}
	r1 := Response{TargetID: target, PublicSignKeys: []KeyPair{{n1, k1}, {n2, k2}, {n3, k3}}}
	r2 := Response{TargetID: target, PublicSignKeys: []KeyPair{{n1, k1}, {n2, k2}, {n4, k4}}}

	merged, err := Merge(r0, []Response{r1, r2}, 3)
	require.NoError(err)
	require.Equal(target, merged.TargetID)
	require.Len(merged.PublicSignKeys, 3)
	require.Equal(n1, merged.PublicSignKeys[0].Name)
	require.Equal(n2, merged.PublicSignKeys[1].Name)
	require.Equal(n3, merged.PublicSignKeys[2].Name) // count 2 beats k4's count 1
}

func TestMergeMismatchedTarget(t *testing.T) {
	require := require.New(t)

	r0 := Response{TargetID: testName(1), PublicSignKeys: []KeyPair{{testName(1), testKey(1)}}}
	r1 := Response{TargetID: testName(2), PublicSignKeys: []KeyPair{{testName(1), testKey(1)}}}

	_, err := Merge(r0, []Response{r1}, 1)
	require.ErrorIs(err, ErrMismatchedTarget)
}

func TestMergeIdempotent(t *testing.T) {
	require := require.New(t)

	target := testName(9)
	r := Response{TargetID: target, PublicSignKeys: []KeyPair{
		{testName(1), testKey(1)},
		{testName(2), testKey(2)},
	}}

	merged, err := Merge(r, []Response{r}, 2)
	require.NoError(err)
	require.ElementsMatch(r.PublicSignKeys, merged.PublicSignKeys)
}

func TestMergeMonotonicityKeepsMajorityEntries(t *testing.T) {
	require := require.New(t)

	target := testName(9)
	majority := Response{TargetID: target, PublicSignKeys: []KeyPair{
		{testName(1), testKey(1)},
		{testName(2), testKey(2)},
	}}
	// A second, identical peer reinforces the majority rather than displacing it.
	reinforcing := majority

	merged, err := Merge(majority, []Response{reinforcing}, 2)
	require.NoError(err)

	names := map[XorName]bool{}
	for _, p := range merged.PublicSignKeys {
		names[p.Name] = true
	}
	for _, p := range majority.PublicSignKeys {
		require.True(names[p.Name], "majority entry %s must survive merge", p.Name)
	}
}

func TestMergeWithParamsUsesConfiguredGroupSize(t *testing.T) {
	require := require.New(t)

	target := testName(9)
	r := Response{TargetID: target, PublicSignKeys: []KeyPair{
		{testName(1), testKey(1)},
	}}

	merged, err := MergeWithParams(r, []Response{r}, config.Local())
	require.NoError(err)
	require.Len(merged.PublicSignKeys, config.Local().GroupSize)
}

func TestMergeInsufficientQuorumPanics(t *testing.T) {
	target := testName(1)
	r := Response{TargetID: target, PublicSignKeys: []KeyPair{{testName(1), testKey(1)}}}

	require.Panics(t, func() {
		_, _ = Merge(r, nil, 3)
	})
}
