// Copyright (C) 2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package crypto

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEd25519FromHexRoundTrip(t *testing.T) {
	require := require.New(t)

	kp, err := GenerateEd25519Keypair()
	require.NoError(err)
	pk := kp.PublicKey()

	s := hex.EncodeToString(pk.Bytes())
	decoded, err := Ed25519FromHex(s)
	require.NoError(err)
	require.True(Equal(pk, decoded))
}

func TestEd25519FromHexBadLength(t *testing.T) {
	_, err := Ed25519FromHex("aabbcc")
	require.ErrorIs(t, err, ErrParse)
}

func TestEd25519FromHexBadHex(t *testing.T) {
	_, err := Ed25519FromHex("not-hex-at-all-zz")
	require.ErrorIs(t, err, ErrParse)
}

func TestBlsFromHexBadLength(t *testing.T) {
	_, err := BlsFromHex(hex.EncodeToString(make([]byte, 32)))
	require.ErrorIs(t, err, ErrParse)
}

func TestBlsFromHexRoundTrip(t *testing.T) {
	require := require.New(t)
	raw := make([]byte, BlsPKSize)
	for i := range raw {
		raw[i] = byte(i)
	}
	s := hex.EncodeToString(raw)
	pk, err := BlsFromHex(s)
	require.NoError(err)
	require.Equal(raw, pk.Bytes())
}

func TestCompareTotalOrder(t *testing.T) {
	require := require.New(t)

	a, _ := Ed25519FromHex(hex.EncodeToString(make([]byte, Ed25519PKSize)))
	bRaw := make([]byte, Ed25519PKSize)
	bRaw[0] = 1
	b, _ := Ed25519FromHex(hex.EncodeToString(bRaw))

	require.Negative(Compare(a, b))
	require.Positive(Compare(b, a))
	require.Zero(Compare(a, a))

	// Ordering across variants is defined purely by serialized bytes.
	blsRaw := make([]byte, BlsPKSize)
	blsKey, _ := BlsFromHex(hex.EncodeToString(blsRaw))
	require.Equal(Compare(a, blsKey) < 0, hex.EncodeToString(a.Bytes()) < hex.EncodeToString(blsKey.Bytes()))
}

func TestXorNameFromPublicKey(t *testing.T) {
	require := require.New(t)

	kp, err := GenerateEd25519Keypair()
	require.NoError(err)
	pk := kp.PublicKey()
	name := XorNameFromPublicKey(pk)
	require.Equal(pk.Bytes(), name[:])

	blsRaw := make([]byte, BlsPKSize)
	for i := range blsRaw {
		blsRaw[i] = byte(i + 1)
	}
	blsPK, err := BlsFromHex(hex.EncodeToString(blsRaw))
	require.NoError(err)
	blsName := XorNameFromPublicKey(blsPK)
	require.Equal(blsRaw[:XorNameSize], blsName[:])
}
