// Copyright (C) 2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package crypto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVerifyEd25519Valid(t *testing.T) {
	require := require.New(t)

	kp, err := GenerateEd25519Keypair()
	require.NoError(err)

	msg := []byte("propose node N as Joining at generation 3")
	sig := kp.Sign(msg)

	require.NoError(Verify(kp.PublicKey(), sig, msg))
}

func TestVerifyEd25519TamperedMessage(t *testing.T) {
	require := require.New(t)

	kp, err := GenerateEd25519Keypair()
	require.NoError(err)

	sig := kp.Sign([]byte("original"))
	err = Verify(kp.PublicKey(), sig, []byte("tampered"))
	require.ErrorIs(err, ErrInvalidSignature)
}

func TestVerifyVariantMismatchIsDistinctFromInvalidSignature(t *testing.T) {
	require := require.New(t)

	kp, err := GenerateEd25519Keypair()
	require.NoError(err)

	var blsSig BlsSignature
	err = Verify(kp.PublicKey(), blsSig, []byte("msg"))
	require.ErrorIs(err, ErrKeyTypeMismatch)
	require.NotErrorIs(err, ErrInvalidSignature)
}

func TestVerifyBlsShareIndexMismatch(t *testing.T) {
	require := require.New(t)

	var pk BlsSharePublicKey
	pk.Index = 1
	var sig BlsShareSignature
	sig.Index = 2

	err := Verify(pk, sig, []byte("msg"))
	require.ErrorIs(err, ErrInvalidSignature)
}
