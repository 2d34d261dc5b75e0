// Copyright (C) 2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package crypto

import blscrypto "github.com/luxfi/crypto/bls"

// BlsShareSigner is one elder's local threshold-signing capability: its
// secret share plus the index the section's key set assigned it.
type BlsShareSigner struct {
	secret *blscrypto.SecretKey
	index  uint16
}

// NewBlsShareSigner wraps a raw BLS secret key as a share signer at index.
func NewBlsShareSigner(secret *blscrypto.SecretKey, index uint16) BlsShareSigner {
	return BlsShareSigner{secret: secret, index: index}
}

// PublicKey returns this signer's public key share.
func (s BlsShareSigner) PublicKey() BlsSharePublicKey {
	ensureInit()
	pub := blscrypto.PublicKeyFromSecretKey(s.secret)
	var pk BlsSharePublicKey
	copy(pk.compressed[:], blscrypto.PublicKeyToCompressedBytes(pub))
	pk.Index = s.index
	return pk
}

// SignShare signs msg with this voter's share, producing a BlsShareSignature
// tagged with the signer's index.
func (s BlsShareSigner) SignShare(msg []byte) BlsShareSignature {
	var sig BlsShareSignature
	copy(sig.raw[:], blsSign(s.secret, msg))
	sig.Index = s.index
	return sig
}
