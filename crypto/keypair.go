// Copyright (C) 2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package crypto

import "crypto/ed25519"

// Keypair owns a secret half and can produce its PublicKey. The secret is
// never serialized by this package — there is deliberately no Bytes()/String()
// on Keypair itself.
type Keypair interface {
	PublicKey() PublicKey
	Sign(msg []byte) Signature
}

// Ed25519Keypair is the Ed25519 Keypair variant, backed by the stdlib
// implementation.
type Ed25519Keypair struct {
	secret ed25519.PrivateKey
}

// GenerateEd25519Keypair creates a fresh random Ed25519 keypair.
func GenerateEd25519Keypair() (Ed25519Keypair, error) {
	_, sk, err := ed25519.GenerateKey(nil)
	if err != nil {
		return Ed25519Keypair{}, err
	}
	return Ed25519Keypair{secret: sk}, nil
}

func (k Ed25519Keypair) PublicKey() PublicKey {
	pub := k.secret.Public().(ed25519.PublicKey)
	return Ed25519PublicKey{key: pub}
}

func (k Ed25519Keypair) Sign(msg []byte) Signature {
	var sig Ed25519Signature
	copy(sig.raw[:], ed25519.Sign(k.secret, msg))
	return sig
}
