// Copyright (C) 2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package crypto

import (
	"crypto/ed25519"
	"encoding/hex"
)

// Ed25519SigSize and BlsSigSize are the canonical byte lengths of each
// signature variant.
const (
	Ed25519SigSize = ed25519.SignatureSize // 64
	BlsSigSize     = 96
)

// Signature is the parallel tagged union to PublicKey: Ed25519 | Bls |
// BlsShare.
type Signature interface {
	Algorithm() Algorithm
	Bytes() []byte
	String() string
}

// Ed25519Signature is the Ed25519 Signature variant.
type Ed25519Signature struct {
	raw [Ed25519SigSize]byte
}

func (s Ed25519Signature) Algorithm() Algorithm { return AlgorithmEd25519 }
func (s Ed25519Signature) Bytes() []byte        { return append([]byte(nil), s.raw[:]...) }
func (s Ed25519Signature) String() string       { return hex.EncodeToString(s.Bytes()) }

// BlsSignature is the plain threshold BLS Signature variant.
type BlsSignature struct {
	raw [BlsSigSize]byte
}

func (s BlsSignature) Algorithm() Algorithm { return AlgorithmBls }
func (s BlsSignature) Bytes() []byte        { return append([]byte(nil), s.raw[:]...) }
func (s BlsSignature) String() string       { return hex.EncodeToString(s.Bytes()) }

// BlsShareSignature is a single voter's share of a threshold BLS signature.
// Like BlsSharePublicKey, its share index is implicit and not part of Bytes.
type BlsShareSignature struct {
	raw   [BlsSigSize]byte
	Index uint16
}

func (s BlsShareSignature) Algorithm() Algorithm { return AlgorithmBlsShare }
func (s BlsShareSignature) Bytes() []byte        { return append([]byte(nil), s.raw[:]...) }
func (s BlsShareSignature) String() string       { return hex.EncodeToString(s.Bytes()) }

// Verify checks sig against pk and msg. If the variants of pk and sig do not
// match, it returns ErrKeyTypeMismatch — a distinct error from a
// cryptographic verification failure, never silently treated as
// ErrInvalidSignature.
func Verify(pk PublicKey, sig Signature, msg []byte) error {
	if pk.Algorithm() != sig.Algorithm() {
		return ErrKeyTypeMismatch
	}

	switch pk.Algorithm() {
	case AlgorithmEd25519:
		edPK, ok := pk.(Ed25519PublicKey)
		if !ok {
			return ErrKeyTypeMismatch
		}
		edSig, ok := sig.(Ed25519Signature)
		if !ok {
			return ErrKeyTypeMismatch
		}
		if !ed25519.Verify(edPK.key, msg, edSig.raw[:]) {
			return ErrInvalidSignature
		}
		return nil

	case AlgorithmBls:
		blsPK, ok := pk.(BlsPublicKey)
		if !ok {
			return ErrKeyTypeMismatch
		}
		blsSig, ok := sig.(BlsSignature)
		if !ok {
			return ErrKeyTypeMismatch
		}
		ok, err := blsVerify(blsPK.Bytes(), blsSig.Bytes(), msg)
		if err != nil {
			return ErrInvalidSignature
		}
		if !ok {
			return ErrInvalidSignature
		}
		return nil

	case AlgorithmBlsShare:
		sharePK, ok := pk.(BlsSharePublicKey)
		if !ok {
			return ErrKeyTypeMismatch
		}
		shareSig, ok := sig.(BlsShareSignature)
		if !ok {
			return ErrKeyTypeMismatch
		}
		if sharePK.Index != shareSig.Index {
			return ErrInvalidSignature
		}
		ok, err := blsVerify(sharePK.Bytes(), shareSig.Bytes(), msg)
		if err != nil {
			return ErrInvalidSignature
		}
		if !ok {
			return ErrInvalidSignature
		}
		return nil

	default:
		return ErrKeyTypeMismatch
	}
}
