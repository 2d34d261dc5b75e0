// Copyright (C) 2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package crypto implements the algorithm-tagged public key and signature
// layer the membership core depends on: single-signer Ed25519 and threshold
// BLS (plain and share), with canonical byte encodings, a total order over
// mixed-variant keys, and verification.
package crypto

import (
	"bytes"
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
)

// Algorithm tags a PublicKey/Signature variant.
type Algorithm uint8

const (
	AlgorithmEd25519 Algorithm = iota
	AlgorithmBls
	AlgorithmBlsShare
)

func (a Algorithm) String() string {
	switch a {
	case AlgorithmEd25519:
		return "ed25519"
	case AlgorithmBls:
		return "bls"
	case AlgorithmBlsShare:
		return "bls-share"
	default:
		return "unknown"
	}
}

// Ed25519PKSize is the canonical byte length of an Ed25519 public key.
const Ed25519PKSize = ed25519.PublicKeySize // 32

// BlsPKSize is the canonical byte length of a compressed BLS12-381 public key.
const BlsPKSize = 48

// PublicKey is a tagged union over the algorithms the membership core
// understands. Equality, ordering and hashing are always defined over the
// canonical serialized form (Bytes), never per-algorithm, so a heterogeneous
// set of keys has one total order.
type PublicKey interface {
	// Algorithm reports which variant this key is.
	Algorithm() Algorithm
	// Bytes returns the canonical fixed-length encoding of this key.
	Bytes() []byte
	// String returns the lower-hex encoding of Bytes.
	String() string
}

// Ed25519PublicKey is the Ed25519 PublicKey variant.
type Ed25519PublicKey struct {
	key ed25519.PublicKey
}

func (k Ed25519PublicKey) Algorithm() Algorithm { return AlgorithmEd25519 }
func (k Ed25519PublicKey) Bytes() []byte        { return append([]byte(nil), k.key...) }
func (k Ed25519PublicKey) String() string       { return hex.EncodeToString(k.Bytes()) }

// BlsPublicKey is the plain (non-share) threshold BLS PublicKey variant.
type BlsPublicKey struct {
	compressed [BlsPKSize]byte
}

func (k BlsPublicKey) Algorithm() Algorithm { return AlgorithmBls }
func (k BlsPublicKey) Bytes() []byte        { return append([]byte(nil), k.compressed[:]...) }
func (k BlsPublicKey) String() string       { return hex.EncodeToString(k.Bytes()) }

// BlsSharePublicKey is a single voter's share of a threshold BLS key. The
// share index is implicit — it is not part of the canonical encoding, and is
// instead derived by the caller from elder-set position, per spec.
type BlsSharePublicKey struct {
	compressed [BlsPKSize]byte
	Index      uint16
}

func (k BlsSharePublicKey) Algorithm() Algorithm { return AlgorithmBlsShare }
func (k BlsSharePublicKey) Bytes() []byte        { return append([]byte(nil), k.compressed[:]...) }
func (k BlsSharePublicKey) String() string       { return hex.EncodeToString(k.Bytes()) }

// Ed25519FromHex decodes a hex string into an Ed25519PublicKey: decode hex,
// require exactly Ed25519PKSize bytes, then construct.
func Ed25519FromHex(s string) (PublicKey, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: ed25519 key is not valid hex: %v", ErrParse, err)
	}
	if len(raw) != Ed25519PKSize {
		return nil, fmt.Errorf("%w: ed25519 key must be %d bytes, got %d", ErrParse, Ed25519PKSize, len(raw))
	}
	return Ed25519PublicKey{key: ed25519.PublicKey(raw)}, nil
}

// BlsFromHex decodes a hex string into a BlsPublicKey: decode hex, require
// exactly BlsPKSize bytes (a distinct error message from the Ed25519 case),
// then construct.
func BlsFromHex(s string) (PublicKey, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: bls key is not valid hex: %v", ErrParse, err)
	}
	if len(raw) != BlsPKSize {
		return nil, fmt.Errorf("%w: bls key must be %d bytes, got %d", ErrParse, BlsPKSize, len(raw))
	}
	var k BlsPublicKey
	copy(k.compressed[:], raw)
	return k, nil
}

// ToBytes returns the canonical encoding of pk. It is equivalent to
// pk.Bytes() and exists as a free function to match the operation named in
// the spec.
func ToBytes(pk PublicKey) []byte {
	return pk.Bytes()
}

// Compare defines the total order over mixed-variant public keys: it is the
// lexicographic comparison of their canonical serialized bytes. This is why
// heterogeneous sets of Ed25519/BLS/BLS-share keys sort and hash consistently
// without reference to algorithm.
func Compare(a, b PublicKey) int {
	return bytes.Compare(a.Bytes(), b.Bytes())
}

// Equal reports whether a and b serialize identically.
func Equal(a, b PublicKey) bool {
	return Compare(a, b) == 0
}

// HashKey returns the value containers should hash on: the canonical
// serialization, as a fixed-size array suitable for use as a map key.
func HashKey(pk PublicKey) [64]byte {
	var out [64]byte
	copy(out[:], pk.Bytes())
	return out
}
