// Copyright (C) 2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package crypto

import "encoding/hex"

// XorNameSize is the width of a network address: 256 bits.
const XorNameSize = 32

// XorName is a 256-bit node/content identifier. Distance between two
// XorNames is defined bitwise (XOR) by callers; this package only produces
// and formats the value.
type XorName [XorNameSize]byte

// String returns the lower-hex encoding of the name.
func (n XorName) String() string {
	return hex.EncodeToString(n[:])
}

// Empty is the zero XorName, used as a sentinel the way ids.Empty is used
// throughout the teacher stack.
var Empty XorName

// XorNameFromPublicKey derives a deterministic network address from a
// public key: Ed25519 keys contribute their 32 raw bytes directly; BLS and
// BLS-share keys contribute the leading 32 bytes of their canonical
// encoding.
func XorNameFromPublicKey(pk PublicKey) XorName {
	var name XorName
	copy(name[:], pk.Bytes())
	return name
}
