// Copyright (C) 2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package crypto

import "fmt"

// zbase32 is a 32-symbol, human-friendly base-32 encoding (Zooko
// Wilcox-O'Hearn's z-base-32) used for short, spoken-friendly key display.
// No such encoder appears anywhere in the example pack, so it is hand-rolled
// here rather than swapped for a heavier dependency — see DESIGN.md for why
// this one exception is justified on the standard library rather than a
// third-party package.
const zbase32Alphabet = "ybndrfg8ejkmcpqxot1uwisza345h769"

var zbase32Decode [256]int8

func init() {
	for i := range zbase32Decode {
		zbase32Decode[i] = -1
	}
	for i, c := range zbase32Alphabet {
		zbase32Decode[byte(c)] = int8(i)
	}
}

// EncodeToZBase32 encodes a public key's canonical serialization as
// z-base-32, for user-facing short forms.
func EncodeToZBase32(pk PublicKey) string {
	return zbase32Encode(pk.Bytes())
}

func zbase32Encode(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	var out []byte
	var buf uint32
	var bits uint
	for _, b := range data {
		buf = (buf << 8) | uint32(b)
		bits += 8
		for bits >= 5 {
			bits -= 5
			out = append(out, zbase32Alphabet[(buf>>bits)&0x1f])
		}
	}
	if bits > 0 {
		out = append(out, zbase32Alphabet[(buf<<(5-bits))&0x1f])
	}
	return string(out)
}

func zbase32Decode32(s string) ([]byte, error) {
	var buf uint32
	var bits uint
	var out []byte
	for i := 0; i < len(s); i++ {
		v := zbase32Decode[s[i]]
		if v < 0 {
			return nil, fmt.Errorf("%w: invalid z-base-32 character %q", ErrParse, s[i])
		}
		buf = (buf << 5) | uint32(v)
		bits += 5
		if bits >= 8 {
			bits -= 8
			out = append(out, byte(buf>>bits))
		}
	}
	return out, nil
}

// DecodeFromZBase32 decodes a z-base-32 string into raw key bytes. It is the
// caller's job to know which variant constructor (Ed25519FromHex-equivalent,
// BlsFromHex-equivalent) to apply to the result; this function only reverses
// the encoding and is bijective on valid inputs produced by
// EncodeToZBase32.
func DecodeFromZBase32(s string) ([]byte, error) {
	return zbase32Decode32(s)
}
