// Copyright (C) 2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package section holds the data model shared by the network-knowledge view
// and the membership engine: prefixes, node states, generations, decisions
// and section authority providers. It holds no behavior beyond the pure
// predicates these types need (Matches, IsCompatibleWith, AboutSameNode).
package section

import (
	"fmt"

	"github.com/luxfi/sectionmembership/crypto"
)

// XorName aliases crypto.XorName — every node/content address in this
// module is one.
type XorName = crypto.XorName

// Prefix identifies a section's address range as a run of leading bits.
type Prefix struct {
	Bits []byte
	Len  int // number of significant bits in Bits
}

// String renders the prefix as a run of '0'/'1' characters wrapped in
// "Prefix(...)", e.g. "Prefix(101)".
func (p Prefix) String() string {
	out := make([]byte, p.Len)
	for i := 0; i < p.Len; i++ {
		byteIdx, bitIdx := i/8, 7-(i%8)
		if byteIdx < len(p.Bits) && p.Bits[byteIdx]&(1<<bitIdx) != 0 {
			out[i] = '1'
		} else {
			out[i] = '0'
		}
	}
	return fmt.Sprintf("Prefix(%s)", out)
}

// Matches reports whether name falls within this prefix's address range.
func (p Prefix) Matches(name XorName) bool {
	for i := 0; i < p.Len; i++ {
		byteIdx, bitIdx := i/8, 7-(i%8)
		var nameBit, prefixBit byte
		if byteIdx < len(name) {
			nameBit = name[byteIdx] & (1 << bitIdx)
		}
		if byteIdx < len(p.Bits) {
			prefixBit = p.Bits[byteIdx] & (1 << bitIdx)
		}
		if (nameBit == 0) != (prefixBit == 0) {
			return false
		}
	}
	return true
}

// IsCompatibleWith reports whether one prefix is a (possibly equal) ancestor
// of the other — the shorter prefix's bits equal the leading bits of the
// longer's.
func (p Prefix) IsCompatibleWith(other Prefix) bool {
	shorter, longer := p, other
	if longer.Len < shorter.Len {
		shorter, longer = longer, shorter
	}
	truncated := Prefix{Bits: shorter.Bits, Len: shorter.Len}
	var probe XorName
	copy(probe[:], longer.Bits)
	return truncated.Matches(probe)
}
