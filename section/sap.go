// Copyright (C) 2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package section

import "github.com/luxfi/sectionmembership/crypto"

// Elder is one elder's share of the section's threshold key plus its
// network address.
type Elder struct {
	Share crypto.BlsSharePublicKey
	Addr  SocketAddr
}

// SectionAuthorityProvider (SAP) is the authenticated snapshot of a
// section's elders, prefix, and section public key. It is immutable once
// published — replacement is always wholesale, never in-place mutation.
type SectionAuthorityProvider struct {
	Prefix     Prefix
	SectionKey crypto.BlsPublicKey
	Elders     map[XorName]Elder
}

// IsElder reports whether name is one of sap's elders — the precondition
// the handler checks before letting a node propose a membership change
// (spec §4.4).
func (sap SectionAuthorityProvider) IsElder(name XorName) bool {
	_, ok := sap.Elders[name]
	return ok
}
