// Copyright (C) 2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package knowledge holds the per-node snapshot of the current section's
// identity: its prefix, section public key, and elder set. It is read by the
// membership engine's handler and updated only by the outer node in
// response to decisions the engine commits — the engine itself never writes
// it, per the cyclic-ownership design note.
package knowledge

import (
	"sync"

	"github.com/luxfi/sectionmembership/crypto"
	"github.com/luxfi/sectionmembership/section"
)

// View is a thread-safe read-mostly snapshot of the current
// SectionAuthorityProvider, guarded the way engine/dag.DAGConsensus guards
// its map state: a single sync.RWMutex, short-lived acquisitions, never held
// across I/O.
type View struct {
	mu  sync.RWMutex
	sap section.SectionAuthorityProvider
}

// NewView seeds a View from the section's initial authority provider.
func NewView(initial section.SectionAuthorityProvider) *View {
	return &View{sap: initial}
}

// Prefix returns the local section's current prefix.
func (v *View) Prefix() section.Prefix {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.sap.Prefix
}

// SectionKey returns the current section public key.
func (v *View) SectionKey() crypto.BlsPublicKey {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.sap.SectionKey
}

// AuthorityProvider returns a snapshot of the current SAP. Because
// SectionAuthorityProvider's Elders map is swapped wholesale on update, not
// mutated in place, a caller that holds a previously-returned snapshot never
// observes a partial update.
func (v *View) AuthorityProvider() section.SectionAuthorityProvider {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.sap
}

// UpdateAuthorityProvider atomically replaces the published SAP. Only the
// outer node calls this, in response to a membership decision — never the
// engine.
func (v *View) UpdateAuthorityProvider(sap section.SectionAuthorityProvider) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.sap = sap
}
