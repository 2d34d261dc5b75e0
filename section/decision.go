// Copyright (C) 2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package section

import "github.com/luxfi/sectionmembership/crypto"

// KeyedSig is the externalized form of a decision: the section public key
// the combined signature verifies under, plus the signature itself. This is
// what authenticates HandleNewNodeOnline/HandleNodeLeft downstream.
type KeyedSig struct {
	PublicKey crypto.BlsPublicKey
	Signature crypto.BlsSignature
}

// Decision is one or more concurrently agreed-upon membership changes at a
// single generation: a map from the changed NodeState to the aggregated
// threshold signature authenticating it.
type Decision struct {
	Generation Generation
	Changes    map[XorName]decidedChange
}

type decidedChange struct {
	State NodeState
	Sig   KeyedSig
}

// NewDecision creates an empty decision at the given generation.
func NewDecision(gen Generation) Decision {
	return Decision{Generation: gen, Changes: make(map[XorName]decidedChange)}
}

// Add records one agreed-upon change in this decision.
func (d *Decision) Add(state NodeState, sig KeyedSig) {
	d.Changes[state.Name] = decidedChange{State: state, Sig: sig}
}

// Proposals iterates the decided (NodeState, KeyedSig) pairs in this
// decision, in a deterministic order (by node name), so callers that
// translate a decision into outbound commands get reproducible output.
func (d Decision) Proposals(fn func(state NodeState, sig KeyedSig)) {
	names := make([]XorName, 0, len(d.Changes))
	for name := range d.Changes {
		names = append(names, name)
	}
	// Simple insertion sort: decisions carry at most a handful of
	// concurrent changes, never enough to warrant sort.Slice's overhead.
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && lessName(names[j], names[j-1]); j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
	for _, name := range names {
		change := d.Changes[name]
		fn(change.State, change.Sig)
	}
}

func lessName(a, b XorName) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// IsLeavingSection reports whether the decided state tag means the node is
// leaving the given prefix's section: Left always leaves; Relocated leaves
// only when its target prefix differs from prefix.
func IsLeavingSection(state NodeState, prefix Prefix) bool {
	switch state.State {
	case Left:
		return true
	case Relocated:
		return state.Target.String() != prefix.String()
	default:
		return false
	}
}
