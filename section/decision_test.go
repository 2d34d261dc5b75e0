// Copyright (C) 2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package section

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecisionProposalsIterateInNameOrder(t *testing.T) {
	require := require.New(t)

	d := NewDecision(3)
	d.Add(NodeState{Name: XorName{9}, State: Joining}, KeyedSig{})
	d.Add(NodeState{Name: XorName{1}, State: Joining}, KeyedSig{})
	d.Add(NodeState{Name: XorName{5}, State: Joining}, KeyedSig{})

	var order []byte
	d.Proposals(func(state NodeState, _ KeyedSig) {
		order = append(order, state.Name[0])
	})

	require.Equal([]byte{1, 5, 9}, order)
}

func TestIsLeavingSectionLeftAlwaysLeaves(t *testing.T) {
	require := require.New(t)
	prefix := Prefix{Bits: []byte{0x00}, Len: 1}

	require.True(IsLeavingSection(NodeState{State: Left}, prefix))
}

func TestIsLeavingSectionRelocatedComparesTarget(t *testing.T) {
	require := require.New(t)
	prefix := Prefix{Bits: []byte{0x00}, Len: 1}

	sameTarget := NodeState{State: Relocated, Target: prefix}
	require.False(IsLeavingSection(sameTarget, prefix))

	otherTarget := NodeState{State: Relocated, Target: Prefix{Bits: []byte{0x80}, Len: 1}}
	require.True(IsLeavingSection(otherTarget, prefix))
}

func TestIsLeavingSectionJoiningStays(t *testing.T) {
	require := require.New(t)
	prefix := Prefix{Bits: []byte{0x00}, Len: 1}
	require.False(IsLeavingSection(NodeState{State: Joining}, prefix))
}
