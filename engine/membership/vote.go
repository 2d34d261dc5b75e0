// Copyright (C) 2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package membership

import (
	"encoding/binary"

	"github.com/luxfi/sectionmembership/crypto"
	"github.com/luxfi/sectionmembership/section"
)

// SignedVote is one voter's signed ballot for a single NodeState change at a
// given generation. The wider protocol treats this as an opaque value that
// is fed to the engine or relayed unchanged; the engine is the one place
// that reads its fields.
type SignedVote struct {
	Generation section.Generation
	Proposed   section.NodeState
	VoterShare crypto.BlsSharePublicKey
	VoterSig   crypto.BlsShareSignature
}

// signingBytes returns the canonical bytes a voter signs over: generation
// and the proposed node's name+state+target, enough to bind the vote to an
// exact proposal without requiring full NodeState serialization support.
func signingBytes(gen section.Generation, state section.NodeState) []byte {
	out := make([]byte, 0, 8+len(state.Name)+1+len(state.Target.Bits))
	var genBuf [8]byte
	binary.BigEndian.PutUint64(genBuf[:], gen)
	out = append(out, genBuf[:]...)
	out = append(out, state.Name[:]...)
	out = append(out, byte(state.State))
	out = append(out, state.Target.Bits...)
	return out
}

// VoteResponseKind tags what HandleSignedVote produced.
type VoteResponseKind uint8

const (
	// WaitingForMoreVotes means the vote was accepted into the tally but
	// produced no output to send.
	WaitingForMoreVotes VoteResponseKind = iota
	// Broadcast means the engine produced a vote that should be gossiped to
	// all elders.
	Broadcast
)

// VoteResponse is the result of HandleSignedVote on success.
type VoteResponse struct {
	Kind VoteResponseKind
	// Vote is only populated when Kind == Broadcast.
	Vote SignedVote
}
