// Copyright (C) 2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package membership

import "errors"

// ErrRequestAntiEntropy is returned by HandleSignedVote when the incoming
// vote's generation does not match the generation the engine is currently
// voting on — whether because the vote is ahead (the engine is behind) or
// behind (the engine has already moved on and holds no state for that
// round). Either way the caller should request an anti-entropy catch-up
// exchange rather than treat the vote as processable.
var ErrRequestAntiEntropy = errors.New("membership: engine needs anti-entropy before this vote can be processed")

// ErrConflictingProposal is returned by Propose when the engine already has
// a pending, incompatible proposal open for the same node at the current
// generation.
var ErrConflictingProposal = errors.New("membership: conflicting proposal already open for this node")

// ErrConflictingVote is a non-fatal MembershipOtherError returned by
// HandleSignedVote when an incoming vote proposes a different NodeState for
// a name that already has an open, differently-shaped proposal at this
// generation.
var ErrConflictingVote = errors.New("membership: vote conflicts with an already-open proposal")

// ErrNotAnElder is returned by Propose when the proposing node is not an
// elder of prefix.
var ErrNotAnElder = errors.New("membership: proposer is not an elder of this prefix")
