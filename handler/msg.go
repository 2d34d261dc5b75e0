// Copyright (C) 2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package handler

import (
	"github.com/luxfi/sectionmembership/engine/membership"
	"github.com/luxfi/sectionmembership/section"
)

// SystemMsg is the minimal tagged wire payload this module produces and
// consumes. Wire codec/serialization is an out-of-scope collaborator's
// concern (spec §1) — this is the in-memory shape a transport layer would
// marshal, not a parser.
type SystemMsg struct {
	MembershipVotes []membership.SignedVote
	MembershipAE    *section.Generation
}

// Peer identifies a message's sender/recipient: a node's address plus
// (where known) its name.
type Peer struct {
	Name section.XorName
	Addr section.SocketAddr
}
