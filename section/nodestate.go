// Copyright (C) 2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package section

// StateTag is the membership state a NodeState carries.
type StateTag uint8

const (
	// Joining means the node is being admitted to the section.
	Joining StateTag = iota
	// Left means the node has departed the section entirely.
	Left
	// Relocated means the node is moving to a different section, named by
	// Target.
	Relocated
)

func (t StateTag) String() string {
	switch t {
	case Joining:
		return "Joining"
	case Left:
		return "Left"
	case Relocated:
		return "Relocated"
	default:
		return "Unknown"
	}
}

// NodeState is the unit of membership change: a candidate node's name,
// address, and what is happening to it.
type NodeState struct {
	Name  XorName
	Peer  SocketAddr
	State StateTag
	// Target is only meaningful when State == Relocated: the prefix of the
	// section the node is relocating to.
	Target Prefix
}

// SocketAddr is the peer's network address, stored as host:port the way the
// out-of-scope QUIC transport layer addresses peers.
type SocketAddr string

// AboutSameNode reports whether a and b concern the same candidate node —
// the only equality NodeState defines for conflict/dedup purposes.
func AboutSameNode(a, b NodeState) bool {
	return a.Name == b.Name
}

// Generation is a monotonically increasing counter over the section's
// membership history. A decision advances it by exactly one.
type Generation = uint64
