// Copyright (C) 2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package handler

import (
	"github.com/luxfi/sectionmembership/crypto"
	"github.com/luxfi/sectionmembership/section"
)

// Cmd is an outbound instruction the handler produces. It is a closed
// interface over the five concrete command kinds spec §6 names — the same
// interface-over-concrete-ops style router.Message uses for inbound
// messages, applied here to outbound ones.
type Cmd interface {
	isCmd()
}

// SendMsgToOurElders broadcasts msg to the current SAP's elder set.
type SendMsgToOurElders struct {
	Msg SystemMsg
}

func (SendMsgToOurElders) isCmd() {}

// SendDirectMsgToNodes sends msg directly to peers, addressed as coming
// from section and signed for dstSectionPK.
type SendDirectMsgToNodes struct {
	Peers         []Peer
	Msg           SystemMsg
	Section       section.Prefix
	DstSectionKey crypto.BlsPublicKey
}

func (SendDirectMsgToNodes) isCmd() {}

// SendDirectMsg sends msg to a single peer, signed under sectionKey.
type SendDirectMsg struct {
	Peer       Peer
	Msg        SystemMsg
	SectionKey crypto.BlsPublicKey
}

func (SendDirectMsg) isCmd() {}

// HandleNewNodeOnline is the internal command the handler emits when a
// decision keeps a node in the section.
type HandleNewNodeOnline struct {
	Value section.NodeState
	Sig   section.KeyedSig
}

func (HandleNewNodeOnline) isCmd() {}

// HandleNodeLeft is the internal command the handler emits when a decision
// removes a node from the section.
type HandleNodeLeft struct {
	Value section.NodeState
	Sig   section.KeyedSig
}

func (HandleNodeLeft) isCmd() {}
