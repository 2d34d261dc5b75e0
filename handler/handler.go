// Copyright (C) 2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package handler

import (
	"errors"
	"sync"

	"github.com/luxfi/log"
	"go.uber.org/zap"

	"github.com/luxfi/sectionmembership/engine/membership"
	"github.com/luxfi/sectionmembership/knowledge"
	"github.com/luxfi/sectionmembership/metrics"
	"github.com/luxfi/sectionmembership/section"
)

// Handler is the glue between a membership Engine and the node's outer
// world: it holds the engine behind a lock (acquired per-vote, never across
// a batch), reads the current SAP from a knowledge.View, and translates the
// engine's state-machine outputs into outbound Cmds. It never writes the
// View itself — that stays the outer node's job, per the cyclic-ownership
// design note knowledge.View documents.
//
// Grounded on engine/nebula.Engine's ctx *core.Context embedding pattern:
// a thin struct holding a mutex-guarded inner state machine plus read-only
// collaborators, with no I/O of its own.
type Handler struct {
	mu     sync.RWMutex
	engine *membership.Engine

	// selfName is this node's own identity, looked up against the View's
	// current SAP to decide whether it may propose — ProposeMembershipChange
	// trusts this derivation, never a caller-supplied elder claim.
	selfName section.XorName

	view *knowledge.View
	log  log.Logger

	metrics *metrics.Membership

	// cursor is this handler's private DecisionsSince position. It is not
	// shared across handlers: each call to NewHandler starts a fresh one.
	cursor uint64
}

// NewHandler builds a Handler around eng for the node identified by
// selfName, reading section identity from view. metrics and logger may be
// nil in tests; a nil logger degrades to a no-op logger the way the
// teacher's constructors default an absent one.
func NewHandler(eng *membership.Engine, selfName section.XorName, view *knowledge.View, logger log.Logger, m *metrics.Membership) *Handler {
	if logger == nil {
		logger = log.NewNoOpLogger()
	}
	return &Handler{
		engine:   eng,
		selfName: selfName,
		view:     view,
		log:      logger,
		metrics:  m,
	}
}

// ProposeMembershipChange starts voting on a node state change and returns
// the Cmds needed to broadcast the resulting signed vote to this section's
// elders. It returns an empty Cmd list (and logs ErrNoEngine) if the handler
// has no engine yet — expected early in a node's life, not a bug. Whether
// this node may propose is derived from the View's current
// SectionAuthorityProvider (spec §4.4's elder precondition), never trusted
// from a caller-supplied flag.
func (h *Handler) ProposeMembershipChange(state section.NodeState) []Cmd {
	if h.engine == nil {
		h.log.Debug("propose_membership_change called with no engine", log.Err(ErrNoEngine))
		return nil
	}

	sap := h.view.AuthorityProvider()
	isElder := sap.IsElder(h.selfName)

	if want := h.engine.ElderCount(); len(sap.Elders) != want {
		h.log.Debug("propose_membership_change sees a SAP elder count diverging from configuration",
			zap.Int("sapElders", len(sap.Elders)),
			zap.Int("configuredElderCount", want))
	}

	h.mu.Lock()
	vote, err := h.engine.Propose(h.engine.Self(), isElder, state, sap.Prefix)
	h.mu.Unlock()

	if err != nil {
		h.log.Debug("propose_membership_change rejected",
			zap.Stringer("node", state.Name),
			log.Err(err))
		return nil
	}

	return []Cmd{
		SendMsgToOurElders{Msg: SystemMsg{MembershipVotes: []membership.SignedVote{vote}}},
	}
}

// HandleMembershipVotes feeds a batch of signed votes from peer through the
// engine one at a time, stopping the batch as soon as a vote requests
// anti-entropy — the lock is acquired and released per vote, never held
// across the whole batch, and a later vote in the same batch may still be
// processable once the peer has re-sent after catching up.
func (h *Handler) HandleMembershipVotes(peer Peer, votes []membership.SignedVote) []Cmd {
	if h.engine == nil {
		h.log.Debug("handle_membership_votes called with no engine", log.Err(ErrNoEngine))
		return nil
	}

	var cmds []Cmd
	prefix := h.view.Prefix()

	for _, vote := range votes {
		h.mu.Lock()
		resp, err := h.engine.HandleSignedVote(vote, prefix)
		h.mu.Unlock()

		if h.metrics != nil {
			h.metrics.VotesHandled.Inc()
		}

		if err != nil {
			if errors.Is(err, membership.ErrRequestAntiEntropy) {
				if h.metrics != nil {
					h.metrics.AERequestsSent.Inc()
				}
				gen := h.engine.Generation()
				cmds = append(cmds, SendDirectMsg{
					Peer:       peer,
					Msg:        SystemMsg{MembershipAE: &gen},
					SectionKey: h.view.SectionKey(),
				})
				break
			}
			h.log.Debug("handle_membership_votes rejected a vote, dropping rest of batch",
				zap.Stringer("node", vote.Proposed.Name),
				zap.Uint64("generation", vote.Generation),
				log.Err(err))
			break
		}

		if resp.Kind == membership.Broadcast {
			cmds = append(cmds, SendMsgToOurElders{
				Msg: SystemMsg{MembershipVotes: []membership.SignedVote{resp.Vote}},
			})
		}

		cmds = append(cmds, h.drainDecisions(prefix)...)
	}

	return cmds
}

// HandleMembershipAntiEntropy answers a peer's anti-entropy request at
// theirGeneration with whatever catch-up votes the engine still holds. It
// takes a read lock only: AntiEntropy does not mutate engine state.
func (h *Handler) HandleMembershipAntiEntropy(peer Peer, theirGeneration section.Generation) []Cmd {
	if h.engine == nil {
		h.log.Debug("handle_membership_anti_entropy called with no engine", log.Err(ErrNoEngine))
		return nil
	}

	h.mu.RLock()
	votes := h.engine.AntiEntropy(theirGeneration)
	h.mu.RUnlock()

	if len(votes) == 0 {
		return nil
	}

	if h.metrics != nil {
		h.metrics.AERequestsServed.Inc()
	}

	return []Cmd{
		SendDirectMsg{
			Peer:       peer,
			Msg:        SystemMsg{MembershipVotes: votes},
			SectionKey: h.view.SectionKey(),
		},
	}
}

// drainDecisions consumes every decision committed since this handler's
// cursor and turns each into the internal HandleNewNodeOnline/HandleNodeLeft
// command the engine's state machine itself never issues directly (it has
// no notion of "online" vs "left", only of decided NodeStates — §6 names
// these as the handler's own translation step).
func (h *Handler) drainDecisions(prefix section.Prefix) []Cmd {
	h.mu.Lock()
	decisions, newCursor := h.engine.DecisionsSince(h.cursor)
	h.cursor = newCursor
	h.mu.Unlock()

	var cmds []Cmd
	for _, decision := range decisions {
		if h.metrics != nil {
			h.metrics.DecisionsCommitted.Inc()
		}
		decision.Proposals(func(state section.NodeState, sig section.KeyedSig) {
			if section.IsLeavingSection(state, prefix) {
				cmds = append(cmds, HandleNodeLeft{Value: state, Sig: sig})
			} else {
				cmds = append(cmds, HandleNewNodeOnline{Value: state, Sig: sig})
			}
		})
	}
	return cmds
}
