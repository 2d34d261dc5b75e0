// Copyright (C) 2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package membership implements the section membership BFT voting state
// machine: the per-generation Idle -> Voting -> Decided cycle a section's
// elders drive by proposing node states and exchanging signed votes, plus
// the anti-entropy catch-up a lagging voter uses to resynchronize.
//
// The engine is a pure state machine: it holds only primitive and
// cryptographic values and never references the outer node, per the
// cyclic-ownership design note — callers (the handler package) own it
// behind a lock and translate its output into outbound messages.
package membership

import (
	"fmt"
	"time"

	"github.com/luxfi/sectionmembership/config"
	"github.com/luxfi/sectionmembership/crypto"
	"github.com/luxfi/sectionmembership/section"
)

// openProposal tracks the shares collected so far for one node's proposed
// state change at the engine's current generation.
type openProposal struct {
	state   section.NodeState
	shares  map[uint16]crypto.BlsShareSignature
	relayed bool // this proposal's vote has already been rebroadcast once
}

// Engine holds the current generation, open proposals, received votes, and
// most-recent decision for one section's membership history.
type Engine struct {
	self       crypto.BlsSharePublicKey
	selfSecret blsShareSigner

	generation section.Generation
	open       map[section.XorName]*openProposal

	votersPKSet crypto.BlsPublicKeySet

	// cfg is the section's configured tunables (elder count, merge group
	// size). The engine only consults ElderCount() of it itself — handed to
	// callers (the handler) so the local authority provider's elder count can
	// be checked for staleness against what this section is configured for.
	cfg config.Parameters

	mostRecentDecision *section.Decision
	lastDecisionAt     time.Time
	decisionSeq        uint64

	// history holds, for every finalized generation, the votes that
	// decided it — replayed verbatim by AntiEntropy to lagging peers.
	history map[section.Generation][]SignedVote

	// decisionLog holds every decision ever reached, in generation order,
	// so DecisionsSince can hand the handler an exactly-once cursor instead
	// of relying on MostRecentDecision re-emission.
	decisionLog []decisionRecord
}

type decisionRecord struct {
	seq      uint64
	decision section.Decision
}

// blsShareSigner is the minimal signing capability the engine needs from a
// local elder identity: producing this voter's share signature over a
// proposal's signing bytes.
type blsShareSigner interface {
	SignShare(msg []byte) crypto.BlsShareSignature
}

// New creates a membership engine for a section whose elders vote under
// votersPKSet, starting at generation 0, signing locally as self using
// signer, configured per cfg.
func New(self crypto.BlsSharePublicKey, signer blsShareSigner, votersPKSet crypto.BlsPublicKeySet, cfg config.Parameters) *Engine {
	return &Engine{
		self:        self,
		selfSecret:  signer,
		generation:  0,
		open:        make(map[section.XorName]*openProposal),
		votersPKSet: votersPKSet,
		cfg:         cfg,
		history:     make(map[section.Generation][]SignedVote),
	}
}

// Generation returns the engine's current generation.
func (e *Engine) Generation() section.Generation {
	return e.generation
}

// Self returns this engine's own voting identity — the public key share it
// signs proposals and votes with.
func (e *Engine) Self() crypto.BlsSharePublicKey {
	return e.self
}

// ElderCount returns the section's configured elder count, for callers to
// cross-check against a live SectionAuthorityProvider's actual elder set
// size.
func (e *Engine) ElderCount() int {
	return e.cfg.ElderCount
}

// VotersPublicKeySet returns the threshold public key set this engine's
// elders vote under.
func (e *Engine) VotersPublicKeySet() crypto.BlsPublicKeySet {
	return e.votersPKSet
}

// MostRecentDecision returns the last decision committed, if any. It is an
// idempotent read — calling it repeatedly without an intervening decision
// returns the same value every time, which is why the handler also has
// DecisionsSince available as an exactly-once alternative.
func (e *Engine) MostRecentDecision() (section.Decision, bool) {
	if e.mostRecentDecision == nil {
		return section.Decision{}, false
	}
	return *e.mostRecentDecision, true
}

// LastDecisionAt returns the wall-clock time the most recent decision was
// committed, and false if no decision has been committed yet.
func (e *Engine) LastDecisionAt() (time.Time, bool) {
	if e.mostRecentDecision == nil {
		return time.Time{}, false
	}
	return e.lastDecisionAt, true
}

// DecisionsSince returns every decision committed after cursor, along with
// the new cursor value to pass on the next call. Per the design note's
// "decision consumed at generation g" cursor, this lets the handler consume
// each decision exactly once instead of re-deriving idempotence downstream.
func (e *Engine) DecisionsSince(cursor uint64) ([]section.Decision, uint64) {
	var out []section.Decision
	newCursor := cursor
	for _, rec := range e.decisionLog {
		if rec.seq > cursor {
			out = append(out, rec.decision)
			newCursor = rec.seq
		}
	}
	return out, newCursor
}

// IsLeavingSection reports whether the given decided node state means the
// node is leaving prefix's section.
func IsLeavingSection(state section.NodeState, prefix section.Prefix) bool {
	return section.IsLeavingSection(state, prefix)
}

// Propose starts a membership change for state at the engine's current
// generation, returning a freshly signed vote for the caller to broadcast.
//
// Propose does not itself look up the SAP (that's the handler's job, reading
// knowledge.View): the caller reports through isElder whether the proposer
// is an elder of prefix, and Propose returns ErrNotAnElder when it is not.
// prefix itself is not consulted; the conflict check looks only at the
// proposal already open for this node.
func (e *Engine) Propose(self crypto.BlsSharePublicKey, isElder bool, state section.NodeState, prefix section.Prefix) (SignedVote, error) {
	if !isElder {
		return SignedVote{}, ErrNotAnElder
	}

	existing, ok := e.open[state.Name]
	if ok && !sameProposal(existing.state, state) {
		return SignedVote{}, fmt.Errorf("%w: node %s", ErrConflictingProposal, state.Name)
	}
	if !ok {
		e.open[state.Name] = &openProposal{
			state:  state,
			shares: make(map[uint16]crypto.BlsShareSignature),
		}
	}

	// Propose only mints the vote for the caller to broadcast; it does not
	// add it to the tally. The proposer's own vote is counted the same way
	// every other elder's is: when it arrives back through
	// HandleSignedVote. This keeps propose-then-decide a single code path
	// regardless of how many elders the section has.
	return e.signVote(state), nil
}

func sameProposal(a, b section.NodeState) bool {
	return a.Name == b.Name && a.State == b.State && a.Target.String() == b.Target.String()
}

func (e *Engine) signVote(state section.NodeState) SignedVote {
	sig := e.selfSecret.SignShare(signingBytes(e.generation, state))
	return SignedVote{
		Generation: e.generation,
		Proposed:   state,
		VoterShare: e.self,
		VoterSig:   sig,
	}
}

// HandleSignedVote ingests vote, drives the generation's Idle->Voting->
// Decided state machine, and reports what the caller should do next.
//
// A vote whose generation does not equal the engine's current generation —
// whether ahead (the engine is behind) or behind (the engine has already
// moved past that round and holds no state for it) — is rejected with
// ErrRequestAntiEntropy: the engine cannot place it in its current tally
// either way, and the caller should request a catch-up exchange instead of
// guessing at how to proceed. See DESIGN.md for why this is broader than
// the "ahead only" reading of the generation check.
func (e *Engine) HandleSignedVote(vote SignedVote, prefix section.Prefix) (VoteResponse, error) {
	if vote.Generation != e.generation {
		return VoteResponse{}, ErrRequestAntiEntropy
	}

	proposal, ok := e.open[vote.Proposed.Name]
	if ok && !sameProposal(proposal.state, vote.Proposed) {
		return VoteResponse{}, fmt.Errorf("%w: node %s", ErrConflictingVote, vote.Proposed.Name)
	}
	if !ok {
		proposal = &openProposal{
			state:  vote.Proposed,
			shares: make(map[uint16]crypto.BlsShareSignature),
		}
		e.open[vote.Proposed.Name] = proposal
	}

	if _, dup := proposal.shares[vote.VoterShare.Index]; dup {
		return VoteResponse{Kind: WaitingForMoreVotes}, nil
	}
	e.recordShare(vote.Proposed.Name, vote)

	if len(proposal.shares) < e.votersPKSet.Threshold() {
		if proposal.relayed {
			return VoteResponse{Kind: WaitingForMoreVotes}, nil
		}
		proposal.relayed = true
		return VoteResponse{Kind: Broadcast, Vote: vote}, nil
	}

	e.decide(proposal)
	return VoteResponse{Kind: WaitingForMoreVotes}, nil
}

func (e *Engine) recordShare(name section.XorName, vote SignedVote) {
	e.open[name].shares[vote.VoterShare.Index] = vote.VoterSig
	e.history[e.generation] = append(e.history[e.generation], vote)
}

// decide combines a proposal's collected shares into a decision, advances
// the generation, and clears per-generation open-proposal state. Each
// proposal decides (and advances the generation) independently as soon as
// it alone reaches threshold, so every Decision carries exactly one change;
// concurrent proposals at the same generation are never folded into one
// Decision, and any other proposal still open is dropped and must be voted
// on again at the new generation.
func (e *Engine) decide(proposal *openProposal) {
	shares := make([]crypto.BlsShareSignature, 0, len(proposal.shares))
	for _, sig := range proposal.shares {
		shares = append(shares, sig)
	}
	combined, err := e.votersPKSet.CombineSignatures(shares)
	if err != nil {
		// Threshold was met by count but combination failed (malformed
		// share bytes) — leave the round open rather than fabricate a
		// decision. Real signature validity is the transport/handler
		// layer's concern per §1's Byzantine-tolerance delegation.
		return
	}

	decision := section.NewDecision(e.generation)
	decision.Add(proposal.state, section.KeyedSig{
		PublicKey: e.votersPKSet.PublicKey(),
		Signature: combined,
	})

	e.decisionSeq++
	e.decisionLog = append(e.decisionLog, decisionRecord{seq: e.decisionSeq, decision: decision})
	e.mostRecentDecision = &decision
	e.lastDecisionAt = time.Now()

	e.open = make(map[section.XorName]*openProposal)
	e.generation++
}

// AntiEntropy returns the votes needed for a peer at theirGen to catch up to
// this engine's current generation: every vote recorded for generations
// theirGen through e.generation — the votes that decided each round the peer
// has not finished yet, plus any in-flight votes for the current round. It is
// empty iff theirGen >= e.generation.
func (e *Engine) AntiEntropy(theirGen section.Generation) []SignedVote {
	if theirGen >= e.generation {
		return nil
	}
	var out []SignedVote
	for gen := theirGen; gen <= e.generation; gen++ {
		out = append(out, e.history[gen]...)
	}
	return out
}
