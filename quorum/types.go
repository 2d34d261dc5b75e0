// Copyright (C) 2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package quorum implements the response-merging primitive a client uses to
// fuse several peers' answers about a group's authoritative key set into one
// majority-weighted result, without having to trust any single peer.
package quorum

import "github.com/luxfi/sectionmembership/crypto"

// KeyPair is one (name, public key) entry in a group's key set.
type KeyPair struct {
	Name XorName
	Key  crypto.PublicKey
}

// XorName aliases crypto.XorName so callers needn't import crypto just to
// build a Response.
type XorName = crypto.XorName

// Response is one peer's answer to "what is this group's key set" —
// modeled on sn_api's files_map-style quorum response.
type Response struct {
	TargetID       XorName
	PublicSignKeys []KeyPair
}
