// Copyright (C) 2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package quorum

import (
	"fmt"
	"sort"

	"golang.org/x/exp/maps"

	"github.com/luxfi/sectionmembership/config"
	"github.com/luxfi/sectionmembership/crypto"
)

// tally counts occurrences of a (name, key) pair across responses. Keys are
// interface values, so the tally is keyed on a comparable projection of the
// pair (name bytes + key bytes) rather than the KeyPair struct itself.
type tally struct {
	pair  KeyPair
	count int
}

func pairTallyKey(p KeyPair) string {
	return string(p.Name[:]) + "|" + string(p.Key.Bytes())
}

// comparePair orders two KeyPairs by their serialized form: name bytes
// first, then key bytes — the "natural order" ties break on.
func comparePair(a, b KeyPair) int {
	for i := range a.Name {
		if a.Name[i] != b.Name[i] {
			if a.Name[i] < b.Name[i] {
				return -1
			}
			return 1
		}
	}
	return crypto.Compare(a.Key, b.Key)
}

// Merge fuses self (the caller's own response) with zero or more peer
// responses into a single majority-weighted Response of exactly groupSize
// entries.
//
// It is the caller's responsibility to supply at least a quorum of
// responses: Merge panics if fewer than groupSize distinct pairs remain
// after tallying, per the documented invariant — this is not a recoverable
// protocol error, it means the caller under-queried.
func Merge(self Response, peers []Response, groupSize int) (Response, error) {
	for _, peer := range peers {
		if peer.TargetID != self.TargetID {
			return Response{}, fmt.Errorf("%w: self=%s peer=%s", ErrMismatchedTarget, self.TargetID, peer.TargetID)
		}
	}

	counts := make(map[string]*tally)
	addAll := func(r Response) {
		for _, p := range r.PublicSignKeys {
			key := pairTallyKey(p)
			if t, ok := counts[key]; ok {
				t.count++
			} else {
				counts[key] = &tally{pair: p, count: 1}
			}
		}
	}
	addAll(self)
	for _, peer := range peers {
		addAll(peer)
	}

	entries := maps.Values(counts)
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return comparePair(entries[i].pair, entries[j].pair) < 0
	})

	if len(entries) < groupSize {
		panic(fmt.Sprintf("quorum: merge invariant violated: have %d distinct pairs, need %d — caller must supply at least a quorum of responses", len(entries), groupSize))
	}

	out := Response{
		TargetID:       self.TargetID,
		PublicSignKeys: make([]KeyPair, groupSize),
	}
	for i := 0; i < groupSize; i++ {
		out.PublicSignKeys[i] = entries[i].pair
	}
	return out, nil
}

// MergeWithParams is Merge with the group size taken from params.GroupSize
// rather than supplied directly — the form a caller holding a
// config.Parameters (the same one the membership engine is configured with)
// should use, so the merge's quorum size always tracks the section's
// configured GROUP_SIZE instead of a call-site literal.
func MergeWithParams(self Response, peers []Response, params config.Parameters) (Response, error) {
	return Merge(self, peers, params.GroupSize)
}
