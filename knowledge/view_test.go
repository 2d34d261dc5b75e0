// Copyright (C) 2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package knowledge

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/sectionmembership/section"
)

func TestViewReadsInitialSnapshot(t *testing.T) {
	require := require.New(t)

	sap := section.SectionAuthorityProvider{
		Prefix: section.Prefix{Bits: []byte{0x80}, Len: 1},
		Elders: map[section.XorName]section.Elder{},
	}
	v := NewView(sap)

	require.Equal(sap.Prefix, v.Prefix())
	require.Equal(sap.SectionKey, v.SectionKey())
}

func TestViewUpdateIsAtomicAndVisible(t *testing.T) {
	require := require.New(t)

	v := NewView(section.SectionAuthorityProvider{})
	next := section.SectionAuthorityProvider{
		Prefix: section.Prefix{Bits: []byte{0xC0}, Len: 2},
	}
	v.UpdateAuthorityProvider(next)

	require.Equal(next.Prefix, v.Prefix())
	require.Equal(next, v.AuthorityProvider())
}
