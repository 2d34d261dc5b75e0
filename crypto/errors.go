// Copyright (C) 2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package crypto

import "errors"

// ErrParse is returned when a key or signature cannot be decoded from its
// wire/hex/zbase32 representation.
var ErrParse = errors.New("crypto: failed to parse")

// ErrKeyTypeMismatch is returned by Verify when the signature and public key
// variants do not agree on an algorithm. It is always distinct from a
// cryptographic verification failure.
var ErrKeyTypeMismatch = errors.New("crypto: signing key type mismatch")

// ErrInvalidSignature is returned by Verify when the variants agree but the
// algorithm-specific check fails.
var ErrInvalidSignature = errors.New("crypto: invalid signature")
