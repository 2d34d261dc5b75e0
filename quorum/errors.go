// Copyright (C) 2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package quorum

import "errors"

// ErrMismatchedTarget is returned when a peer response names a different
// target_id than the caller's own response — the merge is refused rather
// than producing a partial result.
var ErrMismatchedTarget = errors.New("quorum: mismatched target id across responses")
