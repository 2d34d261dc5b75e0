// Copyright (C) 2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package handler

import "errors"

// ErrNoEngine is returned internally (and only logged, never bubbled to a
// caller) when the handler is invoked before its membership engine has been
// constructed. All membership entry points degrade to an empty command list
// in this case rather than panicking — early in a node's lifecycle this is
// expected, not a bug.
var ErrNoEngine = errors.New("handler: membership engine not yet constructed")
