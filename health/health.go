// Copyright (C) 2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package health exposes the membership engine's liveness the way
// protocol/nova.Topological.HealthCheck does: a context-scoped method
// returning an untyped status payload plus an error, rather than a
// hand-rolled status type.
package health

import (
	"context"

	"github.com/luxfi/sectionmembership/engine/membership"
)

// Checker reports the membership engine's health.
type Checker struct {
	engine *membership.Engine
}

// NewChecker wraps eng for health reporting.
func NewChecker(eng *membership.Engine) *Checker {
	return &Checker{engine: eng}
}

// HealthCheck returns the engine's current generation and the time of its
// last committed decision. It never errors: an engine with no decisions yet
// is healthy, just early in its lifecycle.
func (c *Checker) HealthCheck(context.Context) (interface{}, error) {
	lastDecisionAt, has := c.engine.LastDecisionAt()

	result := map[string]interface{}{
		"generation": uint64(c.engine.Generation()),
	}
	if has {
		result["lastDecisionAt"] = lastDecisionAt
	}
	return result, nil
}
