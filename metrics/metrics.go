// Copyright (C) 2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package metrics registers the membership core's Prometheus counters,
// following the teacher's metrics package's Registerer-based constructor
// pattern (metrics/metrics.go's NewAverager) rather than package-level
// global metrics.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Membership holds the counters the handler increments as it processes
// votes, decisions, and anti-entropy traffic.
type Membership struct {
	VotesHandled     prometheus.Counter
	DecisionsCommitted prometheus.Counter
	AERequestsSent   prometheus.Counter
	AERequestsServed prometheus.Counter
}

// NewMembership registers the membership counters against reg.
func NewMembership(reg prometheus.Registerer) (*Membership, error) {
	m := &Membership{
		VotesHandled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "membership_votes_handled_total",
			Help: "Total number of signed membership votes handled.",
		}),
		DecisionsCommitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "membership_decisions_committed_total",
			Help: "Total number of membership decisions committed.",
		}),
		AERequestsSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "membership_ae_requests_sent_total",
			Help: "Total number of anti-entropy requests sent because a vote's generation did not match this node's.",
		}),
		AERequestsServed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "membership_ae_requests_served_total",
			Help: "Total number of anti-entropy requests served to lagging peers.",
		}),
	}
	for _, c := range []prometheus.Counter{m.VotesHandled, m.DecisionsCommitted, m.AERequestsSent, m.AERequestsServed} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}
