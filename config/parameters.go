// Copyright (C) 2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package config holds the membership core's tunable parameters, following
// the teacher consensus package's Mainnet()/Testnet()/Local() preset
// constructor pattern (config/parameters.go) rather than a single hardcoded
// set of constants.
package config

// Parameters configures the membership core and the quorum merge it
// depends on.
type Parameters struct {
	// GroupSize is the fixed size of a merged quorum response
	// (§4.2's GROUP_SIZE).
	GroupSize int
	// ElderCount is the number of top-by-distance nodes that act as a
	// section's elders.
	ElderCount int
}

// Mainnet returns production-scale parameters.
func Mainnet() Parameters {
	return Parameters{
		GroupSize:  7,
		ElderCount: 7,
	}
}

// Testnet returns parameters for a smaller, public test deployment.
func Testnet() Parameters {
	return Parameters{
		GroupSize:  5,
		ElderCount: 5,
	}
}

// Local returns parameters for a single-process local development section.
func Local() Parameters {
	return Parameters{
		GroupSize:  1,
		ElderCount: 1,
	}
}
