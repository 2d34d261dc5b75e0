// Copyright (C) 2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package membership

import "github.com/luxfi/sectionmembership/config"

// DefaultParams returns the production-scale config.Parameters a section's
// membership engine is built against (elder count, merge group size).
func DefaultParams() config.Parameters {
	return config.Mainnet()
}

// LocalParams returns the single-process development config.Parameters —
// the ElderCount=1 preset this package's single-elder engine tests build
// their Engine against.
func LocalParams() config.Parameters {
	return config.Local()
}
