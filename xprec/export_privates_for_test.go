// SPDX-License-Identifier: MIT

package xprec

// Test bridge exposing unexported pieces of the numeric core to the
// black-box suite in xprec_test, without widening the production API.

var (
	// ErrorForWellKnownValue exposes errorForWellKnownValue for white-box tests.
	ErrorForWellKnownValue = errorForWellKnownValue
	// DeltaForDecimal exposes deltaForDecimal for white-box tests.
	DeltaForDecimal = deltaForDecimal
	// QuickTwoSum exposes quickTwoSum for white-box tests.
	QuickTwoSum = quickTwoSum

	// WellKnownValues and WellKnownErrors expose the decimal table so the
	// suite can assert its ordering and per-entry invariants.
	WellKnownValues = wellKnownValues
	WellKnownErrors = wellKnownErrors
)
