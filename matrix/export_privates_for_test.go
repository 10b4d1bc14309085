// SPDX-License-Identifier: MIT

// Test-only bridge exposing internals to the external test package.

package matrix

import "github.com/katalvlaran/crsmat/xprec"

// DebugIsValid exposes the isValid storage invariant to the suite.
func DebugIsValid(d *Dense) bool {
	return d.isValid()
}

// NewMisshapenDense builds a deliberately inconsistent Dense whose backing
// slice disagrees with the declared shape, for exercising isValid.
func NewMisshapenDense(numRow, numCol, storageLen int) *Dense {
	return &Dense{rows: numRow, cols: numCol, terms: make([]xprec.Term, storageLen)}
}

// RepairTriplet mirrors one planned NaN substitution for test inspection.
type RepairTriplet struct {
	Row, Col, ScaleCol int
}

// NaNRepairPlan runs the repair scan on an affine matrix and returns the
// planned substitutions, nil when the NaN layout is not repairable or when
// there is nothing to repair.
func NaNRepairPlan(d *Dense) []RepairTriplet {
	repairs := d.nanRepairs()
	if repairs == nil {
		return nil
	}
	out := make([]RepairTriplet, 0, len(repairs))
	for _, r := range repairs {
		out = append(out, RepairTriplet{Row: r.row, Col: r.col, ScaleCol: r.scaleCol})
	}

	return out
}
