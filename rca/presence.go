// SPDX-License-Identifier: MIT

package rca

import (
	"math"

	"github.com/katalvlaran/ecomplex/flows"
)

// DefaultThreshold is the conventional RCA cutoff for revealed advantage.
const DefaultThreshold = 1.0

const opPresence = "Presence"

// Presence reshapes a long RCA table into the dense binary place×activity
// matrix Mcp.
//
// Semantics:
//   - The wide reshape coalesces every unobserved (place, activity)
//     combination to 0 before thresholding; no missing cell survives.
//   - A cell is 1 iff RCA ≥ threshold (closed lower bound, not strict).
//   - NaN RCA (zero-total precondition violation upstream) compares false
//     against any threshold and therefore lands at 0.
//
// Stage 1 (Validate): finite threshold; table checks are delegated to Pivot.
// Stage 2 (Execute): pivot long→wide with fill 0, sorted by place.
// Stage 3 (Finalize): threshold cell-wise in deterministic i→j order.
//
// Errors: ErrBadThreshold, flows.ErrNilInput, flows.ErrNoRecords.
// Complexity: O(r·c) time and memory.
func Presence(t *flows.Table, threshold float64) (*flows.Frame, error) {
	// Validate the threshold: NaN would zero the whole matrix silently.
	if math.IsNaN(threshold) || math.IsInf(threshold, 0) {
		return nil, rcaErrorf(opPresence, ErrBadThreshold)
	}

	// Reshape long→wide; fill 0 is the coalesce step.
	f, err := flows.Pivot(t, 0)
	if err != nil {
		return nil, rcaErrorf(opPresence, err)
	}

	// Threshold cell-wise. Bounds are trivially valid here, so the indexed
	// errors from At/Set cannot fire; they are still surfaced, not swallowed.
	var v float64
	for i := 0; i < f.Rows(); i++ {
		for j := 0; j < f.Cols(); j++ {
			if v, err = f.At(i, j); err != nil {
				return nil, rcaErrorf(opPresence, err)
			}
			if v >= threshold {
				err = f.Set(i, j, 1)
			} else {
				err = f.Set(i, j, 0)
			}
			if err != nil {
				return nil, rcaErrorf(opPresence, err)
			}
		}
	}

	return f, nil
}
