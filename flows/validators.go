// SPDX-License-Identifier: MIT
// Package flows: central alignment validators. Stages that combine two
// structures keyed by the same label ordering call these before any algebra;
// a mismatch is a programming error at the call site and fails immediately
// (ErrIndexMismatch), never a silent column misalignment.

package flows

import (
	"fmt"
	"math"
)

// SameLabels verifies that two label orderings are element-wise equal.
// Returns ErrIndexMismatch (wrapped with the first divergence) or nil.
// Complexity: O(n).
func SameLabels(a, b []string) error {
	if len(a) != len(b) {
		return fmt.Errorf("length %d vs %d: %w", len(a), len(b), ErrIndexMismatch)
	}
	for i := range a {
		if a[i] != b[i] {
			return fmt.Errorf("position %d: %q vs %q: %w", i, a[i], b[i], ErrIndexMismatch)
		}
	}

	return nil
}

// ValidateFlowValue enforces the ingestion numeric policy: flow values must
// be finite and non-negative. Returns ErrBadValue or nil.
// Complexity: O(1).
func ValidateFlowValue(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return fmt.Errorf("value %v: %w", v, ErrBadValue)
	}

	return nil
}

// ValidateBinary verifies that every cell of a frame is exactly 0 or 1.
// Stages that interpret a frame as a presence matrix (proximity, density,
// spectral, outlook) call this before any algebra: a fractional cell would
// make complements and conditional probabilities silently meaningless.
// Returns ErrNilInput or ErrNotBinary (wrapped with the offending cell).
// Complexity: O(r·c), deterministic i→j order.
func ValidateBinary(f *Frame) error {
	if f == nil {
		return ErrNilInput
	}
	for i := 0; i < f.Rows(); i++ {
		for j := 0; j < f.Cols(); j++ {
			if v := f.data.At(i, j); v != 0 && v != 1 {
				return fmt.Errorf("cell (%d,%d)=%v: %w", i, j, v, ErrNotBinary)
			}
		}
	}

	return nil
}
