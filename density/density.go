// SPDX-License-Identifier: MIT

package density

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/ecomplex/flows"
	"github.com/katalvlaran/ecomplex/proximity"
)

// Operation name constants for unified error wrapping.
const (
	opFrames = "Frames"
	opTables = "Tables"
)

// densityErrorf wraps err with an operation tag, preserving sentinels for errors.Is.
func densityErrorf(tag string, err error) error {
	return fmt.Errorf("density.%s: %w", tag, err)
}

// Frames computes the dense density and distance matrices.
//
// Stage 1 (Validate): non-nil inputs, binary M, activity orderings of M and
// φ element-wise equal.
// Stage 2 (Execute): weighted products M·φ and (1−M)·φ.
// Stage 3 (Finalize): divide each column by that activity's proximity mass.
//
// A zero proximity mass (activity present nowhere and unrelated to all)
// yields NaN in its column (upstream precondition, propagated).
//
// Errors: flows.ErrNilInput, flows.ErrNotBinary, flows.ErrIndexMismatch.
// Complexity: O(n·k²) time, O(n·k) memory.
func Frames(m *flows.Frame, phi *proximity.Matrix) (*flows.Frame, *flows.Frame, error) {
	// Validate presence matrix.
	if err := flows.ValidateBinary(m); err != nil {
		return nil, nil, densityErrorf(opFrames, err)
	}
	if phi == nil {
		return nil, nil, densityErrorf(opFrames, flows.ErrNilInput)
	}
	// The two structures must agree on the activity ordering exactly.
	if err := flows.SameLabels(m.Activities(), phi.Activities()); err != nil {
		return nil, nil, densityErrorf(opFrames, err)
	}

	n, k := m.Rows(), m.Cols()

	// Complement of presence: 1 − M.
	comp := mat.NewDense(n, k, nil)
	pres := m.Matrix()
	for i := 0; i < n; i++ {
		for j := 0; j < k; j++ {
			comp.Set(i, j, 1-pres.At(i, j))
		}
	}

	// Weighted neighborhood sums.
	var densRaw, distRaw mat.Dense
	densRaw.Mul(pres, phi.Sym())
	distRaw.Mul(comp, phi.Sym())

	// Column-wise broadcast normalization by each activity's proximity mass.
	mass := phi.Mass()
	dens, err := newAligned(m)
	if err != nil {
		return nil, nil, densityErrorf(opFrames, err)
	}
	dist, err := newAligned(m)
	if err != nil {
		return nil, nil, densityErrorf(opFrames, err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < k; j++ {
			if err = dens.Set(i, j, densRaw.At(i, j)/mass[j]); err != nil {
				return nil, nil, densityErrorf(opFrames, err)
			}
			if err = dist.Set(i, j, distRaw.At(i, j)/mass[j]); err != nil {
				return nil, nil, densityErrorf(opFrames, err)
			}
		}
	}

	return dens, dist, nil
}

// Tables computes density and distance and reshapes both to long form,
// sorted by (place, activity) to match the RCA table's key ordering.
//
// Errors: as Frames.
// Complexity: O(n·k²).
func Tables(m *flows.Frame, phi *proximity.Matrix) (*flows.Table, *flows.Table, error) {
	dens, dist, err := Frames(m, phi)
	if err != nil {
		return nil, nil, err
	}

	densTab, err := flows.Melt(dens)
	if err != nil {
		return nil, nil, densityErrorf(opTables, err)
	}
	distTab, err := flows.Melt(dist)
	if err != nil {
		return nil, nil, densityErrorf(opTables, err)
	}

	return densTab, distTab, nil
}

// newAligned allocates a zero frame sharing m's label orderings.
func newAligned(m *flows.Frame) (*flows.Frame, error) {
	return flows.NewFrame(m.Places(), m.Activities())
}
