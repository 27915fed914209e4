// SPDX-License-Identifier: MIT
// Package spectral: the place-similarity operator kernel.
//
// Purpose:
//   - Build M̃ = D⁻¹·M·U⁻¹·Mᵗ without forming explicit diagonal inverses:
//     the two diagonal scalings are applied as broadcasts (row-scale by
//     1/d, column-scale by 1/u) and a single dense product finishes the job.
//     This is the canonical formulation; numerical equivalence with the
//     explicit diag-inverse product is pinned by a property test rather
//     than carrying both forms in production code.

package spectral

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/ecomplex/flows"
)

const opPlaceOperator = "PlaceOperator"

// spectralErrorf wraps err with an operation tag, preserving sentinels for errors.Is.
func spectralErrorf(tag string, err error) error {
	return fmt.Errorf("spectral.%s: %w", tag, err)
}

// PlaceOperator builds the row-stochastic place-similarity operator
// M̃ = D⁻¹·M·U⁻¹·Mᵗ from the binary presence matrix.
//
// Stage 1 (Validate): non-nil binary frame; no zero row or column.
// Stage 2 (Prepare): B = M row-scaled by 1/d, C = M column-scaled by 1/u.
// Stage 3 (Execute): M̃ = B·Cᵗ in one dense product.
//
// Every row of the result sums to 1 (a Markov transition matrix between
// places); the test suite pins that property.
//
// Errors: flows.ErrNilInput, flows.ErrNotBinary, ErrDegenerateMatrix.
// Complexity: O(n²·k) time, O(n²) memory.
func PlaceOperator(m *flows.Frame) (*mat.Dense, error) {
	// Validate the presence matrix itself.
	if err := flows.ValidateBinary(m); err != nil {
		return nil, spectralErrorf(opPlaceOperator, err)
	}

	// Zero totals make the diagonal scalings undefined; fail fast here
	// rather than letting NaN poison every index downstream.
	d := m.RowSums()
	u := m.ColSums()
	for i, v := range d {
		if v == 0 {
			return nil, spectralErrorf(opPlaceOperator, fmt.Errorf("place %q has zero diversity: %w", m.Places()[i], ErrDegenerateMatrix))
		}
	}
	for j, v := range u {
		if v == 0 {
			return nil, spectralErrorf(opPlaceOperator, fmt.Errorf("activity %q has zero ubiquity: %w", m.Activities()[j], ErrDegenerateMatrix))
		}
	}

	// Broadcast scalings: no explicit diagonal matrices are ever formed.
	n, k := m.Rows(), m.Cols()
	pres := m.Matrix()
	b := mat.NewDense(n, k, nil)
	c := mat.NewDense(n, k, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < k; j++ {
			v := pres.At(i, j)
			b.Set(i, j, v/d[i])
			c.Set(i, j, v/u[j])
		}
	}

	var mt mat.Dense
	mt.Mul(b, c.T())

	return &mt, nil
}
