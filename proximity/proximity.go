// SPDX-License-Identifier: MIT

package proximity

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/ecomplex/flows"
)

// ErrNotBinary aliases the shared flows sentinel: a supposed presence
// matrix carried a value other than 0 or 1. Kept here so callers can match
// the condition without importing flows.
var ErrNotBinary = flows.ErrNotBinary

const opFromPresence = "FromPresence"

// proxErrorf wraps err with an operation tag, preserving sentinels for errors.Is.
func proxErrorf(tag string, err error) error {
	return fmt.Errorf("proximity.%s: %w", tag, err)
}

// Matrix is the symmetric activity×activity proximity structure, carrying
// its ordered activity labels alongside the values.
type Matrix struct {
	activities []string
	index      map[string]int
	data       *mat.SymDense
}

// FromPresence computes φ from the binary presence matrix M.
//
// Stage 1 (Validate): non-nil frame, strictly binary cells.
// Stage 2 (Execute): co-occurrence counts C = Mᵗ·M in one dense product;
// the diagonal of C is the ubiquity vector.
// Stage 3 (Finalize): φ[i][j] = C[i][j] / max(u_i, u_j), upper triangle
// mirrored into a SymDense.
//
// Errors: flows.ErrNilInput, ErrNotBinary.
// Complexity: O(n·k²) time, O(k²) memory.
func FromPresence(m *flows.Frame) (*Matrix, error) {
	// Validate input presence and binariness before any algebra.
	if err := flows.ValidateBinary(m); err != nil {
		return nil, proxErrorf(opFromPresence, err)
	}

	// Co-occurrence counts: C = Mᵗ·M. C[i][j] counts places present in both
	// i and j; C[i][i] is ubiquity u_i.
	k := m.Cols()
	var co mat.Dense
	co.Mul(m.Matrix().T(), m.Matrix())

	// Normalize by the larger ubiquity; mirror through SymDense.
	// u_i == 0 yields 0/0 = NaN, propagated per the package contract.
	phi := mat.NewSymDense(k, nil)
	for i := 0; i < k; i++ {
		ui := co.At(i, i)
		for j := i; j < k; j++ {
			den := ui
			if uj := co.At(j, j); uj > den {
				den = uj
			}
			phi.SetSym(i, j, co.At(i, j)/den)
		}
	}

	acts := m.Activities()
	index := make(map[string]int, len(acts))
	for i, a := range acts {
		index[a] = i
	}

	return &Matrix{activities: acts, index: index, data: phi}, nil
}

// Len returns the number of activities (the matrix order).
func (p *Matrix) Len() int { return len(p.activities) }

// Activities returns a fresh copy of the ordered activity labels.
func (p *Matrix) Activities() []string {
	out := make([]string, len(p.activities))
	copy(out, p.activities)

	return out
}

// ActivityIndex resolves an activity label to its row/column offset.
func (p *Matrix) ActivityIndex(activity string) (int, bool) {
	i, ok := p.index[activity]

	return i, ok
}

// At retrieves φ(i,j) with bounds checking; returns flows.ErrOutOfRange
// rather than panicking.
// Complexity: O(1).
func (p *Matrix) At(i, j int) (float64, error) {
	if i < 0 || i >= len(p.activities) || j < 0 || j >= len(p.activities) {
		return 0, fmt.Errorf("proximity.At(%d,%d) of %d: %w", i, j, len(p.activities), flows.ErrOutOfRange)
	}

	return p.data.At(i, j), nil
}

// Sym exposes φ as a read-only gonum mat.Matrix view of the backing storage.
func (p *Matrix) Sym() mat.Matrix { return p.data }

// Mass returns the per-activity total proximity Σ_j φ(i,j), the broadcast
// denominator shared by the density and outlook stages.
// Complexity: O(k²).
func (p *Matrix) Mass() []float64 {
	k := len(p.activities)
	mass := make([]float64, k)
	for i := 0; i < k; i++ {
		var s float64
		for j := 0; j < k; j++ {
			s += p.data.At(i, j)
		}
		mass[i] = s
	}

	return mass
}
