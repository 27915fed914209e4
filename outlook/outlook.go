// SPDX-License-Identifier: MIT

package outlook

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/ecomplex/density"
	"github.com/katalvlaran/ecomplex/flows"
	"github.com/katalvlaran/ecomplex/proximity"
)

const opMeasures = "Measures"

// outlookErrorf wraps err with an operation tag, preserving sentinels for errors.Is.
func outlookErrorf(tag string, err error) error {
	return fmt.Errorf("outlook.%s: %w", tag, err)
}

// Row is one cross-joined output observation: coi is constant per place,
// cog varies per (place, activity).
type Row struct {
	Place    string
	Activity string
	COI      float64
	COG      float64
}

// Result carries COI and COG keyed by the presence matrix's label orderings.
type Result struct {
	places     []string
	activities []string
	coi        []float64
	cog        *flows.Frame
}

// Measures computes COI and COG from the presence matrix, the proximity
// matrix and the PCI vector (aligned to m's activity ordering).
//
// Stage 1 (Validate): binary m, non-nil φ, matching activity orderings,
// pci length equal to the activity count.
// Stage 2 (Execute): density from (m, φ); coi as the complement- and
// complexity-weighted density sum per place.
// Stage 3 (Execute): cog as ((1−M) ∘ pci-broadcast)·φ with each column
// divided by that activity's proximity mass.
//
// Errors: flows.ErrNilInput, flows.ErrNotBinary, flows.ErrIndexMismatch.
// Complexity: O(n·k²) time, O(n·k) memory.
func Measures(m *flows.Frame, phi *proximity.Matrix, pci []float64) (*Result, error) {
	// Validate the presence matrix.
	if err := flows.ValidateBinary(m); err != nil {
		return nil, outlookErrorf(opMeasures, err)
	}
	if phi == nil {
		return nil, outlookErrorf(opMeasures, flows.ErrNilInput)
	}
	if err := flows.SameLabels(m.Activities(), phi.Activities()); err != nil {
		return nil, outlookErrorf(opMeasures, err)
	}
	k := m.Cols()
	if len(pci) != k {
		return nil, outlookErrorf(opMeasures, fmt.Errorf("pci length %d, want %d: %w", len(pci), k, flows.ErrIndexMismatch))
	}

	// Density over the same pair of structures; alignment re-checked there.
	dens, _, err := density.Frames(m, phi)
	if err != nil {
		return nil, err
	}

	// coi(c) = Σ_p density(c,p)·(1−M[c][p])·pci(p).
	n := m.Rows()
	pres := m.Matrix()
	coi := make([]float64, n)
	var dv float64
	for i := 0; i < n; i++ {
		var s float64
		for j := 0; j < k; j++ {
			if dv, err = dens.At(i, j); err != nil {
				return nil, outlookErrorf(opMeasures, err)
			}
			s += dv * (1 - pres.At(i, j)) * pci[j]
		}
		coi[i] = s
	}

	// Complement weighted by PCI: W[c][p'] = (1−M[c][p'])·pci(p').
	w := mat.NewDense(n, k, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < k; j++ {
			w.Set(i, j, (1-pres.At(i, j))*pci[j])
		}
	}

	// One product against φ, then the per-activity mass broadcast.
	var raw mat.Dense
	raw.Mul(w, phi.Sym())
	mass := phi.Mass()
	cog, err := flows.NewFrame(m.Places(), m.Activities())
	if err != nil {
		return nil, outlookErrorf(opMeasures, err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < k; j++ {
			if err = cog.Set(i, j, raw.At(i, j)/mass[j]); err != nil {
				return nil, outlookErrorf(opMeasures, err)
			}
		}
	}

	return &Result{
		places:     m.Places(),
		activities: m.Activities(),
		coi:        coi,
		cog:        cog,
	}, nil
}

// Places returns a fresh copy of the ordered place labels.
func (r *Result) Places() []string {
	out := make([]string, len(r.places))
	copy(out, r.places)

	return out
}

// Activities returns a fresh copy of the ordered activity labels.
func (r *Result) Activities() []string {
	out := make([]string, len(r.activities))
	copy(out, r.activities)

	return out
}

// COI returns a fresh copy of the per-place outlook index, aligned to Places.
func (r *Result) COI() []float64 {
	out := make([]float64, len(r.coi))
	copy(out, r.coi)

	return out
}

// COIFor looks up one place's outlook index; second return false if unknown.
// Complexity: O(n).
func (r *Result) COIFor(place string) (float64, bool) {
	for i, p := range r.places {
		if p == place {
			return r.coi[i], true
		}
	}

	return 0, false
}

// COG returns the dense per-(place, activity) gain matrix as a deep copy.
func (r *Result) COG() *flows.Frame {
	return r.cog.Clone()
}

// Rows returns the cross-joined (place, activity, coi, cog) observations
// sorted by (place, activity), aligning with the other long-form outputs.
// Complexity: O(n·k log(n·k)).
func (r *Result) Rows() []Row {
	rows := make([]Row, 0, len(r.places)*len(r.activities))
	for i, p := range r.places {
		for j, a := range r.activities {
			g, _ := r.cog.At(i, j) // indices generated in range, cannot fail
			rows = append(rows, Row{Place: p, Activity: a, COI: r.coi[i], COG: g})
		}
	}
	sort.Slice(rows, func(a, b int) bool {
		if rows[a].Place != rows[b].Place {
			return rows[a].Place < rows[b].Place
		}

		return rows[a].Activity < rows[b].Activity
	})

	return rows
}
