// SPDX-License-Identifier: MIT
// Package spectral: the ECI/PCI facade.
//
// The mathematically dangerous choices live here and are all explicit:
// which eigenvalue is selected (second-largest by real part, documented
// tie-break), how the eigenvector sign is fixed (correlation with
// diversity), and whose moments standardize PCI (k_c's, deliberately).
// Small errors in any of them produce plausible-looking but wrong indices,
// so each choice is pinned by a test.

package spectral

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/ecomplex/flows"
)

const opIndices = "Indices"

// Row is one cross-joined output observation: eci is constant per place,
// pci constant per activity.
type Row struct {
	Place    string
	Activity string
	ECI      float64
	PCI      float64
}

// Result carries the standardized indices keyed by the presence matrix's
// label orderings.
type Result struct {
	places     []string
	activities []string
	eci        []float64
	pci        []float64
}

// Indices computes ECI and PCI from the binary presence matrix.
//
// Stage 1 (Validate): n ≥ 2 places; operator construction re-checks
// binariness and zero rows/columns.
// Stage 2 (Execute): eigen-decomposition of M̃, explicit sort-and-select of
// the second eigenvalue by descending real part (ties: descending imaginary
// part, then ascending index), real part of its right eigenvector as k_c.
// Stage 3 (Execute): k_p = pinv(M)·D·k_c.
// Stage 4 (Finalize): sign fix via corr(d, k_c), standardization by k_c's
// moments for BOTH vectors, then the final re-centering pass by eci's
// already-standardized moments (drift guard, effectively a no-op).
//
// Errors: ErrTooFewPlaces, ErrDegenerateMatrix, ErrEigenFailed,
// ErrSVDFailed, flows.ErrNilInput, flows.ErrNotBinary.
// Complexity: O(n³ + n·k·min(n,k)) time, dominated by the eigensolver.
func Indices(m *flows.Frame) (*Result, error) {
	if m == nil {
		return nil, spectralErrorf(opIndices, flows.ErrNilInput)
	}
	if m.Rows() < 2 {
		return nil, spectralErrorf(opIndices, ErrTooFewPlaces)
	}

	// The place-similarity operator; validates binariness and zero totals.
	mt, err := PlaceOperator(m)
	if err != nil {
		return nil, err
	}

	// Dense non-symmetric eigen-decomposition with right eigenvectors.
	var eig mat.Eigen
	if ok := eig.Factorize(mt, mat.EigenRight); !ok {
		return nil, spectralErrorf(opIndices, ErrEigenFailed)
	}

	// Explicit sort-and-select keeps the second-eigenvalue choice
	// deterministic even for degenerate or complex-pair spectra.
	n := m.Rows()
	values := eig.Values(nil)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		va, vb := values[order[a]], values[order[b]]
		if real(va) != real(vb) {
			return real(va) > real(vb)
		}
		if imag(va) != imag(vb) {
			return imag(va) > imag(vb)
		}

		return order[a] < order[b]
	})
	second := order[1]

	// k_c: real part of the selected right eigenvector. A non-real component
	// here is floating-point asymmetry of M̃; discarding it is the accepted
	// simplification, not an error.
	vecs := mat.NewCDense(n, n, nil)
	eig.VectorsTo(vecs)
	kc := make([]float64, n)
	for i := 0; i < n; i++ {
		kc[i] = real(vecs.At(i, second))
	}

	// k_p = pinv(M)·(D·k_c). D·k_c is a plain elementwise product with the
	// diversity vector, so no diagonal matrix is formed.
	d := m.RowSums()
	scaled := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		scaled.SetVec(i, d[i]*kc[i])
	}
	pinv, err := pseudoInverse(m.Matrix())
	if err != nil {
		return nil, spectralErrorf(opIndices, err)
	}
	k := m.Cols()
	kpVec := mat.NewVecDense(k, nil)
	kpVec.MulVec(pinv, scaled)
	kp := kpVec.RawVector().Data

	// Sign convention: higher diversity must correlate with higher ECI.
	// A zero or undefined correlation leaves the sign at +1.
	s := 1.0
	if stat.Correlation(d, kc, nil) < 0 {
		s = -1
	}

	// Standardize both vectors by k_c's sample moments. PCI deliberately
	// uses k_c's mean/std; that is what makes ECI(c) the mean PCI over
	// c's present activities.
	meanKc := stat.Mean(kc, nil)
	stdKc := stat.StdDev(kc, nil)
	if !(stdKc > 0) {
		return nil, spectralErrorf(opIndices, fmt.Errorf("constant eigenvector: %w", ErrDegenerateMatrix))
	}
	eci := make([]float64, n)
	for i := 0; i < n; i++ {
		eci[i] = s * (kc[i] - meanKc) / stdKc
	}
	pci := make([]float64, k)
	for j := 0; j < k; j++ {
		pci[j] = s * (kp[j] - meanKc) / stdKc
	}

	// Final pass: re-center both by eci's already-standardized moments.
	// Mathematically a no-op (mean 0, std 1), kept as a drift guard and for
	// compatibility with the established output.
	meanEci := stat.Mean(eci, nil)
	stdEci := stat.StdDev(eci, nil)
	for i := range eci {
		eci[i] = (eci[i] - meanEci) / stdEci
	}
	for j := range pci {
		pci[j] = (pci[j] - meanEci) / stdEci
	}

	return &Result{
		places:     m.Places(),
		activities: m.Activities(),
		eci:        eci,
		pci:        pci,
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

// ECI returns a fresh copy of the per-place index, aligned to Places.
func (r *Result) ECI() []float64 {
	out := make([]float64, len(r.eci))
	copy(out, r.eci)

	return out
}

// PCI returns a fresh copy of the per-activity index, aligned to Activities.
func (r *Result) PCI() []float64 {
	out := make([]float64, len(r.pci))
	copy(out, r.pci)

	return out
}

// ECIFor looks up one place's index; second return false if unknown.
// Complexity: O(n).
func (r *Result) ECIFor(place string) (float64, bool) {
	for i, p := range r.places {
		if p == place {
			return r.eci[i], true
		}
	}

	return 0, false
}

// PCIFor looks up one activity's index; second return false if unknown.
// Complexity: O(k).
func (r *Result) PCIFor(activity string) (float64, bool) {
	for j, a := range r.activities {
		if a == activity {
			return r.pci[j], true
		}
	}

	return 0, false
}

// Rows returns the cross-joined (place, activity, eci, pci) observations
// sorted by (place, activity), aligning with the other long-form outputs.
// Complexity: O(n·k log(n·k)).
func (r *Result) Rows() []Row {
	rows := make([]Row, 0, len(r.places)*len(r.activities))
	for i, p := range r.places {
		for j, a := range r.activities {
			rows = append(rows, Row{Place: p, Activity: a, ECI: r.eci[i], PCI: r.pci[j]})
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
