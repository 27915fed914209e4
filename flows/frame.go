// SPDX-License-Identifier: MIT
// Package flows: Frame is the dense place×activity structure every matrix
// stage operates on. The value matrix never travels alone: the ordered
// place and activity label slices (plus their reverse-lookup maps) are
// maintained alongside it, so alignment is always checkable and never
// implied by column order.

package flows

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Frame is a dense place×activity matrix with label indexes.
// places/activities give row/column order; placeIdx/activityIdx provide the
// reverse lookup (the VertexIndex pattern: label → offset, offset → label).
type Frame struct {
	places      []string
	activities  []string
	placeIdx    map[string]int
	activityIdx map[string]int
	data        *mat.Dense
}

// NewFrame allocates a zero-filled Frame over the given label orderings.
// Stage 1 (Validate): both label sets non-empty, no duplicates.
// Stage 2 (Prepare): copy labels, build reverse-lookup maps.
// Stage 3 (Finalize): allocate the dense backing and return.
// Returns ErrBadShape or ErrDuplicateLabel.
// Complexity: O(r·c) time and memory.
func NewFrame(places, activities []string) (*Frame, error) {
	// Validate dimensions: a frame with no rows or no columns is meaningless.
	if len(places) == 0 || len(activities) == 0 {
		return nil, fmt.Errorf("%d places × %d activities: %w", len(places), len(activities), ErrBadShape)
	}

	// Prepare defensive copies and reverse indexes.
	ps := make([]string, len(places))
	copy(ps, places)
	as := make([]string, len(activities))
	copy(as, activities)

	pIdx := make(map[string]int, len(ps))
	for i, p := range ps {
		if _, dup := pIdx[p]; dup {
			return nil, fmt.Errorf("place %q: %w", p, ErrDuplicateLabel)
		}
		pIdx[p] = i
	}
	aIdx := make(map[string]int, len(as))
	for j, a := range as {
		if _, dup := aIdx[a]; dup {
			return nil, fmt.Errorf("activity %q: %w", a, ErrDuplicateLabel)
		}
		aIdx[a] = j
	}

	return &Frame{
		places:      ps,
		activities:  as,
		placeIdx:    pIdx,
		activityIdx: aIdx,
		data:        mat.NewDense(len(ps), len(as), nil),
	}, nil
}

// Rows returns the number of places (matrix rows).
func (f *Frame) Rows() int { return len(f.places) }

// Cols returns the number of activities (matrix columns).
func (f *Frame) Cols() int { return len(f.activities) }

// Places returns a fresh copy of the ordered place labels.
func (f *Frame) Places() []string {
	out := make([]string, len(f.places))
	copy(out, f.places)

	return out
}

// Activities returns a fresh copy of the ordered activity labels.
func (f *Frame) Activities() []string {
	out := make([]string, len(f.activities))
	copy(out, f.activities)

	return out
}

// PlaceIndex resolves a place label to its row, second return false if absent.
func (f *Frame) PlaceIndex(place string) (int, bool) {
	i, ok := f.placeIdx[place]

	return i, ok
}

// ActivityIndex resolves an activity label to its column.
func (f *Frame) ActivityIndex(activity string) (int, bool) {
	j, ok := f.activityIdx[activity]

	return j, ok
}

// At retrieves the element at (row, col) with bounds checking.
// Returns ErrOutOfRange rather than panicking.
// Complexity: O(1).
func (f *Frame) At(row, col int) (float64, error) {
	if err := f.check(row, col); err != nil {
		return 0, err
	}

	return f.data.At(row, col), nil
}

// Set assigns v at (row, col) with bounds checking.
// Returns ErrOutOfRange rather than panicking.
// Complexity: O(1).
func (f *Frame) Set(row, col int, v float64) error {
	if err := f.check(row, col); err != nil {
		return err
	}
	f.data.Set(row, col, v)

	return nil
}

// check validates a (row, col) pair against the frame shape.
func (f *Frame) check(row, col int) error {
	if row < 0 || row >= len(f.places) {
		return fmt.Errorf("row %d of %d: %w", row, len(f.places), ErrOutOfRange)
	}
	if col < 0 || col >= len(f.activities) {
		return fmt.Errorf("col %d of %d: %w", col, len(f.activities), ErrOutOfRange)
	}

	return nil
}

// Matrix exposes the dense values as a read-only gonum mat.Matrix view of
// the backing storage. Callers must not type-assert and mutate; stages that
// need a scratch copy use DenseCopy.
func (f *Frame) Matrix() mat.Matrix { return f.data }

// DenseCopy returns a freshly allocated copy of the dense values.
// Complexity: O(r·c).
func (f *Frame) DenseCopy() *mat.Dense {
	out := mat.NewDense(len(f.places), len(f.activities), nil)
	out.Copy(f.data)

	return out
}

// Clone returns a deep copy of the Frame (labels, indexes and values).
// Complexity: O(r·c).
func (f *Frame) Clone() *Frame {
	cp, _ := NewFrame(f.places, f.activities) // labels already validated
	cp.data.Copy(f.data)

	return cp
}

// RowSums returns per-place sums (the diversity reduction substrate).
// Deterministic row order.
// Complexity: O(r·c).
func (f *Frame) RowSums() []float64 {
	sums := make([]float64, len(f.places))
	for i := range f.places {
		sums[i] = floats.Sum(f.data.RawRowView(i))
	}

	return sums
}

// ColSums returns per-activity sums (the ubiquity reduction substrate).
// Accumulated row by row in deterministic order.
// Complexity: O(r·c).
func (f *Frame) ColSums() []float64 {
	sums := make([]float64, len(f.activities))
	for i := range f.places {
		floats.Add(sums, f.data.RawRowView(i))
	}

	return sums
}
