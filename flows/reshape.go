// SPDX-License-Identifier: MIT
// Package flows: long↔wide reshaping. Pivot turns a sorted long Table into
// a dense Frame with an explicit fill value for unobserved cells; Melt is
// the inverse, emitting every dense cell back into (place, activity, value)
// rows. Label orderings are lexicographic and derived from the data, never
// from encounter order.

package flows

import "fmt"

// Pivot reshapes a long table into a dense place×activity Frame.
// Any (place, activity) combination absent from the long form becomes fill
// in the wide form; the coalesce step happens here, immediately after the
// reshape, so no missing cell ever reaches a downstream matrix stage.
// Stage 1 (Validate): non-nil, non-empty table.
// Stage 2 (Prepare): collect sorted distinct labels, allocate the frame,
// pre-fill with fill.
// Stage 3 (Execute): scatter observed values into their cells.
// Returns ErrNilInput or ErrNoRecords.
// Complexity: O(r·c + n log n).
func Pivot(t *Table, fill float64) (*Frame, error) {
	// Validate input presence.
	if t == nil {
		return nil, fmt.Errorf("pivot: %w", ErrNilInput)
	}
	if t.Len() == 0 {
		return nil, fmt.Errorf("pivot: %w", ErrNoRecords)
	}

	// Prepare label orderings from the data (places are already sorted by the
	// table contract; activities are sorted explicitly).
	f, err := NewFrame(t.Places(), t.Activities())
	if err != nil {
		return nil, fmt.Errorf("pivot: %w", err)
	}

	// Pre-fill every cell so unobserved combinations coalesce to fill.
	if fill != 0 {
		for i := 0; i < f.Rows(); i++ {
			for j := 0; j < f.Cols(); j++ {
				f.data.Set(i, j, fill)
			}
		}
	}

	// Scatter observed values; labels came from the table, so lookups cannot miss.
	for _, r := range t.rows {
		i := f.placeIdx[r.Place]
		j := f.activityIdx[r.Activity]
		f.data.Set(i, j, r.Value)
	}

	return f, nil
}

// Melt reshapes a dense Frame into a long Table with one row per cell,
// sorted by (place, activity) as all long tables are.
// Stage 1 (Validate): non-nil frame.
// Stage 2 (Execute): emit rows in deterministic i→j order.
// Returns ErrNilInput.
// Complexity: O(r·c).
func Melt(f *Frame) (*Table, error) {
	// Validate input presence.
	if f == nil {
		return nil, fmt.Errorf("melt: %w", ErrNilInput)
	}

	rows := make([]Row, 0, f.Rows()*f.Cols())
	for i, p := range f.places {
		for j, a := range f.activities {
			rows = append(rows, Row{Place: p, Activity: a, Value: f.data.At(i, j)})
		}
	}

	return NewTable(rows), nil
}
