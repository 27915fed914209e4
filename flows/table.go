// SPDX-License-Identifier: MIT
// Package flows: Table is the long-form (place, activity, value) relation
// produced by every per-pair pipeline stage (RCA, density, distance).
// A Table is ALWAYS sorted by (place, activity); that ordering is the
// contract downstream joins rely on, so it is enforced at construction
// rather than trusted from callers.

package flows

import (
	"fmt"
	"sort"
)

// Row is one long-form observation: a keyed (place, activity) pair with its
// real-valued payload (an RCA score, a density, a distance, ...).
type Row struct {
	Place    string
	Activity string
	Value    float64
}

// Table is an immutable long-form relation sorted by (Place, Activity).
// Construct via NewTable; the zero value is an empty table.
type Table struct {
	rows []Row
}

// NewTable copies rows and sorts them by (Place, Activity) ascending.
// Sorting is stable so equal keys preserve input order (equal keys should
// not occur in well-formed stage outputs, but the builder does not assume).
// Complexity: O(n log n).
func NewTable(rows []Row) *Table {
	cp := make([]Row, len(rows))
	copy(cp, rows)
	sort.SliceStable(cp, func(i, j int) bool {
		if cp[i].Place != cp[j].Place {
			return cp[i].Place < cp[j].Place
		}

		return cp[i].Activity < cp[j].Activity
	})

	return &Table{rows: cp}
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Rows returns a fresh copy of all rows in (place, activity) order.
// Complexity: O(n).
func (t *Table) Rows() []Row {
	out := make([]Row, len(t.rows))
	copy(out, t.rows)

	return out
}

// Row returns the i-th row in sorted order, or ErrOutOfRange.
// Complexity: O(1).
func (t *Table) Row(i int) (Row, error) {
	if i < 0 || i >= len(t.rows) {
		return Row{}, fmt.Errorf("row %d of %d: %w", i, len(t.rows), ErrOutOfRange)
	}

	return t.rows[i], nil
}

// Value looks up the payload for (place, activity) by binary search over the
// sorted rows. The second return is false when the pair was not observed.
// Complexity: O(log n).
func (t *Table) Value(place, activity string) (float64, bool) {
	i := sort.Search(len(t.rows), func(k int) bool {
		r := t.rows[k]
		if r.Place != place {
			return r.Place >= place
		}

		return r.Activity >= activity
	})
	if i < len(t.rows) && t.rows[i].Place == place && t.rows[i].Activity == activity {
		return t.rows[i].Value, true
	}

	return 0, false
}

// Places returns the ordered distinct place labels.
// The table is sorted by place first, so one linear pass suffices.
// Complexity: O(n).
func (t *Table) Places() []string {
	var out []string
	for _, r := range t.rows {
		if len(out) == 0 || out[len(out)-1] != r.Place {
			out = append(out, r.Place)
		}
	}

	return out
}

// Activities returns the sorted distinct activity labels.
// Complexity: O(n log n).
func (t *Table) Activities() []string {
	seen := make(map[string]struct{}, len(t.rows))
	var out []string
	for _, r := range t.rows {
		if _, ok := seen[r.Activity]; !ok {
			seen[r.Activity] = struct{}{}
			out = append(out, r.Activity)
		}
	}
	sort.Strings(out)

	return out
}
