// SPDX-License-Identifier: MIT

package rca

import (
	"fmt"

	"github.com/katalvlaran/ecomplex/flows"
)

// Operation name constants for unified error wrapping.
const (
	opTable = "Table"
)

// rcaErrorf wraps err with an operation tag, preserving the original error
// via %w so callers can still match sentinels with errors.Is.
func rcaErrorf(tag string, err error) error {
	return fmt.Errorf("rca.%s: %w", tag, err)
}

// pair keys one (place, activity) combination during aggregation.
type pair struct {
	place    string
	activity string
}

// Table computes the RCA score for every observed (place, activity) pair.
//
// Algorithm:
//  1. Aggregate duplicate (place, activity) records by summing values.
//  2. Accumulate place totals C_c, activity totals A_p and the grand total S.
//  3. For each observed pair: RCA(c,p) = (v / C_c) / (A_p / S).
//  4. Return as a flows.Table, sorted by (place, activity) for reproducible
//     downstream joins.
//
// Preconditions (documented, not caught): every place and every activity in
// the input must carry positive total value; a zero total yields NaN which
// propagates through later stages.
//
// Stage 1 (Validate): non-nil dataset, valid schema, finite non-negative values.
// Stage 2 (Prepare): aggregate pairs and totals in one deterministic pass.
// Stage 3 (Execute): compute scores per pair.
// Stage 4 (Finalize): sort via flows.NewTable.
//
// Errors: flows.ErrNilInput, flows.ErrNoRecords, flows.ErrBadSchema,
// flows.ErrUnknownColumn, flows.ErrColumnKind, flows.ErrBadValue.
// Complexity: O(n log n) time, O(#pairs) space.
func Table(d *flows.Dataset, s flows.Schema) (*flows.Table, error) {
	// Validate dataset presence.
	if d == nil {
		return nil, rcaErrorf(opTable, flows.ErrNilInput)
	}
	if d.Len() == 0 {
		return nil, rcaErrorf(opTable, flows.ErrNoRecords)
	}
	// Validate the column-name configuration before touching any data.
	if err := s.Validate(); err != nil {
		return nil, rcaErrorf(opTable, err)
	}

	// Resolve the three role columns.
	places, err := d.Strings(s.Place)
	if err != nil {
		return nil, rcaErrorf(opTable, err)
	}
	activities, err := d.Strings(s.Activity)
	if err != nil {
		return nil, rcaErrorf(opTable, err)
	}
	values, err := d.Floats(s.Value)
	if err != nil {
		return nil, rcaErrorf(opTable, err)
	}

	// Aggregate duplicates and accumulate totals in one pass over the rows.
	sums := make(map[pair]float64, len(values))
	placeTotal := make(map[string]float64)
	activityTotal := make(map[string]float64)
	var grand float64
	for i, v := range values {
		if err = flows.ValidateFlowValue(v); err != nil {
			return nil, rcaErrorf(opTable, fmt.Errorf("row %d: %w", i, err))
		}
		k := pair{place: places[i], activity: activities[i]}
		sums[k] += v
		placeTotal[k.place] += v
		activityTotal[k.activity] += v
		grand += v
	}

	// Score every observed pair. Zero totals produce NaN by design (see
	// package doc); nothing is filtered here.
	rows := make([]flows.Row, 0, len(sums))
	for k, v := range sums {
		num := v / placeTotal[k.place]           // activity share within the place
		den := activityTotal[k.activity] / grand // activity share of total flow
		rows = append(rows, flows.Row{Place: k.place, Activity: k.activity, Value: num / den})
	}

	// flows.NewTable establishes the deterministic (place, activity) order,
	// so the map iteration order above never leaks into the result.
	return flows.NewTable(rows), nil
}
