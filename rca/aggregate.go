// SPDX-License-Identifier: MIT

package rca

import (
	"fmt"

	"github.com/katalvlaran/ecomplex/flows"
)

// Metric selects which reduction Aggregate computes.
type Metric string

const (
	// Diversity counts, per place, the activities it holds advantage in
	// (row sums of the presence matrix).
	Diversity Metric = "diversity"

	// Ubiquity counts, per activity, the places holding advantage in it
	// (column sums of the presence matrix).
	Ubiquity Metric = "ubiquity"
)

const opAggregate = "Aggregate"

// Aggregate reduces the presence matrix along one axis. Either metric is
// computed independently; requesting one never recomputes or returns the
// other. The returned labels parallel the sums slice: place labels for
// Diversity, activity labels for Ubiquity.
//
// Stage 1 (Validate): non-nil frame, known selector.
// Stage 2 (Execute): the matching axis reduction.
//
// Errors: flows.ErrNilInput, ErrUnknownMetric.
// Complexity: O(r·c).
func Aggregate(m *flows.Frame, metric Metric) ([]string, []float64, error) {
	// Validate the frame.
	if m == nil {
		return nil, nil, rcaErrorf(opAggregate, flows.ErrNilInput)
	}

	// Dispatch on the selector; anything else is an invalid argument.
	switch metric {
	case Diversity:
		return m.Places(), m.RowSums(), nil
	case Ubiquity:
		return m.Activities(), m.ColSums(), nil
	default:
		return nil, nil, rcaErrorf(opAggregate, fmt.Errorf("%q: %w", metric, ErrUnknownMetric))
	}
}
