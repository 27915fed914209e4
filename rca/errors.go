// SPDX-License-Identifier: MIT
// Package rca: sentinel error set. All functions return these sentinels
// (possibly wrapped with context) and tests match them via errors.Is.
// Structural/tabular failures surface the flows sentinels unchanged.

package rca

import "errors"

var (
	// ErrUnknownMetric indicates an Aggregate selector other than
	// Diversity or Ubiquity (invalid-argument condition).
	ErrUnknownMetric = errors.New("rca: unknown metric selector")

	// ErrBadThreshold signals a NaN or ±Inf presence threshold.
	ErrBadThreshold = errors.New("rca: threshold is NaN or Inf")
)
