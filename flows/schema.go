// SPDX-License-Identifier: MIT

package flows

import "fmt"

// Schema names the three roles every pipeline stage needs from a dataset:
// the place column, the activity column, and the numeric value column.
// All three names are required strings; there is no default for which
// column means what, so a transposed (place↔activity) run cannot happen
// by omission.
//
// Example:
//
//	s := flows.Schema{Place: "country", Activity: "product", Value: "export_value"}
//	if err := s.Validate(); err != nil { ... }
type Schema struct {
	Place    string
	Activity string
	Value    string
}

// Validate checks that all three column names are present and distinct.
// Stage 1 (Validate): reject empty names.
// Stage 2 (Validate): reject one column playing two roles.
// Returns ErrBadSchema (wrapped with the offending detail) or nil.
// Complexity: O(1).
func (s Schema) Validate() error {
	// Reject empty names: an unnamed role is a silent-misconfiguration hazard.
	if s.Place == "" || s.Activity == "" || s.Value == "" {
		return fmt.Errorf("place=%q activity=%q value=%q: %w", s.Place, s.Activity, s.Value, ErrBadSchema)
	}
	// Reject duplicates: one column cannot serve two roles.
	if s.Place == s.Activity || s.Place == s.Value || s.Activity == s.Value {
		return fmt.Errorf("duplicate role for column %q: %w", s.duplicate(), ErrBadSchema)
	}

	return nil
}

// duplicate reports the first column name used for two roles.
// Called only after a duplicate has been detected.
func (s Schema) duplicate() string {
	if s.Place == s.Activity || s.Place == s.Value {
		return s.Place
	}

	return s.Activity
}
