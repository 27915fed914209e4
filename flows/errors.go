// SPDX-License-Identifier: MIT
// Package flows: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the flows
// package and by downstream stages that operate on flows structures. All
// functions MUST return these sentinels and tests MUST check them via
// errors.Is. No function panics on user-triggered error conditions.

package flows

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "flows: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary; callers will still use errors.Is to match.

var (
	// ErrNilInput indicates that a nil *Dataset, *Table or *Frame was passed in.
	ErrNilInput = errors.New("flows: nil input")

	// ErrNoRecords indicates that a dataset or table carries zero rows where at
	// least one observation is required.
	ErrNoRecords = errors.New("flows: no records")

	// ErrBadSchema indicates an invalid column-name configuration: an empty
	// name, or the same column named for two different roles.
	ErrBadSchema = errors.New("flows: invalid schema")

	// ErrUnknownColumn indicates that a referenced column name is not present
	// in the dataset.
	ErrUnknownColumn = errors.New("flows: unknown column")

	// ErrColumnKind indicates that a column exists but holds the wrong kind
	// (string where float is required, or vice versa).
	ErrColumnKind = errors.New("flows: column has wrong kind")

	// ErrRagged indicates that columns of one dataset have differing lengths.
	ErrRagged = errors.New("flows: column lengths differ")

	// ErrBadValue signals a NaN, ±Inf or negative flow value at ingestion,
	// where finite non-negative values are required by the numeric policy.
	ErrBadValue = errors.New("flows: value is negative, NaN or Inf")

	// ErrBadShape is returned when a requested dense shape is invalid
	// (no places or no activities).
	ErrBadShape = errors.New("flows: invalid shape")

	// ErrDuplicateLabel indicates a repeated place or activity label in a
	// label index, which would make the dense mapping ambiguous.
	ErrDuplicateLabel = errors.New("flows: duplicate label")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers MUST return this, not panic.
	ErrOutOfRange = errors.New("flows: index out of range")

	// ErrNotBinary indicates that a frame interpreted as a presence matrix
	// carries a value other than 0 or 1.
	ErrNotBinary = errors.New("flows: matrix is not binary")

	// ErrIndexMismatch indicates that two structures expected to share a label
	// ordering do not. This is a programming error at the call site and fails
	// immediately rather than silently misaligning columns.
	ErrIndexMismatch = errors.New("flows: label indices do not match")
)
