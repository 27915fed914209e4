// SPDX-License-Identifier: MIT

package flows_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ecomplex/flows"
)

// newTradeDataset builds the small fixture shared by dataset tests:
// two places, three activities, one value column.
func newTradeDataset(t *testing.T) *flows.Dataset {
	t.Helper()

	d, err := flows.NewDataset(
		flows.StringColumn("country", []string{"aus", "aus", "aus", "nzl", "nzl", "nzl"}),
		flows.StringColumn("product", []string{"ore", "wine", "wool", "ore", "wine", "wool"}),
		flows.FloatColumn("export", []float64{10, 0, 5, 0, 10, 5}),
	)
	require.NoError(t, err, "fixture dataset must build")

	return d
}

func TestNewDataset_Validation(t *testing.T) {
	t.Parallel()

	// No columns at all.
	_, err := flows.NewDataset()
	assert.ErrorIs(t, err, flows.ErrBadSchema, "empty dataset must be ErrBadSchema")

	// Empty column name.
	_, err = flows.NewDataset(flows.FloatColumn("", []float64{1}))
	assert.ErrorIs(t, err, flows.ErrBadSchema, "empty name must be ErrBadSchema")

	// Duplicate column name.
	_, err = flows.NewDataset(
		flows.FloatColumn("x", []float64{1}),
		flows.FloatColumn("x", []float64{2}),
	)
	assert.ErrorIs(t, err, flows.ErrBadSchema, "duplicate name must be ErrBadSchema")

	// Ragged columns.
	_, err = flows.NewDataset(
		flows.StringColumn("place", []string{"a", "b"}),
		flows.FloatColumn("value", []float64{1}),
	)
	assert.ErrorIs(t, err, flows.ErrRagged, "differing lengths must be ErrRagged")
}

func TestDataset_Accessors(t *testing.T) {
	t.Parallel()

	d := newTradeDataset(t)
	assert.Equal(t, 6, d.Len())
	assert.Equal(t, []string{"country", "product", "export"}, d.Columns())
	assert.True(t, d.HasColumn("export"))
	assert.False(t, d.HasColumn("import"))

	vals, err := d.Floats("export")
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 0, 5, 0, 10, 5}, vals)

	// Mutating the returned slice must not leak into the dataset.
	vals[0] = -1
	again, err := d.Floats("export")
	require.NoError(t, err)
	assert.Equal(t, 10.0, again[0], "accessor must return a fresh copy")

	_, err = d.Floats("country")
	assert.ErrorIs(t, err, flows.ErrColumnKind, "string column via Floats must be ErrColumnKind")
	_, err = d.Strings("export")
	assert.ErrorIs(t, err, flows.ErrColumnKind)
	_, err = d.Strings("nope")
	assert.ErrorIs(t, err, flows.ErrUnknownColumn)
}

func TestDataset_WithFloats(t *testing.T) {
	t.Parallel()

	d := newTradeDataset(t)

	// Append a derived column; original dataset stays untouched.
	aug, err := d.WithFloats("rca", []float64{2, 0, 1, 0, 2, 1})
	require.NoError(t, err)
	assert.Equal(t, 4, len(aug.Columns()))
	assert.Equal(t, 3, len(d.Columns()), "receiver must not be mutated")

	// Replace an existing float column.
	rep, err := aug.WithFloats("rca", []float64{1, 1, 1, 1, 1, 1})
	require.NoError(t, err)
	got, err := rep.Floats("rca")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 1, 1, 1, 1}, got)

	// Wrong length and wrong kind are refused.
	_, err = d.WithFloats("rca", []float64{1})
	assert.ErrorIs(t, err, flows.ErrRagged)
	_, err = d.WithFloats("country", []float64{1, 2, 3, 4, 5, 6})
	assert.ErrorIs(t, err, flows.ErrColumnKind, "replacing a string column must be refused")
}

func TestDataset_Select(t *testing.T) {
	t.Parallel()

	d := newTradeDataset(t)

	sub, err := d.Select([]int{3, 4, 5})
	require.NoError(t, err)
	assert.Equal(t, 3, sub.Len())
	places, err := sub.Strings("country")
	require.NoError(t, err)
	assert.Equal(t, []string{"nzl", "nzl", "nzl"}, places)

	_, err = d.Select([]int{6})
	assert.ErrorIs(t, err, flows.ErrOutOfRange)
	_, err = d.Select([]int{-1})
	assert.ErrorIs(t, err, flows.ErrOutOfRange)
}

func TestSchema_Validate(t *testing.T) {
	t.Parallel()

	ok := flows.Schema{Place: "country", Activity: "product", Value: "export"}
	assert.NoError(t, ok.Validate())

	missing := flows.Schema{Place: "country", Activity: "product"}
	assert.ErrorIs(t, missing.Validate(), flows.ErrBadSchema, "empty value name must fail")

	dup := flows.Schema{Place: "country", Activity: "country", Value: "export"}
	assert.ErrorIs(t, dup.Validate(), flows.ErrBadSchema, "one column for two roles must fail")
}
