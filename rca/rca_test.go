// SPDX-License-Identifier: MIT

package rca_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ecomplex/flows"
	"github.com/katalvlaran/ecomplex/rca"
)

const epsTight = 1e-12

var tradeSchema = flows.Schema{Place: "country", Activity: "product", Value: "export"}

// twoPlaceDataset is the canonical fixture: value matrix [[10,0,5],[0,10,5]]
// over places {aus, nzl} and activities {ore, wine, wool}.
func twoPlaceDataset(t *testing.T) *flows.Dataset {
	t.Helper()

	d, err := flows.NewDataset(
		flows.StringColumn("country", []string{"aus", "aus", "aus", "nzl", "nzl", "nzl"}),
		flows.StringColumn("product", []string{"ore", "wine", "wool", "ore", "wine", "wool"}),
		flows.FloatColumn("export", []float64{10, 0, 5, 0, 10, 5}),
	)
	require.NoError(t, err)

	return d
}

func TestTable_TwoPlaceScenario(t *testing.T) {
	t.Parallel()

	tab, err := rca.Table(twoPlaceDataset(t), tradeSchema)
	require.NoError(t, err)
	require.Equal(t, 6, tab.Len())

	// aus is specialized in ore: (10/15)/(10/30) = 2.
	v, ok := tab.Value("aus", "ore")
	require.True(t, ok)
	assert.InDelta(t, 2.0, v, epsTight)
	assert.Greater(t, v, 1.0, "specialized pair must exceed 1")

	// aus exports no wine at all.
	v, ok = tab.Value("aus", "wine")
	require.True(t, ok)
	assert.Equal(t, 0.0, v)

	// Shared activity sits exactly at the world average.
	v, ok = tab.Value("aus", "wool")
	require.True(t, ok)
	assert.InDelta(t, 1.0, v, epsTight)
}

func TestTable_UniformSharesGiveUnitRCA(t *testing.T) {
	t.Parallel()

	// Every place has the same 40/60 composition, so every place matches the
	// world average and all RCA values must be ≈ 1.
	d, err := flows.NewDataset(
		flows.StringColumn("country", []string{"aus", "aus", "nzl", "nzl", "fij", "fij"}),
		flows.StringColumn("product", []string{"ore", "wool", "ore", "wool", "ore", "wool"}),
		flows.FloatColumn("export", []float64{4, 6, 2, 3, 6, 9}),
	)
	require.NoError(t, err)

	tab, err := rca.Table(d, tradeSchema)
	require.NoError(t, err)
	for _, r := range tab.Rows() {
		assert.InDelta(t, 1.0, r.Value, epsTight, "uniform shares: RCA(%s,%s)", r.Place, r.Activity)
	}
}

func TestTable_DuplicatesAreSummed(t *testing.T) {
	t.Parallel()

	split, err := flows.NewDataset(
		flows.StringColumn("country", []string{"aus", "aus", "nzl"}),
		flows.StringColumn("product", []string{"ore", "ore", "wool"}),
		flows.FloatColumn("export", []float64{5, 5, 10}),
	)
	require.NoError(t, err)
	merged, err := flows.NewDataset(
		flows.StringColumn("country", []string{"aus", "nzl"}),
		flows.StringColumn("product", []string{"ore", "wool"}),
		flows.FloatColumn("export", []float64{10, 10}),
	)
	require.NoError(t, err)

	ts, err := rca.Table(split, tradeSchema)
	require.NoError(t, err)
	tm, err := rca.Table(merged, tradeSchema)
	require.NoError(t, err)

	require.Equal(t, tm.Len(), ts.Len(), "split duplicates must collapse to one row per pair")
	for _, r := range tm.Rows() {
		got, ok := ts.Value(r.Place, r.Activity)
		require.True(t, ok)
		assert.InDelta(t, r.Value, got, epsTight)
	}
}

func TestTable_Validation(t *testing.T) {
	t.Parallel()

	_, err := rca.Table(nil, tradeSchema)
	assert.ErrorIs(t, err, flows.ErrNilInput)

	_, err = rca.Table(twoPlaceDataset(t), flows.Schema{Place: "country", Activity: "country", Value: "export"})
	assert.ErrorIs(t, err, flows.ErrBadSchema)

	_, err = rca.Table(twoPlaceDataset(t), flows.Schema{Place: "country", Activity: "product", Value: "missing"})
	assert.ErrorIs(t, err, flows.ErrUnknownColumn)

	bad, err := flows.NewDataset(
		flows.StringColumn("country", []string{"aus"}),
		flows.StringColumn("product", []string{"ore"}),
		flows.FloatColumn("export", []float64{-3}),
	)
	require.NoError(t, err)
	_, err = rca.Table(bad, tradeSchema)
	assert.ErrorIs(t, err, flows.ErrBadValue, "negative flow value must be rejected at ingestion")
}

func TestPresence_ThresholdIsClosedBound(t *testing.T) {
	t.Parallel()

	tab, err := rca.Table(twoPlaceDataset(t), tradeSchema)
	require.NoError(t, err)

	m, err := rca.Presence(tab, rca.DefaultThreshold)
	require.NoError(t, err)
	require.Equal(t, []string{"aus", "nzl"}, m.Places())
	require.Equal(t, []string{"ore", "wine", "wool"}, m.Activities())

	// Expected M = [[1,0,1],[0,1,1]]; (aus,wool) RCA == 1.0 exactly, and the
	// closed lower bound must include it.
	want := [][]float64{{1, 0, 1}, {0, 1, 1}}
	for i := range want {
		for j := range want[i] {
			got, aerr := m.At(i, j)
			require.NoError(t, aerr)
			assert.Equal(t, want[i][j], got, "M[%d][%d]", i, j)
		}
	}
}

func TestPresence_MatchesStoredRCA(t *testing.T) {
	t.Parallel()

	tab, err := rca.Table(twoPlaceDataset(t), tradeSchema)
	require.NoError(t, err)
	m, err := rca.Presence(tab, rca.DefaultThreshold)
	require.NoError(t, err)

	// Property: cell == 1 iff stored RCA ≥ threshold for every observed pair.
	for _, r := range tab.Rows() {
		i, ok := m.PlaceIndex(r.Place)
		require.True(t, ok)
		j, ok := m.ActivityIndex(r.Activity)
		require.True(t, ok)
		cell, aerr := m.At(i, j)
		require.NoError(t, aerr)
		if r.Value >= rca.DefaultThreshold {
			assert.Equal(t, 1.0, cell, "(%s,%s)", r.Place, r.Activity)
		} else {
			assert.Equal(t, 0.0, cell, "(%s,%s)", r.Place, r.Activity)
		}
	}
}

func TestPresence_BadThreshold(t *testing.T) {
	t.Parallel()

	tab, err := rca.Table(twoPlaceDataset(t), tradeSchema)
	require.NoError(t, err)

	_, err = rca.Presence(tab, math.NaN())
	assert.ErrorIs(t, err, rca.ErrBadThreshold)
	_, err = rca.Presence(tab, math.Inf(1))
	assert.ErrorIs(t, err, rca.ErrBadThreshold)
	_, err = rca.Presence(nil, 1)
	assert.ErrorIs(t, err, flows.ErrNilInput)
}

func TestAggregate_DiversityUbiquity(t *testing.T) {
	t.Parallel()

	tab, err := rca.Table(twoPlaceDataset(t), tradeSchema)
	require.NoError(t, err)
	m, err := rca.Presence(tab, rca.DefaultThreshold)
	require.NoError(t, err)

	places, div, err := rca.Aggregate(m, rca.Diversity)
	require.NoError(t, err)
	assert.Equal(t, []string{"aus", "nzl"}, places)
	assert.Equal(t, []float64{2, 2}, div)

	acts, ubi, err := rca.Aggregate(m, rca.Ubiquity)
	require.NoError(t, err)
	assert.Equal(t, []string{"ore", "wine", "wool"}, acts)
	assert.Equal(t, []float64{1, 1, 2}, ubi)

	// Conservation: Σ diversity == Σ ubiquity == #ones in M.
	var sd, su float64
	for _, v := range div {
		sd += v
	}
	for _, v := range ubi {
		su += v
	}
	assert.Equal(t, sd, su, "Σ diversity must equal Σ ubiquity")
	assert.Equal(t, 4.0, sd)
}

func TestAggregate_UnknownMetric(t *testing.T) {
	t.Parallel()

	tab, err := rca.Table(twoPlaceDataset(t), tradeSchema)
	require.NoError(t, err)
	m, err := rca.Presence(tab, rca.DefaultThreshold)
	require.NoError(t, err)

	_, _, err = rca.Aggregate(m, rca.Metric("entropy"))
	assert.ErrorIs(t, err, rca.ErrUnknownMetric)
	_, _, err = rca.Aggregate(nil, rca.Diversity)
	assert.ErrorIs(t, err, flows.ErrNilInput)
}
