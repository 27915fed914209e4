// SPDX-License-Identifier: MIT
// Package pipeline: the orchestrator. One public entry point runs every
// stage in dependency order and assembles the final left-joined dataset;
// a second entry point repeats the computation per time period.

package pipeline

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/ecomplex/density"
	"github.com/katalvlaran/ecomplex/flows"
	"github.com/katalvlaran/ecomplex/outlook"
	"github.com/katalvlaran/ecomplex/proximity"
	"github.com/katalvlaran/ecomplex/rca"
	"github.com/katalvlaran/ecomplex/spectral"
)

// Operation name constants for unified error wrapping.
const (
	opMetrics  = "ComplexityMetrics"
	opByPeriod = "ComplexityMetricsByPeriod"
)

// pipelineErrorf wraps err with an operation tag, preserving sentinels for errors.Is.
func pipelineErrorf(tag string, err error) error {
	return fmt.Errorf("pipeline.%s: %w", tag, err)
}

// derived bundles the ten per-row output columns of one pipeline run,
// aligned to the input dataset's rows.
type derived struct {
	rca, mcp             []float64
	diversity, ubiquity  []float64
	densityCol, distance []float64
	eci, pci             []float64
	coi, cog             []float64
}

// ComplexityMetrics runs the full pipeline over one dataset and returns a
// NEW dataset: the input columns plus the ten derived indicator columns.
//
// Stage 1 (Execute): RCA → presence → {diversity/ubiquity, proximity} →
// {density/distance, ECI/PCI} → COI/COG, strictly forward.
// Stage 2 (Finalize): left-join every derived output back onto the original
// rows by (place, activity), place, or activity as appropriate. Unmatched
// keys keep NaN; no row is dropped or reordered. The mcp column is
// recomputed from rca ≥ threshold here, not reused from the presence
// frame, so it cannot disagree with the rca column after the join.
//
// Errors: everything the stages surface, e.g. flows.ErrNilInput,
// flows.ErrNoRecords, flows.ErrBadSchema, flows.ErrBadValue,
// rca.ErrBadThreshold, spectral.ErrDegenerateMatrix, ...
// Determinism: identical input and options yield identical output.
// Complexity: dominated by the spectral stage, O(n³ + n·k²).
func ComplexityMetrics(d *flows.Dataset, s flows.Schema, opts Options) (*flows.Dataset, error) {
	cols, err := compute(d, s, opts)
	if err != nil {
		return nil, err
	}

	return attach(d, cols)
}

// ComplexityMetricsByPeriod groups rows by the named string column and runs
// the pipeline independently within each period, scattering the derived
// values back to their original rows. Periods are processed in sorted order
// for determinism; the result is identical to slicing the dataset per
// period and calling ComplexityMetrics on each slice.
//
// Errors: flows.ErrUnknownColumn / flows.ErrColumnKind for the period
// column, plus everything ComplexityMetrics surfaces (wrapped with the
// failing period).
func ComplexityMetricsByPeriod(d *flows.Dataset, s flows.Schema, periodColumn string, opts Options) (*flows.Dataset, error) {
	if d == nil {
		return nil, pipelineErrorf(opByPeriod, flows.ErrNilInput)
	}
	periods, err := d.Strings(periodColumn)
	if err != nil {
		return nil, pipelineErrorf(opByPeriod, err)
	}

	// Group row indices per period, then fix the processing order.
	groups := make(map[string][]int)
	for i, p := range periods {
		groups[p] = append(groups[p], i)
	}
	keys := make([]string, 0, len(groups))
	for p := range groups {
		keys = append(keys, p)
	}
	sort.Strings(keys)

	full := newDerived(d.Len())
	for _, p := range keys {
		idx := groups[p]
		sub, serr := d.Select(idx)
		if serr != nil {
			return nil, pipelineErrorf(opByPeriod, serr)
		}
		cols, cerr := compute(sub, s, opts)
		if cerr != nil {
			return nil, fmt.Errorf("period %q: %w", p, cerr)
		}
		// Scatter the period's derived values back to the original rows.
		for j, row := range idx {
			full.rca[row] = cols.rca[j]
			full.mcp[row] = cols.mcp[j]
			full.diversity[row] = cols.diversity[j]
			full.ubiquity[row] = cols.ubiquity[j]
			full.densityCol[row] = cols.densityCol[j]
			full.distance[row] = cols.distance[j]
			full.eci[row] = cols.eci[j]
			full.pci[row] = cols.pci[j]
			full.coi[row] = cols.coi[j]
			full.cog[row] = cols.cog[j]
		}
	}

	return attach(d, full)
}

// newDerived allocates NaN-filled output columns: the left-join null.
func newDerived(n int) *derived {
	blank := func() []float64 {
		col := make([]float64, n)
		for i := range col {
			col[i] = math.NaN()
		}

		return col
	}

	return &derived{
		rca: blank(), mcp: blank(),
		diversity: blank(), ubiquity: blank(),
		densityCol: blank(), distance: blank(),
		eci: blank(), pci: blank(),
		coi: blank(), cog: blank(),
	}
}

// compute runs the stages and performs the row-aligned left join.
func compute(d *flows.Dataset, s flows.Schema, opts Options) (*derived, error) {
	// RCA first; it validates the dataset, schema and values.
	rcaTab, err := rca.Table(d, s)
	if err != nil {
		return nil, err
	}

	// Presence matrix at the configured threshold.
	m, err := rca.Presence(rcaTab, opts.Threshold)
	if err != nil {
		return nil, err
	}

	// Diversity and ubiquity.
	placeLabels, div, err := rca.Aggregate(m, rca.Diversity)
	if err != nil {
		return nil, err
	}
	actLabels, ubi, err := rca.Aggregate(m, rca.Ubiquity)
	if err != nil {
		return nil, err
	}

	// Proximity between activities.
	phi, err := proximity.FromPresence(m)
	if err != nil {
		return nil, err
	}

	// Density and distance, long form.
	densTab, distTab, err := density.Tables(m, phi)
	if err != nil {
		return nil, err
	}

	// Spectral indices.
	idx, err := spectral.Indices(m)
	if err != nil {
		return nil, err
	}

	// Outlook measures.
	out, err := outlook.Measures(m, phi, idx.PCI())
	if err != nil {
		return nil, err
	}

	// Stage 2 (Finalize): left join onto the original row order.
	places, err := d.Strings(s.Place)
	if err != nil {
		return nil, pipelineErrorf(opMetrics, err)
	}
	activities, err := d.Strings(s.Activity)
	if err != nil {
		return nil, pipelineErrorf(opMetrics, err)
	}

	// Per-place and per-activity lookups.
	divByPlace := make(map[string]float64, len(placeLabels))
	for i, p := range placeLabels {
		divByPlace[p] = div[i]
	}
	ubiByActivity := make(map[string]float64, len(actLabels))
	for j, a := range actLabels {
		ubiByActivity[a] = ubi[j]
	}

	cols := newDerived(d.Len())
	eciVals := idx.ECI()
	pciVals := idx.PCI()
	coiVals := out.COI()
	cogFrame := out.COG()
	for row := 0; row < d.Len(); row++ {
		place, activity := places[row], activities[row]

		if v, ok := rcaTab.Value(place, activity); ok {
			cols.rca[row] = v
			// Recomputed agreement: mcp mirrors the rca column exactly.
			if v >= opts.Threshold {
				cols.mcp[row] = 1
			} else {
				cols.mcp[row] = 0
			}
		}
		if v, ok := divByPlace[place]; ok {
			cols.diversity[row] = v
		}
		if v, ok := ubiByActivity[activity]; ok {
			cols.ubiquity[row] = v
		}
		if v, ok := densTab.Value(place, activity); ok {
			cols.densityCol[row] = v
		}
		if v, ok := distTab.Value(place, activity); ok {
			cols.distance[row] = v
		}
		if i, ok := m.PlaceIndex(place); ok {
			cols.eci[row] = eciVals[i]
			cols.coi[row] = coiVals[i]
			if j, jok := m.ActivityIndex(activity); jok {
				if g, gerr := cogFrame.At(i, j); gerr == nil {
					cols.cog[row] = g
				}
			}
		}
		if j, ok := m.ActivityIndex(activity); ok {
			cols.pci[row] = pciVals[j]
		}
	}

	return cols, nil
}

// attach appends the ten derived columns to a copy of the input dataset.
func attach(d *flows.Dataset, cols *derived) (*flows.Dataset, error) {
	out := d
	var err error
	for _, c := range []struct {
		name string
		vals []float64
	}{
		{ColRCA, cols.rca},
		{ColMCP, cols.mcp},
		{ColDiversity, cols.diversity},
		{ColUbiquity, cols.ubiquity},
		{ColDensity, cols.densityCol},
		{ColDistance, cols.distance},
		{ColECI, cols.eci},
		{ColPCI, cols.pci},
		{ColCOI, cols.coi},
		{ColCOG, cols.cog},
	} {
		if out, err = out.WithFloats(c.name, c.vals); err != nil {
			return nil, pipelineErrorf(opMetrics, err)
		}
	}

	return out, nil
}
