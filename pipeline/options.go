// SPDX-License-Identifier: MIT

package pipeline

import "github.com/katalvlaran/ecomplex/rca"

// Options configures one pipeline invocation.
//
// Fields:
//   - Threshold — the RCA cutoff for presence (closed lower bound, cell is
//     present iff rca ≥ Threshold). The conventional value is 1.0.
//
// Example:
//
//	opts := pipeline.DefaultOptions()
//	opts.Threshold = 1.5 // stricter notion of revealed advantage
//	out, err := pipeline.ComplexityMetrics(d, schema, opts)
type Options struct {
	Threshold float64
}

// DefaultOptions returns the conventional configuration: threshold 1.0.
func DefaultOptions() Options {
	return Options{Threshold: rca.DefaultThreshold}
}

// Names of the ten derived columns appended to the output dataset.
const (
	ColRCA       = "rca"
	ColMCP       = "mcp"
	ColDiversity = "diversity"
	ColUbiquity  = "ubiquity"
	ColDensity   = "density"
	ColDistance  = "distance"
	ColECI       = "eci"
	ColPCI       = "pci"
	ColCOI       = "coi"
	ColCOG       = "cog"
)
