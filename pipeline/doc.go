// Package pipeline orchestrates the full indicator computation: raw
// (place, activity, value) records in, the same records augmented with ten
// derived columns out.
//
// 🚀 One call, every indicator:
//
//	out, err := pipeline.ComplexityMetrics(dataset, flows.Schema{
//	  Place: "country", Activity: "product", Value: "export_value",
//	}, pipeline.DefaultOptions())
//
// The output dataset carries the input columns plus:
//
//	rca        — revealed comparative advantage of the (place, activity) pair
//	mcp        — 0/1 presence, recomputed from rca ≥ threshold AFTER the join
//	             so the column always agrees with the rca column beside it
//	diversity  — count of the place's present activities
//	ubiquity   — count of places holding the activity
//	density    — proximity-weighted closeness of the place to the activity
//	distance   — the complement measure over missing capabilities
//	eci / pci  — spectral complexity indices (place / activity)
//	coi / cog  — complexity outlook index (place) and gain (pair)
//
// Join policy: LEFT join from the original records. Every input row is
// preserved; a row whose key has no derived value keeps NaN in that column
// rather than being dropped. Rows are never reordered.
//
// Stages run strictly forward (RCA → presence → {aggregates, proximity} →
// {density, spectral} → outlook → join); every intermediate is owned and
// threaded by this package, and no stage mutates another's output.
//
// ComplexityMetricsByPeriod wraps the same computation per time period for
// datasets spanning several years: indicators are computed within each
// period independently, exactly as if the caller had split the dataset.
package pipeline
