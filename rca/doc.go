// Package rca computes Revealed Comparative Advantage and its immediate
// derivatives: the binary presence matrix and the diversity/ubiquity
// reductions.
//
// 🚀 What is RCA?
//
//	RCA normalizes a place's share of an activity against the global
//	share of that activity:
//
//	  RCA(c,p) = (v(c,p) / Σ_p v(c,p)) / (Σ_c v(c,p) / Σ_{c,p} v(c,p))
//
//	RCA > 1 means place c is specialized in activity p relative to the
//	world; thresholding RCA yields the presence matrix Mcp that every
//	later complexity stage is built on.
//
// ⚙️ Usage:
//
//	table, err := rca.Table(dataset, flows.Schema{
//	  Place: "country", Activity: "product", Value: "export_value",
//	})
//	m, err := rca.Presence(table, rca.DefaultThreshold)
//	places, diversity, err := rca.Aggregate(m, rca.Diversity)
//
// Contract notes:
//
//   - Duplicate (place, activity) records are summed during aggregation,
//     not deduplicated beforehand.
//   - Places or activities with zero total value make RCA mathematically
//     undefined; the resulting NaN propagates. Validating totals is the
//     caller's responsibility (precondition, not a caught fault).
//   - The presence threshold is a closed lower bound: a cell is 1 iff
//     RCA ≥ threshold. Unobserved pairs coalesce to 0 before thresholding.
//
// Complexity: one pass over the records plus an O(n log n) sort; the
// presence pivot is O(#places · #activities).
package rca
