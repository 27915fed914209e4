// Package ecomplex computes economic-complexity indicators from bipartite
// place×activity flow data: from raw (place, activity, value) records all
// the way to ECI/PCI and the complexity-outlook measures.
//
// 🚀 What is ecomplex?
//
//	A deterministic, in-memory pipeline that brings together:
//		• RCA: Revealed Comparative Advantage per (place, activity)
//		• Presence matrix: thresholded binary place×activity structure
//		• Diversity & ubiquity: row/column reductions of the presence matrix
//		• Proximity: co-presence similarity between activities
//		• Density & distance: proximity-weighted nearness to each activity
//		• ECI/PCI: spectral complexity indices (second eigenvector)
//		• COI/COG: complexity outlook index and gain
//
// ✨ Why choose ecomplex?
//
//   - Deterministic – fixed label orderings, documented sign convention,
//     identical output for identical input
//   - Fail-fast – sentinel errors for misaligned indices and bad selectors,
//     never silent column misalignment
//   - Pure Go – dense algebra on gonum, no cgo, no services, no globals
//
// Under the hood, everything is organized per pipeline stage:
//
//	flows/     — tabular data model: Dataset, Schema, long Table, dense Frame
//	rca/       — RCA calculator, presence matrix, diversity/ubiquity
//	proximity/ — activity×activity proximity matrix
//	density/   — density & distance tables
//	spectral/  — ECI/PCI via eigen-decomposition and pseudoinverse
//	outlook/   — COI/COG opportunity measures
//	pipeline/  — orchestrator joining every indicator onto the input rows
//
// Quick sketch of the data flow:
//
//	records → RCA → M (0/1) → {diversity/ubiquity, φ} → {density, ECI/PCI} → {COI, COG}
//
// Dive into examples/ for full walkthroughs of each stage, the sign
// convention, and the invariants the test suite enforces.
//
//	go get github.com/katalvlaran/ecomplex
package ecomplex
