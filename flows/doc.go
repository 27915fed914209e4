// Package flows defines the tabular and dense data model shared by every
// stage of the ecomplex pipeline.
//
// 🚀 What lives here?
//
//	• Dataset — a minimal column-oriented table (string and float columns)
//	  used as the pipeline's input and final output surface.
//	• Schema  — explicit column-name configuration: which column is the
//	  place, which is the activity, which is the value. All three names
//	  are required; there are no implicit defaults, so a place/activity
//	  swap cannot happen silently.
//	• Table   — a long-form (place, activity, value) relation, always
//	  sorted by (place, activity) for reproducible joins.
//	• Frame   — a dense place×activity matrix with ordered label indexes
//	  maintained alongside the values, never implied by column order.
//	• Pivot / Melt — deterministic long↔wide reshaping with an explicit
//	  fill value for unobserved cells.
//
// ⚙️ Conventions:
//
//   - Constructors copy their inputs; accessors return fresh slices.
//     No stage mutates a structure it did not create.
//   - Label orderings are lexicographic and fixed at construction time.
//     Two frames are join-compatible only if their label slices are
//     element-wise equal; anything else is ErrIndexMismatch, never a
//     silent misalignment.
//   - All errors are package sentinels matched via errors.Is.
//
// See the pipeline package for the orchestrated end-to-end flow.
package flows
