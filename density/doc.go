// Package density computes the proximity-weighted density and distance
// measures linking each place to each activity.
//
// 🚀 What are density and distance?
//
//	density(c,p) is the share of activity p's total proximity mass that
//	place c already covers with its present activities:
//
//	  density = (M · φ) ⊘ mass,   mass(p) = Σ_{p'} φ(p,p')
//
//	distance applies the same weighting to the COMPLEMENT of presence:
//	how much of p's neighborhood place c is still missing:
//
//	  distance = ((1 − M) · φ) ⊘ mass
//
//	The normalizing mass varies per destination activity (a column-wise
//	broadcast), not per place. Because M and 1−M partition every cell,
//	density(c,p) + distance(c,p) = 1 holds exactly; the test suite pins it.
//
// Alignment contract: M's activity ordering and φ's activity ordering must
// be element-wise identical. Anything else is flows.ErrIndexMismatch and
// fails immediately; silent column misalignment is the one error this
// pipeline refuses to ever risk.
//
// Both measures are returned dense (Frames) and long (Tables sorted by
// (place, activity)) to match the RCA table's key ordering for joins.
package density
