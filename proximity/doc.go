// Package proximity computes the activity×activity proximity matrix φ from
// a binary presence matrix.
//
// 🚀 What is proximity?
//
//	φ(i,j) measures how related two activities are, based on how often
//	places hold advantage in both:
//
//	  φ(i,j) = Σ_c M[c][i]·M[c][j] / max(u_i, u_j)
//
//	where u is ubiquity. Dividing the shared co-occurrence count by the
//	LARGER ubiquity is the branch-free form of the minimum conditional
//	probability min{P(i|j), P(j|i)}: the numerator is shared, so the max
//	denominator realizes the min probability.
//
// Guarantees:
//
//   - Symmetric by construction: the upper triangle is computed once and
//     mirrored (backed by a gonum SymDense).
//   - φ(i,i) = 1 whenever u_i > 0; values in [0,1].
//   - An activity present nowhere (u_i = 0) makes its entries 0/0 = NaN;
//     that is a precondition violation upstream, deliberately propagated
//     rather than masked (same policy as RCA's zero totals).
//
// Complexity: one k×n · n×k product, O(n·k²).
package proximity
