// Package spectral computes the Economic Complexity Index (ECI, per place)
// and the Product Complexity Index (PCI, per activity) from a binary
// presence matrix. This is the algorithmic core of the pipeline.
//
// 🚀 Method of reflections, spectral form:
//
//	 1. d = diversity (row sums), u = ubiquity (column sums).
//	 2. M̃ = D⁻¹·M·U⁻¹·Mᵗ, the place-similarity operator. M̃ is
//	    row-stochastic: each row is a probability distribution over
//	    places, so M̃ reads as a Markov transition matrix and its largest
//	    eigenvalue is always 1 with the constant, information-free
//	    eigenvector.
//	 3. The eigenvector of the SECOND-largest eigenvalue (by real part)
//	    carries the complexity ordering; its real part is k_c.
//	 4. k_p = pinv(M)·D·k_c lifts the place ordering to activities via the
//	    Moore–Penrose pseudoinverse (M is rectangular, not invertible).
//	 5. The eigenvector sign is arbitrary; it is fixed so that higher
//	    diversity correlates with higher ECI (s = sign corr(d, k_c)).
//	 6. eci = s·(k_c − mean k_c)/std k_c. pci standardizes k_p by k_c's
//	    moments, not k_p's: that choice is what makes ECI(c) equal the
//	    mean PCI over c's present activities (a pinned invariant).
//	 7. A final re-centering by eci's already-standardized moments is a
//	    numerical-drift guard (an effective no-op, preserved for
//	    compatibility with the established output).
//
// Determinism:
//
//   - Eigenvalues are ordered by an explicit sort: descending real part,
//     ties broken by descending imaginary part, then ascending original
//     index. The tie-break makes the selection stable for complex
//     conjugate pairs and degenerate spectra.
//   - A complex second eigenvalue (floating-point asymmetry) is an
//     accepted simplification: only the real part of value and vector is
//     used, never an error.
//
// Preconditions: a place with no advantage anywhere, or an activity present
// nowhere, makes the operator and the pseudoinverse degenerate. Unlike the
// NaN-propagating stages, this package fails fast with ErrDegenerateMatrix:
// a NaN here would silently poison every downstream index.
package spectral
