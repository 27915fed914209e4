// SPDX-License-Identifier: MIT
// Package spectral: sentinel error set. Tests match via errors.Is;
// structural/tabular failures surface the flows sentinels unchanged.

package spectral

import "errors"

var (
	// ErrTooFewPlaces indicates fewer than two places: the second
	// eigenvector and the sample standard deviation both need n ≥ 2.
	ErrTooFewPlaces = errors.New("spectral: need at least two places")

	// ErrDegenerateMatrix indicates a zero row (place with no advantage
	// anywhere), a zero column (activity present nowhere), or a constant
	// eigenvector — the operator or the standardization is degenerate.
	// Filter such rows/columns upstream before calling.
	ErrDegenerateMatrix = errors.New("spectral: degenerate presence matrix")

	// ErrEigenFailed indicates that the dense eigensolver did not converge.
	ErrEigenFailed = errors.New("spectral: eigen decomposition failed")

	// ErrSVDFailed indicates that the SVD underlying the pseudoinverse did
	// not converge.
	ErrSVDFailed = errors.New("spectral: svd decomposition failed")
)
