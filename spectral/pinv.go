// SPDX-License-Identifier: MIT
// Package spectral: Moore–Penrose pseudoinverse kernel.

package spectral

import (
	"gonum.org/v1/gonum/mat"
)

// machEps is the double-precision machine epsilon, 2⁻⁵².
const machEps = 2.220446049250313e-16

const opPinv = "pseudoInverse"

// pseudoInverse computes pinv(A) via thin SVD: A = U·Σ·Vᵗ gives
// pinv(A) = V·Σ⁺·Uᵗ, where Σ⁺ reciprocates singular values above the
// relative tolerance max(r,c)·eps·σ_max and zeroes the rest (the standard
// rank cutoff, Golub & Van Loan).
//
// Stage 1 (Execute): thin SVD factorization.
// Stage 2 (Prepare): rank tolerance from the largest singular value.
// Stage 3 (Finalize): scale V's columns by Σ⁺ and multiply by Uᵗ.
//
// Errors: ErrSVDFailed when the factorization does not converge.
// Complexity: O(r·c·min(r,c)) time.
func pseudoInverse(a mat.Matrix) (*mat.Dense, error) {
	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThin); !ok {
		return nil, spectralErrorf(opPinv, ErrSVDFailed)
	}

	s := svd.Values(nil)
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	// Rank cutoff relative to the largest singular value.
	r, c := a.Dims()
	longest := r
	if c > longest {
		longest = c
	}
	tol := float64(longest) * machEps * s[0]

	// Scale V's columns by the reciprocated singular values in place of an
	// explicit Σ⁺ matrix.
	vr, vc := v.Dims()
	vs := mat.NewDense(vr, vc, nil)
	for j := 0; j < vc; j++ {
		inv := 0.0
		if s[j] > tol {
			inv = 1 / s[j]
		}
		for i := 0; i < vr; i++ {
			vs.Set(i, j, v.At(i, j)*inv)
		}
	}

	var pinv mat.Dense
	pinv.Mul(vs, u.T())

	return &pinv, nil
}
