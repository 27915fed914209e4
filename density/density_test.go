// SPDX-License-Identifier: MIT

package density_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ecomplex/density"
	"github.com/katalvlaran/ecomplex/flows"
	"github.com/katalvlaran/ecomplex/proximity"
)

const epsTight = 1e-12

// fixture returns M = [[1,0,1],[0,1,1]] and its proximity matrix.
func fixture(t *testing.T) (*flows.Frame, *proximity.Matrix) {
	t.Helper()

	m, err := flows.NewFrame([]string{"aus", "nzl"}, []string{"ore", "wine", "wool"})
	require.NoError(t, err)
	for _, cell := range [][2]int{{0, 0}, {0, 2}, {1, 1}, {1, 2}} {
		require.NoError(t, m.Set(cell[0], cell[1], 1))
	}
	phi, err := proximity.FromPresence(m)
	require.NoError(t, err)

	return m, phi
}

func TestFrames_HandValues(t *testing.T) {
	t.Parallel()

	m, phi := fixture(t)
	dens, dist, err := density.Frames(m, phi)
	require.NoError(t, err)

	// φ = [[1,0,.5],[0,1,.5],[.5,.5,1]], mass = [1.5,1.5,2].
	// density(aus) = [1.5,0.5,1.5] ⊘ mass = [1, 1/3, 0.75].
	// density(nzl) = [0.5,1.5,1.5] ⊘ mass = [1/3, 1, 0.75].
	wantDens := [][]float64{{1, 1.0 / 3, 0.75}, {1.0 / 3, 1, 0.75}}
	for i := range wantDens {
		for j := range wantDens[i] {
			gd, aerr := dens.At(i, j)
			require.NoError(t, aerr)
			assert.InDelta(t, wantDens[i][j], gd, epsTight, "density[%d][%d]", i, j)

			gt, aerr := dist.At(i, j)
			require.NoError(t, aerr)
			assert.InDelta(t, 1-wantDens[i][j], gt, epsTight, "distance[%d][%d]", i, j)
		}
	}
}

func TestFrames_DensityPlusDistanceIsOne(t *testing.T) {
	t.Parallel()

	m, phi := fixture(t)
	dens, dist, err := density.Frames(m, phi)
	require.NoError(t, err)

	// M and 1−M partition every cell, so the two normalized products sum to 1.
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			d1, e1 := dens.At(i, j)
			require.NoError(t, e1)
			d2, e2 := dist.At(i, j)
			require.NoError(t, e2)
			assert.InDelta(t, 1.0, d1+d2, epsTight, "cell (%d,%d)", i, j)
			assert.GreaterOrEqual(t, d1, 0.0)
			assert.LessOrEqual(t, d1, 1.0+epsTight)
		}
	}
}

func TestTables_LongFormOrdering(t *testing.T) {
	t.Parallel()

	m, phi := fixture(t)
	densTab, distTab, err := density.Tables(m, phi)
	require.NoError(t, err)

	require.Equal(t, 6, densTab.Len())
	require.Equal(t, 6, distTab.Len())

	rows := densTab.Rows()
	assert.Equal(t, "aus", rows[0].Place)
	assert.Equal(t, "ore", rows[0].Activity, "long form must be sorted by (place, activity)")

	v, ok := densTab.Value("nzl", "wine")
	require.True(t, ok)
	assert.InDelta(t, 1.0, v, epsTight)
}

func TestFrames_IndexMismatchFails(t *testing.T) {
	t.Parallel()

	m, _ := fixture(t)

	// Same activities, different ordering: must fail, never misalign.
	shuffled, err := flows.NewFrame([]string{"aus", "nzl"}, []string{"wool", "ore", "wine"})
	require.NoError(t, err)
	for _, cell := range [][2]int{{0, 1}, {0, 0}, {1, 2}, {1, 0}} {
		require.NoError(t, shuffled.Set(cell[0], cell[1], 1))
	}
	phiShuffled, err := proximity.FromPresence(shuffled)
	require.NoError(t, err)

	_, _, err = density.Frames(m, phiShuffled)
	assert.ErrorIs(t, err, flows.ErrIndexMismatch)
}

func TestFrames_Validation(t *testing.T) {
	t.Parallel()

	m, phi := fixture(t)

	_, _, err := density.Frames(nil, phi)
	assert.ErrorIs(t, err, flows.ErrNilInput)
	_, _, err = density.Frames(m, nil)
	assert.ErrorIs(t, err, flows.ErrNilInput)

	frac := m.Clone()
	require.NoError(t, frac.Set(0, 0, 0.5))
	_, _, err = density.Frames(frac, phi)
	assert.ErrorIs(t, err, flows.ErrNotBinary)
}
