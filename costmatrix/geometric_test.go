package costmatrix_test

import (
	"testing"

	"github.com/katalvlaran/tourplan/costmatrix"
	"github.com/katalvlaran/tourplan/waypoint"
	"github.com/stretchr/testify/require"
)

func TestGeometric_SymmetricHaversine(t *testing.T) {
	locs := []waypoint.Location{
		waypoint.FromLatLng(39.908722, 116.397499),
		waypoint.FromLatLng(39.916345, 116.397155),
		waypoint.FromLatLng(39.920000, 116.400000),
	}
	m, err := costmatrix.Geometric(locs, costmatrix.Bicycling)
	require.NoError(t, err)
	require.Equal(t, 3, m.Size())
	require.NoError(t, m.Validate())
	require.Equal(t, locs, m.Locations())
	require.Equal(t, costmatrix.Bicycling, m.Mode())

	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			dij, err := m.At(i, j, costmatrix.MinimizeStraightLine)
			require.NoError(t, err)
			dji, err := m.At(j, i, costmatrix.MinimizeStraightLine)
			require.NoError(t, err)
			require.Equal(t, dij, dji)
			if i != j {
				require.Greater(t, dij, 0.0)
			}
		}
	}

	// ~848 m between the first two points (0.0076° of latitude)
	d01, err := m.At(0, 1, costmatrix.MinimizeDistance)
	require.NoError(t, err)
	require.InDelta(t, 848, d01, 5)

	// bicycling time estimate at 5.5 m/s
	t01, err := m.At(0, 1, costmatrix.MinimizeTime)
	require.NoError(t, err)
	require.InDelta(t, d01/5.5, t01, 1e-9)
}

func TestGeometric_DefaultsToDrivingSpeed(t *testing.T) {
	locs := []waypoint.Location{waypoint.FromLatLng(0, 0), waypoint.FromLatLng(0, 1)}
	m, err := costmatrix.Geometric(locs, costmatrix.ModeUnspecified)
	require.NoError(t, err)
	require.Equal(t, costmatrix.Driving, m.Mode())

	d, err := m.At(0, 1, costmatrix.MinimizeDistance)
	require.NoError(t, err)
	tm, err := m.At(0, 1, costmatrix.MinimizeTime)
	require.NoError(t, err)
	require.InDelta(t, d/11.1, tm, 1e-9)
}

func TestGeometric_Errors(t *testing.T) {
	_, err := costmatrix.Geometric(nil, costmatrix.Driving)
	require.ErrorIs(t, err, costmatrix.ErrDimensionMismatch)

	_, err = costmatrix.Geometric([]waypoint.Location{
		waypoint.FromLatLng(1, 1),
		waypoint.FromAddress("no coords"),
	}, costmatrix.Driving)
	require.ErrorIs(t, err, waypoint.ErrNoCoordinates)
}
