package waypoint_test

import (
	"testing"

	"github.com/katalvlaran/tourplan/waypoint"
	"github.com/stretchr/testify/require"
)

func TestDedupe_PreservesFirstSeenOrder(t *testing.T) {
	a := waypoint.FromLatLng(52.52, 13.405)
	b := waypoint.FromAddress("Alexanderplatz 1, Berlin")
	c := waypoint.FromLatLng(48.1351, 11.582)

	in := []waypoint.Location{a, b, a, c}
	got, err := waypoint.Dedupe(in)
	require.NoError(t, err)
	require.Equal(t, []waypoint.Location{a, b, c}, got)

	// input untouched
	require.Len(t, in, 4)
	require.Equal(t, a, in[2])
}

func TestDedupe_AddressAndPointAreDistinct(t *testing.T) {
	withPoint := waypoint.FromLatLng(1, 2)
	withBoth := withPoint
	withBoth.Address = "somewhere"

	got, err := waypoint.Dedupe([]waypoint.Location{withPoint, withBoth})
	require.NoError(t, err)
	require.Len(t, got, 2)
}

func TestDedupe_Insufficient(t *testing.T) {
	a := waypoint.FromAddress("A")

	_, err := waypoint.Dedupe(nil)
	require.ErrorIs(t, err, waypoint.ErrInsufficientInput)

	_, err = waypoint.Dedupe([]waypoint.Location{a})
	require.ErrorIs(t, err, waypoint.ErrInsufficientInput)

	_, err = waypoint.Dedupe([]waypoint.Location{a, a, a})
	require.ErrorIs(t, err, waypoint.ErrInsufficientInput)
}

func TestLocation_String(t *testing.T) {
	require.Equal(t, "39.908722,116.397499", waypoint.FromLatLng(39.908722, 116.397499).String())
	require.Equal(t, "Main St 1", waypoint.FromAddress("Main St 1").String())
}

func TestPoints(t *testing.T) {
	pts, err := waypoint.Points([]waypoint.Location{
		waypoint.FromLatLng(10, 20),
		waypoint.FromLatLng(-5, 7.5),
	})
	require.NoError(t, err)
	require.Len(t, pts, 2)
	require.Equal(t, 10.0, pts[0].Lat())
	require.Equal(t, 20.0, pts[0].Lon())

	_, err = waypoint.Points([]waypoint.Location{waypoint.FromLatLng(1, 1), waypoint.FromAddress("x")})
	require.ErrorIs(t, err, waypoint.ErrNoCoordinates)
}

func TestDedupe_IgnoresName(t *testing.T) {
	a := waypoint.FromLatLng(52.52, 13.405)
	depot := a
	depot.Name = "Depot"
	c := waypoint.FromAddress("Karl-Marx-Allee 1, Berlin")

	got, err := waypoint.Dedupe([]waypoint.Location{a, depot, c})
	require.NoError(t, err)
	require.Equal(t, []waypoint.Location{a, c}, got)

	// the first-seen entry keeps its label
	got, err = waypoint.Dedupe([]waypoint.Location{depot, a, c})
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "Depot", got[0].Name)

	_, err = waypoint.Dedupe([]waypoint.Location{a, depot})
	require.ErrorIs(t, err, waypoint.ErrInsufficientInput)
}

func TestLocation_Same(t *testing.T) {
	a := waypoint.FromLatLng(1, 2)
	named := a
	named.Name = "x"
	require.True(t, a.Same(named))
	require.False(t, a.Same(waypoint.FromLatLng(2, 1)))
	require.False(t, a.Same(waypoint.FromAddress("x")))
}
