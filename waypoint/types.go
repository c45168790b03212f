package waypoint

import (
	"errors"
	"strconv"

	"github.com/paulmach/orb"
)

var (
	// ErrInsufficientInput is returned when fewer than two distinct stops
	// remain after deduplication: a tour needs at least two.
	ErrInsufficientInput = errors.New("waypoint: fewer than 2 unique locations")

	// ErrNoCoordinates is returned when a computation needs coordinates but a
	// location only carries an address.
	ErrNoCoordinates = errors.New("waypoint: location has no coordinates")
)

// coordPrecision is the number of decimals used by String for coordinates.
const coordPrecision = 6

// Location is a single stop. Point follows the orb convention [lon, lat].
// HasPoint distinguishes a real (0,0) coordinate from "no coordinate".
type Location struct {
	Name     string
	Address  string
	Point    orb.Point
	HasPoint bool
}

// key is the identity of a stop: Name is a display label and takes no part.
type key struct {
	address  string
	point    orb.Point
	hasPoint bool
}

func (l Location) key() key {
	return key{address: l.Address, point: l.Point, hasPoint: l.HasPoint}
}

// Same reports whether l and o are the same stop. Names are ignored.
func (l Location) Same(o Location) bool { return l.key() == o.key() }

// FromAddress returns an address-only location.
func FromAddress(address string) Location {
	return Location{Address: address}
}

// FromLatLng returns a coordinate location.
func FromLatLng(lat, lng float64) Location {
	return Location{Point: orb.Point{lng, lat}, HasPoint: true}
}

// Lat returns the latitude, or 0 when the location has no coordinates.
func (l Location) Lat() float64 { return l.Point.Lat() }

// Lng returns the longitude, or 0 when the location has no coordinates.
func (l Location) Lng() float64 { return l.Point.Lon() }

// String renders "lat,lng" when coordinates are present, otherwise the address.
func (l Location) String() string {
	if !l.HasPoint {
		return l.Address
	}
	return strconv.FormatFloat(l.Lat(), 'f', coordPrecision, 64) + "," +
		strconv.FormatFloat(l.Lng(), 'f', coordPrecision, 64)
}
