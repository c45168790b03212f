// Package waypoint defines the caller-visible stop of a tour and the
// first-seen deduplication applied before any cost matrix is built.
//
// A Location is an opaque identity: either a free-form address, a
// latitude/longitude pair, or both. Two locations are the same stop iff
// their address, coordinates and HasPoint flag match exactly; Name is a
// display label and does not affect identity.
//
// Example:
//
//	stops := []waypoint.Location{
//		waypoint.FromLatLng(52.5200, 13.4050),
//		waypoint.FromAddress("Alexanderplatz 1, Berlin"),
//		waypoint.FromLatLng(52.5200, 13.4050), // duplicate, dropped
//	}
//	unique, err := waypoint.Dedupe(stops) // len(unique) == 2
package waypoint
