package domain

import "math"

// Immutable geographic coordinates (latitude, longitude).
type Coordinates struct {
	Lat float64
	Lon float64
}

const earthRadiusMeters = 6371000

// GreatCircleMeters returns the haversine distance to another point.
// This is straight-line surface distance, not road distance.
func (c Coordinates) GreatCircleMeters(o Coordinates) float64 {
	lat1 := c.Lat * math.Pi / 180
	lat2 := o.Lat * math.Pi / 180
	dLat := (o.Lat - c.Lat) * math.Pi / 180
	dLon := (o.Lon - c.Lon) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusMeters * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// Midpoint returns the arithmetic midpoint of two coordinates.
// Used for placing route popups; projection accuracy does not matter here.
func (c Coordinates) Midpoint(o Coordinates) Coordinates {
	return Coordinates{
		Lat: (c.Lat + o.Lat) / 2,
		Lon: (c.Lon + o.Lon) / 2,
	}
}
