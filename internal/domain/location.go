package domain

// Location is a named point on the map. Name may be empty when the
// location came from user-typed text that has not been geocoded yet.
type Location struct {
	Name string
	Lat  float64
	Lon  float64
}

func (l Location) Coordinates() Coordinates {
	return Coordinates{Lat: l.Lat, Lon: l.Lon}
}

// SelectionRole identifies which trip endpoint a map click assigns.
type SelectionRole string

const (
	RoleOrigin      SelectionRole = "origin"
	RoleDestination SelectionRole = "destination"
)
