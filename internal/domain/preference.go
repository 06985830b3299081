package domain

// RoutePreference is the user-selected optimization goal for a trip.
// The set is closed; anything else is treated as PreferenceDefault.
type RoutePreference string

const (
	PreferenceFastest     RoutePreference = "fastest"
	PreferenceEcoFriendly RoutePreference = "eco-friendly"
	PreferenceLowTraffic  RoutePreference = "low-traffic"
	PreferenceScenic      RoutePreference = "scenic"
	PreferenceDefault     RoutePreference = "default"
)

// Rating is the qualitative desirability label attached to a candidate
// departure time.
type Rating string

const (
	RatingOptimal Rating = "optimal"
	RatingGood    Rating = "good"
	RatingAvoid   Rating = "avoid"
)

// TimingAlternative is one rated departure-time suggestion. Time is a
// display string (e.g. "6:00 AM"), not a sortable value.
type TimingAlternative struct {
	Time        string
	Description string
	Rating      Rating
}

// PreferenceProfile holds the fixed effects of one route preference.
// Profiles are static data: loaded once, never mutated. The order of
// Alternatives is the display order and is never re-sorted.
type PreferenceProfile struct {
	RouteLabel         string
	TravelTimeModifier float64
	Advisory           string
	Alternatives       []TimingAlternative
}
