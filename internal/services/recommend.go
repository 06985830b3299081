package services

import (
	"fmt"
	"math"

	"trip-planner-service/internal/domain"
)

// Recommend maps a route preference to its static profile. The function
// is total: unknown or empty preferences fall back to the default
// profile rather than erroring.
func Recommend(pref domain.RoutePreference) domain.PreferenceProfile {
	if p, ok := preferenceCatalog[pref]; ok {
		return p
	}
	return preferenceCatalog[domain.PreferenceDefault]
}

// TravelTimeMinutes computes the estimated trip duration for a
// preference: round(base * modifier).
func TravelTimeMinutes(pref domain.RoutePreference) int {
	return int(math.Round(BaseTravelTimeMinutes * Recommend(pref).TravelTimeModifier))
}

// FormatMinutes renders a minute count as "{H} hour{s} {M} minute{s}".
// Both components are always present; the plural "s" is dropped only
// when the component equals exactly 1.
func FormatMinutes(totalMinutes int) string {
	hours := totalMinutes / 60
	minutes := totalMinutes % 60

	return fmt.Sprintf("%d hour%s %d minute%s",
		hours, pluralSuffix(hours),
		minutes, pluralSuffix(minutes))
}

func pluralSuffix(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

// TravelTime renders the preference's estimated duration for display.
func TravelTime(pref domain.RoutePreference) string {
	return FormatMinutes(TravelTimeMinutes(pref))
}

// RouteLabel returns the fixed route description for a preference,
// independent of the actual endpoints.
func RouteLabel(pref domain.RoutePreference) string {
	return Recommend(pref).RouteLabel
}

// BestRoute assembles the displayed route summary for a preference.
func BestRoute(origin string, pref domain.RoutePreference, destination string) string {
	return fmt.Sprintf("%s → %s → %s", origin, RouteLabel(pref), destination)
}

// OptimalTiming builds the fallback departure-time advice block from the
// preference profile.
func OptimalTiming(pref domain.RoutePreference) domain.OptimalTiming {
	p := Recommend(pref)
	return domain.OptimalTiming{
		Recommendation: p.Advisory,
		Alternatives:   p.Alternatives,
	}
}
