package services

import (
	"fmt"
	"math/rand"
)

// HourPattern is the congestion estimate for one hour of the day.
// CongestionFactor runs from 0.1 (empty roads) to 1.0 (gridlock).
type HourPattern struct {
	Hour             int     `json:"hour"`
	CongestionFactor float64 `json:"congestion_factor"`
	TravelTime       string  `json:"travel_time"`
}

// TrafficPatterns is a synthetic day-long congestion profile used for
// optimal-departure suggestions when no measured data is available.
type TrafficPatterns struct {
	HourlyData       []HourPattern `json:"hourly_data"`
	CurrentHour      int           `json:"current_hour"`
	HighlightedHours []int         `json:"highlighted_hours"`
}

// Fixed base profile: quiet nights, two rush peaks, moderate midday.
var hourlyBase = []HourPattern{
	{Hour: 0, CongestionFactor: 0.2, TravelTime: "Very Fast"},
	{Hour: 1, CongestionFactor: 0.1, TravelTime: "Very Fast"},
	{Hour: 2, CongestionFactor: 0.1, TravelTime: "Very Fast"},
	{Hour: 3, CongestionFactor: 0.1, TravelTime: "Very Fast"},
	{Hour: 4, CongestionFactor: 0.2, TravelTime: "Very Fast"},
	{Hour: 5, CongestionFactor: 0.3, TravelTime: "Fast"},
	{Hour: 6, CongestionFactor: 0.6, TravelTime: "Moderate"},
	{Hour: 7, CongestionFactor: 0.8, TravelTime: "Slow"},
	{Hour: 8, CongestionFactor: 0.9, TravelTime: "Very Slow"},
	{Hour: 9, CongestionFactor: 0.8, TravelTime: "Slow"},
	{Hour: 10, CongestionFactor: 0.6, TravelTime: "Moderate"},
	{Hour: 11, CongestionFactor: 0.5, TravelTime: "Moderate"},
	{Hour: 12, CongestionFactor: 0.5, TravelTime: "Moderate"},
	{Hour: 13, CongestionFactor: 0.5, TravelTime: "Moderate"},
	{Hour: 14, CongestionFactor: 0.5, TravelTime: "Moderate"},
	{Hour: 15, CongestionFactor: 0.6, TravelTime: "Moderate"},
	{Hour: 16, CongestionFactor: 0.7, TravelTime: "Slow"},
	{Hour: 17, CongestionFactor: 0.9, TravelTime: "Very Slow"},
	{Hour: 18, CongestionFactor: 1.0, TravelTime: "Very Slow"},
	{Hour: 19, CongestionFactor: 0.8, TravelTime: "Slow"},
	{Hour: 20, CongestionFactor: 0.6, TravelTime: "Moderate"},
	{Hour: 21, CongestionFactor: 0.5, TravelTime: "Moderate"},
	{Hour: 22, CongestionFactor: 0.4, TravelTime: "Fast"},
	{Hour: 23, CongestionFactor: 0.3, TravelTime: "Fast"},
}

// GenerateTrafficPatterns returns the base profile with per-hour random
// variation of ±0.1, clamped to [0.1, 1.0]. The current hour and the
// five following hours are highlighted for display. r may be nil to use
// the shared source.
func GenerateTrafficPatterns(r *rand.Rand, currentHour int) TrafficPatterns {
	f64 := rand.Float64
	if r != nil {
		f64 = r.Float64
	}

	hourly := make([]HourPattern, len(hourlyBase))
	copy(hourly, hourlyBase)
	for i := range hourly {
		factor := hourly[i].CongestionFactor + (f64()-0.5)*0.2
		if factor < 0.1 {
			factor = 0.1
		}
		if factor > 1.0 {
			factor = 1.0
		}
		hourly[i].CongestionFactor = factor
	}

	highlighted := make([]int, 6)
	for i := range highlighted {
		highlighted[i] = (currentHour + i) % 24
	}

	return TrafficPatterns{
		HourlyData:       hourly,
		CurrentHour:      currentHour,
		HighlightedHours: highlighted,
	}
}

// OptimalDeparture picks the hour with the lowest congestion factor.
func OptimalDeparture(p TrafficPatterns) HourPattern {
	best := p.HourlyData[0]
	for _, h := range p.HourlyData[1:] {
		if h.CongestionFactor < best.CongestionFactor {
			best = h
		}
	}
	return best
}

// FormatHour renders an hour of day (0-23) as "H:00 AM/PM".
func FormatHour(hour int) string {
	switch {
	case hour == 0:
		return "12:00 AM"
	case hour < 12:
		return fmt.Sprintf("%d:00 AM", hour)
	case hour == 12:
		return "12:00 PM"
	default:
		return fmt.Sprintf("%d:00 PM", hour-12)
	}
}

// FormatSeconds renders a second count for display, dropping the hour
// component entirely for sub-hour durations.
func FormatSeconds(seconds int) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60

	if hours > 0 {
		return fmt.Sprintf("%d hour%s %d minute%s",
			hours, pluralSuffix(hours),
			minutes, pluralSuffix(minutes))
	}
	return fmt.Sprintf("%d minute%s", minutes, pluralSuffix(minutes))
}
