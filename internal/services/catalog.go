package services

import "trip-planner-service/internal/domain"

// BaseTravelTimeMinutes is the reference trip duration every preference
// modifier applies to (2 hours 15 minutes).
const BaseTravelTimeMinutes = 135

// preferenceCatalog is the static table of routing preferences and their
// effects: route label, travel-time modifier, advisory text and rated
// departure-time alternatives. Alternative order is display order.
var preferenceCatalog = map[domain.RoutePreference]domain.PreferenceProfile{
	domain.PreferenceFastest: {
		RouteLabel:         "Express Highway (Fastest Route)",
		TravelTimeModifier: 0.85,
		Advisory:           "For the fastest route, avoid peak hours (7-10 AM and 5-8 PM) when traffic is heaviest.",
		Alternatives: []domain.TimingAlternative{
			{Time: "6:00 AM", Description: "Early morning departure - minimal traffic, fastest travel time", Rating: domain.RatingOptimal},
			{Time: "10:30 AM", Description: "Mid-morning - light traffic, good travel conditions", Rating: domain.RatingGood},
			{Time: "2:00 PM", Description: "Early afternoon - moderate traffic, decent travel time", Rating: domain.RatingGood},
			{Time: "8:00 AM", Description: "Peak morning rush - heavy traffic, longer travel time", Rating: domain.RatingAvoid},
		},
	},
	domain.PreferenceEcoFriendly: {
		RouteLabel:         "Green Route (Low Emissions)",
		TravelTimeModifier: 1.10,
		Advisory:           "For an eco-friendly route with lower emissions, travel during off-peak hours when engines run more efficiently.",
		Alternatives: []domain.TimingAlternative{
			{Time: "9:30 AM", Description: "Post rush hour - steady traffic flow, better fuel efficiency", Rating: domain.RatingOptimal},
			{Time: "2:30 PM", Description: "Afternoon travel - consistent speeds, lower emissions", Rating: domain.RatingOptimal},
			{Time: "11:00 PM", Description: "Late night - free-flowing traffic, minimal stops", Rating: domain.RatingGood},
			{Time: "7:30 AM", Description: "Rush hour - stop-and-go traffic increases emissions", Rating: domain.RatingAvoid},
		},
	},
	domain.PreferenceLowTraffic: {
		RouteLabel:         "Alternative Roads (Traffic-Free)",
		TravelTimeModifier: 0.95,
		Advisory:           "To avoid traffic congestion, plan your departure outside of peak commuting hours.",
		Alternatives: []domain.TimingAlternative{
			{Time: "5:30 AM", Description: "Very early departure - roads are clear, no congestion", Rating: domain.RatingOptimal},
			{Time: "11:00 AM", Description: "Late morning - traffic has cleared, smooth journey", Rating: domain.RatingOptimal},
			{Time: "9:00 PM", Description: "Evening departure - rush hour has ended", Rating: domain.RatingGood},
			{Time: "6:00 PM", Description: "Evening rush hour - expect heavy congestion", Rating: domain.RatingAvoid},
		},
	},
	domain.PreferenceScenic: {
		RouteLabel:         "Scenic Highway (Beautiful Views)",
		TravelTimeModifier: 1.30,
		Advisory:           "For a scenic route, travel during daylight hours to enjoy the views. Golden hours provide the best lighting.",
		Alternatives: []domain.TimingAlternative{
			{Time: "7:00 AM", Description: "Golden hour departure - beautiful sunrise views along the route", Rating: domain.RatingOptimal},
			{Time: "4:00 PM", Description: "Afternoon departure - good lighting for scenic photography", Rating: domain.RatingOptimal},
			{Time: "11:00 AM", Description: "Mid-morning - clear visibility, pleasant weather", Rating: domain.RatingGood},
			{Time: "9:00 PM", Description: "Night travel - limited scenic visibility", Rating: domain.RatingAvoid},
		},
	},
	domain.PreferenceDefault: {
		RouteLabel:         "NH-48",
		TravelTimeModifier: 1.00,
		Advisory:           "Based on general traffic patterns, here are the recommended departure times.",
		Alternatives: []domain.TimingAlternative{
			{Time: "8:00 AM", Description: "Morning departure - good balance of visibility and traffic", Rating: domain.RatingOptimal},
			{Time: "2:00 PM", Description: "Afternoon departure - moderate traffic conditions", Rating: domain.RatingGood},
			{Time: "6:00 PM", Description: "Evening departure - rush hour traffic expected", Rating: domain.RatingAvoid},
		},
	},
}
