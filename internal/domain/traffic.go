package domain

// TrafficFlow is a qualitative traffic state used to color route lines.
// The values and palette mirror common traffic-map legends.
type TrafficFlow string

const (
	FlowFree       TrafficFlow = "free-flow"
	FlowSlow       TrafficFlow = "slow"
	FlowQueuing    TrafficFlow = "queuing"
	FlowStationary TrafficFlow = "stationary"
)

// TrafficFlows lists all states in legend order.
var TrafficFlows = []TrafficFlow{FlowFree, FlowSlow, FlowQueuing, FlowStationary}

// Color returns the hex display color for the flow state.
func (f TrafficFlow) Color() string {
	switch f {
	case FlowFree:
		return "#4CAF50"
	case FlowSlow:
		return "#FFC107"
	case FlowQueuing:
		return "#FF9800"
	case FlowStationary:
		return "#F44336"
	default:
		return "#800080"
	}
}
