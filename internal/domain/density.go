package domain

// DensityLevel classifies vehicle density on a route segment.
type DensityLevel string

const (
	DensityLow    DensityLevel = "Low"
	DensityMedium DensityLevel = "Medium"
	DensityHigh   DensityLevel = "High"
)

// DensitySegment is a named portion of a route with its reported level.
type DensitySegment struct {
	Name  string
	Level DensityLevel
}

// DensitySegmentNames are the three fixed segments every analysis reports,
// in display order.
var DensitySegmentNames = []string{
	"Major Intersections",
	"Highway Segments",
	"Urban Streets",
}
