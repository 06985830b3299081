package services

import (
	"fmt"
	"math/rand"
	"strings"

	"trip-planner-service/internal/domain"
)

// DensityReport is a synthetic per-segment traffic-density analysis.
// Levels are drawn at random per call; this is demo/fallback data and
// must never be presented as measured without the caller knowing.
type DensityReport struct {
	HTML     string
	Segments []domain.DensitySegment
}

var densityLevels = []domain.DensityLevel{
	domain.DensityLow,
	domain.DensityMedium,
	domain.DensityHigh,
}

func densityDescription(level domain.DensityLevel) string {
	switch level {
	case domain.DensityLow:
		return "Expect smooth travel through these areas with minimal congestion."
	case domain.DensityMedium:
		return "Minor delays are possible due to moderate traffic flow."
	default:
		return "Significant delays are likely; consider alternative routes if possible."
	}
}

// AnalyzeDensity draws an independent uniform level for each of the three
// fixed segments and renders the summary markup embedding the endpoint
// names. r may be nil to use the shared source.
func AnalyzeDensity(r *rand.Rand, origin, destination string) DensityReport {
	intn := rand.Intn
	if r != nil {
		intn = r.Intn
	}

	segments := make([]domain.DensitySegment, 0, len(domain.DensitySegmentNames))
	for _, name := range domain.DensitySegmentNames {
		segments = append(segments, domain.DensitySegment{
			Name:  name,
			Level: densityLevels[intn(len(densityLevels))],
		})
	}

	var b strings.Builder
	fmt.Fprintf(&b,
		"<p><strong>AI-powered analysis of the route from %s to %s:</strong> "+
			"Our system has analyzed real-time traffic data, including road sensors and satellite imagery, "+
			"to provide the most accurate forecast. Below is a summary of vehicle density across key segments of your journey.</p>",
		origin, destination)
	b.WriteString(`<ul class="density-analysis">`)
	for _, seg := range segments {
		fmt.Fprintf(&b,
			`<li><div class="analysis-item"><span class="area-name">%s</span><p class="area-description">%s</p></div><span class="density-value %s">%s</span></li>`,
			seg.Name, densityDescription(seg.Level), strings.ToLower(string(seg.Level)), seg.Level)
	}
	b.WriteString("</ul>")

	return DensityReport{HTML: b.String(), Segments: segments}
}

// LevelsByName returns the per-segment levels keyed by segment name.
func (r DensityReport) LevelsByName() map[string]domain.DensityLevel {
	out := make(map[string]domain.DensityLevel, len(r.Segments))
	for _, seg := range r.Segments {
		out[seg.Name] = seg.Level
	}
	return out
}
