package dto

// AnalysisRequest is the JSON body of POST /api/ai-analysis. All fields
// are required; the caller has already geocoded both endpoints.
type AnalysisRequest struct {
	Origin      string   `json:"origin"`
	Destination string   `json:"destination"`
	OriginLat   *float64 `json:"origin_lat"`
	OriginLon   *float64 `json:"origin_lon"`
	DestLat     *float64 `json:"dest_lat"`
	DestLon     *float64 `json:"dest_lon"`
}

// AnalysisResponse is the analyzer verdict for one route.
type AnalysisResponse struct {
	HTMLContent   string            `json:"html_content"`
	DensityLevels map[string]string `json:"density_levels"`
	Source        string            `json:"source"`
	Model         string            `json:"model,omitempty"`
	Timestamp     string            `json:"timestamp,omitempty"`
}
