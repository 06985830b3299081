// Package analysis implements the Analyzer port against the IBM Watsonx
// chat API, with regexp extraction of per-segment density levels from
// the generated markup.
package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/platform/httpx"
	"trip-planner-service/internal/platform/obs"
	"trip-planner-service/internal/ports"
)

const (
	// SourceWatsonx tags analyses produced by the live model, as opposed
	// to "simulation".
	SourceWatsonx = "ibm_watsonx"

	defaultBaseURL = "https://us-south.ml.cloud.ibm.com"
	defaultModelID = "meta-llama/llama-3-3-70b-instruct"
	chatAPIVersion = "2023-05-29"
)

// WatsonxAnalyzer asks a Watsonx-hosted chat model for a traffic
// analysis of a planned route. The model is instructed to classify the
// three fixed route segments; the levels are recovered from the free-form
// answer by pattern matching, with fixed defaults when the model does
// not commit to one.
//
// The provider is safe for concurrent use.
type WatsonxAnalyzer struct {
	session   *http.Client
	baseURL   string
	token     string
	projectID string
	modelID   string
	now       func() time.Time
}

func NewWatsonxAnalyzer(token, baseURL, projectID string) (*WatsonxAnalyzer, error) {
	if strings.TrimSpace(token) == "" {
		return nil, errors.New("watsonx access token is empty")
	}
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultBaseURL
	}

	return &WatsonxAnalyzer{
		session:   &http.Client{Timeout: 30 * time.Second},
		baseURL:   strings.TrimRight(baseURL, "/"),
		token:     token,
		projectID: projectID,
		modelID:   defaultModelID,
		now:       time.Now,
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Messages    []chatMessage `json:"messages"`
	ProjectID   string        `json:"project_id,omitempty"`
	ModelID     string        `json:"model_id"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Analyze sends the route facts to the chat model and converts its
// answer into an Analysis.
func (a *WatsonxAnalyzer) Analyze(ctx context.Context, req ports.AnalysisRequest) (_ ports.Analysis, err error) {
	defer obs.Time(ctx, "watsonx.Analyze")(&err)

	body := chatRequest{
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt(req)},
		},
		ProjectID:   a.projectID,
		ModelID:     a.modelID,
		MaxTokens:   2000,
		Temperature: 0,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return ports.Analysis{}, fmt.Errorf("watsonx analyze: encode request: %w", err)
	}

	endpoint := a.baseURL + "/ml/v1/text/chat?version=" + chatAPIVersion
	resp, err := httpx.DoWithRetry(ctx, a.session, func() (*http.Request, error) {
		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		httpReq.Header.Set("Accept", "application/json")
		httpReq.Header.Set("Content-Type", "application/json")
		httpReq.Header.Set("Authorization", "Bearer "+a.token)
		return httpReq, nil
	})
	if err != nil {
		return ports.Analysis{}, fmt.Errorf("watsonx analyze %q -> %q: %w", req.Origin, req.Destination, err)
	}
	defer resp.Body.Close()

	var decoded chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return ports.Analysis{}, fmt.Errorf("watsonx analyze: decode response: %w", err)
	}
	if len(decoded.Choices) == 0 || decoded.Choices[0].Message.Content == "" {
		return ports.Analysis{}, errors.New("watsonx analyze: response carried no content")
	}

	content := decoded.Choices[0].Message.Content
	return ports.Analysis{
		HTML:   content,
		Levels: ExtractDensityLevels(content),
		Source: domain.AnalysisSource{
			Source:    SourceWatsonx,
			Model:     a.modelID,
			Timestamp: a.now(),
		},
	}, nil
}

const systemPrompt = "You are a traffic analyst. Answer with HTML that can be " +
	"displayed directly on a website. Classify each named road segment as " +
	"having Low, Medium, or High vehicle density."

func userPrompt(req ports.AnalysisRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Analyze traffic conditions for a route from %s to %s in India.\n\n",
		req.Origin, req.Destination)
	if req.Preference != "" {
		fmt.Fprintf(&b, "Route preference: %s\n", req.Preference)
	}
	b.WriteString("Route information:\n")
	if req.DistanceKm > 0 {
		fmt.Fprintf(&b, "- Distance: %.2f km\n", req.DistanceKm)
	}
	if req.TravelTime != "" {
		fmt.Fprintf(&b, "- Estimated travel time with current traffic: %s\n", req.TravelTime)
	}
	b.WriteString("\nProvide a detailed analysis of the traffic conditions along this route. " +
		"Include congestion levels at major intersections, highway segments, and urban streets. " +
		"Classify each area as having Low, Medium, or High vehicle density. " +
		"Also suggest the best times to travel this route to avoid congestion.")
	return b.String()
}

// densityDefaults is used when the model's answer does not commit to a
// level for a segment.
var densityDefaults = map[string]domain.DensityLevel{
	"Major Intersections": domain.DensityMedium,
	"Highway Segments":    domain.DensityLow,
	"Urban Streets":       domain.DensityHigh,
}

// Matches "Area: Level", "Area - Level", "Area ... High density" and the
// reversed "High density ... Area" phrasings.
var densityPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(Major Intersections|Highway Segments|Urban Streets)[:\s-]\s*(Low|Medium|High)`),
	regexp.MustCompile(`(?i)(Major Intersections|Highway Segments|Urban Streets).*?(Low|Medium|High)\s*density`),
	regexp.MustCompile(`(?i)(Low|Medium|High)\s*density.*?(Major Intersections|Highway Segments|Urban Streets)`),
}

// ExtractDensityLevels recovers the per-segment levels from free-form
// analysis text. Segments the text never classifies get their default;
// text with no classification at all yields the full default set.
func ExtractDensityLevels(content string) map[string]domain.DensityLevel {
	extracted := make(map[string]domain.DensityLevel)

	for _, re := range densityPatterns {
		for _, m := range re.FindAllStringSubmatch(content, -1) {
			area, level := canonicalArea(m[1]), canonicalLevel(m[2])
			if area == "" || level == "" {
				area, level = canonicalArea(m[2]), canonicalLevel(m[1])
			}
			if area != "" && level != "" {
				extracted[area] = level
			}
		}
	}

	out := make(map[string]domain.DensityLevel, len(densityDefaults))
	for area, fallback := range densityDefaults {
		if level, ok := extracted[area]; ok {
			out[area] = level
		} else {
			out[area] = fallback
		}
	}
	return out
}

func canonicalArea(s string) string {
	for area := range densityDefaults {
		if strings.EqualFold(s, area) {
			return area
		}
	}
	return ""
}

func canonicalLevel(s string) domain.DensityLevel {
	for _, level := range []domain.DensityLevel{domain.DensityLow, domain.DensityMedium, domain.DensityHigh} {
		if strings.EqualFold(s, string(level)) {
			return level
		}
	}
	return ""
}
