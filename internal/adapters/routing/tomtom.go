package routing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/platform/httpx"
	"trip-planner-service/internal/platform/obs"
	"trip-planner-service/internal/ports"
)

// TomTomRouteProvider implements RouteProvider against the TomTom
// routing API, requesting traffic-adjusted car routes.
//
// The provider is safe for concurrent use.
type TomTomRouteProvider struct {
	session *http.Client
	apiKey  string
	baseURL string
}

func NewTomTomRouteProvider(apiKey, baseURL string) (*TomTomRouteProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("routing api key is empty")
	}
	if strings.TrimSpace(baseURL) == "" {
		baseURL = "https://api.tomtom.com"
	}

	return &TomTomRouteProvider{
		session: &http.Client{Timeout: 15 * time.Second},
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

type routeResponse struct {
	Routes []struct {
		Summary struct {
			TravelTimeInSeconds            int `json:"travelTimeInSeconds"`
			TravelTimeInSecondsWithTraffic int `json:"travelTimeInSecondsWithTraffic"`
			LengthInMeters                 int `json:"lengthInMeters"`
		} `json:"summary"`
		Legs []struct {
			Points []struct {
				Latitude  float64 `json:"latitude"`
				Longitude float64 `json:"longitude"`
			} `json:"points"`
		} `json:"legs"`
		Guidance struct {
			Instructions []struct {
				RoadNumbers []string `json:"roadNumbers"`
			} `json:"instructions"`
		} `json:"guidance"`
	} `json:"routes"`
}

// GetRoute fetches a car route with traffic between two points.
func (t *TomTomRouteProvider) GetRoute(
	ctx context.Context,
	origin domain.Coordinates,
	destination domain.Coordinates,
) (_ ports.RouteInfo, err error) {
	defer obs.Time(ctx, "tomtom.GetRoute")(&err)

	endpoint := fmt.Sprintf("%s/routing/1/calculateRoute/%f,%f:%f,%f/json",
		t.baseURL, origin.Lat, origin.Lon, destination.Lat, destination.Lon)

	resp, err := httpx.DoWithRetry(ctx, t.session, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		q := req.URL.Query()
		q.Set("key", t.apiKey)
		q.Set("traffic", "true")
		q.Set("travelMode", "car")
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return ports.RouteInfo{}, fmt.Errorf("get route: %w", err)
	}
	defer resp.Body.Close()

	var decoded routeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return ports.RouteInfo{}, fmt.Errorf("get route: decode response: %w", err)
	}
	if len(decoded.Routes) == 0 {
		return ports.RouteInfo{}, errors.New("get route: no routes in response")
	}

	route := decoded.Routes[0]

	travelTime := route.Summary.TravelTimeInSecondsWithTraffic
	if travelTime == 0 {
		travelTime = route.Summary.TravelTimeInSeconds
	}

	points := make([]domain.Location, 0)
	for _, leg := range route.Legs {
		for _, p := range leg.Points {
			points = append(points, domain.Location{Lat: p.Latitude, Lon: p.Longitude})
		}
	}

	roads := make([]string, 0)
	for _, ins := range route.Guidance.Instructions {
		roads = append(roads, ins.RoadNumbers...)
	}

	return ports.RouteInfo{
		TravelTimeSeconds: travelTime,
		DistanceMeters:    route.Summary.LengthInMeters,
		Points:            points,
		RoadNumbers:       roads,
	}, nil
}
