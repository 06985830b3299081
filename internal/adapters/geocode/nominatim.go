package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/platform/httpx"
	"trip-planner-service/internal/platform/obs"
	"trip-planner-service/internal/ports"
)

// NominatimGeocoder implements the Geocoder port against a Nominatim
// endpoint. Resolved locations are stored through an optional persistent
// cache; cache write failures are logged, never fatal.
//
// The provider is safe for concurrent use.
type NominatimGeocoder struct {
	session   *http.Client
	baseURL   string
	userAgent string

	// querySuffix biases free-text searches toward the deployment's
	// region (e.g. ", India") when the query does not already mention it.
	querySuffix string

	cache ports.GeocodeCache
}

type Option func(*NominatimGeocoder)

// WithCache attaches a persistent geocode cache.
func WithCache(c ports.GeocodeCache) Option {
	return func(g *NominatimGeocoder) { g.cache = c }
}

// WithQuerySuffix sets the regional search bias suffix.
func WithQuerySuffix(suffix string) Option {
	return func(g *NominatimGeocoder) { g.querySuffix = suffix }
}

func NewNominatimGeocoder(baseURL string, opts ...Option) (*NominatimGeocoder, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("nominatim base URL is empty")
	}

	g := &NominatimGeocoder{
		session:   &http.Client{Timeout: 10 * time.Second},
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: "trip-planner-service",
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

type searchResponse []struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Search resolves a free-text query to its best-matching location.
func (g *NominatimGeocoder) Search(ctx context.Context, query string) (_ domain.Location, err error) {
	defer obs.Time(ctx, "nominatim.Search")(&err)

	query = strings.Join(strings.Fields(query), " ")
	if query == "" {
		return domain.Location{}, errors.New("search geocode: query must be non-empty")
	}

	biased := query
	if g.querySuffix != "" && !strings.Contains(strings.ToLower(query), strings.ToLower(strings.Trim(g.querySuffix, ", "))) {
		biased = query + g.querySuffix
	}

	key := "fwd:" + strings.ToLower(biased)
	if loc, ok := g.cached(ctx, key); ok {
		return loc, nil
	}

	endpoint := g.baseURL + "/search"
	resp, err := httpx.DoWithRetry(ctx, g.session, func() (*http.Request, error) {
		req, err := g.newRequest(ctx, endpoint)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("format", "json")
		q.Set("q", biased)
		q.Set("limit", "1")
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return domain.Location{}, fmt.Errorf("search geocode %q: %w", query, err)
	}
	defer resp.Body.Close()

	var decoded searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Location{}, fmt.Errorf("search geocode %q: decode response: %w", query, err)
	}
	if len(decoded) == 0 {
		return domain.Location{}, fmt.Errorf("search geocode: no results for %q", query)
	}

	lat, err := strconv.ParseFloat(decoded[0].Lat, 64)
	if err != nil {
		return domain.Location{}, fmt.Errorf("search geocode %q: invalid latitude %q", query, decoded[0].Lat)
	}
	lon, err := strconv.ParseFloat(decoded[0].Lon, 64)
	if err != nil {
		return domain.Location{}, fmt.Errorf("search geocode %q: invalid longitude %q", query, decoded[0].Lon)
	}

	loc := domain.Location{Name: decoded[0].DisplayName, Lat: lat, Lon: lon}
	g.store(ctx, key, loc)
	return loc, nil
}

type reverseResponse struct {
	DisplayName string `json:"display_name"`
}

// Reverse resolves coordinates to a display name.
func (g *NominatimGeocoder) Reverse(ctx context.Context, lat, lon float64) (_ string, err error) {
	defer obs.Time(ctx, "nominatim.Reverse")(&err)

	key := ReverseKey(lat, lon)
	if loc, ok := g.cached(ctx, key); ok {
		return loc.Name, nil
	}

	endpoint := g.baseURL + "/reverse"
	resp, err := httpx.DoWithRetry(ctx, g.session, func() (*http.Request, error) {
		req, err := g.newRequest(ctx, endpoint)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("format", "json")
		q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
		q.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
		q.Set("zoom", "18")
		q.Set("addressdetails", "1")
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return "", fmt.Errorf("reverse geocode (%f, %f): %w", lat, lon, err)
	}
	defer resp.Body.Close()

	var decoded reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("reverse geocode (%f, %f): decode response: %w", lat, lon, err)
	}
	if decoded.DisplayName == "" {
		return "", fmt.Errorf("reverse geocode: no name for (%f, %f)", lat, lon)
	}

	g.store(ctx, key, domain.Location{Name: decoded.DisplayName, Lat: lat, Lon: lon})
	return decoded.DisplayName, nil
}

// ReverseKey builds the cache key for a reverse lookup. Five decimals is
// roughly one meter, enough to collapse repeated clicks on one spot.
func ReverseKey(lat, lon float64) string {
	return fmt.Sprintf("rev:%.5f,%.5f", lat, lon)
}

func (g *NominatimGeocoder) newRequest(ctx context.Context, endpoint string) (*http.Request, error) {
	if _, err := url.Parse(endpoint); err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", g.userAgent)
	return req, nil
}

func (g *NominatimGeocoder) cached(ctx context.Context, key string) (domain.Location, bool) {
	if g.cache == nil {
		return domain.Location{}, false
	}

	loc, ok, err := g.cache.Get(ctx, key)
	if err != nil {
		log.Printf("geocode cache read failed key=%q err=%v", key, err)
		return domain.Location{}, false
	}
	return loc, ok
}

func (g *NominatimGeocoder) store(ctx context.Context, key string, loc domain.Location) {
	if g.cache == nil {
		return
	}
	if err := g.cache.Put(ctx, key, loc); err != nil {
		log.Printf("geocode cache write failed key=%q err=%v", key, err)
	}
}
