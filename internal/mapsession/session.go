// Package mapsession implements the interactive origin/destination
// selection flow on top of an opaque map renderer. It owns the two
// role-bound markers and the route line between them.
package mapsession

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
)

// UnknownLocationName substitutes for a failed reverse-geocode lookup.
// Failures are recovered silently; no retry, nothing surfaced.
const UnknownLocationName = "Unknown location"

const dashOffsetCycle = 20

// PlanFunc receives the automatic planning request fired when a
// destination click completes (or refreshes) the endpoint pair.
type PlanFunc func(ctx context.Context, origin, destination domain.Location)

// Config wires a Session to its collaborators. Renderer and Geocoder are
// required; the rest is optional.
type Config struct {
	Geocoder ports.Geocoder
	Renderer ports.MapRenderer
	Plan     PlanFunc

	// OnResolve reports the resolved display name for a role so the
	// presentation layer can fill its text field.
	OnResolve func(role domain.SelectionRole, name string)

	// AnimateEvery is the dash-offset animation period; zero disables
	// the animation.
	AnimateEvery time.Duration

	Rand *rand.Rand
}

// Session is the map selection state machine. Exactly one role is in
// selection mode at any time; markers replace, never accumulate, and the
// route line exists iff both markers do.
//
// Methods must be called from the single event-handling goroutine; only
// the internal animation task runs concurrently, and it touches nothing
// but the renderer's dash offset.
type Session struct {
	cfg  Config
	mode domain.SelectionRole

	origin      *domain.Location
	destination *domain.Location
	routeDrawn  bool

	stopAnimation context.CancelFunc
}

func New(cfg Config) *Session {
	return &Session{cfg: cfg, mode: domain.RoleOrigin}
}

// Mode returns the role the next map click will assign.
func (s *Session) Mode() domain.SelectionRole { return s.mode }

// ToggleMode switches the selection mode. It has no other side effect;
// a successful click never switches modes by itself.
func (s *Session) ToggleMode(role domain.SelectionRole) { s.mode = role }

// Origin returns the current origin marker location, or nil.
func (s *Session) Origin() *domain.Location { return s.origin }

// Destination returns the current destination marker location, or nil.
func (s *Session) Destination() *domain.Location { return s.destination }

// RouteDrawn reports whether a route line is currently on the map.
func (s *Session) RouteDrawn() bool { return s.routeDrawn }

// ClickMap assigns the clicked point to the current selection role:
// resolve a display name, replace the role's marker, and redraw the
// route line when both endpoints are set. A destination click with an
// origin present also fires the automatic planning request; an origin
// click never does.
func (s *Session) ClickMap(ctx context.Context, lat, lon float64) {
	name, err := s.cfg.Geocoder.Reverse(ctx, lat, lon)
	if err != nil || name == "" {
		name = UnknownLocationName
	}

	loc := domain.Location{Name: name, Lat: lat, Lon: lon}

	marker := &s.origin
	if s.mode == domain.RoleDestination {
		marker = &s.destination
	}

	if *marker != nil {
		s.cfg.Renderer.RemoveMarker(s.mode)
	}
	*marker = &loc
	s.cfg.Renderer.PlaceMarker(s.mode, loc)

	if s.cfg.OnResolve != nil {
		s.cfg.OnResolve(s.mode, name)
	}

	if s.origin != nil && s.destination != nil {
		s.redrawRoute()

		// Asymmetric on purpose: only destination clicks trigger
		// planning, matching the observed frontend behavior.
		if s.mode == domain.RoleDestination && s.cfg.Plan != nil {
			s.cfg.Plan(ctx, *s.origin, *s.destination)
		}
	}
}

// redrawRoute fully replaces the route line: the old line and its
// animation task are torn down before the new one is drawn.
func (s *Session) redrawRoute() {
	if s.stopAnimation != nil {
		s.stopAnimation()
		s.stopAnimation = nil
	}
	if s.routeDrawn {
		s.cfg.Renderer.RemoveRouteLine()
	}

	points := []domain.Location{*s.origin, *s.destination}

	flow := s.randomFlow()
	s.cfg.Renderer.DrawRouteLine(points, flow.Color())
	s.routeDrawn = true

	o := s.origin.Coordinates()
	d := s.destination.Coordinates()
	km := o.GreatCircleMeters(d) / 1000
	popup := fmt.Sprintf(
		`<b>Distance:</b> %.1f km<br><b>Traffic:</b> <span style="color:%s">%s</span>`,
		km, flow.Color(), strings.ReplaceAll(string(flow), "-", " "))
	s.cfg.Renderer.ShowPopup(o.Midpoint(d), popup)

	s.cfg.Renderer.FitBounds(points)

	s.startAnimation()
}

// randomFlow picks a decorative traffic state; this is simulation, not
// measured data.
func (s *Session) randomFlow() domain.TrafficFlow {
	intn := rand.Intn
	if s.cfg.Rand != nil {
		intn = s.cfg.Rand.Intn
	}
	return domain.TrafficFlows[intn(len(domain.TrafficFlows))]
}

// startAnimation runs the dash-offset cycle for the current route line.
// The task is tied to the line's lifetime; redraws cancel it first.
func (s *Session) startAnimation() {
	if s.cfg.AnimateEvery <= 0 {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.stopAnimation = cancel

	go func() {
		ticker := time.NewTicker(s.cfg.AnimateEvery)
		defer ticker.Stop()

		offset := 0
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				offset = (offset + 1) % dashOffsetCycle
				s.cfg.Renderer.SetRouteDashOffset(offset)
			}
		}
	}()
}

// Close stops the animation task. The session is not reusable after.
func (s *Session) Close() {
	if s.stopAnimation != nil {
		s.stopAnimation()
		s.stopAnimation = nil
	}
}
