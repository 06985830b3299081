package ports

import "trip-planner-service/internal/domain"

// MapRenderer is the boundary to the map widget. The session issues
// high-level commands; icon URLs, tile layers and styling are the
// renderer's business. Implementations must tolerate removal of
// markers/lines that were never placed.
type MapRenderer interface {
	PlaceMarker(role domain.SelectionRole, loc domain.Location)
	RemoveMarker(role domain.SelectionRole)

	// DrawRouteLine replaces nothing by itself; callers remove the old
	// line first. Points are in travel order.
	DrawRouteLine(points []domain.Location, color string)
	RemoveRouteLine()
	SetRouteDashOffset(offset int)

	ShowPopup(at domain.Coordinates, html string)
	FitBounds(points []domain.Location)
}
