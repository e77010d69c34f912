package game

// Position is a marker's location in logical canvas pixels.
type Position struct {
	X, Y float64
}

// MarkerKind tells the food marker and the menu target apart.
type MarkerKind uint8

const (
	MarkerFood MarkerKind = iota
	MarkerMenu
)

// Marker tags an entity as a collision target drawn by the renderer.
type Marker struct {
	Kind MarkerKind
}
