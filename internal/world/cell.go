// Package world provides the toroidal board, coordinates and the render grid.
package world

// Cell classifies a single board cell for rendering.
type Cell int8

const (
	// CellEmpty is a free cell.
	CellEmpty Cell = 0
	// CellBody is occupied by a snake segment.
	CellBody Cell = 1
	// CellFood holds the food item.
	CellFood Cell = 2
)

// String returns a human-readable cell name.
func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellBody:
		return "body"
	case CellFood:
		return "food"
	default:
		return "unknown"
	}
}
