package world

// Grid is the per-cell classification handed to the renderer, indexed [y][x].
type Grid [][]Cell

// NewGrid allocates an empty grid matching the board.
func NewGrid(b *Board) Grid {
	g := make(Grid, b.Size())
	for y := range g {
		g[y] = make([]Cell, b.Size())
	}
	return g
}

// Fill resets every cell to empty, then marks the body and food cells.
// Coordinates outside the grid are ignored.
func (g Grid) Fill(body []Coord, food Coord) {
	for y := range g {
		for x := range g[y] {
			g[y][x] = CellEmpty
		}
	}
	for _, p := range body {
		g.set(p, CellBody)
	}
	g.set(food, CellFood)
}

// Count returns how many cells hold the given classification.
func (g Grid) Count(cell Cell) int {
	n := 0
	for _, row := range g {
		for _, v := range row {
			if v == cell {
				n++
			}
		}
	}
	return n
}

func (g Grid) set(c Coord, cell Cell) {
	if c.Y < 0 || c.Y >= len(g) || c.X < 0 || c.X >= len(g[c.Y]) {
		return
	}
	g[c.Y][c.X] = cell
}
