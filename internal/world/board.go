package world

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrBoardTooSmall is returned when a board would have no cells.
var ErrBoardTooSmall = errors.New("board size must be at least 1")

// Board is a square toroidal grid. Moving off one edge re-enters on the
// opposite edge. A Board is immutable once created.
type Board struct {
	size int
}

// NewBoard creates a size x size board.
func NewBoard(size int) (*Board, error) {
	if size < 1 {
		return nil, fmt.Errorf("new board %d: %w", size, ErrBoardTooSmall)
	}
	return &Board{size: size}, nil
}

// Size returns the board's side length.
func (b *Board) Size() int {
	return b.size
}

// Cells returns the total number of cells on the board.
func (b *Board) Cells() int {
	return b.size * b.size
}

// Normalize wraps c onto [0, size) on both axes. Negative components wrap to
// the far edge.
func (b *Board) Normalize(c Coord) Coord {
	return Coord{X: b.wrap(c.X), Y: b.wrap(c.Y)}
}

// wrap is the Euclidean remainder of v modulo the board size.
func (b *Board) wrap(v int) int {
	r := v % b.size
	if r < 0 {
		r += b.size
	}
	return r
}

// RandomCoord returns a uniformly random cell on the board.
func (b *Board) RandomCoord(rng *rand.Rand) Coord {
	return Coord{X: rng.Intn(b.size), Y: rng.Intn(b.size)}
}
