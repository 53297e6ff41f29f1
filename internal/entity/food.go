package entity

import (
	"errors"
	"math/rand"

	"github.com/samdwyer/wrapsnake/internal/world"
)

// ErrNoSpace is returned when no cell is free for a new food item.
var ErrNoSpace = errors.New("no space for food")

// sampleFactor bounds rejection sampling to sampleFactor * board cells draws
// before falling back to a scan of the free cells.
const sampleFactor = 4

// PlaceFood picks a random cell that is neither in occupied nor equal to
// previous.
//
// Random draws are retried while occupancy is low. After the draw budget
// runs out the free cells are enumerated and one is chosen uniformly, so the
// call always terminates. ErrNoSpace means every cell is taken.
func PlaceFood(board *world.Board, occupied map[world.Coord]struct{}, previous world.Coord, rng *rand.Rand) (world.Coord, error) {
	free := func(c world.Coord) bool {
		if c == previous {
			return false
		}
		_, taken := occupied[c]
		return !taken
	}

	attempts := sampleFactor * board.Cells()
	for i := 0; i < attempts; i++ {
		c := board.RandomCoord(rng)
		if free(c) {
			return c, nil
		}
	}

	spots := make([]world.Coord, 0, board.Cells())
	for y := 0; y < board.Size(); y++ {
		for x := 0; x < board.Size(); x++ {
			if c := world.C(x, y); free(c) {
				spots = append(spots, c)
			}
		}
	}
	if len(spots) == 0 {
		return world.Coord{}, ErrNoSpace
	}
	return spots[rng.Intn(len(spots))], nil
}
