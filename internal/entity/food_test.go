package entity

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/samdwyer/wrapsnake/internal/world"
)

func TestPlaceFoodAvoidsBodyAndPrevious(t *testing.T) {
	b := mustBoard(t, 6)
	rng := rand.New(rand.NewSource(12345))

	occupied := map[world.Coord]struct{}{}
	for x := 0; x < 6; x++ {
		occupied[world.C(x, 0)] = struct{}{}
		occupied[world.C(x, 1)] = struct{}{}
	}
	previous := world.C(3, 3)

	for i := 0; i < 500; i++ {
		got, err := PlaceFood(b, occupied, previous, rng)
		if err != nil {
			t.Fatalf("PlaceFood() error = %v", err)
		}
		if _, taken := occupied[got]; taken {
			t.Fatalf("PlaceFood() = %v, which is occupied", got)
		}
		if got == previous {
			t.Fatalf("PlaceFood() returned the previous position %v", got)
		}
		if b.Normalize(got) != got {
			t.Fatalf("PlaceFood() = %v out of bounds", got)
		}
	}
}

func TestPlaceFoodSingleFreeCell(t *testing.T) {
	b := mustBoard(t, 4)
	rng := rand.New(rand.NewSource(1))

	occupied := map[world.Coord]struct{}{}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			occupied[world.C(x, y)] = struct{}{}
		}
	}
	delete(occupied, world.C(2, 3))
	delete(occupied, world.C(0, 0))

	// (0,0) is free but is the previous food cell.
	got, err := PlaceFood(b, occupied, world.C(0, 0), rng)
	if err != nil {
		t.Fatalf("PlaceFood() error = %v", err)
	}
	if got != world.C(2, 3) {
		t.Errorf("PlaceFood() = %v, want (2,3)", got)
	}
}

func TestPlaceFoodNoSpace(t *testing.T) {
	b := mustBoard(t, 2)
	rng := rand.New(rand.NewSource(1))

	occupied := map[world.Coord]struct{}{
		world.C(0, 0): {},
		world.C(1, 0): {},
		world.C(0, 1): {},
	}

	_, err := PlaceFood(b, occupied, world.C(1, 1), rng)
	if !errors.Is(err, ErrNoSpace) {
		t.Errorf("PlaceFood() on full board error = %v, want ErrNoSpace", err)
	}
}

func TestPlaceFoodReproducible(t *testing.T) {
	b := mustBoard(t, 20)
	s := NewSnake(b, world.C(10, 10))
	rng1 := rand.New(rand.NewSource(777))
	rng2 := rand.New(rand.NewSource(777))

	prev1, prev2 := world.C(5, 5), world.C(5, 5)
	for i := 0; i < 20; i++ {
		var err error
		prev1, err = PlaceFood(b, s.Occupied(), prev1, rng1)
		if err != nil {
			t.Fatal(err)
		}
		prev2, err = PlaceFood(b, s.Occupied(), prev2, rng2)
		if err != nil {
			t.Fatal(err)
		}
		if prev1 != prev2 {
			t.Fatalf("placement %d mismatch: %v != %v", i, prev1, prev2)
		}
	}
}
