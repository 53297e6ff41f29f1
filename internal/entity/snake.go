// Package entity provides the snake and food placement.
package entity

import (
	"errors"
	"fmt"

	"github.com/samdwyer/wrapsnake/internal/world"
)

var (
	// ErrEmptyBody is returned when a snake would have no segments.
	ErrEmptyBody = errors.New("snake body must have at least one segment")
	// ErrOverlappingBody is returned when two segments share a cell.
	ErrOverlappingBody = errors.New("snake body overlaps itself")
)

// MoveOutcome is the result of a move attempt.
type MoveOutcome int

const (
	// Continued means the move was committed.
	Continued MoveOutcome = iota
	// Collided means the new head would overlap the body. The snake is unchanged.
	Collided
)

// String returns a human-readable outcome name.
func (o MoveOutcome) String() string {
	switch o {
	case Continued:
		return "continued"
	case Collided:
		return "collided"
	default:
		return "unknown"
	}
}

// Snake is an ordered body on a toroidal board, head first.
// No two segments ever share a cell.
type Snake struct {
	board *world.Board
	body  []world.Coord

	// popped is the tail removed by the last committed move, kept until
	// Grow consumes it.
	popped    world.Coord
	hasPopped bool
}

// NewSnake creates a single-segment snake at start, normalized onto the board.
func NewSnake(board *world.Board, start world.Coord) *Snake {
	return &Snake{
		board: board,
		body:  []world.Coord{board.Normalize(start)},
	}
}

// NewSnakeWithBody creates a snake from an explicit head-to-tail body.
func NewSnakeWithBody(board *world.Board, body []world.Coord) (*Snake, error) {
	if len(body) == 0 {
		return nil, ErrEmptyBody
	}

	seen := make(map[world.Coord]struct{}, len(body))
	segments := make([]world.Coord, 0, len(body))
	for _, p := range body {
		p = board.Normalize(p)
		if _, dup := seen[p]; dup {
			return nil, fmt.Errorf("segment %v: %w", p, ErrOverlappingBody)
		}
		seen[p] = struct{}{}
		segments = append(segments, p)
	}

	return &Snake{board: board, body: segments}, nil
}

// Move advances the head one cell in dir, wrapping at the edges.
//
// The candidate head is checked against the whole pre-move body, including
// the tail cell that the move would vacate, so chasing the tail collides.
func (s *Snake) Move(dir world.Direction) MoveOutcome {
	next := s.board.Normalize(s.Head().Step(dir))
	if s.Occupies(next) {
		return Collided
	}

	last := len(s.body) - 1
	s.popped = s.body[last]
	s.hasPopped = true
	copy(s.body[1:], s.body[:last])
	s.body[0] = next
	return Continued
}

// Grow re-attaches the tail removed by the last move. It reports whether the
// snake grew; without a pending tail it does nothing.
func (s *Snake) Grow() bool {
	if !s.hasPopped {
		return false
	}
	s.body = append(s.body, s.popped)
	s.hasPopped = false
	return true
}

// Head returns the head position.
func (s *Snake) Head() world.Coord {
	return s.body[0]
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Body returns a copy of the segments, head first.
func (s *Snake) Body() []world.Coord {
	out := make([]world.Coord, len(s.body))
	copy(out, s.body)
	return out
}

// Occupies reports whether any segment is at c.
func (s *Snake) Occupies(c world.Coord) bool {
	for _, p := range s.body {
		if p == c {
			return true
		}
	}
	return false
}

// Occupied returns the body as a set.
func (s *Snake) Occupied() map[world.Coord]struct{} {
	set := make(map[world.Coord]struct{}, len(s.body))
	for _, p := range s.body {
		set[p] = struct{}{}
	}
	return set
}
