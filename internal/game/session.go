package game

import (
	"context"
	"errors"
	"math/rand"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/wrapsnake/internal/entity"
	"github.com/samdwyer/wrapsnake/internal/telemetry"
	"github.com/samdwyer/wrapsnake/internal/world"
)

var (
	snakeStart = world.C(10, 10)
	foodStart  = world.C(5, 5)
)

// TickResult describes what a single tick did.
type TickResult struct {
	Moved bool
	Ate   bool
	State State
}

// Session owns the board, snake and food of one game. It is not safe for
// concurrent use; the tick loop is its only owner.
type Session struct {
	board *world.Board
	snake *entity.Snake
	food  world.Coord
	grid  world.Grid
	rng   *rand.Rand
	state State
	eaten int
	ticks int
}

// NewSession starts a game with a one-segment snake at (10,10) and food at
// (5,5), both wrapped onto the board. If they land on the same cell the food
// is placed elsewhere.
func NewSession(board *world.Board, rng *rand.Rand) *Session {
	s := newSession(board, entity.NewSnake(board, snakeStart), board.Normalize(foodStart), rng)
	if s.snake.Occupies(s.food) {
		food, err := entity.PlaceFood(board, s.snake.Occupied(), s.food, rng)
		if errors.Is(err, entity.ErrNoSpace) {
			s.state = StateFull
		} else {
			s.food = food
		}
	}
	return s
}

func newSession(board *world.Board, snake *entity.Snake, food world.Coord, rng *rand.Rand) *Session {
	return &Session{
		board: board,
		snake: snake,
		food:  food,
		grid:  world.NewGrid(board),
		rng:   rng,
		state: StatePlaying,
	}
}

// Tick applies one input action. Once the session has ended further ticks
// change nothing.
func (s *Session) Tick(ctx context.Context, action Action) TickResult {
	if s.state.Ended() {
		return TickResult{State: s.state}
	}
	s.ticks++

	// Quit ends the session without moving
	if action == ActionQuit {
		s.state = StateQuit
		return TickResult{State: s.state}
	}

	// No direction this tick, nothing moves
	dir, ok := action.Direction()
	if !ok {
		return TickResult{State: s.state}
	}

	// Move; the body is left untouched on collision
	if s.snake.Move(dir) == entity.Collided {
		s.state = StateGameOver
		s.traceOver(ctx)
		return TickResult{State: s.state}
	}

	// Eat if the new head landed on the food
	result := TickResult{Moved: true}
	if s.snake.Head() == s.food {
		s.eat(ctx)
		result.Ate = true
	}
	result.State = s.state
	return result
}

// eat grows the snake and moves the food to a fresh cell.
func (s *Session) eat(ctx context.Context) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "snake.eat")
	defer span.End()

	s.snake.Grow()
	s.eaten++

	_, placeSpan := tracer.Start(ctx, "food.place")
	food, err := entity.PlaceFood(s.board, s.snake.Occupied(), s.food, s.rng)
	placeSpan.End()

	span.SetAttributes(
		attribute.Int("snake.length", s.snake.Len()),
		attribute.Int("snake.eaten", s.eaten),
	)

	if err != nil {
		span.RecordError(err)
		s.state = StateFull
		s.traceOver(ctx)
		return
	}
	s.food = food
}

func (s *Session) traceOver(ctx context.Context) {
	_, span := telemetry.Tracer("game").Start(ctx, "game.over")
	span.SetAttributes(
		attribute.String("outcome", s.state.String()),
		attribute.Int("snake.length", s.snake.Len()),
		attribute.Int("snake.eaten", s.eaten),
		attribute.Int("ticks", s.ticks),
	)
	span.End()
}

// Grid refills and returns the render classification of the current state.
// The returned grid is reused by the next call.
func (s *Session) Grid() world.Grid {
	s.grid.Fill(s.snake.Body(), s.food)
	return s.grid
}

// State returns the session state.
func (s *Session) State() State { return s.state }

// Food returns the food position.
func (s *Session) Food() world.Coord { return s.food }

// Snake returns the session's snake.
func (s *Session) Snake() *entity.Snake { return s.snake }

// Eaten returns the number of food items eaten.
func (s *Session) Eaten() int { return s.eaten }

// Ticks returns the number of ticks processed while playing.
func (s *Session) Ticks() int { return s.ticks }
