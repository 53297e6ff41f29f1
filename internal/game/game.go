package game

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/wrapsnake/internal/audio"
	"github.com/samdwyer/wrapsnake/internal/telemetry"
	"github.com/samdwyer/wrapsnake/internal/theme"
	"github.com/samdwyer/wrapsnake/internal/ui"
	"github.com/samdwyer/wrapsnake/internal/world"
)

// Result summarizes a finished session.
type Result struct {
	State  State
	Length int
	Eaten  int
	Ticks  int
}

// soundPlayer is the subset of audio.Player the loop needs.
type soundPlayer interface {
	PlayEat()
	PlayCrash()
	PlayFull()
	Close()
}

// Game drives a Session on a terminal screen.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	sound    soundPlayer
	input    *inputSource
	rng      *rand.Rand
}

// New creates a new game instance and takes over the terminal.
func New(cfg Config) (*Game, error) {
	styles, err := theme.Lookup(cfg.Theme)
	if err != nil {
		return nil, fmt.Errorf("load theme: %w", err)
	}

	sound := audio.NewPlayer()
	if cfg.Sound {
		// Before the screen owns the terminal, so the note is still readable.
		if err := sound.Init(); err != nil {
			log.Printf("Note: sound disabled: %v", err)
		}
	}

	screen, err := ui.NewScreen()
	if err != nil {
		sound.Close()
		return nil, err
	}

	return newGame(cfg, screen, styles, sound), nil
}

// newGame wires a game around an initialized screen.
func newGame(cfg Config, screen *ui.Screen, styles theme.Styles, sound soundPlayer) *Game {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = DefaultTickInterval
	}

	return &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen, styles),
		sound:    sound,
		input:    newInputSource(screen.PollEvent, screen.Sync),
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// Run executes the main game loop until quit or game over.
func (g *Game) Run(ctx context.Context) (Result, error) {
	defer g.Close()

	tracer := telemetry.Tracer("game")
	ctx, initSpan := tracer.Start(ctx, "game.init")

	// Size the board to the terminal
	cols, rows := g.screen.Size()
	size, err := ui.BoardSize(cols, rows)
	if err != nil {
		initSpan.RecordError(err)
		initSpan.End()
		return Result{}, err
	}
	board, err := world.NewBoard(size)
	if err != nil {
		initSpan.End()
		return Result{}, err
	}
	session := NewSession(board, g.rng)

	initSpan.SetAttributes(
		attribute.Int("board.size", size),
		attribute.Int("terminal.cols", cols),
		attribute.Int("terminal.rows", rows),
		attribute.Bool("config.auto_advance", g.cfg.AutoAdvance),
	)
	initSpan.End()

	return g.play(ctx, session), nil
}

// play runs session to its end and shows the end screen when the session
// ended on its own. It leaves the screen open.
func (g *Game) play(ctx context.Context, session *Session) Result {
	last := ActionNone
	for !session.State().Ended() {
		// Render current state
		g.render(session)

		// Read input and advance one tick
		last = g.step(ctx, session, last)
	}

	// Quit leaves without an end screen
	switch state := session.State(); state {
	case StateGameOver, StateFull:
		g.render(session)
		if state == StateFull {
			g.sound.PlayFull()
		} else {
			g.sound.PlayCrash()
		}
		g.renderer.RenderMessage(endMessage(state, session.Snake().Len()))
		g.input.waitKey(ctx)
	}

	return Result{
		State:  session.State(),
		Length: session.Snake().Len(),
		Eaten:  session.Eaten(),
		Ticks:  session.Ticks(),
	}
}

// step waits one tick for input and applies it. last is the most recent
// direction, repeated on an idle tick when auto-advance is on. It returns
// the updated last direction.
func (g *Game) step(ctx context.Context, session *Session, last Action) Action {
	// Wait up to one tick for input
	action := g.input.next(ctx, g.cfg.TickInterval)

	// Remember the latest direction, or reuse it on an idle tick
	if _, ok := action.Direction(); ok {
		last = action
	} else if action == ActionNone && g.cfg.AutoAdvance {
		action = last
	}

	if res := session.Tick(ctx, action); res.Ate {
		g.sound.PlayEat()
	}
	return last
}

func (g *Game) render(s *Session) {
	grid := s.Grid()
	g.renderer.Render(grid, ui.HUD{
		Length: s.Snake().Len(),
		Eaten:  s.Eaten(),
		Free:   grid.Count(world.CellEmpty),
	})
}

// endMessage is the line shown when the session ends on its own.
func endMessage(state State, length int) string {
	if state == StateFull {
		return fmt.Sprintf("Board full at length %d! Press any key.", length)
	}
	return fmt.Sprintf("Game over at length %d. Press any key.", length)
}

// Close cleans up game resources. It is safe to call more than once.
func (g *Game) Close() {
	if g.input != nil {
		g.input.stop()
	}
	if g.screen != nil {
		g.screen.Close()
		g.screen = nil
	}
	if g.sound != nil {
		g.sound.Close()
	}
}
