package game

import (
	"context"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/wrapsnake/internal/theme"
	"github.com/samdwyer/wrapsnake/internal/ui"
	"github.com/samdwyer/wrapsnake/internal/world"
)

// recordedSound remembers which sounds were played.
type recordedSound struct {
	played []string
}

func (r *recordedSound) PlayEat()   { r.played = append(r.played, "eat") }
func (r *recordedSound) PlayCrash() { r.played = append(r.played, "crash") }
func (r *recordedSound) PlayFull()  { r.played = append(r.played, "full") }
func (r *recordedSound) Close()     {}

func newTestGame(t *testing.T, cfg Config) (*Game, tcell.SimulationScreen, *recordedSound) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("simulation screen init: %v", err)
	}
	sim.SetSize(46, 24)

	styles, err := theme.Lookup(theme.DefaultName)
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = 1
	}

	sound := &recordedSound{}
	g := newGame(cfg, ui.WrapScreen(sim), styles, sound)
	t.Cleanup(g.Close)
	return g, sim, sound
}

// withKeys replaces the game's terminal input with pre-queued key presses.
func withKeys(g *Game, events ...tcell.Event) {
	g.input.stop()
	g.input = queuedSource(nil, events...)
}

func simRow(sim tcell.SimulationScreen, y, n int) string {
	out := make([]rune, 0, n)
	for x := 0; x < n; x++ {
		ch, _, _, _ := sim.GetContent(x, y)
		out = append(out, ch)
	}
	return string(out)
}

func TestStepAutoAdvance(t *testing.T) {
	tests := []struct {
		name        string
		autoAdvance bool
		expected    world.Coord
	}{
		{"auto-advance on", true, world.C(12, 10)},
		{"auto-advance off", false, world.C(11, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _, _ := newTestGame(t, Config{TickInterval: 5 * time.Millisecond, AutoAdvance: tt.autoAdvance})
			withKeys(g, key(tcell.KeyRight, 0))
			s := sessionWith(t, 20, world.C(5, 5), world.C(10, 10))
			ctx := context.Background()

			last := g.step(ctx, s, ActionNone)
			if last != ActionRight {
				t.Fatalf("step() last = %v, want right", last)
			}
			if got := s.Snake().Head(); got != world.C(11, 10) {
				t.Fatalf("head after key = %v, want (11,10)", got)
			}

			// No key this time.
			g.step(ctx, s, last)
			if got := s.Snake().Head(); got != tt.expected {
				t.Errorf("head after idle tick = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestPlayCollisionShowsEndScreen(t *testing.T) {
	g, sim, sound := newTestGame(t, Config{TickInterval: time.Second})
	withKeys(g, key(tcell.KeyLeft, 0))
	s := sessionWith(t, 5, world.C(4, 4), world.C(1, 0), world.C(0, 0))

	// The end screen waits for a key; the deadline stands in for it.
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	res := g.play(ctx, s)
	if res.State != StateGameOver {
		t.Errorf("play() state = %v, want game over", res.State)
	}
	if res.Length != 2 || res.Ticks != 1 {
		t.Errorf("play() = %+v, want length 2 after 1 tick", res)
	}
	if !reflect.DeepEqual(sound.played, []string{"crash"}) {
		t.Errorf("sounds = %v, want [crash]", sound.played)
	}

	want := "Game over at length 2."
	if got := simRow(sim, 1, len(want)); got != want {
		t.Errorf("end message = %q, want %q", got, want)
	}
}

func TestPlayBoardFullShowsEndScreen(t *testing.T) {
	g, sim, sound := newTestGame(t, Config{TickInterval: time.Second})
	withKeys(g, key(tcell.KeyLeft, 0))
	s := sessionWith(t, 2, world.C(0, 1), world.C(1, 1), world.C(1, 0), world.C(0, 0))

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	res := g.play(ctx, s)
	if res.State != StateFull {
		t.Errorf("play() state = %v, want full", res.State)
	}
	if !reflect.DeepEqual(sound.played, []string{"eat", "full"}) {
		t.Errorf("sounds = %v, want [eat full]", sound.played)
	}

	want := "Board full at length 4!"
	if got := simRow(sim, 1, len(want)); got != want {
		t.Errorf("end message = %q, want %q", got, want)
	}
}

func TestPlayQuitSkipsEndScreen(t *testing.T) {
	g, sim, sound := newTestGame(t, Config{TickInterval: time.Second})
	withKeys(g, key(tcell.KeyRune, 'q'))
	s := sessionWith(t, 20, world.C(5, 5), world.C(10, 10))

	res := g.play(context.Background(), s)
	if res.State != StateQuit {
		t.Errorf("play() state = %v, want quit", res.State)
	}
	if len(sound.played) != 0 {
		t.Errorf("sounds = %v, want none", sound.played)
	}

	row := simRow(sim, 1, 10)
	if strings.HasPrefix(row, "Game over") || strings.HasPrefix(row, "Board full") {
		t.Errorf("quit showed end message %q", row)
	}
}

func TestRunQuit(t *testing.T) {
	g, sim, _ := newTestGame(t, Config{TickInterval: time.Second})
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	done := make(chan struct{})
	var (
		res Result
		err error
	)
	go func() {
		res, err = g.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run() did not return after q")
	}

	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.State != StateQuit || res.Length != 1 || res.Eaten != 0 {
		t.Errorf("Run() = %+v, want quit at length 1", res)
	}
}
