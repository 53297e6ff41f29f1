package ui

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/wrapsnake/internal/theme"
	"github.com/samdwyer/wrapsnake/internal/world"
)

func TestBoardSize(t *testing.T) {
	tests := []struct {
		cols, rows int
		expected   int
	}{
		{80, 24, 22},
		{42, 50, 20},
		{200, 30, 28},
		{4, 3, 1},
	}

	for _, tt := range tests {
		got, err := BoardSize(tt.cols, tt.rows)
		if err != nil {
			t.Errorf("BoardSize(%d, %d) error = %v", tt.cols, tt.rows, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("BoardSize(%d, %d) = %d, want %d", tt.cols, tt.rows, got, tt.expected)
		}
	}

	for _, dims := range [][2]int{{3, 24}, {80, 2}, {0, 0}} {
		if _, err := BoardSize(dims[0], dims[1]); !errors.Is(err, ErrTerminalTooSmall) {
			t.Errorf("BoardSize(%d, %d) error = %v, want ErrTerminalTooSmall", dims[0], dims[1], err)
		}
	}
}

func newSimScreen(t *testing.T) *Screen {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("simulation screen init: %v", err)
	}
	sim.SetSize(40, 12)
	t.Cleanup(sim.Fini)
	return WrapScreen(sim)
}

func TestRendererDrawsGrid(t *testing.T) {
	screen := newSimScreen(t)
	styles, err := theme.Lookup(theme.DefaultName)
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	r := NewRenderer(screen, styles)

	board, _ := world.NewBoard(5)
	grid := world.NewGrid(board)
	grid.Fill([]world.Coord{world.C(1, 0)}, world.C(3, 2))

	r.Render(grid, HUD{Length: 1, Eaten: 0, Free: grid.Count(world.CellEmpty)})

	tests := []struct {
		x, y  int
		style tcell.Style
	}{
		{1 * CellWidth, HeaderRows, styles.Body},
		{1*CellWidth + 1, HeaderRows, styles.Body},
		{3 * CellWidth, 2 + HeaderRows, styles.Food},
		{0, HeaderRows, styles.Empty},
	}

	for _, tt := range tests {
		ch, _, style, _ := screen.screen.GetContent(tt.x, tt.y)
		if ch != styles.Glyph {
			t.Errorf("rune at (%d,%d) = %q, want %q", tt.x, tt.y, ch, styles.Glyph)
		}
		if style != tt.style {
			t.Errorf("style at (%d,%d) does not match expected cell style", tt.x, tt.y)
		}
	}

	want := "wrapsnake  length 1  eaten 0  free 23"
	if got := rowText(screen, 0, len(want)); got != want {
		t.Errorf("header = %q, want %q", got, want)
	}
}

func rowText(screen *Screen, y, n int) string {
	out := make([]rune, 0, n)
	for x := 0; x < n; x++ {
		ch, _, _, _ := screen.screen.GetContent(x, y)
		out = append(out, ch)
	}
	return string(out)
}

func TestRenderMessage(t *testing.T) {
	screen := newSimScreen(t)
	styles, _ := theme.Lookup(theme.DefaultName)
	r := NewRenderer(screen, styles)

	r.RenderMessage("Game over")

	want := "Game over"
	for i, expected := range want {
		ch, _, _, _ := screen.screen.GetContent(i, 1)
		if ch != expected {
			t.Errorf("message rune %d = %q, want %q", i, ch, expected)
		}
	}
}
