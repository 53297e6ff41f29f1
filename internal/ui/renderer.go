package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/wrapsnake/internal/theme"
	"github.com/samdwyer/wrapsnake/internal/world"
)

// HUD is the status shown in the header.
type HUD struct {
	Length int
	Eaten  int
	Free   int
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
	styles theme.Styles
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, styles theme.Styles) *Renderer {
	return &Renderer{screen: screen, styles: styles}
}

// Render draws the header and the board grid, then flushes the screen.
func (r *Renderer) Render(grid world.Grid, hud HUD) {
	r.screen.Clear()

	header := fmt.Sprintf("wrapsnake  length %d  eaten %d  free %d   arrows/wasd move, q quits",
		hud.Length, hud.Eaten, hud.Free)
	r.drawText(0, 0, header, r.styles.Header)

	for y, row := range grid {
		for x, cell := range row {
			style := r.cellStyle(cell)
			for i := 0; i < CellWidth; i++ {
				r.screen.SetContent(x*CellWidth+i, y+HeaderRows, r.styles.Glyph, style)
			}
		}
	}

	r.screen.Show()
}

// RenderMessage draws a line of text on the header's second row and flushes it.
func (r *Renderer) RenderMessage(msg string) {
	r.drawText(0, 1, msg, r.styles.Header)
	r.screen.Show()
}

// cellStyle returns the style for a board cell classification.
func (r *Renderer) cellStyle(cell world.Cell) tcell.Style {
	switch cell {
	case world.CellBody:
		return r.styles.Body
	case world.CellFood:
		return r.styles.Food
	default:
		return r.styles.Empty
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		r.screen.SetContent(x+i, y, ch, style)
	}
}
