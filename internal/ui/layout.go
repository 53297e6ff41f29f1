package ui

import (
	"errors"
	"fmt"
)

const (
	// HeaderRows is the number of terminal rows above the board.
	HeaderRows = 2
	// CellWidth is the number of terminal columns per board cell.
	CellWidth = 2
	// sideMargin is reserved terminal columns, split across both sides.
	sideMargin = 2
)

// ErrTerminalTooSmall is returned when the terminal cannot fit a 1x1 board.
var ErrTerminalTooSmall = errors.New("terminal too small for the board")

// BoardSize derives the square board side from the terminal dimensions.
func BoardSize(cols, rows int) (int, error) {
	size := min((cols-sideMargin)/CellWidth, rows-HeaderRows)
	if size < 1 {
		return 0, fmt.Errorf("%dx%d terminal: %w", cols, rows, ErrTerminalTooSmall)
	}
	return size, nil
}
