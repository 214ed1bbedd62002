// Package tui draws a game on a terminal and turns keys and mouse clicks
// into engine moves.
package tui

import (
	"errors"
	"fmt"

	"gomoku/internal/game"

	"github.com/gdamore/tcell/v2"
)

const (
	originX   = 4
	originY   = 2
	cellWidth = 2 // 2 characters per cell for square appearance
)

var (
	boardStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	whiteStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	blackStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	cursorStyle = tcell.StyleDefault.Reverse(true)
	labelStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

const (
	whiteStone = 'O'
	blackStone = 'X'
	emptyPoint = '+'
)

// ScreenPos returns the terminal column and row a cell is drawn at.
func ScreenPos(c game.Cell) (x, y int) {
	return originX + c.Col*cellWidth, originY + c.Row
}

// CellAt maps a terminal position back to a board cell. Both characters of
// a cell's slot map to it.
func CellAt(x, y int) (game.Cell, bool) {
	if x < originX || y < originY {
		return game.Cell{}, false
	}
	c := game.Cell{Row: y - originY, Col: (x - originX) / cellWidth}
	return c, c.InBounds()
}

func stoneRune(color game.Color) (rune, tcell.Style) {
	if color == game.White {
		return whiteStone, whiteStyle
	}
	return blackStone, blackStyle
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

func (a *App) draw() {
	s := a.screen
	s.Clear()

	drawText(s, originX, 0, labelStyle, fmt.Sprintf("Gomoku - %s", a.game.Mode()))
	for col := 0; col < game.BoardSize; col++ {
		x, _ := ScreenPos(game.Cell{Col: col})
		drawText(s, x, originY-1, labelStyle, fmt.Sprintf("%x", col))
	}

	for row := 0; row < game.BoardSize; row++ {
		_, y := ScreenPos(game.Cell{Row: row})
		drawText(s, 0, y, labelStyle, fmt.Sprintf("%2d", row))
		for col := 0; col < game.BoardSize; col++ {
			c := game.Cell{Row: row, Col: col}
			x, y := ScreenPos(c)
			r, style := emptyPoint, boardStyle
			if color, ok, _ := a.game.At(c); ok {
				r, style = stoneRune(color)
			}
			if c == a.cursor && !a.game.IsGameOver() {
				style = style.Reverse(true)
				if r == emptyPoint {
					style = cursorStyle
				}
			}
			s.SetContent(x, y, r, nil, style)
		}
	}

	_, bottom := ScreenPos(game.Cell{Row: game.BoardSize})
	drawText(s, 0, bottom+1, tcell.StyleDefault, a.statusLine())
	drawText(s, 0, bottom+2, boardStyle, "arrows/click: move  enter: place  r: restart  q: quit")
	s.Show()
}

func (a *App) statusLine() string {
	if a.confirmReset {
		return "Restart the game? (y/n)"
	}
	if a.message != "" {
		return a.message
	}
	if a.game.IsGameOver() {
		if w, ok := a.game.Winner(); ok {
			return fmt.Sprintf("%s wins! Press r to play again.", title(w))
		}
		return "Draw: the board is full. Press r to play again."
	}
	return fmt.Sprintf("%s to move", title(a.game.Turn()))
}

func title(c game.Color) string {
	if c == game.White {
		return "White"
	}
	return "Black"
}

func describe(err error) string {
	switch {
	case errors.Is(err, game.ErrCellOccupied):
		return "That point is taken."
	case errors.Is(err, game.ErrOutOfRange):
		return "That point is off the board."
	case errors.Is(err, game.ErrGameAlreadyOver):
		return "The game is over. Press r to restart."
	default:
		return err.Error()
	}
}
