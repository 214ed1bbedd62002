package tui

import (
	"gomoku/internal/game"

	"github.com/gdamore/tcell/v2"
)

type App struct {
	screen tcell.Screen
	game   *game.Game

	cursor       game.Cell
	confirmReset bool
	mouseDown    bool
	message      string
}

// NewApp expects an initialised screen; the caller owns its lifecycle.
func NewApp(screen tcell.Screen, g *game.Game) *App {
	return &App{
		screen: screen,
		game:   g,
		cursor: game.Center(),
	}
}

func (a *App) Run() {
	a.draw()
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		if quit := a.HandleEvent(ev); quit {
			return
		}
		a.draw()
	}
}

// HandleEvent applies one terminal event and reports whether the user asked
// to quit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventMouse:
		pressed := ev.Buttons()&tcell.Button1 != 0
		if pressed && !a.mouseDown && !a.confirmReset {
			if c, ok := CellAt(ev.Position()); ok {
				a.cursor = c
				a.place(c)
			}
		}
		a.mouseDown = pressed
	}
	return false
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	if a.confirmReset {
		switch {
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'y' || ev.Rune() == 'Y'):
			a.game.Reset()
			a.cursor = game.Center()
			a.message = ""
			a.confirmReset = false
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'n' || ev.Rune() == 'N'), ev.Key() == tcell.KeyEscape:
			a.confirmReset = false
		}
		return false
	}

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		a.moveCursor(-1, 0)
	case tcell.KeyDown:
		a.moveCursor(1, 0)
	case tcell.KeyLeft:
		a.moveCursor(0, -1)
	case tcell.KeyRight:
		a.moveCursor(0, 1)
	case tcell.KeyEnter:
		a.place(a.cursor)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 'r':
			a.confirmReset = true
		case ' ':
			a.place(a.cursor)
		}
	}
	return false
}

func (a *App) moveCursor(dr, dc int) {
	next := game.Cell{Row: a.cursor.Row + dr, Col: a.cursor.Col + dc}
	if next.InBounds() {
		a.cursor = next
	}
}

func (a *App) place(c game.Cell) {
	if _, err := a.game.PlaceStone(c); err != nil {
		a.message = describe(err)
		return
	}
	a.message = ""
}
