package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"gomoku/internal/game"
)

func main() {
	in := bufio.NewReader(os.Stdin)
	out := os.Stdout

	mode := chooseMode(in, out)
	g, err := game.NewGame(mode, rand.New(rand.NewSource(time.Now().UnixNano())))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	play(g, in, out)
}

func chooseMode(in *bufio.Reader, out io.Writer) game.Mode {
	for {
		fmt.Fprint(out, "Mode: 1 = two players, 2 = against the computer > ")
		line, err := in.ReadString('\n')
		switch strings.TrimSpace(line) {
		case "1":
			return game.HumanVsHuman
		case "2":
			return game.HumanVsComputer
		}
		if err != nil {
			return game.HumanVsComputer
		}
		fmt.Fprintln(out, "Choose 1 or 2.")
	}
}

// play runs games on in/out until the input ends or the player declines a
// rematch.
func play(g *game.Game, in *bufio.Reader, out io.Writer) {
	for {
		for !g.IsGameOver() {
			printBoard(out, g)
			fmt.Fprintf(out, "%s to move. Enter: row col > ", g.Turn())
			line, err := in.ReadString('\n')
			if cell, ok := parseCell(line); ok {
				if _, perr := g.PlaceStone(cell); perr != nil {
					fmt.Fprintln(out, "Illegal move:", describe(perr))
				}
			} else if strings.TrimSpace(line) != "" {
				fmt.Fprintln(out, "Format: row col (for example: 7 7)")
			}
			if err != nil {
				return
			}
		}

		printBoard(out, g)
		if w, ok := g.Winner(); ok {
			fmt.Fprintf(out, "%s wins!\n", w)
		} else {
			fmt.Fprintln(out, "Draw.")
		}
		fmt.Fprint(out, "Play again? (y/n) > ")
		line, _ := in.ReadString('\n')
		if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(line)), "y") {
			return
		}
		g.Reset()
	}
}

func parseCell(line string) (game.Cell, bool) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return game.Cell{}, false
	}
	r, err1 := strconv.Atoi(parts[0])
	c, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return game.Cell{}, false
	}
	return game.Cell{Row: r, Col: c}, true
}

func describe(err error) string {
	switch {
	case errors.Is(err, game.ErrCellOccupied):
		return "cell already taken"
	case errors.Is(err, game.ErrOutOfRange):
		return fmt.Sprintf("row and col must be 0..%d", game.BoardSize-1)
	default:
		return err.Error()
	}
}

func printBoard(out io.Writer, g *game.Game) {
	fmt.Fprint(out, "\n   ")
	for c := 0; c < game.BoardSize; c++ {
		fmt.Fprintf(out, "%x ", c)
	}
	fmt.Fprintln(out)
	for r := 0; r < game.BoardSize; r++ {
		fmt.Fprintf(out, "%2d ", r)
		for c := 0; c < game.BoardSize; c++ {
			color, ok, _ := g.At(game.Cell{Row: r, Col: c})
			switch {
			case !ok:
				fmt.Fprint(out, ". ")
			case color == game.White:
				fmt.Fprint(out, "O ")
			default:
				fmt.Fprint(out, "X ")
			}
		}
		fmt.Fprintln(out)
	}
}
