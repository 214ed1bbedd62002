package game

import (
	"math/rand"
	"time"
)

// ComputerColor is the color the computer plays in HumanVsComputer mode. It
// always opens at the center.
const ComputerColor = White

// Game is the state machine for one session. It is not safe for concurrent
// use; callers serialize moves.
type Game struct {
	board  *Board
	mode   Mode
	turn   Color
	status Status
	winner Color
	won    bool
	moves  []Move
	rng    Rand
}

// NewGame starts a game in the given mode. rng drives the computer's
// tie-breaking; a nil rng is replaced by a time-seeded source.
func NewGame(mode Mode, rng Rand) (*Game, error) {
	if !mode.IsValid() {
		return nil, ErrUnknownMode
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	g := &Game{mode: mode, rng: rng}
	g.Reset()
	return g, nil
}

// Reset clears the board in place and keeps the mode. In HumanVsComputer
// mode the computer immediately opens at the center.
func (g *Game) Reset() {
	g.board = NewBoard()
	g.turn = White
	g.status = InProgress
	g.winner = White
	g.won = false
	g.moves = nil

	if g.mode == HumanVsComputer {
		center := Center()
		g.board.put(center, ComputerColor)
		g.moves = append(g.moves, Move{Cell: center, Color: ComputerColor})
		g.turn = ComputerColor.Opponent()
	}
}

// PlaceStone puts a stone of the current turn's color on at. In
// HumanVsComputer mode a non-terminal move is answered by the computer
// before PlaceStone returns, and the result describes both placements.
func (g *Game) PlaceStone(at Cell) (Result, error) {
	res, err := g.place(at)
	if err != nil {
		return Result{}, err
	}
	if g.mode != HumanVsComputer || res.Outcome != Continue || g.turn != ComputerColor {
		return res, nil
	}

	reply, err := SelectMove(g.board, ComputerColor, ComputerColor.Opponent(), g.rng)
	if err != nil {
		return res, err
	}
	next, err := g.place(reply)
	if err != nil {
		return res, err
	}
	next.Moves = append(res.Moves, next.Moves...)
	return next, nil
}

func (g *Game) place(at Cell) (Result, error) {
	if g.status == Finished {
		return Result{}, ErrGameAlreadyOver
	}
	mover := g.turn
	if err := g.board.Set(at, mover); err != nil {
		return Result{}, err
	}
	mv := Move{Cell: at, Color: mover}
	g.moves = append(g.moves, mv)
	res := Result{Outcome: Continue, Moves: []Move{mv}}

	switch {
	case IsWinningAfter(g.board, at, mover):
		g.status = Finished
		g.winner, g.won = mover, true
		res.Outcome = Win
		res.Winner = &mover
	case g.board.Full():
		g.status = Finished
		res.Outcome = Draw
	default:
		g.turn = mover.Opponent()
	}
	return res, nil
}

func (g *Game) At(c Cell) (Color, bool, error) {
	return g.board.At(c)
}

func (g *Game) IsGameOver() bool {
	return g.status == Finished
}

// Winner returns the winning color. ok is false while the game is running
// and after a draw.
func (g *Game) Winner() (color Color, ok bool) {
	return g.winner, g.won
}

func (g *Game) Turn() Color { return g.turn }
func (g *Game) Mode() Mode { return g.mode }
func (g *Game) Status() Status { return g.status }
func (g *Game) Board() *Board { return g.board.Clone() }
func (g *Game) MoveCount() int { return len(g.moves) }
func (g *Game) IsDraw() bool { return g.status == Finished && !g.won }

func (g *Game) Moves() []Move {
	return append([]Move(nil), g.moves...)
}

// LastMove returns the most recent placement, if any.
func (g *Game) LastMove() (Move, bool) {
	if len(g.moves) == 0 {
		return Move{}, false
	}
	return g.moves[len(g.moves)-1], true
}
