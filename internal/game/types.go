package game

import "strings"

const (
	BoardSize = 15
	WinLength = 5
)

// Color is the color of a stone. White always moves first.
type Color int

const (
	White Color = iota
	Black
)

func ParseColor(s string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white", "w":
		return White, nil
	case "black", "b":
		return Black, nil
	default:
		return White, ErrUnknownColor
	}
}

func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "invalid"
	}
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (c Cell) InBounds() bool {
	return c.Row >= 0 && c.Row < BoardSize && c.Col >= 0 && c.Col < BoardSize
}

func Center() Cell {
	return Cell{Row: BoardSize / 2, Col: BoardSize / 2}
}

type Mode int

const (
	HumanVsHuman Mode = iota
	HumanVsComputer
)

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "human_vs_human", "hvh", "pvp":
		return HumanVsHuman, nil
	case "human_vs_computer", "hvc", "pve":
		return HumanVsComputer, nil
	default:
		return HumanVsHuman, ErrUnknownMode
	}
}

func (m Mode) IsValid() bool {
	return m == HumanVsHuman || m == HumanVsComputer
}

func (m Mode) String() string {
	switch m {
	case HumanVsHuman:
		return "human_vs_human"
	case HumanVsComputer:
		return "human_vs_computer"
	default:
		return "invalid"
	}
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(text []byte) error {
	v, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

type Status int

const (
	InProgress Status = iota
	Finished
)

func (s Status) String() string {
	if s == Finished {
		return "finished"
	}
	return "in_progress"
}

// Outcome reports what a single placement did to the game.
type Outcome int

const (
	Continue Outcome = iota
	Win
	Draw
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Draw:
		return "draw"
	default:
		return "continue"
	}
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

type Move struct {
	Cell  Cell  `json:"cell"`
	Color Color `json:"color"`
}

// Result is returned by PlaceStone. Moves holds every stone the call put on
// the board, in order: the caller's stone and, in computer mode, the reply.
// Winner is nil unless Outcome is Win.
type Result struct {
	Outcome Outcome `json:"outcome"`
	Winner  *Color  `json:"winner,omitempty"`
	Moves   []Move  `json:"moves"`
}
