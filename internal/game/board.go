package game

type point struct {
	color  Color
	filled bool
}

// Board is the 15x15 grid. The zero value is an empty board.
type Board struct {
	cells [BoardSize][BoardSize]point
	count int
}

func NewBoard() *Board {
	return &Board{}
}

// At returns the stone on c. ok is false for an empty cell.
func (b *Board) At(c Cell) (color Color, ok bool, err error) {
	if !c.InBounds() {
		return White, false, outOfRange(c)
	}
	p := b.cells[c.Row][c.Col]
	return p.color, p.filled, nil
}

// Set places a stone. Occupied cells are never overwritten.
func (b *Board) Set(c Cell, color Color) error {
	if !c.InBounds() {
		return outOfRange(c)
	}
	if b.cells[c.Row][c.Col].filled {
		return occupied(c)
	}
	b.put(c, color)
	return nil
}

// put writes a stone without checks; c must be in bounds and empty.
func (b *Board) put(c Cell, color Color) {
	b.cells[c.Row][c.Col] = point{color: color, filled: true}
	b.count++
}

func (b *Board) IsEmpty(c Cell) bool {
	return c.InBounds() && !b.cells[c.Row][c.Col].filled
}

// has reports whether c is in bounds and holds a stone of the given color.
func (b *Board) has(c Cell, color Color) bool {
	if !c.InBounds() {
		return false
	}
	p := b.cells[c.Row][c.Col]
	return p.filled && p.color == color
}

// EmptyCells lists unoccupied cells in row-major order.
func (b *Board) EmptyCells() []Cell {
	out := make([]Cell, 0, BoardSize*BoardSize-b.count)
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if !b.cells[r][c].filled {
				out = append(out, Cell{Row: r, Col: c})
			}
		}
	}
	return out
}

func (b *Board) Count() int {
	return b.count
}

func (b *Board) Full() bool {
	return b.count == BoardSize*BoardSize
}

func (b *Board) Clone() *Board {
	clone := *b
	return &clone
}
