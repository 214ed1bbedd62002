package game

// Directions scanned for runs, as (row delta, column delta).
var Directions = [4][2]int{{1, 0}, {0, 1}, {1, 1}, {1, -1}}

// Runs holds the run length through an anchor for each of Directions.
type Runs [4]int

func (r Runs) Max() int {
	best := 0
	for _, n := range r {
		if n > best {
			best = n
		}
	}
	return best
}

// Scan counts, per direction, the contiguous stones of color passing through
// at. The anchor itself always counts as one, occupied or not, so an empty
// cell can be scored as if color had played there.
func Scan(b *Board, at Cell, color Color) Runs {
	var runs Runs
	for i, d := range Directions {
		count := 1
		r, c := at.Row+d[0], at.Col+d[1]
		for b.has(Cell{Row: r, Col: c}, color) {
			count++
			r += d[0]
			c += d[1]
		}
		r, c = at.Row-d[0], at.Col-d[1]
		for b.has(Cell{Row: r, Col: c}, color) {
			count++
			r -= d[0]
			c -= d[1]
		}
		runs[i] = count
	}
	return runs
}

func MaxRun(b *Board, at Cell, color Color) int {
	return Scan(b, at, color).Max()
}

// IsWinningAfter reports whether a stone of color on at completes a run of
// WinLength or more. Longer runs win too.
func IsWinningAfter(b *Board, at Cell, color Color) bool {
	return MaxRun(b, at, color) >= WinLength
}
