package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placeAll(t *testing.T, b *Board, color Color, cells ...Cell) {
	t.Helper()
	for _, c := range cells {
		require.NoError(t, b.Set(c, color), "set %v", c)
	}
}

func TestScanSameLengthFromEveryStoneInRun(t *testing.T) {
	lines := map[string]struct {
		dir   int
		cells []Cell
	}{
		"vertical":      {0, []Cell{{2, 9}, {3, 9}, {4, 9}, {5, 9}}},
		"horizontal":    {1, []Cell{{7, 3}, {7, 4}, {7, 5}}},
		"diagonal":      {2, []Cell{{0, 0}, {1, 1}, {2, 2}, {3, 3}}},
		"anti-diagonal": {3, []Cell{{10, 4}, {11, 3}, {12, 2}, {13, 1}, {14, 0}}},
	}
	for name, tc := range lines {
		t.Run(name, func(t *testing.T) {
			b := NewBoard()
			placeAll(t, b, Black, tc.cells...)
			for _, anchor := range tc.cells {
				runs := Scan(b, anchor, Black)
				assert.Equal(t, len(tc.cells), runs[tc.dir], "anchor %v", anchor)
				assert.Equal(t, len(tc.cells), runs.Max(), "anchor %v", anchor)
			}
		})
	}
}

func TestScanCountsEmptyAnchor(t *testing.T) {
	b := NewBoard()
	assert.Equal(t, Runs{1, 1, 1, 1}, Scan(b, Cell{7, 7}, White))

	placeAll(t, b, White, Cell{7, 3}, Cell{7, 4}, Cell{7, 5}, Cell{7, 6})
	assert.Equal(t, 5, MaxRun(b, Cell{7, 7}, White))
	assert.Equal(t, 5, MaxRun(b, Cell{7, 2}, White))
	assert.Equal(t, 1, MaxRun(b, Cell{7, 7}, Black))
}

func TestScanStopsAtOtherColorAndEdge(t *testing.T) {
	b := NewBoard()
	placeAll(t, b, White, Cell{0, 0}, Cell{0, 1}, Cell{0, 2})
	placeAll(t, b, Black, Cell{0, 3})

	runs := Scan(b, Cell{0, 1}, White)
	assert.Equal(t, 3, runs[1])
	assert.Equal(t, 1, runs[0])
}

func TestIsWinningAfterOverline(t *testing.T) {
	b := NewBoard()
	placeAll(t, b, Black, Cell{4, 0}, Cell{4, 1}, Cell{4, 2}, Cell{4, 4}, Cell{4, 5})
	assert.Equal(t, 6, MaxRun(b, Cell{4, 3}, Black))
	assert.True(t, IsWinningAfter(b, Cell{4, 3}, Black))
	assert.False(t, IsWinningAfter(b, Cell{4, 3}, White))
}
