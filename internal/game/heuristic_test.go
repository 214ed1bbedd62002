package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedRand struct {
	pick int
	seen []int
}

func (f *fixedRand) Intn(n int) int {
	f.seen = append(f.seen, n)
	return f.pick % n
}

func TestSelectMoveTakesImmediateWin(t *testing.T) {
	b := NewBoard()
	placeAll(t, b, White, Cell{7, 3}, Cell{7, 4}, Cell{7, 5}, Cell{7, 6})

	for seed := int64(0); seed < 10; seed++ {
		got, err := SelectMove(b, White, Black, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)
		assert.Contains(t, []Cell{{7, 7}, {7, 2}}, got)
	}
}

func TestSelectMoveBlocksOpenFour(t *testing.T) {
	b := NewBoard()
	placeAll(t, b, Black, Cell{5, 5}, Cell{6, 6}, Cell{7, 7}, Cell{8, 8})
	placeAll(t, b, White, Cell{0, 14}, Cell{14, 0})

	got, err := SelectMove(b, White, Black, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	assert.Contains(t, []Cell{{4, 4}, {9, 9}}, got)
	// first block candidate in scan order
	assert.Equal(t, Cell{4, 4}, got)
}

func TestSelectMovePrefersWinOverBlock(t *testing.T) {
	b := NewBoard()
	placeAll(t, b, Black, Cell{0, 0}, Cell{0, 1}, Cell{0, 2}, Cell{0, 3})
	placeAll(t, b, White, Cell{10, 3}, Cell{10, 4}, Cell{10, 5}, Cell{10, 6})

	got, err := SelectMove(b, White, Black, nil)
	require.NoError(t, err)
	assert.Contains(t, []Cell{{10, 2}, {10, 7}}, got)
}

func TestSelectMoveBreaksTiesWithRand(t *testing.T) {
	b := NewBoard()
	placeAll(t, b, White, Cell{7, 7})

	// The eight neighbours of the lone stone all give a run of two.
	r := &fixedRand{pick: 7}
	got, err := SelectMove(b, White, Black, r)
	require.NoError(t, err)
	require.Equal(t, []int{8}, r.seen)
	assert.Equal(t, Cell{8, 8}, got)

	got, err = SelectMove(b, White, Black, nil)
	require.NoError(t, err)
	assert.Equal(t, Cell{6, 6}, got)
}

func TestSelectMoveIsReproducibleForSeed(t *testing.T) {
	b := NewBoard()
	first, err := SelectMove(b, White, Black, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	again, err := SelectMove(b, White, Black, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	assert.Equal(t, first, again)
}

func TestSelectMoveFullBoard(t *testing.T) {
	b := NewBoard()
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			require.NoError(t, b.Set(Cell{r, c}, Color((r+c)%2)))
		}
	}
	_, err := SelectMove(b, White, Black, nil)
	assert.ErrorIs(t, err, ErrNoLegalMoves)
}
