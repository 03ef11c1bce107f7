package field

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestField(t *testing.T, rows, columns, mines int) *Field {
	t.Helper()
	f, err := New(rows, columns, mines, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	return f
}

// placeMinesAt mines the given cells directly and derives the neighbour
// counts, bypassing random placement for deterministic boards.
func placeMinesAt(t *testing.T, f *Field, positions ...Position) {
	t.Helper()
	for _, pos := range positions {
		cell := f.CellAt(pos)
		require.NotNil(t, cell)
		cell.Mine()

		for _, adj := range cell.AdjacentPositions() {
			if neighbour := f.CellAt(adj); neighbour != nil {
				neighbour.IncrementMinesAround()
			}
		}
	}
}

func TestNewStartsWithAllCellsClosedAndEmpty(t *testing.T) {
	f := newTestField(t, 4, 3, 5)

	rows, columns, cells := f.Size()
	assert.Equal(t, 4, rows)
	assert.Equal(t, 3, columns)
	assert.Equal(t, 12, cells)
	assert.Equal(t, 5, f.MinesAmount())

	for r := 0; r < rows; r++ {
		for c := 0; c < columns; c++ {
			cell := f.CellAt(Position{Row: r, Col: c})
			require.NotNil(t, cell)
			assert.False(t, cell.IsMined())
			assert.False(t, cell.IsOpen())
			assert.False(t, cell.IsFlagged())
			n, ok := cell.MinesAround()
			assert.True(t, ok)
			assert.Equal(t, 0, n)
		}
	}
}

func TestNewRejectsFieldsWithFewerThanTwoCells(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {0, 5}, {5, 0}} {
		_, err := New(dims[0], dims[1], 1, nil)
		assert.ErrorIs(t, err, ErrNotEnoughCells, "dims %v", dims)
	}
}

func TestNewRejectsInvalidMinesAmounts(t *testing.T) {
	for _, mines := range []int{0, 9, -1} {
		_, err := New(3, 3, mines, nil)

		var invalid InvalidMinesAmountError
		require.ErrorAs(t, err, &invalid, "mines %d", mines)
		assert.Equal(t, 8, invalid.Max)
	}
}

func TestNewAcceptsTheMinimumLegalField(t *testing.T) {
	f := newTestField(t, 2, 1, 1)

	require.NoError(t, f.PopulateWithMines(nil))

	mined := 0
	for r := 0; r < 2; r++ {
		if f.CellAt(Position{Row: r}).IsMined() {
			mined++
		}
	}
	assert.Equal(t, 1, mined)
}

func TestPopulateWithMinesPlacesTheExactConfiguredAmount(t *testing.T) {
	f := newTestField(t, 8, 8, 10)

	require.NoError(t, f.PopulateWithMines(nil))

	mined := 0
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			if f.CellAt(Position{Row: r, Col: c}).IsMined() {
				mined++
			}
		}
	}
	assert.Equal(t, 10, mined)
}

func TestPopulateWithMinesNeverMinesTheExceptedCell(t *testing.T) {
	except := Position{Row: 2, Col: 3}

	// The 5x5/24 configuration leaves a single safe cell, so any bias
	// towards the excepted position would show up immediately.
	for trial := 0; trial < 100; trial++ {
		f, err := New(5, 5, 24, rand.New(rand.NewSource(int64(trial))))
		require.NoError(t, err)

		require.NoError(t, f.PopulateWithMines(&except))
		assert.False(t, f.CellAt(except).IsMined(), "trial %d", trial)
	}
}

func TestPopulateWithMinesRejectsAnOutOfBoundsExceptedCell(t *testing.T) {
	f := newTestField(t, 3, 3, 2)

	except := Position{Row: 3, Col: 0}
	err := f.PopulateWithMines(&except)

	var invalid InvalidExceptedPositionError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, except, invalid.Pos)
}

func TestPopulateWithMinesIsExactlyOnce(t *testing.T) {
	f := newTestField(t, 3, 3, 2)

	require.NoError(t, f.PopulateWithMines(nil))
	assert.ErrorIs(t, f.PopulateWithMines(nil), ErrMinesAlreadyExist)
}

func TestPopulateWithMinesDerivesCorrectNeighbourCounts(t *testing.T) {
	f := newTestField(t, 6, 6, 8)
	require.NoError(t, f.PopulateWithMines(nil))

	for r := 0; r < 6; r++ {
		for c := 0; c < 6; c++ {
			cell := f.CellAt(Position{Row: r, Col: c})
			n, ok := cell.MinesAround()
			if !ok {
				continue
			}

			want := 0
			for _, adj := range cell.AdjacentPositions() {
				if neighbour := f.CellAt(adj); neighbour != nil && neighbour.IsMined() {
					want++
				}
			}
			assert.Equal(t, want, n, "cell (%d, %d)", r, c)
		}
	}
}

func TestCellAtReturnsNilOutsideTheField(t *testing.T) {
	f := newTestField(t, 3, 4, 2)

	assert.NotNil(t, f.CellAt(Position{Row: 2, Col: 3}))
	assert.Nil(t, f.CellAt(Position{Row: 3, Col: 0}))
	assert.Nil(t, f.CellAt(Position{Row: 0, Col: 4}))
	assert.Nil(t, f.CellAt(Position{Row: -1, Col: 0}))
	assert.Nil(t, f.CellAt(Position{Row: 0, Col: -1}))
}

// Reference board used by the flood and chord tests. Mines at (0,4), (2,4)
// and (4,2):
//
//	. . . 1 *
//	. . . 2 2
//	. . . 1 *
//	. 1 1 2 1
//	. 1 * 1 .
func newReferenceField(t *testing.T) *Field {
	t.Helper()
	f := newTestField(t, 5, 5, 3)
	placeMinesAt(t, f,
		Position{Row: 0, Col: 4},
		Position{Row: 2, Col: 4},
		Position{Row: 4, Col: 2},
	)
	return f
}

func TestOpenCellFloodOpensTheConnectedEmptyRegion(t *testing.T) {
	f := newReferenceField(t)

	f.OpenCell(Position{Row: 1, Col: 1})

	wantOpen := map[Position]bool{
		{0, 0}: true, {0, 1}: true, {0, 2}: true, {0, 3}: true,
		{1, 0}: true, {1, 1}: true, {1, 2}: true, {1, 3}: true,
		{2, 0}: true, {2, 1}: true, {2, 2}: true, {2, 3}: true,
		{3, 0}: true, {3, 1}: true, {3, 2}: true, {3, 3}: true,
		{4, 0}: true, {4, 1}: true,
	}
	require.Len(t, wantOpen, 18)

	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			pos := Position{Row: r, Col: c}
			assert.Equal(t, wantOpen[pos], f.CellAt(pos).IsOpen(), "cell (%d, %d)", r, c)
		}
	}
}

func TestOpenCellStopsAtNumberedCells(t *testing.T) {
	f := newReferenceField(t)

	// (0,3) borders a mine, so opening it must not spread.
	f.OpenCell(Position{Row: 0, Col: 3})

	open := 0
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			if f.CellAt(Position{Row: r, Col: c}).IsOpen() {
				open++
			}
		}
	}
	assert.Equal(t, 1, open)
}

func TestOpenCellIgnoresFlaggedOutOfBoundsAndOpenCells(t *testing.T) {
	f := newReferenceField(t)

	f.OpenCell(Position{Row: 9, Col: 9}) // silently ignored

	flagged := Position{Row: 0, Col: 3}
	f.ToggleCellFlag(flagged)
	f.OpenCell(flagged)
	assert.False(t, f.CellAt(flagged).IsOpen())
	assert.True(t, f.CellAt(flagged).IsFlagged())
}

func TestOpenSurroundingCellsOpensNeighboursWhenFlagsMatch(t *testing.T) {
	f := newReferenceField(t)

	target := Position{Row: 3, Col: 3} // numbered 2
	f.OpenCell(target)
	f.ToggleCellFlag(Position{Row: 2, Col: 4})
	f.ToggleCellFlag(Position{Row: 4, Col: 2})

	f.OpenSurroundingCells(target)

	for _, adj := range f.CellAt(target).AdjacentPositions() {
		cell := f.CellAt(adj)
		if cell.IsFlagged() {
			assert.False(t, cell.IsOpen(), "flagged cell (%d, %d) must stay closed", adj.Row, adj.Col)
			continue
		}
		assert.True(t, cell.IsOpen(), "cell (%d, %d)", adj.Row, adj.Col)
	}
}

func TestOpenSurroundingCellsNegativeScenarios(t *testing.T) {
	openCellsAmount := func(f *Field) int {
		open := 0
		for r := 0; r < 5; r++ {
			for c := 0; c < 5; c++ {
				if f.CellAt(Position{Row: r, Col: c}).IsOpen() {
					open++
				}
			}
		}
		return open
	}

	t.Run("closed target", func(t *testing.T) {
		f := newReferenceField(t)
		f.OpenSurroundingCells(Position{Row: 3, Col: 3})
		assert.Equal(t, 0, openCellsAmount(f))
	})

	t.Run("flagged target", func(t *testing.T) {
		f := newReferenceField(t)
		f.ToggleCellFlag(Position{Row: 3, Col: 3})
		f.OpenSurroundingCells(Position{Row: 3, Col: 3})
		assert.Equal(t, 0, openCellsAmount(f))
	})

	t.Run("mismatched flag count", func(t *testing.T) {
		f := newReferenceField(t)
		target := Position{Row: 3, Col: 3}
		f.OpenCell(target)
		f.ToggleCellFlag(Position{Row: 2, Col: 4}) // one flag, target reads 2

		f.OpenSurroundingCells(target)
		assert.Equal(t, 1, openCellsAmount(f))
	})
}

func TestOpenSurroundingCellsWithWrongFlagsStillOpensMines(t *testing.T) {
	// Matching the count is all that is required: misplaced flags chord
	// straight into a mine, as in classic Minesweeper.
	f := newReferenceField(t)

	target := Position{Row: 3, Col: 3}
	f.OpenCell(target)
	f.ToggleCellFlag(Position{Row: 2, Col: 2})
	f.ToggleCellFlag(Position{Row: 2, Col: 3})

	f.OpenSurroundingCells(target)

	assert.True(t, f.CellAt(Position{Row: 2, Col: 4}).IsOpen())
	assert.True(t, f.OpenMinesExist())
}

func TestToggleCellFlagIsIdempotentInPairs(t *testing.T) {
	f := newTestField(t, 3, 3, 1)
	pos := Position{Row: 1, Col: 1}

	f.ToggleCellFlag(pos)
	assert.True(t, f.CellAt(pos).IsFlagged())
	assert.Equal(t, 1, f.FlaggedCellsAmount())

	f.ToggleCellFlag(pos)
	assert.False(t, f.CellAt(pos).IsFlagged())
	assert.False(t, f.CellAt(pos).IsOpen())
	assert.Equal(t, 0, f.FlaggedCellsAmount())

	f.ToggleCellFlag(Position{Row: 9, Col: 9}) // out of bounds, silent
}

func TestWinAndLossChecks(t *testing.T) {
	f := newReferenceField(t)

	assert.False(t, f.OpenMinesExist())
	assert.False(t, f.AllNonMinesOpen())

	// Open everything that is not a mine.
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			cell := f.CellAt(Position{Row: r, Col: c})
			if !cell.IsMined() {
				cell.Open()
			}
		}
	}
	assert.True(t, f.AllNonMinesOpen())
	assert.False(t, f.OpenMinesExist())

	f.CellAt(Position{Row: 0, Col: 4}).Open()
	assert.True(t, f.OpenMinesExist())
}

func TestOpenMissedMinesRevealsUnflaggedMinesOnly(t *testing.T) {
	f := newReferenceField(t)
	f.ToggleCellFlag(Position{Row: 0, Col: 4})

	f.OpenMissedMines()

	assert.False(t, f.CellAt(Position{Row: 0, Col: 4}).IsOpen(), "flagged mine stays flagged")
	assert.True(t, f.CellAt(Position{Row: 0, Col: 4}).IsFlagged())
	assert.True(t, f.CellAt(Position{Row: 2, Col: 4}).IsOpen())
	assert.True(t, f.CellAt(Position{Row: 4, Col: 2}).IsOpen())
}

func TestErrorMessages(t *testing.T) {
	assert.EqualError(t, InvalidMinesAmountError{Max: 8}, "mines amount must be between 1 and 8")
	assert.EqualError(t,
		InvalidExceptedPositionError{Pos: Position{Row: 3, Col: 7}},
		"excepted cell position (3, 7) is outside the field")
	assert.True(t, errors.Is(ErrNotEnoughCells, ErrNotEnoughCells))
}
