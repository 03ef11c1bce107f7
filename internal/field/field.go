package field

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

var (
	// ErrNotEnoughCells is returned when the requested dimensions hold
	// fewer than two cells total.
	ErrNotEnoughCells = errors.New("field needs at least two cells")
	// ErrMinesAlreadyExist is returned when trying to populate a field
	// that already holds mines. Placement happens exactly once per field,
	// so an ongoing game can never have its mines redistributed.
	ErrMinesAlreadyExist = errors.New("mines have already been placed")
)

// InvalidMinesAmountError is returned when the requested number of mines is
// below 1 or above the total cell count minus 1 (there must always be at
// least one mine and at least one safe cell). Max reports the largest amount
// valid for the requested dimensions.
type InvalidMinesAmountError struct {
	Max int
}

func (e InvalidMinesAmountError) Error() string {
	return fmt.Sprintf("mines amount must be between 1 and %d", e.Max)
}

// InvalidExceptedPositionError is returned when the position excluded from
// mine placement lies outside the field.
type InvalidExceptedPositionError struct {
	Pos Position
}

func (e InvalidExceptedPositionError) Error() string {
	return fmt.Sprintf("excepted cell position (%d, %d) is outside the field", e.Pos.Row, e.Pos.Col)
}

// Field owns a rows-by-columns grid of cells and the configured mine count.
//
// A new field starts without mines: placement is deferred until the first
// cell is opened so that cell can be excluded from holding a mine. The mine
// count is still validated at construction time, so a bad configuration is
// reported before the game starts rather than mid-play.
type Field struct {
	grid        [][]Cell // indexed [row][col]
	minesAmount int
	rng         *rand.Rand
}

// New creates an empty field with the given dimensions and mine target.
// A nil rng seeds one from the wall clock; tests inject their own for
// reproducibility.
func New(rows, columns, mines int, rng *rand.Rand) (*Field, error) {
	cells := rows * columns
	if rows < 1 || columns < 1 || cells < 2 {
		return nil, ErrNotEnoughCells
	}
	if mines < 1 || mines > cells-1 {
		return nil, InvalidMinesAmountError{Max: cells - 1}
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	grid := make([][]Cell, rows)
	for r := range grid {
		grid[r] = make([]Cell, columns)
		for c := range grid[r] {
			grid[r][c] = NewCell(Position{Row: r, Col: c})
		}
	}

	return &Field{grid: grid, minesAmount: mines, rng: rng}, nil
}

// PopulateWithMines distributes the configured number of mines uniformly at
// random over the grid, then increments the neighbour count of every empty
// cell bordering a mine.
//
// When except is non-nil, that cell is guaranteed not to receive a mine; the
// exact configured amount is still placed. Placement is exactly-once: a
// second call fails with ErrMinesAlreadyExist.
func (f *Field) PopulateWithMines(except *Position) error {
	rows, columns, cells := f.Size()

	if except != nil {
		if except.Row < 0 || except.Row >= rows || except.Col < 0 || except.Col >= columns {
			return InvalidExceptedPositionError{Pos: *except}
		}
	}

	for r := range f.grid {
		for c := range f.grid[r] {
			if f.grid[r][c].IsMined() {
				return ErrMinesAlreadyExist
			}
		}
	}

	candidates := make([]Position, 0, cells)
	for r := 0; r < rows; r++ {
		for c := 0; c < columns; c++ {
			pos := Position{Row: r, Col: c}
			if except != nil && pos == *except {
				continue
			}
			candidates = append(candidates, pos)
		}
	}

	// Shuffle-and-take keeps the sample unbiased.
	f.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	for _, pos := range candidates[:f.minesAmount] {
		mined := f.CellAt(pos)
		mined.Mine()

		for _, adj := range mined.AdjacentPositions() {
			if neighbour := f.CellAt(adj); neighbour != nil {
				neighbour.IncrementMinesAround()
			}
		}
	}

	return nil
}

// Size returns the number of rows, columns and total cells.
func (f *Field) Size() (rows, columns, cells int) {
	rows = len(f.grid)
	if rows > 0 {
		columns = len(f.grid[0])
	}
	return rows, columns, rows * columns
}

// MinesAmount returns the configured total number of mines.
func (f *Field) MinesAmount() int {
	return f.minesAmount
}

// CellAt returns the cell at the given position, or nil when the position
// lies outside the field.
func (f *Field) CellAt(pos Position) *Cell {
	if pos.Row < 0 || pos.Row >= len(f.grid) {
		return nil
	}
	row := f.grid[pos.Row]
	if pos.Col < 0 || pos.Col >= len(row) {
		return nil
	}
	return &row[pos.Col]
}

// OpenCell opens the cell at the given position. Out-of-bounds, already-open
// and flagged cells are silent no-ops. Opening an empty cell with zero mined
// neighbours chain-opens the whole bordering region.
//
// The flood runs over an explicit frontier stack instead of recursing, so a
// large field cannot exhaust the call stack; already-open cells act as the
// visited set.
func (f *Field) OpenCell(pos Position) {
	frontier := []Position{pos}

	for len(frontier) > 0 {
		next := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		cell := f.CellAt(next)
		if cell == nil || cell.IsOpen() || cell.IsFlagged() {
			continue
		}
		cell.Open()

		if n, ok := cell.MinesAround(); ok && n == 0 {
			frontier = append(frontier, cell.AdjacentPositions()...)
		}
	}
}

// OpenSurroundingCells opens every neighbour of the target cell, the
// middle-click chord. It only fires when the target is open, is an empty
// cell with a known neighbour count, and exactly that many of its neighbours
// are flagged; otherwise the board is left untouched. Flagged neighbours
// still go through OpenCell, which refuses to open them, so a flag is never
// force-opened.
//
// Matching the flag count is all that is checked: flags placed on the wrong
// neighbours will chord straight into a mine, as in classic Minesweeper.
func (f *Field) OpenSurroundingCells(pos Position) {
	target := f.CellAt(pos)
	if target == nil || !target.IsOpen() {
		return
	}

	minesAround, ok := target.MinesAround()
	if !ok {
		return
	}

	adjacent := target.AdjacentPositions()

	flagged := 0
	for _, adj := range adjacent {
		if cell := f.CellAt(adj); cell != nil && cell.IsFlagged() {
			flagged++
		}
	}
	if flagged != minesAround {
		return
	}

	for _, adj := range adjacent {
		f.OpenCell(adj)
	}
}

// ToggleCellFlag toggles the flag on the cell at the given position. No-op
// when the position is out of bounds.
func (f *Field) ToggleCellFlag(pos Position) {
	if cell := f.CellAt(pos); cell != nil {
		cell.ToggleFlag()
	}
}

// FlaggedCellsAmount returns the current number of flagged cells.
func (f *Field) FlaggedCellsAmount() int {
	flagged := 0
	for r := range f.grid {
		for c := range f.grid[r] {
			if f.grid[r][c].IsFlagged() {
				flagged++
			}
		}
	}
	return flagged
}

// OpenMinesExist reports whether any mined cell is open, the loss condition.
func (f *Field) OpenMinesExist() bool {
	for r := range f.grid {
		for c := range f.grid[r] {
			if f.grid[r][c].IsOpen() && f.grid[r][c].IsMined() {
				return true
			}
		}
	}
	return false
}

// AllNonMinesOpen reports whether every non-mined cell is open, the win
// condition.
func (f *Field) AllNonMinesOpen() bool {
	for r := range f.grid {
		for c := range f.grid[r] {
			if !f.grid[r][c].IsMined() && !f.grid[r][c].IsOpen() {
				return false
			}
		}
	}
	return true
}

// OpenMissedMines opens every mined cell that is not flagged. Called once on
// loss to reveal the mines the player missed; flagged mines stay flagged as
// correctly identified.
func (f *Field) OpenMissedMines() {
	for r := range f.grid {
		for c := range f.grid[r] {
			cell := &f.grid[r][c]
			if cell.IsMined() && !cell.IsFlagged() {
				cell.Open()
			}
		}
	}
}
