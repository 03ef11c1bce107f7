// Package field provides the minefield grid and its cells.
package field

// Position identifies a cell by its zero-based row and column indices.
type Position struct {
	Row, Col int
}

// Cell represents a single grid position. Its content is either a mine or an
// empty cell carrying the count of mines among its neighbours; its visibility
// is closed (optionally flagged) or open. A flag is only meaningful while the
// cell is closed.
type Cell struct {
	pos         Position
	mined       bool
	minesAround int
	open        bool
	flagged     bool
}

// NewCell creates a closed, unflagged, empty cell at the given position.
func NewCell(pos Position) Cell {
	return Cell{pos: pos}
}

// Position returns the cell's own coordinates.
func (c *Cell) Position() Position {
	return c.pos
}

// IsMined returns true if the cell holds a mine.
func (c *Cell) IsMined() bool {
	return c.mined
}

// IsOpen returns true if the cell has been opened.
func (c *Cell) IsOpen() bool {
	return c.open
}

// IsFlagged returns true if the cell is closed and flagged.
func (c *Cell) IsFlagged() bool {
	return c.flagged
}

// Mine turns the cell into a mine, discarding any accumulated neighbour
// count. A mined cell carries no count of its own.
func (c *Cell) Mine() {
	c.mined = true
	c.minesAround = 0
}

// MinesAround returns the number of mined neighbours and true for an empty
// cell, or 0 and false for a mine.
func (c *Cell) MinesAround() (int, bool) {
	if c.mined {
		return 0, false
	}
	return c.minesAround, true
}

// IncrementMinesAround bumps the neighbour count by one. No-op for mines.
// Only the field calls this, during mine placement.
func (c *Cell) IncrementMinesAround() {
	if !c.mined {
		c.minesAround++
	}
}

// Open marks the cell open. The caller is responsible for not opening cells
// that are flagged or already open; keeping that policy out of Cell keeps
// the flood-opening rules in one place (the field).
func (c *Cell) Open() {
	c.open = true
}

// ToggleFlag flips the flag on a closed cell. No-op for open cells.
func (c *Cell) ToggleFlag() {
	if c.open {
		return
	}
	c.flagged = !c.flagged
}

// AdjacentPositions returns the positions of the up-to-8 neighbouring cells.
// Positions with a negative row or column are dropped, but no upper bound is
// applied: the cell does not know the field's dimensions, so the caller must
// bounds-check against them.
func (c *Cell) AdjacentPositions() []Position {
	candidates := [8]Position{
		{c.pos.Row - 1, c.pos.Col - 1},
		{c.pos.Row, c.pos.Col - 1},
		{c.pos.Row + 1, c.pos.Col - 1},
		{c.pos.Row - 1, c.pos.Col},
		{c.pos.Row + 1, c.pos.Col},
		{c.pos.Row - 1, c.pos.Col + 1},
		{c.pos.Row, c.pos.Col + 1},
		{c.pos.Row + 1, c.pos.Col + 1},
	}

	adjacent := make([]Position, 0, len(candidates))
	for _, p := range candidates {
		if p.Row >= 0 && p.Col >= 0 {
			adjacent = append(adjacent, p)
		}
	}
	return adjacent
}
