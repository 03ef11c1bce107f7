package game

import "github.com/dmorhart/sweeper/internal/field"

// ActionKind enumerates what a player can do to the board.
type ActionKind int

const (
	// ActionOpenCell opens the cell at the action's position.
	ActionOpenCell ActionKind = iota
	// ActionOpenSurroundingCells chords: opens all neighbours of a
	// satisfied numbered cell.
	ActionOpenSurroundingCells
	// ActionOpenCellOrSurroundingCells picks one of the two above based
	// on whether the target cell is already open. Meant for frontends
	// with a single trigger for both.
	ActionOpenCellOrSurroundingCells
	// ActionFlagCell toggles the flag on the cell at the position.
	ActionFlagCell
)

// String returns a short action name, used for telemetry attributes.
func (k ActionKind) String() string {
	switch k {
	case ActionOpenCell:
		return "open_cell"
	case ActionOpenSurroundingCells:
		return "open_surrounding_cells"
	case ActionOpenCellOrSurroundingCells:
		return "open_cell_or_surrounding_cells"
	case ActionFlagCell:
		return "flag_cell"
	default:
		return "unknown"
	}
}

// Action is a single player input: what to do and where.
type Action struct {
	Kind ActionKind
	Pos  field.Position
}
