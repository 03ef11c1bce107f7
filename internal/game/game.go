package game

import (
	"errors"

	"github.com/google/uuid"

	"github.com/dmorhart/sweeper/internal/field"
	"github.com/dmorhart/sweeper/internal/stopwatch"
)

// ErrGameAlreadyEnded is returned when an action is taken on a finished
// game. Callers should stop forwarding actions or start a new session.
var ErrGameAlreadyEnded = errors.New("the game has already ended")

// Game is one Minesweeper session. It owns the field and the stopwatch and
// derives its status from field predicates after every action; the only way
// a caller influences the status directly is the explicit pause toggle.
type Game struct {
	id        uuid.UUID
	field     *field.Field
	status    Status
	stopwatch stopwatch.Stopwatch
}

// New creates a session with a field of the given dimensions and mine
// count, propagating the field's validation errors. The field stays empty
// until the first open so the first opened cell can never be a mine.
func New(rows, columns, mines int) (*Game, error) {
	f, err := field.New(rows, columns, mines, nil)
	if err != nil {
		return nil, err
	}

	return &Game{
		id:     uuid.New(),
		field:  f,
		status: StatusPre,
	}, nil
}

// ID returns the session's unique identifier.
func (g *Game) ID() uuid.UUID {
	return g.id
}

// Field returns the session's field for read-only rendering queries.
func (g *Game) Field() *field.Field {
	return g.field
}

// Status returns the current session status.
func (g *Game) Status() Status {
	return g.status
}

// TakeAction performs the requested action, recomputes the status and
// returns it.
//
// A finished game rejects every action with ErrGameAlreadyEnded. A paused
// game swallows every action and reports StatusPause, leaving the board
// untouched. The first successful open places the mines (excluding the
// opened cell) and starts the stopwatch; only a direct open can be that
// triggering first move, a chord never places mines.
func (g *Game) TakeAction(action Action) (Status, error) {
	if g.status.Ended() {
		return g.status, ErrGameAlreadyEnded
	}
	if g.status == StatusPause {
		return StatusPause, nil
	}

	switch action.Kind {
	case ActionOpenCell:
		if g.status != StatusOn {
			if err := g.field.PopulateWithMines(&action.Pos); err != nil {
				return g.status, err
			}
			g.status = StatusOn
			g.stopwatch.Start()
		}
		g.field.OpenCell(action.Pos)

	case ActionOpenSurroundingCells:
		g.field.OpenSurroundingCells(action.Pos)

	case ActionOpenCellOrSurroundingCells:
		// An alias, re-entrant through TakeAction so error propagation
		// and status recomputation stay in one place.
		cell := g.field.CellAt(action.Pos)
		if cell == nil {
			break
		}
		if cell.IsOpen() {
			return g.TakeAction(Action{Kind: ActionOpenSurroundingCells, Pos: action.Pos})
		}
		return g.TakeAction(Action{Kind: ActionOpenCell, Pos: action.Pos})

	case ActionFlagCell:
		g.field.ToggleCellFlag(action.Pos)
	}

	g.updateStatus()
	return g.status, nil
}

// TogglePause flips between On and Pause, stopping or restarting the
// stopwatch. Any other status is a no-op. The board is never touched.
func (g *Game) TogglePause() {
	switch g.status {
	case StatusOn:
		g.status = StatusPause
		g.stopwatch.Stop()
	case StatusPause:
		g.status = StatusOn
		g.stopwatch.Start()
	}
}

// Time returns the elapsed play time in whole seconds.
func (g *Game) Time() uint64 {
	return uint64(g.stopwatch.Elapsed().Seconds())
}

// updateStatus derives the status from the field after a mutating action.
// Loss wins over victory when both would hold, and additionally reveals the
// mines the player missed.
func (g *Game) updateStatus() {
	switch {
	case g.field.OpenMinesExist():
		g.field.OpenMissedMines()
		g.status = StatusLost
		g.stopwatch.Stop()
	case g.field.AllNonMinesOpen():
		g.status = StatusWon
		g.stopwatch.Stop()
	}
}
