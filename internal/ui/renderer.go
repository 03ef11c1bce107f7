package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/dmorhart/sweeper/internal/field"
	"github.com/dmorhart/sweeper/internal/game"
)

const (
	runeCovered = '▒'
	runeFlag    = '⚑'
	runeMine    = '✱'
	runeWrong   = '✗'

	// Each board column takes two terminal cells to keep the grid
	// roughly square.
	cellWidth = 2

	boardTop  = 2
	boardLeft = 2
)

// MenuView is the state the menu screen renders from.
type MenuView struct {
	Columns  int
	Rows     int
	Mines    int
	Selected int // index into the columns/rows/mines order
	Err      error
}

// GameView is the state the in-game screen renders from.
type GameView struct {
	Field                *field.Field
	Status               game.Status
	Cursor               field.Position
	Offset               field.Position // top-left corner of the visible window
	Seconds              uint64
	AwaitingLeaveConfirm bool
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// RenderMenu draws the configuration menu.
func (r *Renderer) RenderMenu(m *MenuView) {
	r.screen.Clear()

	r.drawText(boardLeft, 1, "sweeper", tcell.StyleDefault.Bold(true))

	lines := []string{
		fmt.Sprintf("columns  %3d", m.Columns),
		fmt.Sprintf("rows     %3d", m.Rows),
		fmt.Sprintf("mines    %3d", m.Mines),
	}
	for i, line := range lines {
		style := tcell.StyleDefault
		if i == m.Selected {
			style = style.Reverse(true)
		}
		r.drawText(boardLeft, 3+i, line, style)
	}

	if m.Err != nil {
		r.drawText(boardLeft, 7, m.Err.Error(), tcell.StyleDefault.Foreground(tcell.ColorRed))
	}

	r.drawText(boardLeft, 9,
		"arrows adjust · enter start · f default · q quit",
		tcell.StyleDefault.Foreground(tcell.ColorGray))

	r.screen.Show()
}

// RenderGame draws the board, the HUD line above it and the help line below.
func (r *Renderer) RenderGame(v *GameView) {
	r.screen.Clear()

	rows, columns, _ := v.Field.Size()
	viewRows, viewCols := r.BoardViewSize(rows, columns)

	r.drawHUD(v)

	for vr := 0; vr < viewRows; vr++ {
		for vc := 0; vc < viewCols; vc++ {
			pos := field.Position{Row: v.Offset.Row + vr, Col: v.Offset.Col + vc}
			cell := v.Field.CellAt(pos)
			if cell == nil {
				continue
			}

			glyph, style := r.cellGlyph(cell, v.Status)
			if pos == v.Cursor && !v.Status.Ended() && v.Status != game.StatusPause {
				style = style.Reverse(true)
			}
			r.screen.SetContent(boardLeft+vc*cellWidth, boardTop+vr, glyph, style)
		}
	}

	r.drawStatusLine(v, boardTop+viewRows+1)
	r.screen.Show()
}

// BoardViewSize returns how many board rows and columns fit on screen,
// capped at the field's dimensions.
func (r *Renderer) BoardViewSize(rows, columns int) (viewRows, viewCols int) {
	width, height := r.screen.Size()

	viewRows = height - boardTop - 2
	if viewRows > rows {
		viewRows = rows
	}
	if viewRows < 1 {
		viewRows = 1
	}

	viewCols = (width - boardLeft) / cellWidth
	if viewCols > columns {
		viewCols = columns
	}
	if viewCols < 1 {
		viewCols = 1
	}
	return viewRows, viewCols
}

// cellGlyph maps one cell to its rune and style. A paused game hides the
// whole board behind covered cells.
func (r *Renderer) cellGlyph(cell *field.Cell, status game.Status) (rune, tcell.Style) {
	if status == game.StatusPause {
		return runeCovered, tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	}

	if cell.IsFlagged() {
		// On a loss, a flag on a safe cell was a wrong guess.
		if status == game.StatusLost && !cell.IsMined() {
			return runeWrong, tcell.StyleDefault.Foreground(tcell.ColorRed)
		}
		return runeFlag, tcell.StyleDefault.Foreground(tcell.ColorYellow)
	}

	if !cell.IsOpen() {
		return runeCovered, tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	}

	if cell.IsMined() {
		return runeMine, tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	}

	n, _ := cell.MinesAround()
	if n == 0 {
		return ' ', tcell.StyleDefault
	}
	return rune('0' + n), tcell.StyleDefault.Foreground(digitColor(n))
}

// digitColor returns the classic Minesweeper palette for neighbour counts.
func digitColor(n int) tcell.Color {
	switch n {
	case 1:
		return tcell.ColorBlue
	case 2:
		return tcell.ColorGreen
	case 3:
		return tcell.ColorRed
	case 4:
		return tcell.ColorNavy
	case 5:
		return tcell.ColorMaroon
	case 6:
		return tcell.ColorTeal
	case 7:
		return tcell.ColorWhite
	default:
		return tcell.ColorGray
	}
}

func (r *Renderer) drawHUD(v *GameView) {
	minesLeft := v.Field.MinesAmount() - v.Field.FlaggedCellsAmount()
	hud := fmt.Sprintf("mines %3d   time %4ds", minesLeft, v.Seconds)
	r.drawText(boardLeft, 0, hud, tcell.StyleDefault.Bold(true))
}

func (r *Renderer) drawStatusLine(v *GameView, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)

	switch {
	case v.AwaitingLeaveConfirm:
		r.drawText(boardLeft, y, "leave the game? enter confirm · q cancel",
			tcell.StyleDefault.Foreground(tcell.ColorYellow))
	case v.Status == game.StatusPause:
		r.drawText(boardLeft, y, "paused · p resume", tcell.StyleDefault.Foreground(tcell.ColorYellow))
	case v.Status == game.StatusWon:
		r.drawText(boardLeft, y, "you won! enter restart · q menu",
			tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true))
	case v.Status == game.StatusLost:
		r.drawText(boardLeft, y, "boom. enter restart · q menu",
			tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true))
	default:
		r.drawText(boardLeft, y, "enter open · f flag · p pause · q leave", style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range text {
		r.screen.SetContent(x+i, y, ch, style)
	}
}
