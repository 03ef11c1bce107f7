package app

// Default game configuration offered by the menu.
const (
	DefaultRows    = 16
	DefaultColumns = 16
	DefaultMines   = 40
)

// Menu item indices, in display order.
const (
	menuColumns = iota
	menuRows
	menuMines
	menuItemsAmount
)

// Menu holds the configuration screen's state: the three numbers a new game
// needs, which of them is selected, and the last validation error.
type Menu struct {
	Columns  int
	Rows     int
	Mines    int
	Selected int
	Err      error
}

// NewMenu creates a menu pre-filled with the given values; zero values fall
// back to the defaults. Returning players get their previous game's
// settings back this way.
func NewMenu(rows, columns, mines int) Menu {
	if rows <= 0 {
		rows = DefaultRows
	}
	if columns <= 0 {
		columns = DefaultColumns
	}
	if mines <= 0 {
		mines = DefaultMines
	}
	return Menu{Columns: columns, Rows: rows, Mines: mines}
}

// SelectPrevious moves the selection one item up, stopping at the first.
func (m *Menu) SelectPrevious() {
	if m.Selected > 0 {
		m.Selected--
	}
}

// SelectNext moves the selection one item down, stopping at the last.
func (m *Menu) SelectNext() {
	if m.Selected < menuItemsAmount-1 {
		m.Selected++
	}
}

// Adjust changes the selected value by delta, never going below zero.
// Validation happens when the game is created, not here.
func (m *Menu) Adjust(delta int) {
	target := m.selectedValue()
	*target += delta
	if *target < 0 {
		*target = 0
	}
}

// RestoreDefault resets the selected value to its default.
func (m *Menu) RestoreDefault() {
	switch m.Selected {
	case menuColumns:
		m.Columns = DefaultColumns
	case menuRows:
		m.Rows = DefaultRows
	case menuMines:
		m.Mines = DefaultMines
	}
}

func (m *Menu) selectedValue() *int {
	switch m.Selected {
	case menuColumns:
		return &m.Columns
	case menuRows:
		return &m.Rows
	default:
		return &m.Mines
	}
}
