package ui

import "github.com/dmorhart/sweeper/internal/field"

// SlideViewport returns the new top-left corner of the visible board window
// after the cursor moved. The window slides just enough to keep the cursor
// inside it with one cell of context towards the nearest edge, and never
// exposes space beyond the field.
func SlideViewport(offset, cursor field.Position, rows, columns, viewRows, viewCols int) field.Position {
	return field.Position{
		Row: slideAxis(offset.Row, cursor.Row, rows, viewRows),
		Col: slideAxis(offset.Col, cursor.Col, columns, viewCols),
	}
}

func slideAxis(offset, cursor, total, visible int) int {
	if visible >= total {
		return 0
	}
	if cursor < offset+1 {
		offset = cursor - 1
	}
	if cursor > offset+visible-2 {
		offset = cursor - visible + 2
	}
	if offset < 0 {
		offset = 0
	}
	if offset > total-visible {
		offset = total - visible
	}
	return offset
}
