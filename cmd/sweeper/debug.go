package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/dmorhart/sweeper/internal/field"
	"github.com/dmorhart/sweeper/internal/game"
)

// Debug-mode defaults, small enough to eyeball on stdout.
const (
	debugRows    = 5
	debugColumns = 5
	debugMines   = 5
)

// runDebug plays a game over stdin/stdout: read an action and a cell
// position per line, apply it, print the board, until the game ends.
func runDebug(rows, columns, mines int) error {
	if rows <= 0 {
		rows = debugRows
	}
	if columns <= 0 {
		columns = debugColumns
	}
	if mines <= 0 {
		mines = debugMines
	}

	g, err := game.New(rows, columns, mines)
	if err != nil {
		return err
	}

	printField(g)
	fmt.Println("actions: o row,col open · s row,col open surrounding · f row,col flag")

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		action, ok := parseAction(scanner.Text())
		if !ok {
			fmt.Println("incorrect input, try again (e.g. `o 3,5`)")
			continue
		}

		status, err := g.TakeAction(action)
		if err != nil {
			return err
		}

		printField(g)
		if status.Ended() {
			if status.Won() {
				color.Green("VICTORY (%ds)", g.Time())
			} else {
				color.Red("LOSS (%ds)", g.Time())
			}
			return nil
		}
	}
	return scanner.Err()
}

// parseAction reads lines like `f 3,5`: flag the cell on row 3, column 5.
func parseAction(line string) (game.Action, bool) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return game.Action{}, false
	}

	var row, col int
	if _, err := fmt.Sscanf(parts[1], "%d,%d", &row, &col); err != nil {
		return game.Action{}, false
	}
	pos := field.Position{Row: row, Col: col}

	switch parts[0] {
	case "o":
		return game.Action{Kind: game.ActionOpenCell, Pos: pos}, true
	case "s":
		return game.Action{Kind: game.ActionOpenSurroundingCells, Pos: pos}, true
	case "f":
		return game.Action{Kind: game.ActionFlagCell, Pos: pos}, true
	default:
		return game.Action{}, false
	}
}

// printField writes the player-visible board to stdout, one coloured glyph
// per cell.
func printField(g *game.Game) {
	f := g.Field()
	rows, columns, _ := f.Size()

	covered := color.New(color.FgHiBlack)
	flagged := color.New(color.FgYellow)
	mine := color.New(color.FgRed, color.Bold)
	digits := []*color.Color{
		color.New(color.FgBlue),
		color.New(color.FgGreen),
		color.New(color.FgRed),
		color.New(color.FgHiBlue),
		color.New(color.FgHiRed),
		color.New(color.FgCyan),
		color.New(color.FgWhite),
		color.New(color.FgHiBlack),
	}

	fmt.Print("    ")
	for c := 0; c < columns; c++ {
		fmt.Printf("%-2d", c)
	}
	fmt.Println()

	for r := 0; r < rows; r++ {
		fmt.Printf("%3d ", r)
		for c := 0; c < columns; c++ {
			cell := f.CellAt(field.Position{Row: r, Col: c})

			switch {
			case cell.IsFlagged():
				flagged.Print("⚑ ")
			case !cell.IsOpen():
				covered.Print("■ ")
			case cell.IsMined():
				mine.Print("✱ ")
			default:
				n, _ := cell.MinesAround()
				if n == 0 {
					fmt.Print("  ")
				} else {
					digits[n-1].Printf("%d ", n)
				}
			}
		}
		fmt.Println()
	}
}
