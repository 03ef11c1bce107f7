// Package app provides the terminal application: the configuration menu,
// the in-game screen and the mapping from key events to game actions.
package app

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/dmorhart/sweeper/internal/field"
	"github.com/dmorhart/sweeper/internal/game"
	"github.com/dmorhart/sweeper/internal/telemetry"
	"github.com/dmorhart/sweeper/internal/ui"
)

// Config holds the optional pre-selected game parameters. When all three
// are set the app skips the menu and starts playing immediately.
type Config struct {
	Rows    int
	Columns int
	Mines   int
}

// session is one game being played plus its screen-side state.
type session struct {
	game                 *game.Game
	cursor               field.Position
	offset               field.Position
	awaitingLeaveConfirm bool
}

// App drives the whole terminal application. At any moment it is either in
// the menu or in a game.
type App struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	tracer   trace.Tracer

	menu    Menu
	session *session // nil while in the menu
	running bool
}

// New creates the application and takes over the terminal.
func New(cfg Config) (*App, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	a := &App{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		tracer:   telemetry.Tracer("app"),
		menu:     NewMenu(cfg.Rows, cfg.Columns, cfg.Mines),
		running:  true,
	}

	if cfg.Rows > 0 && cfg.Columns > 0 && cfg.Mines > 0 {
		// A failed start falls back to the menu with the error shown.
		a.startGame(context.Background())
	}
	return a, nil
}

// Run executes the main application loop until the player quits.
func (a *App) Run(ctx context.Context) error {
	for a.running {
		a.render()
		a.handleEvent(ctx, a.screen.PollEvent())
	}

	a.screen.Close()
	return nil
}

// Close restores the terminal state.
func (a *App) Close() {
	if a.screen != nil {
		a.screen.Close()
	}
}

func (a *App) render() {
	if a.session == nil {
		a.renderer.RenderMenu(&ui.MenuView{
			Columns:  a.menu.Columns,
			Rows:     a.menu.Rows,
			Mines:    a.menu.Mines,
			Selected: a.menu.Selected,
			Err:      a.menu.Err,
		})
		return
	}

	s := a.session
	rows, columns, _ := s.game.Field().Size()
	viewRows, viewCols := a.renderer.BoardViewSize(rows, columns)
	s.offset = ui.SlideViewport(s.offset, s.cursor, rows, columns, viewRows, viewCols)

	a.renderer.RenderGame(&ui.GameView{
		Field:                s.game.Field(),
		Status:               s.game.Status(),
		Cursor:               s.cursor,
		Offset:               s.offset,
		Seconds:              s.game.Time(),
		AwaitingLeaveConfirm: s.awaitingLeaveConfirm,
	})
}

func (a *App) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		a.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		a.screen.Sync()
	}
}

func (a *App) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		a.running = false
		return

	case tcell.KeyUp:
		a.moveCursor(0, -1)
		return
	case tcell.KeyDown:
		a.moveCursor(0, 1)
		return
	case tcell.KeyLeft:
		a.moveCursor(-1, 0)
		return
	case tcell.KeyRight:
		a.moveCursor(1, 0)
		return

	case tcell.KeyEnter:
		a.performMainAction(ctx)
		return
	case tcell.KeyEscape:
		a.leave()
		return
	}

	if ev.Key() != tcell.KeyRune {
		return
	}

	switch ev.Rune() {
	case 'w', 'i':
		a.moveCursor(0, -1)
	case 's', 'k':
		a.moveCursor(0, 1)
	case 'a', 'j':
		a.moveCursor(-1, 0)
	case 'd', 'l':
		a.moveCursor(1, 0)
	case ' ':
		a.performMainAction(ctx)
	case 'f':
		a.performSecondaryAction()
	case 'p':
		a.pause()
	case 'q':
		a.leave()
	}
}

// moveCursor moves the selection: in the menu between items and values, in
// the game across the board (clamped to the field).
func (a *App) moveCursor(dx, dy int) {
	if a.session == nil {
		switch {
		case dy < 0:
			a.menu.SelectPrevious()
		case dy > 0:
			a.menu.SelectNext()
		default:
			a.menu.Adjust(dx)
		}
		return
	}

	s := a.session
	if s.game.Status() == game.StatusPause || s.game.Status().Ended() {
		return
	}

	rows, columns, _ := s.game.Field().Size()
	s.cursor = clampCursor(field.Position{Row: s.cursor.Row + dy, Col: s.cursor.Col + dx}, rows, columns)
}

func clampCursor(pos field.Position, rows, columns int) field.Position {
	if pos.Row < 0 {
		pos.Row = 0
	}
	if pos.Row > rows-1 {
		pos.Row = rows - 1
	}
	if pos.Col < 0 {
		pos.Col = 0
	}
	if pos.Col > columns-1 {
		pos.Col = columns - 1
	}
	return pos
}

// performMainAction is the enter/space handler: start a game from the menu,
// confirm a pending leave, restart after the end, or open at the cursor.
func (a *App) performMainAction(ctx context.Context) {
	if a.session == nil {
		a.startGame(ctx)
		return
	}

	s := a.session
	switch {
	case s.awaitingLeaveConfirm:
		a.leaveToMenu()
	case s.game.Status().Ended():
		a.startGame(ctx)
	default:
		statusBefore := s.game.Status()
		s.game.TakeAction(game.Action{
			Kind: game.ActionOpenCellOrSurroundingCells,
			Pos:  s.cursor,
		})
		a.recordGameEnd(ctx, statusBefore)
	}
}

// performSecondaryAction flags the cell at the cursor, or restores the
// selected menu value to its default.
func (a *App) performSecondaryAction() {
	if a.session == nil {
		a.menu.RestoreDefault()
		return
	}

	if a.session.game.Status() == game.StatusOn {
		a.session.game.TakeAction(game.Action{Kind: game.ActionFlagCell, Pos: a.session.cursor})
	}
}

func (a *App) pause() {
	if a.session == nil || a.session.awaitingLeaveConfirm {
		return
	}
	a.session.game.TogglePause()
}

// leave is the q/escape handler: quit from the menu, leave a finished game,
// or ask for (or cancel) the leave confirmation mid-game.
func (a *App) leave() {
	if a.session == nil {
		a.running = false
		return
	}

	if a.session.game.Status().Ended() {
		a.leaveToMenu()
		return
	}
	a.session.awaitingLeaveConfirm = !a.session.awaitingLeaveConfirm
}

// startGame creates a new session from the menu values (or the finished
// game's settings when restarting). Validation errors land in the menu.
func (a *App) startGame(ctx context.Context) {
	rows, columns, mines := a.menu.Rows, a.menu.Columns, a.menu.Mines
	if a.session != nil {
		f := a.session.game.Field()
		rows, columns, _ = f.Size()
		mines = f.MinesAmount()
	}

	g, err := game.New(rows, columns, mines)
	if err != nil {
		selected := a.menu.Selected
		a.menu = NewMenu(rows, columns, mines)
		a.menu.Selected = selected
		a.menu.Err = err
		a.session = nil
		return
	}

	_, span := a.tracer.Start(ctx, "game.new")
	span.SetAttributes(
		attribute.String("game.id", g.ID().String()),
		attribute.Int("game.rows", rows),
		attribute.Int("game.columns", columns),
		attribute.Int("game.mines", mines),
	)
	span.End()

	a.session = &session{game: g}
}

// leaveToMenu returns to the menu pre-filled with the left game's settings.
func (a *App) leaveToMenu() {
	f := a.session.game.Field()
	rows, columns, _ := f.Size()

	a.menu = NewMenu(rows, columns, f.MinesAmount())
	a.session = nil
}

// recordGameEnd emits one span when an action just finished the game.
func (a *App) recordGameEnd(ctx context.Context, statusBefore game.Status) {
	s := a.session
	if statusBefore.Ended() || !s.game.Status().Ended() {
		return
	}

	_, span := a.tracer.Start(ctx, "game.end")
	span.SetAttributes(
		attribute.String("game.id", s.game.ID().String()),
		attribute.Bool("game.won", s.game.Status().Won()),
		attribute.Int64("game.duration_s", int64(s.game.Time())),
		attribute.Int("game.flags", s.game.Field().FlaggedCellsAmount()),
	)
	span.End()
}
