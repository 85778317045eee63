// Package terminal plays the game in a terminal through tcell.
package terminal

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/golang/glog"

	"gridsnake/config"
	"gridsnake/game"
	"gridsnake/game/entity"
	"gridsnake/game/types"
)

// blockWidth is the number of terminal columns per grid cell; two columns
// make a roughly square block.
const blockWidth = 2

// Terminal is the tcell frontend. Cells are drawn inside a border, so the
// terminal needs 2*columns+2 columns and rows+2 rows.
type Terminal struct {
	screen     tcell.Screen
	events     chan tcell.Event
	quit       chan struct{}
	grid       types.Grid
	background tcell.Style
	frame      *time.Ticker
}

// New takes over the terminal. Close must be called to restore it.
func New(cfg config.Config) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("tcell: %w", err)
	}
	return newTerminal(screen, cfg)
}

func newTerminal(screen tcell.Screen, cfg config.Config) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("tcell init: %w", err)
	}
	screen.HideCursor()

	t := &Terminal{
		screen:     screen,
		events:     make(chan tcell.Event, 64),
		quit:       make(chan struct{}),
		grid:       types.Grid{Width: cfg.Columns, Height: cfg.Rows},
		background: tcell.StyleDefault.Background(toTcell(cfg.Colors.Clear)),
		frame:      time.NewTicker(time.Second / time.Duration(cfg.FrameRate)),
	}
	go screen.ChannelEvents(t.events, t.quit)

	if w, h := screen.Size(); w < blockWidth*t.grid.Width+2 || h < t.grid.Height+2 {
		glog.Warningf("terminal is %dx%d, the %dx%d grid will be clipped", w, h, t.grid.Width, t.grid.Height)
	}
	return t, nil
}

// Poll drains the pending tcell events without blocking.
func (t *Terminal) Poll() game.Input {
	var in game.Input
	for {
		select {
		case ev, ok := <-t.events:
			if !ok {
				in.Quit = true
				return in
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuitKey(ev) {
					in.Quit = true
				} else if h, ok := terminalHeading(ev); ok {
					in.Headings = append(in.Headings, h)
				}
			case *tcell.EventResize:
				t.screen.Sync()
			case *tcell.EventError:
				glog.Errorf("tcell error: %v", ev)
				in.Quit = true
			}
		default:
			in.Headings = game.DedupeHeadings(in.Headings)
			return in
		}
	}
}

// Draw paints one frame and then waits for the next frame tick.
func (t *Terminal) Draw(requests []entity.DrawRequest) {
	t.screen.Clear()
	t.drawBorder()
	for y := 0; y < t.grid.Height; y++ {
		for x := 0; x < t.grid.Width; x++ {
			t.fill(types.Point{X: x, Y: y}, t.background)
		}
	}
	for _, req := range requests {
		t.fill(req.Cell, tcell.StyleDefault.Background(toTcell(req.Color)))
	}
	t.screen.Show()
	<-t.frame.C
}

func (t *Terminal) Close() error {
	t.frame.Stop()
	close(t.quit)
	t.screen.Fini()
	return nil
}

func (t *Terminal) fill(p types.Point, style tcell.Style) {
	x, y := 1+p.X*blockWidth, 1+p.Y
	for i := 0; i < blockWidth; i++ {
		t.screen.SetContent(x+i, y, ' ', nil, style)
	}
}

func (t *Terminal) drawBorder() {
	style := tcell.StyleDefault
	right, bottom := 1+t.grid.Width*blockWidth, 1+t.grid.Height
	t.screen.SetContent(0, 0, '+', nil, style)
	t.screen.SetContent(right, 0, '+', nil, style)
	t.screen.SetContent(0, bottom, '+', nil, style)
	t.screen.SetContent(right, bottom, '+', nil, style)
	for x := 1; x < right; x++ {
		t.screen.SetContent(x, 0, '-', nil, style)
		t.screen.SetContent(x, bottom, '-', nil, style)
	}
	for y := 1; y < bottom; y++ {
		t.screen.SetContent(0, y, '|', nil, style)
		t.screen.SetContent(right, y, '|', nil, style)
	}
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

func terminalHeading(ev *tcell.EventKey) (types.Heading, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return types.Up, true
	case tcell.KeyDown:
		return types.Down, true
	case tcell.KeyLeft:
		return types.Left, true
	case tcell.KeyRight:
		return types.Right, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return types.Up, true
		case 's', 'S':
			return types.Down, true
		case 'a', 'A':
			return types.Left, true
		case 'd', 'D':
			return types.Right, true
		}
	}
	return 0, false
}

func toTcell(c types.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
