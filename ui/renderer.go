package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"gridsnake/config"
	"gridsnake/game"
	"gridsnake/game/entity"
	"gridsnake/game/types"
)

// Window is the raylib frontend: a fixed-size window of square blocks.
type Window struct {
	cellSize   int32
	clearColor rl.Color
}

// NewWindow opens the game window. raylib has to stay on the calling
// goroutine, so the game loop must run there too.
func NewWindow(cfg config.Config) (*Window, error) {
	width, height := cfg.WindowSize()

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(width), int32(height), config.WindowTitle)
	if !rl.IsWindowReady() {
		return nil, fmt.Errorf("raylib: could not open a %dx%d window", width, height)
	}
	rl.SetExitKey(rl.KeyEscape)
	rl.SetTargetFPS(int32(cfg.FrameRate))

	return &Window{
		cellSize:   int32(cfg.BlockSize),
		clearColor: toRaylib(cfg.Colors.Clear),
	}, nil
}

// Poll drains raylib's key queue for this frame.
func (w *Window) Poll() game.Input {
	if rl.WindowShouldClose() {
		return game.Input{Quit: true}
	}

	var in game.Input
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if key == rl.KeyQ {
			in.Quit = true
			continue
		}
		if h, ok := windowKeys[key]; ok {
			in.Headings = append(in.Headings, h)
		}
	}
	in.Headings = game.DedupeHeadings(in.Headings)
	return in
}

func (w *Window) Draw(requests []entity.DrawRequest) {
	rl.BeginDrawing()
	rl.ClearBackground(w.clearColor)
	for _, req := range requests {
		rl.DrawRectangle(
			int32(req.Cell.X)*w.cellSize,
			int32(req.Cell.Y)*w.cellSize,
			w.cellSize, w.cellSize, toRaylib(req.Color))
	}
	// EndDrawing also waits out the rest of the frame budget.
	rl.EndDrawing()
}

func (w *Window) Close() error {
	rl.CloseWindow()
	return nil
}

var windowKeys = map[int32]types.Heading{
	rl.KeyUp:    types.Up,
	rl.KeyDown:  types.Down,
	rl.KeyLeft:  types.Left,
	rl.KeyRight: types.Right,
	rl.KeyW:     types.Up,
	rl.KeyS:     types.Down,
	rl.KeyA:     types.Left,
	rl.KeyD:     types.Right,
}

func toRaylib(c types.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
