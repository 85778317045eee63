package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"gridsnake/game/types"
)

// Game defaults
const (
	GridColumns  = 20
	GridRows     = 20
	BlockSize    = 40 // pixels per cell
	FrameRate    = 60
	MaxFrameRate = 1000
	MoveInterval = time.Second / 25
	SnakeLength  = 7
	FoodAttempts = 64
	WindowTitle  = "Snake"
)

// Start positions
var (
	SnakeStart = types.Point{X: 0, Y: 0}
	FoodStart  = types.Point{X: 4, Y: 4}
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

type Palette struct {
	Clear types.Color `yaml:"clear"`
	Food  types.Color `yaml:"food"`
	Head  types.Color `yaml:"head"`
	Body  types.Color `yaml:"body"`
}

type Config struct {
	Columns      int           `yaml:"columns"`
	Rows         int           `yaml:"rows"`
	BlockSize    int           `yaml:"block_size"`
	FrameRate    int           `yaml:"frame_rate"`
	MoveInterval time.Duration `yaml:"move_interval"`
	SnakeLength  int           `yaml:"snake_length"`
	SnakeStart   types.Point   `yaml:"snake_start"`
	SnakeHeading string        `yaml:"snake_heading"`
	FoodStart    types.Point   `yaml:"food_start"`
	FoodAttempts int           `yaml:"food_attempts"`
	Seed         uint64        `yaml:"seed"` // 0 seeds from the clock
	Colors       Palette       `yaml:"colors"`
}

func Default() Config {
	return Config{
		Columns:      GridColumns,
		Rows:         GridRows,
		BlockSize:    BlockSize,
		FrameRate:    FrameRate,
		MoveInterval: MoveInterval,
		SnakeLength:  SnakeLength,
		SnakeStart:   SnakeStart,
		SnakeHeading: types.Right.String(),
		FoodStart:    FoodStart,
		FoodAttempts: FoodAttempts,
		Colors: Palette{
			Clear: types.Color{R: 0, G: 0, B: 0, A: 255},
			Food:  types.Color{R: 255, G: 0, B: 0, A: 255},
			Head:  types.Color{R: 125, G: 0, B: 175, A: 255},
			Body:  types.Color{R: 0, G: 0, B: 255, A: 255},
		},
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file
// keep their default value.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	grid := types.Grid{Width: c.Columns, Height: c.Rows}
	switch {
	case c.Columns <= 0 || c.Rows <= 0:
		return fmt.Errorf("%w: grid %dx%d", ErrInvalid, c.Columns, c.Rows)
	case c.BlockSize <= 0:
		return fmt.Errorf("%w: block size %d", ErrInvalid, c.BlockSize)
	case c.FrameRate <= 0 || c.FrameRate > MaxFrameRate:
		return fmt.Errorf("%w: frame rate %d not in 1..%d", ErrInvalid, c.FrameRate, MaxFrameRate)
	case c.MoveInterval <= 0:
		return fmt.Errorf("%w: move interval %v", ErrInvalid, c.MoveInterval)
	case !grid.Contains(c.SnakeStart):
		return fmt.Errorf("%w: snake start %v outside the grid", ErrInvalid, c.SnakeStart)
	case !grid.Contains(c.FoodStart):
		return fmt.Errorf("%w: food start %v outside the grid", ErrInvalid, c.FoodStart)
	}

	heading, err := types.ParseHeading(c.SnakeHeading)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	// The body is laid out on the snake's own row or column; it must not
	// wrap around onto the head.
	span := c.Columns
	if heading == types.Up || heading == types.Down {
		span = c.Rows
	}
	if c.SnakeLength < 0 || c.SnakeLength >= span {
		return fmt.Errorf("%w: snake length %d does not fit a line of %d cells", ErrInvalid, c.SnakeLength, span)
	}
	return nil
}

// WindowSize is the pixel size of the playfield.
func (c Config) WindowSize() (width, height int) {
	return c.BlockSize * c.Columns, c.BlockSize * c.Rows
}
