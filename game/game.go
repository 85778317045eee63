package game

import (
	"fmt"
	"time"

	"github.com/golang/glog"
	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"gridsnake/config"
	"gridsnake/game/entity"
	"gridsnake/game/manager"
	"gridsnake/game/types"
)

// Outcome is the state of the game after an update.
type Outcome int

const (
	Running Outcome = iota
	Quit
	Collided
	BoardFull
)

func (o Outcome) String() string {
	switch o {
	case Running:
		return "running"
	case Quit:
		return "quit"
	case Collided:
		return "collided"
	case BoardFull:
		return "board full"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

type Game struct {
	UUID  string
	Grid  types.Grid
	Steps int // movement steps taken
	Eaten int

	snake        *entity.Snake
	food         *entity.Food
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	clock        Clock
	moveInterval time.Duration
}

// NewGame builds the starting state described by cfg. rng drives food
// placement; pass a seeded source for reproducible games.
func NewGame(cfg config.Config, rng *rand.Rand) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	heading, err := types.ParseHeading(cfg.SnakeHeading)
	if err != nil {
		return nil, err
	}

	grid := types.Grid{Width: cfg.Columns, Height: cfg.Rows}
	collisionMgr := manager.NewCollisionManager(grid)

	g := &Game{
		UUID:         uuid.New().String(),
		Grid:         grid,
		snake:        entity.NewSnake(grid, cfg.SnakeStart, heading, cfg.SnakeLength, cfg.Colors.Head, cfg.Colors.Body),
		food:         entity.NewFood(cfg.FoodStart, cfg.Colors.Food),
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(grid, collisionMgr, rng, cfg.FoodAttempts),
		moveInterval: cfg.MoveInterval,
	}
	if collisionMgr.Collides(g.snake, g.food) {
		return nil, fmt.Errorf("%w: food start %v lies on the starting snake", config.ErrInvalid, cfg.FoodStart)
	}
	return g, nil
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

func (g *Game) GetFood() *entity.Food {
	return g.food
}

func (g *Game) Clock() *Clock {
	return &g.clock
}

// HandleInput applies heading requests in arrival order. Reversals are
// dropped by the snake, so the last valid request wins.
func (g *Game) HandleInput(requests []types.Heading) {
	for _, h := range requests {
		if !g.snake.TrySetHeading(h) {
			glog.V(2).Infof("ignored reverse heading %v", h)
		}
	}
}

// Update resolves collisions and advances the snake once the movement
// clock has run past the movement interval.
func (g *Game) Update(delta time.Duration) Outcome {
	if g.collisionMgr.CollidesSelf(g.snake) {
		return Collided
	}

	if g.collisionMgr.Collides(g.snake, g.food) {
		g.Eaten++
		g.snake.PrepareGrowth()
		if err := g.foodMgr.RelocateAvoiding(g.food, g.snake); err != nil {
			glog.Infof("game %s: %v", g.UUID, err)
			return BoardFull
		}
	}

	g.clock.Add(delta)
	if g.clock.Elapsed() > g.moveInterval {
		g.snake.Advance()
		g.clock.Reset()
		g.Steps++
		glog.V(2).Infof("step %d: head %v heading %v length %d", g.Steps, g.snake.Head, g.snake.Direction, g.snake.Len())
	}
	return Running
}

// DrawRequests lists food first, then the snake head and body.
func (g *Game) DrawRequests() []entity.DrawRequest {
	reqs := make([]entity.DrawRequest, 0, g.snake.Len()+1)
	for _, e := range []entity.Entity{g.food, g.snake} {
		reqs = append(reqs, e.DrawRequests()...)
	}
	return reqs
}
