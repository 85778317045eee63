package manager

import (
	"errors"

	"github.com/golang/glog"
	"golang.org/x/exp/rand"

	"gridsnake/game/entity"
	"gridsnake/game/types"
)

// DefaultFoodAttempts bounds the random sampling before falling back to
// the list of free cells.
const DefaultFoodAttempts = 64

// ErrNoFreeCell is returned when the obstacle covers the whole grid.
var ErrNoFreeCell = errors.New("no free cell left on the grid")

type FoodManager struct {
	grid         types.Grid
	rng          *rand.Rand
	collisionMgr *CollisionManager
	maxAttempts  int
}

func NewFoodManager(grid types.Grid, collisionMgr *CollisionManager, rng *rand.Rand, maxAttempts int) *FoodManager {
	if maxAttempts <= 0 {
		maxAttempts = DefaultFoodAttempts
	}
	return &FoodManager{
		grid:         grid,
		rng:          rng,
		collisionMgr: collisionMgr,
		maxAttempts:  maxAttempts,
	}
}

// RelocateAvoiding moves food to a uniformly random cell not covered by
// obstacle. On ErrNoFreeCell the food is left where it was.
func (fm *FoodManager) RelocateAvoiding(food *entity.Food, obstacle entity.Entity) error {
	pos, err := fm.GenerateFood(obstacle.Geometry())
	if err != nil {
		return err
	}
	food.Place(pos)
	glog.V(1).Infof("food relocated to %v", pos)
	return nil
}

// GenerateFood picks a free cell: random probes first, then a draw from
// the complement of obstacle when the grid is crowded.
func (fm *FoodManager) GenerateFood(obstacle []types.Point) (types.Point, error) {
	for i := 0; i < fm.maxAttempts; i++ {
		food := types.Point{
			X: fm.rng.Intn(fm.grid.Width),
			Y: fm.rng.Intn(fm.grid.Height),
		}
		if fm.collisionMgr.ValidateSpawnPosition(food, obstacle) {
			return food, nil
		}
	}

	free := fm.collisionMgr.FreeCells(obstacle)
	if len(free) == 0 {
		return types.Point{}, ErrNoFreeCell
	}
	glog.V(1).Infof("random food probes exhausted after %d attempts, %d free cells", fm.maxAttempts, len(free))
	return free[fm.rng.Intn(len(free))], nil
}
