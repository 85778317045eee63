package manager

import (
	"gridsnake/game/entity"
	"gridsnake/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// Collides reports whether any cell of a is also a cell of b.
func (cm *CollisionManager) Collides(a, b entity.Entity) bool {
	return Intersects(a.Geometry(), b.Geometry())
}

// CollidesSelf reports whether e occupies the same cell twice.
func (cm *CollisionManager) CollidesSelf(e entity.Entity) bool {
	return HasDuplicate(e.Geometry())
}

// ValidateSpawnPosition checks that pos is on the grid and clear of obstacle.
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, obstacle []types.Point) bool {
	if !cm.grid.Contains(pos) {
		return false
	}
	return !Intersects([]types.Point{pos}, obstacle)
}

// FreeCells returns every grid cell not in obstacle, in row-major order.
func (cm *CollisionManager) FreeCells(obstacle []types.Point) []types.Point {
	occupied := makeSet(obstacle)
	free := make([]types.Point, 0, cm.grid.Cells())
	for y := 0; y < cm.grid.Height; y++ {
		for x := 0; x < cm.grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if _, ok := occupied[p]; !ok {
				free = append(free, p)
			}
		}
	}
	return free
}

// Intersects reports whether a and b share at least one cell.
func Intersects(a, b []types.Point) bool {
	// Index the longer slice and probe with the shorter one.
	if len(a) < len(b) {
		a, b = b, a
	}
	if len(b) == 0 {
		return false
	}
	if len(b) == 1 {
		for _, p := range a {
			if p == b[0] {
				return true
			}
		}
		return false
	}

	set := makeSet(a)
	for _, p := range b {
		if _, ok := set[p]; ok {
			return true
		}
	}
	return false
}

// HasDuplicate reports whether two distinct positions of cells hold the
// same point.
func HasDuplicate(cells []types.Point) bool {
	seen := make(map[types.Point]struct{}, len(cells))
	for _, p := range cells {
		if _, ok := seen[p]; ok {
			return true
		}
		seen[p] = struct{}{}
	}
	return false
}

func makeSet(cells []types.Point) map[types.Point]struct{} {
	set := make(map[types.Point]struct{}, len(cells))
	for _, p := range cells {
		set[p] = struct{}{}
	}
	return set
}
