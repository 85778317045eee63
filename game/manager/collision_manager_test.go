package manager

import (
	"testing"

	"golang.org/x/exp/rand"

	"gridsnake/game/entity"
	"gridsnake/game/types"
)

var testGrid = types.Grid{Width: 20, Height: 20}

func TestIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b []types.Point
		want bool
	}{
		{"both empty", nil, nil, false},
		{"one empty", []types.Point{{X: 1, Y: 1}}, nil, false},
		{"single equal", []types.Point{{X: 1, Y: 1}}, []types.Point{{X: 1, Y: 1}}, true},
		{"single different", []types.Point{{X: 1, Y: 1}}, []types.Point{{X: 1, Y: 2}}, false},
		{"overlap at end", []types.Point{{X: 0}, {X: 1}, {X: 2}}, []types.Point{{X: 5}, {X: 2}}, true},
		{"disjoint", []types.Point{{X: 0}, {X: 1}, {X: 2}}, []types.Point{{Y: 1}, {Y: 2}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Intersects(tt.a, tt.b); got != tt.want {
				t.Errorf("Intersects(a, b) = %v, want %v", got, tt.want)
			}
			if got := Intersects(tt.b, tt.a); got != tt.want {
				t.Errorf("Intersects(b, a) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIntersectsSymmetricRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	randomCells := func() []types.Point {
		cells := make([]types.Point, rng.Intn(12))
		for i := range cells {
			cells[i] = types.Point{X: rng.Intn(6), Y: rng.Intn(6)}
		}
		return cells
	}
	for i := 0; i < 500; i++ {
		a, b := randomCells(), randomCells()
		if Intersects(a, b) != Intersects(b, a) {
			t.Fatalf("asymmetric result for %v and %v", a, b)
		}
	}
}

func TestHasDuplicate(t *testing.T) {
	if HasDuplicate(nil) {
		t.Error("empty geometry reported a duplicate")
	}
	if HasDuplicate([]types.Point{{X: 3, Y: 3}}) {
		t.Error("a single cell must not collide with itself")
	}
	if HasDuplicate([]types.Point{{X: 0}, {X: 1}, {X: 2}}) {
		t.Error("distinct cells reported a duplicate")
	}
	if !HasDuplicate([]types.Point{{X: 0}, {X: 1}, {X: 0}}) {
		t.Error("repeated cell not detected")
	}
}

func TestCollisionManagerEntities(t *testing.T) {
	cm := NewCollisionManager(testGrid)
	snake := entity.NewSnake(testGrid, types.Point{X: 5, Y: 5}, types.Right, 4, types.Color{}, types.Color{})
	food := entity.NewFood(types.Point{X: 4, Y: 4}, types.Color{})

	if cm.CollidesSelf(snake) {
		t.Error("fresh snake collides with itself")
	}
	if cm.Collides(snake, food) || cm.Collides(food, snake) {
		t.Error("food off the snake reported as a collision")
	}

	food.Place(types.Point{X: 3, Y: 5})
	if !cm.Collides(snake, food) || !cm.Collides(food, snake) {
		t.Error("food on the body not detected")
	}

	// Curl the snake into itself: right, down, left, up.
	snake.PrepareGrowth()
	snake.Advance()
	for _, h := range []types.Heading{types.Down, types.Left, types.Up} {
		snake.TrySetHeading(h)
		snake.Advance()
	}
	if !cm.CollidesSelf(snake) {
		t.Errorf("snake curled onto itself not detected: %v", snake.Geometry())
	}
}

func TestFreeCells(t *testing.T) {
	grid := types.Grid{Width: 3, Height: 2}
	cm := NewCollisionManager(grid)

	free := cm.FreeCells([]types.Point{{X: 0, Y: 0}, {X: 2, Y: 1}, {X: 9, Y: 9}})
	want := []types.Point{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}
	if len(free) != len(want) {
		t.Fatalf("FreeCells = %v, want %v", free, want)
	}
	for i := range want {
		if free[i] != want[i] {
			t.Errorf("FreeCells[%d] = %v, want %v", i, free[i], want[i])
		}
	}

	if !cm.ValidateSpawnPosition(types.Point{X: 1, Y: 1}, nil) {
		t.Error("empty cell rejected")
	}
	if cm.ValidateSpawnPosition(types.Point{X: 3, Y: 0}, nil) {
		t.Error("off-grid cell accepted")
	}
}
