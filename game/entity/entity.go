package entity

import "gridsnake/game/types"

// Tag identifies the kind of a game object.
type Tag int

const (
	SnakeTag Tag = iota
	FoodTag
)

func (t Tag) String() string {
	switch t {
	case SnakeTag:
		return "snake"
	case FoodTag:
		return "food"
	default:
		return "unknown"
	}
}

// DrawRequest asks a frontend to paint one cell.
type DrawRequest struct {
	Cell  types.Point
	Color types.Color
}

// Entity is implemented by *Snake and *Food only.
type Entity interface {
	// Geometry returns the occupied cells in a deterministic order.
	Geometry() []types.Point
	Tag() Tag
	DrawRequests() []DrawRequest
	entity()
}
