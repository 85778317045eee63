package entity

import "gridsnake/game/types"

type Food struct {
	Color    types.Color
	position types.Point
}

func NewFood(start types.Point, color types.Color) *Food {
	return &Food{position: start, Color: color}
}

func (f *Food) entity() {}

func (f *Food) Tag() Tag { return FoodTag }

func (f *Food) Geometry() []types.Point {
	return []types.Point{f.position}
}

func (f *Food) DrawRequests() []DrawRequest {
	return []DrawRequest{{Cell: f.position, Color: f.Color}}
}

func (f *Food) Position() types.Point {
	return f.position
}

// Place moves the food without any collision check.
func (f *Food) Place(p types.Point) {
	f.position = p
}
