package entity

import "gridsnake/game/types"

type Snake struct {
	Head      types.Point
	Body      []types.Point // tail first, neck last
	Direction types.Heading
	HeadColor types.Color
	BodyColor types.Color

	grid     types.Grid
	growNext bool
}

// NewSnake places the head at start and lays length body cells out behind
// it, against the heading, so the first Advance pushes start onto the body.
// A negative length is treated as zero.
func NewSnake(grid types.Grid, start types.Point, heading types.Heading, length int, head, body types.Color) *Snake {
	if length < 0 {
		length = 0
	}
	s := &Snake{
		Head:      grid.WrapPoint(start),
		Body:      make([]types.Point, 0, length+1),
		Direction: heading,
		HeadColor: head,
		BodyColor: body,
		grid:      grid,
	}

	back := heading.Opposite().Delta()
	for i := length; i >= 1; i-- {
		cell := types.Point{X: start.X + back.X*i, Y: start.Y + back.Y*i}
		s.Body = append(s.Body, grid.WrapPoint(cell))
	}
	return s
}

func (s *Snake) entity() {}

func (s *Snake) Tag() Tag { return SnakeTag }

// Geometry is the head followed by the body in stored order.
func (s *Snake) Geometry() []types.Point {
	cells := make([]types.Point, 0, len(s.Body)+1)
	cells = append(cells, s.Head)
	return append(cells, s.Body...)
}

func (s *Snake) DrawRequests() []DrawRequest {
	reqs := make([]DrawRequest, 0, len(s.Body)+1)
	reqs = append(reqs, DrawRequest{Cell: s.Head, Color: s.HeadColor})
	for _, p := range s.Body {
		reqs = append(reqs, DrawRequest{Cell: p, Color: s.BodyColor})
	}
	return reqs
}

// TrySetHeading applies h unless it would reverse the snake onto its neck.
// It reports whether the heading was applied.
func (s *Snake) TrySetHeading(h types.Heading) bool {
	if h == s.Direction.Opposite() {
		return false
	}
	s.Direction = h
	return true
}

// PrepareGrowth makes the next Advance keep the tail. Calling it more than
// once before that Advance still adds a single segment.
func (s *Snake) PrepareGrowth() {
	s.growNext = true
}

// GrowPending reports whether the next Advance will grow the snake.
func (s *Snake) GrowPending() bool {
	return s.growNext
}

// Advance moves the snake one cell along its heading.
func (s *Snake) Advance() {
	s.Body = append(s.Body, s.Head)
	s.Head = s.Head.Add(s.Direction.Delta())

	if s.growNext {
		s.growNext = false
	} else {
		s.RemoveTail()
	}

	s.Head = s.grid.WrapPoint(s.Head)
}

func (s *Snake) RemoveTail() {
	if len(s.Body) > 0 {
		s.Body = s.Body[1:]
	}
}

// Len counts the head and every body segment.
func (s *Snake) Len() int {
	return len(s.Body) + 1
}
