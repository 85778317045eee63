package types

import (
	"fmt"
	"strings"
)

// Heading is the axis-aligned direction the snake steps toward next.
type Heading int

const (
	Up Heading = iota
	Down
	Left
	Right
)

// Headings lists every heading, in declaration order.
var Headings = [...]Heading{Up, Down, Left, Right}

// Delta converts a Heading into a one-cell displacement.
// Rows grow downward, so Up decrements Y.
func (h Heading) Delta() Point {
	switch h {
	case Up:
		return Point{X: 0, Y: -1}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	case Right:
		return Point{X: 1, Y: 0}
	default:
		return Point{}
	}
}

// Opposite returns the 180° reverse of h.
func (h Heading) Opposite() Heading {
	switch h {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

func (h Heading) String() string {
	switch h {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Heading(%d)", int(h))
	}
}

// ParseHeading is the inverse of String, case-insensitive.
func ParseHeading(s string) (Heading, error) {
	for _, h := range Headings {
		if strings.EqualFold(s, h.String()) {
			return h, nil
		}
	}
	return 0, fmt.Errorf("unknown heading %q", s)
}
