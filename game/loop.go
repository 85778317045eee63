package game

import (
	"github.com/golang/glog"

	"gridsnake/game/entity"
	"gridsnake/game/types"
)

// Input is one poll batch from a frontend.
type Input struct {
	Headings []types.Heading
	Quit     bool
}

// Frontend is the platform boundary: it polls the keyboard and paints
// draw requests. Draw clears, paints in order and presents a frame.
type Frontend interface {
	Poll() Input
	Draw(requests []entity.DrawRequest)
}

// Run drives the game until it ends and returns how it ended. Movement is
// paced by the clock, not by how often the frontend presents frames.
func (g *Game) Run(fe Frontend, tp TimeProvider) Outcome {
	glog.Infof("game %s started on a %dx%d grid", g.UUID, g.Grid.Width, g.Grid.Height)
	last := tp.Now()

	for {
		in := fe.Poll()
		if in.Quit {
			return g.finish(Quit)
		}
		g.HandleInput(in.Headings)

		now := tp.Now()
		outcome := g.Update(now.Sub(last))
		last = now
		if outcome != Running {
			return g.finish(outcome)
		}

		fe.Draw(g.DrawRequests())
	}
}

func (g *Game) finish(o Outcome) Outcome {
	glog.Infof("game %s ended (%v) after %d steps, %d eaten, length %d", g.UUID, o, g.Steps, g.Eaten, g.snake.Len())
	return o
}

// DedupeHeadings keeps the first request per heading, preserving order.
// Frontends use it so one poll batch carries at most one request per key.
func DedupeHeadings(in []types.Heading) []types.Heading {
	var seen [len(types.Headings)]bool
	out := in[:0]
	for _, h := range in {
		if h < 0 || int(h) >= len(seen) || seen[h] {
			continue
		}
		seen[h] = true
		out = append(out, h)
	}
	return out
}
