package types

import "testing"

func TestWrap(t *testing.T) {
	tests := []struct {
		n, m, want int
	}{
		{0, 20, 0},
		{19, 20, 19},
		{20, 20, 0},
		{21, 20, 1},
		{-1, 20, 19},
		{-2, 20, 18},
		{-20, 20, 0},
		{-41, 20, 19},
		{5, 1, 0},
	}
	for _, tt := range tests {
		if got := Wrap(tt.n, tt.m); got != tt.want {
			t.Errorf("Wrap(%d, %d) = %d, want %d", tt.n, tt.m, got, tt.want)
		}
	}
}

func TestWrapRangeAndCongruence(t *testing.T) {
	for m := 1; m <= 25; m++ {
		for n := -100; n <= 100; n++ {
			got := Wrap(n, m)
			if got < 0 || got >= m {
				t.Fatalf("Wrap(%d, %d) = %d, out of [0, %d)", n, m, got, m)
			}
			if (n-got)%m != 0 {
				t.Fatalf("Wrap(%d, %d) = %d, not congruent", n, m, got)
			}
		}
	}
}

func TestGridWrapPoint(t *testing.T) {
	g := Grid{Width: 20, Height: 10}
	if got := g.WrapPoint(Point{X: 20, Y: -1}); got != (Point{X: 0, Y: 9}) {
		t.Errorf("WrapPoint = %v, want (0,9)", got)
	}
	if !g.Contains(Point{X: 19, Y: 9}) || g.Contains(Point{X: 20, Y: 0}) || g.Contains(Point{X: 0, Y: -1}) {
		t.Error("Contains gives wrong bounds")
	}
	if g.Cells() != 200 {
		t.Errorf("Cells = %d, want 200", g.Cells())
	}
}

func TestHeadingOpposite(t *testing.T) {
	for _, h := range Headings {
		o := h.Opposite()
		if o == h {
			t.Errorf("%v is its own opposite", h)
		}
		if o.Opposite() != h {
			t.Errorf("Opposite is not an involution for %v", h)
		}
		if h.Delta().Add(o.Delta()) != (Point{}) {
			t.Errorf("deltas of %v and %v do not cancel", h, o)
		}
	}
}

func TestParseHeading(t *testing.T) {
	for _, h := range Headings {
		got, err := ParseHeading(h.String())
		if err != nil || got != h {
			t.Errorf("ParseHeading(%q) = %v, %v", h.String(), got, err)
		}
	}
	if h, err := ParseHeading("RIGHT"); err != nil || h != Right {
		t.Errorf("ParseHeading should be case-insensitive, got %v, %v", h, err)
	}
	if _, err := ParseHeading("diagonal"); err == nil {
		t.Error("expected error for unknown heading")
	}
}
