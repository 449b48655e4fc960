package engine

import (
	"math"
	"testing"
)

func TestProjectCombinedHalves(t *testing.T) {
	// A goalkeeper at the split-space own baseline lands deep in the
	// top half for team A and at the bottom edge region for team B.
	gk := Position{X: 50, Y: ownBaselineY}

	a := ProjectCombined(TeamA, gk)
	if a.Y <= combinedTopStart || a.Y > combinedTopStart+combinedTopSpan {
		t.Fatalf("team A goalkeeper outside top half: y=%v", a.Y)
	}

	b := ProjectCombined(TeamB, gk)
	if b.Y < combinedBottomStart {
		t.Fatalf("team B goalkeeper outside bottom half: y=%v", b.Y)
	}
	if b.Y <= a.Y {
		t.Fatalf("mirrored goalkeeper not below team A's: a=%v b=%v", a.Y, b.Y)
	}

	// Widening keeps the centerline fixed.
	if c := ProjectCombined(TeamA, Position{X: 50, Y: 50}); c.X != 50 {
		t.Fatalf("centerline moved: x=%v", c.X)
	}
}

func TestCombinedRoundTrip(t *testing.T) {
	positions := []Position{
		{X: 50, Y: 90},
		{X: 14, Y: 63.4},
		{X: 86, Y: 10},
		{X: 0, Y: 0},
		{X: 100, Y: 100},
		{X: 33.3, Y: 47.9},
	}
	for _, side := range []TeamSide{TeamA, TeamB} {
		for _, p := range positions {
			back := UnprojectCombined(side, ProjectCombined(side, p))
			if math.Abs(back.X-p.X) > 1e-6 || math.Abs(back.Y-p.Y) > 1e-6 {
				t.Fatalf("side %s: round trip %+v -> %+v", side, p, back)
			}
		}
	}
}

func TestUnprojectCombinedClamps(t *testing.T) {
	// A pointer dragged past the top of the pitch must still produce
	// a valid split-space position.
	p := UnprojectCombined(TeamA, Position{X: -20, Y: 0})
	if p.X < 0 || p.X > 100 || p.Y < 0 || p.Y > 100 {
		t.Fatalf("unclamped result: %+v", p)
	}
	p = UnprojectCombined(TeamB, Position{X: 130, Y: 100})
	if p.X < 0 || p.X > 100 || p.Y < 0 || p.Y > 100 {
		t.Fatalf("unclamped result: %+v", p)
	}
}
