package engine

import (
	"errors"
	"testing"
)

func TestEffectivePositionFallback(t *testing.T) {
	team := defaultTeam("Home")
	base, err := ComputePositions(team.Formation)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	team.Overrides.Set(4, Position{X: 12.5, Y: 33})

	for seat := 0; seat < team.Formation.Seats(); seat++ {
		got, err := team.EffectivePosition(seat)
		if err != nil {
			t.Fatalf("seat %d: unexpected err: %v", seat, err)
		}
		want := base[seat]
		if seat == 4 {
			want = Position{X: 12.5, Y: 33}
		}
		if got != want {
			t.Fatalf("seat %d: got %+v, want %+v", seat, got, want)
		}
	}

	if _, err := team.EffectivePosition(11); !errors.Is(err, ErrSeatOutOfRange) {
		t.Fatalf("want ErrSeatOutOfRange, got %v", err)
	}
	if _, err := team.EffectivePosition(-1); !errors.Is(err, ErrSeatOutOfRange) {
		t.Fatalf("want ErrSeatOutOfRange, got %v", err)
	}
}

func TestEffectivePositionsIgnoresStaleOverrides(t *testing.T) {
	team := defaultTeam("Home")
	team.Overrides.Set(2, Position{X: 1, Y: 2})
	team.Overrides[40] = Position{X: 9, Y: 9} // stale index, inert

	got, err := team.EffectivePositions()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 11 {
		t.Fatalf("want 11 positions, got %d", len(got))
	}
	if got[2] != (Position{X: 1, Y: 2}) {
		t.Fatalf("override not applied: %+v", got[2])
	}
}

func TestSetClampsIntoPitch(t *testing.T) {
	var o Overrides
	o.Set(0, Position{X: -5, Y: 140})
	got, ok := o.Get(0)
	if !ok || got != (Position{X: 0, Y: 100}) {
		t.Fatalf("got %+v ok=%v, want clamped position", got, ok)
	}
}

func TestFormationChangeClearsOverrides(t *testing.T) {
	team := defaultTeam("Home")
	team.Overrides.Set(9, Position{X: 70, Y: 20})

	if err := team.SetFormation(Formation{Name: "4-4-2", Lines: []int{1, 4, 4, 2}}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(team.Overrides) != 0 {
		t.Fatalf("overrides survived formation change: %+v", team.Overrides)
	}
	if len(team.Players) != 11 {
		t.Fatalf("roster resized to %d", len(team.Players))
	}

	if err := team.SetFormation(Formation{Lines: []int{1}}); !errors.Is(err, ErrDegenerateFormation) {
		t.Fatalf("degenerate formation accepted: %v", err)
	}
}

func TestPrune(t *testing.T) {
	o := Overrides{0: {X: 1}, 9: {X: 2}, 10: {X: 3}, 15: {X: 4}}
	o.Prune(10)
	if len(o) != 2 {
		t.Fatalf("want 2 entries after prune, got %v", o)
	}
	if _, ok := o.Get(10); ok {
		t.Fatalf("seat 10 should have been pruned")
	}
}
