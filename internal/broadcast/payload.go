// Package broadcast assembles the outward overlay payload from a
// session's committed state.
package broadcast

import (
	"math"
	"time"

	"github.com/mierzida/FLP-forBBK/internal/engine"
	"github.com/mierzida/FLP-forBBK/pkg/types"
)

// Assemble resolves every seat through override-then-layout fallback,
// applies the combined-vertical projection when the session is in
// that mode, and rounds coordinates to two decimals.
func Assemble(s *engine.Session, now time.Time) (types.BroadcastPayload, error) {
	seatsA, err := teamSeats(&s.TeamA, engine.TeamA, s.VerticalMode)
	if err != nil {
		return types.BroadcastPayload{}, err
	}
	seatsB, err := teamSeats(&s.TeamB, engine.TeamB, s.VerticalMode)
	if err != nil {
		return types.BroadcastPayload{}, err
	}

	return types.BroadcastPayload{
		Timestamp:    now.UnixMilli(),
		VerticalMode: s.VerticalMode,
		Match: types.MatchPayload{
			ScoreA:  s.TeamA.Score,
			ScoreB:  s.TeamB.Score,
			Elapsed: s.Elapsed,
			Status:  s.Status,
			TeamA:   teamInfo(&s.TeamA),
			TeamB:   teamInfo(&s.TeamB),
		},
		Teams: types.SeatLists{A: seatsA, B: seatsB},
	}, nil
}

func teamInfo(t *engine.TeamState) types.TeamPayload {
	return types.TeamPayload{
		Name:      t.Name,
		LogoSVG:   t.LogoSVG,
		LogoPNG:   t.LogoPNG,
		Color:     t.Color,
		Formation: t.Formation.Name,
	}
}

func teamSeats(t *engine.TeamState, side engine.TeamSide, vertical bool) ([]types.SeatPayload, error) {
	positions, err := t.EffectivePositions()
	if err != nil {
		return nil, err
	}

	seats := make([]types.SeatPayload, 0, len(positions))
	for i, pos := range positions {
		if vertical {
			pos = engine.ProjectCombined(side, pos)
		}
		seat := types.SeatPayload{
			ID:   i,
			Team: string(side),
			X:    round2(pos.X),
			Y:    round2(pos.Y),
		}
		// An auto-refresh can briefly leave the roster shorter than
		// the formation; empty seats still get coordinates.
		if i < len(t.Players) {
			p := t.Players[i]
			seat.Number = p.Number
			seat.Name = p.Name
			seat.YellowCard = p.YellowCard
			seat.RedCard = p.RedCard
			seat.Goals = p.Goals
		}
		seats = append(seats, seat)
	}
	return seats, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
