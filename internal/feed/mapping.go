package feed

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mierzida/FLP-forBBK/internal/engine"
)

// buildUpdate joins the lineup and detail responses for one fixture.
// Lineup entries are matched to home/away by team id; the feed does
// not guarantee their order.
func buildUpdate(fixtureID int, lineups []LineupTeam, detail FixtureDetail) (engine.FeedUpdate, error) {
	var home, away *LineupTeam
	for i := range lineups {
		switch lineups[i].Team.ID {
		case detail.Teams.Home.ID:
			home = &lineups[i]
		case detail.Teams.Away.ID:
			away = &lineups[i]
		}
	}
	if home == nil || away == nil {
		return engine.FeedUpdate{}, fmt.Errorf("fixture %d: lineup missing for one or both teams", fixtureID)
	}

	return engine.FeedUpdate{
		FixtureID: fixtureID,
		Status:    detail.Fixture.Status.Short,
		Elapsed:   detail.Fixture.Status.Elapsed,
		Home:      buildTeam(*home, detail.Teams.Home, detail.Goals.Home, detail.Events),
		Away:      buildTeam(*away, detail.Teams.Away, detail.Goals.Away, detail.Events),
	}, nil
}

func buildTeam(lineup LineupTeam, ref TeamRef, score int, events []FixtureEvent) engine.TeamUpdate {
	players := make([]engine.Player, 0, len(lineup.StartXI))
	for _, slot := range lineup.StartXI {
		players = append(players, attribute(slot.Player, events))
	}
	return engine.TeamUpdate{
		Name:      ref.Name,
		LogoID:    strconv.Itoa(ref.ID),
		LogoPNG:   ref.Logo,
		Formation: engine.ParseFormation(lineup.Formation),
		Players:   players,
		Score:     score,
	}
}

// attribute folds the fixture event list into one player's card and
// goal counters. Events are matched by player id or, when the feed
// left the id out, by exact name. A missed penalty is a goal-type
// event that must not count.
func attribute(p LineupPlayer, events []FixtureEvent) engine.Player {
	out := engine.Player{
		Number: strconv.Itoa(p.Number),
		Name:   p.Name,
	}
	for _, ev := range events {
		if !matchesPlayer(ev, p) {
			continue
		}
		switch ev.Type {
		case "Goal":
			if !strings.EqualFold(ev.Detail, "Missed Penalty") {
				out.Goals++
			}
		case "Card":
			detail := strings.ToLower(ev.Detail)
			if strings.Contains(detail, "yellow") {
				out.YellowCard = true
			}
			if strings.Contains(detail, "red") {
				out.RedCard = true
			}
		}
	}
	return out
}

func matchesPlayer(ev FixtureEvent, p LineupPlayer) bool {
	if ev.Player.ID != 0 && p.ID != 0 && ev.Player.ID == p.ID {
		return true
	}
	return ev.Player.Name != "" && ev.Player.Name == p.Name
}
