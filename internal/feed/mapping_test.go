package feed

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func lineupFixture() []LineupTeam {
	home := LineupTeam{
		Team:      TeamRef{ID: 42, Name: "Arsenal", Logo: "https://media.example/42.png"},
		Formation: "4-2-3-1",
	}
	away := LineupTeam{
		Team:      TeamRef{ID: 49, Name: "Chelsea", Logo: "https://media.example/49.png"},
		Formation: "3-4-3",
	}
	for i := 0; i < 11; i++ {
		home.StartXI = append(home.StartXI, LineupSlot{Player: LineupPlayer{ID: 900 + i, Name: "Home Player", Number: i + 1}})
		away.StartXI = append(away.StartXI, LineupSlot{Player: LineupPlayer{ID: 800 + i, Name: "Away Player", Number: i + 1}})
	}
	home.StartXI[9].Player = LineupPlayer{ID: 987, Name: "Saka", Number: 7}
	home.StartXI[10].Player = LineupPlayer{ID: 0, Name: "Trossard", Number: 19}
	return []LineupTeam{away, home} // feed order is not home-first
}

func detailFixture() FixtureDetail {
	var d FixtureDetail
	d.Fixture.ID = 12345
	d.Fixture.Status.Short = "2H"
	d.Fixture.Status.Elapsed = 71
	d.Teams.Home = TeamRef{ID: 42, Name: "Arsenal", Logo: "https://media.example/42.png"}
	d.Teams.Away = TeamRef{ID: 49, Name: "Chelsea", Logo: "https://media.example/49.png"}
	d.Goals.Home = 2
	d.Goals.Away = 0
	return d
}

func goalEvent(playerID int, name, detail string) FixtureEvent {
	var ev FixtureEvent
	ev.Type = "Goal"
	ev.Detail = detail
	ev.Player.ID = playerID
	ev.Player.Name = name
	return ev
}

func cardEvent(playerID int, name, detail string) FixtureEvent {
	var ev FixtureEvent
	ev.Type = "Card"
	ev.Detail = detail
	ev.Player.ID = playerID
	ev.Player.Name = name
	return ev
}

func TestBuildUpdateMatchesLineupsByTeamID(t *testing.T) {
	update, err := buildUpdate(12345, lineupFixture(), detailFixture())
	require.NoError(t, err)

	require.Equal(t, "Arsenal", update.Home.Name)
	require.Equal(t, "Chelsea", update.Away.Name)
	require.Equal(t, "4-2-3-1", update.Home.Formation.Name)
	require.Equal(t, []int{1, 4, 2, 3, 1}, update.Home.Formation.Lines)
	require.Equal(t, 2, update.Home.Score)
	require.Equal(t, "2H", update.Status)
	require.Equal(t, 71, update.Elapsed)
	require.Len(t, update.Home.Players, 11)
	require.Equal(t, "7", update.Home.Players[9].Number)
}

func TestGoalAttributionByIDExcludesMissedPenalty(t *testing.T) {
	detail := detailFixture()
	detail.Events = []FixtureEvent{
		goalEvent(987, "Saka", "Normal Goal"),
		goalEvent(987, "Saka", "Missed Penalty"),
	}

	update, err := buildUpdate(12345, lineupFixture(), detail)
	require.NoError(t, err)
	require.Equal(t, 1, update.Home.Players[9].Goals)
}

func TestGoalAttributionFallsBackToExactName(t *testing.T) {
	detail := detailFixture()
	detail.Events = []FixtureEvent{
		goalEvent(0, "Trossard", "Normal Goal"),
		goalEvent(0, "trossard", "Normal Goal"), // name match is exact
	}

	update, err := buildUpdate(12345, lineupFixture(), detail)
	require.NoError(t, err)
	require.Equal(t, 1, update.Home.Players[10].Goals)
}

func TestCardAttribution(t *testing.T) {
	detail := detailFixture()
	detail.Events = []FixtureEvent{
		cardEvent(987, "Saka", "Yellow Card"),
		cardEvent(800, "Away Player", "Red Card"),
	}

	update, err := buildUpdate(12345, lineupFixture(), detail)
	require.NoError(t, err)
	require.True(t, update.Home.Players[9].YellowCard)
	require.False(t, update.Home.Players[9].RedCard)
	require.True(t, update.Away.Players[0].RedCard)
}

func TestBuildUpdateMissingLineupFails(t *testing.T) {
	lineups := lineupFixture()[:1] // away only
	_, err := buildUpdate(12345, lineups, detailFixture())
	require.Error(t, err)
}
