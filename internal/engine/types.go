package engine

import (
	"errors"
	"strconv"
)

var ErrDegenerateFormation = errors.New("formation needs a goalkeeper line and at least one outfield line")
var ErrSeatOutOfRange = errors.New("seat index out of range")

type TeamSide string

const (
	TeamA TeamSide = "A"
	TeamB TeamSide = "B"
)

// Position is a point on the pitch in percent of its width/height,
// always in the mode-independent split coordinate space unless a
// function says otherwise.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Formation lists how many players occupy each horizontal line,
// goalkeeper first. Lines[0] is always 1.
type Formation struct {
	Name  string `json:"name"`
	Lines []int  `json:"lines"`
}

// Seats returns the number of seats the formation describes.
func (f Formation) Seats() int {
	total := 0
	for _, n := range f.Lines {
		total += n
	}
	return total
}

type Player struct {
	Number     string `json:"number"`
	Name       string `json:"name"`
	YellowCard bool   `json:"yellowCard"`
	RedCard    bool   `json:"redCard"`
	Goals      int    `json:"goals"`
}

const (
	maxNameLen   = 64
	maxNumberLen = 4
)

// TeamState is one side of the session: identity, score, formation,
// roster and the manual position overrides layered on top of the
// computed layout. Roster index is the seat index everywhere.
type TeamState struct {
	Name      string    `json:"name"`
	LogoID    string    `json:"logoId"`
	LogoSVG   string    `json:"logoSvg"`
	LogoPNG   string    `json:"logoPng"`
	Color     string    `json:"color"`
	Score     int       `json:"score"`
	Formation Formation `json:"formation"`
	Players   []Player  `json:"players"`
	Overrides Overrides `json:"overrides"`
}

// FeedBinding ties the session to a live fixture being polled.
type FeedBinding struct {
	FixtureID   int  `json:"fixtureId"`
	AutoRefresh bool `json:"autoRefreshEnabled"`
}

type Session struct {
	TeamA        TeamState    `json:"teamA"`
	TeamB        TeamState    `json:"teamB"`
	VerticalMode bool         `json:"verticalMode"`
	Status       string       `json:"status"`
	Elapsed      int          `json:"elapsed"`
	Feed         *FeedBinding `json:"feed,omitempty"`
}

// DefaultFormation is the 4-3-3 every new team starts with.
func DefaultFormation() Formation {
	return Formation{Name: "4-3-3", Lines: []int{1, 4, 3, 3}}
}

func defaultTeam(name string) TeamState {
	f := DefaultFormation()
	players := make([]Player, f.Seats())
	for i := range players {
		players[i].Number = strconv.Itoa(i + 1)
	}
	return TeamState{
		Name:      name,
		Formation: f,
		Players:   players,
		Overrides: Overrides{},
	}
}

func NewSession() Session {
	return Session{
		TeamA: defaultTeam("Home"),
		TeamB: defaultTeam("Away"),
	}
}

// Team returns the mutable state for a side; TeamB for anything
// that is not TeamA.
func (s *Session) Team(side TeamSide) *TeamState {
	if side == TeamA {
		return &s.TeamA
	}
	return &s.TeamB
}

func clampText(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}

func (t *TeamState) SetName(name string) {
	t.Name = clampText(name, maxNameLen)
}

// SetFormation replaces the formation, resizes the roster to the new
// seat count (existing players keep their seats) and drops all
// overrides: seat indices do not carry meaning across line structures.
func (t *TeamState) SetFormation(f Formation) error {
	if err := validateFormation(f); err != nil {
		return err
	}
	t.Formation = f
	t.resizeRoster(f.Seats())
	t.Overrides.Clear()
	return nil
}

func (t *TeamState) resizeRoster(seats int) {
	for len(t.Players) < seats {
		t.Players = append(t.Players, Player{Number: strconv.Itoa(len(t.Players) + 1)})
	}
	if len(t.Players) > seats {
		t.Players = t.Players[:seats]
	}
}

// EditPlayer applies an operator edit to one seat. The edit affordance
// keeps the card flags mutually exclusive; feed merges may still set
// both programmatically.
func (t *TeamState) EditPlayer(seat int, p Player) error {
	if seat < 0 || seat >= len(t.Players) {
		return ErrSeatOutOfRange
	}
	p.Number = clampText(p.Number, maxNumberLen)
	p.Name = clampText(p.Name, maxNameLen)
	if p.Goals < 0 {
		p.Goals = 0
	}
	prev := t.Players[seat]
	if p.RedCard && !prev.RedCard {
		p.YellowCard = false
	} else if p.YellowCard && !prev.YellowCard {
		p.RedCard = false
	}
	t.Players[seat] = p
	return nil
}

func (t *TeamState) SetScore(score int) {
	if score < 0 {
		score = 0
	}
	t.Score = score
}

// ResetLayout discards every manual override on both teams.
func (s *Session) ResetLayout() {
	s.TeamA.Overrides.Clear()
	s.TeamB.Overrides.Clear()
}

// SwapTeams exchanges the two team states wholesale, overrides
// included (an override keeps following its team across the swap).
func (s *Session) SwapTeams() {
	s.TeamA, s.TeamB = s.TeamB, s.TeamA
}
