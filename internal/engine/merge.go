package engine

// TeamUpdate is one side of a polled fixture, already mapped from the
// feed's wire shape: identity, parsed formation, starting eleven with
// goal/card attribution applied, and the current score.
type TeamUpdate struct {
	Name      string
	LogoID    string
	LogoPNG   string
	Formation Formation
	Players   []Player
	Score     int
}

// FeedUpdate is everything one poll of a fixture yields.
type FeedUpdate struct {
	FixtureID int
	Status    string
	Elapsed   int
	Home      TeamUpdate
	Away      TeamUpdate
}

// ReconcileRequest selects the merge policy for a feed update. The
// two variants are deliberately separate types dispatched to separate
// merge functions; their asymmetry around overrides is the point.
type ReconcileRequest interface{ isReconcile() }

// UserLoad is an operator explicitly loading a fixture: everything is
// replaced and manual positioning is presumed stale.
type UserLoad struct{ FixtureID int }

// AutoTick is a background refresh of the bound fixture: live fields
// are replaced, the operator's manual nudges survive.
type AutoTick struct{ FixtureID int }

func (UserLoad) isReconcile() {}
func (AutoTick) isReconcile() {}

// ApplyUserLoad replaces both teams' identity, formation, roster and
// score wholesale and clears both override maps.
func ApplyUserLoad(s *Session, u FeedUpdate) {
	replaceTeam(&s.TeamA, u.Home)
	replaceTeam(&s.TeamB, u.Away)
	s.Status = u.Status
	s.Elapsed = u.Elapsed
}

func replaceTeam(t *TeamState, u TeamUpdate) {
	t.Name = clampText(u.Name, maxNameLen)
	t.LogoID = u.LogoID
	t.LogoPNG = u.LogoPNG
	t.LogoSVG = ""
	t.Formation = u.Formation
	t.Players = clonePlayers(u.Players)
	t.Score = u.Score
	t.Overrides.Clear()
}

// ApplyAutoTick replaces rosters, scores, status and elapsed time but
// leaves formation, team identity and every override untouched, so
// nudges made between ticks survive.
func ApplyAutoTick(s *Session, u FeedUpdate) {
	refreshTeam(&s.TeamA, u.Home)
	refreshTeam(&s.TeamB, u.Away)
	s.Status = u.Status
	s.Elapsed = u.Elapsed
}

func refreshTeam(t *TeamState, u TeamUpdate) {
	t.Players = clonePlayers(u.Players)
	t.Score = u.Score
}

func clonePlayers(ps []Player) []Player {
	out := make([]Player, len(ps))
	copy(out, ps)
	return out
}
