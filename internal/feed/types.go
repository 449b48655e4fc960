package feed

// Wire shapes for the two fixture read operations. Only the fields
// the reconciler consumes are declared; the feed sends plenty more.

type lineupsResponse struct {
	Response []LineupTeam `json:"response"`
}

type LineupTeam struct {
	Team      TeamRef      `json:"team"`
	Formation string       `json:"formation"`
	StartXI   []LineupSlot `json:"startXI"`
}

type LineupSlot struct {
	Player LineupPlayer `json:"player"`
}

type LineupPlayer struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Number int    `json:"number"`
}

type TeamRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

type fixtureResponse struct {
	Response []FixtureDetail `json:"response"`
}

type FixtureDetail struct {
	Fixture struct {
		ID     int `json:"id"`
		Status struct {
			Short   string `json:"short"`
			Elapsed int    `json:"elapsed"`
		} `json:"status"`
	} `json:"fixture"`
	Teams struct {
		Home TeamRef `json:"home"`
		Away TeamRef `json:"away"`
	} `json:"teams"`
	Goals struct {
		Home int `json:"home"`
		Away int `json:"away"`
	} `json:"goals"`
	Events []FixtureEvent `json:"events"`
}

type FixtureEvent struct {
	Type   string `json:"type"`   // "Goal" | "Card" | ...
	Detail string `json:"detail"` // "Normal Goal", "Missed Penalty", "Yellow Card", ...
	Team   struct {
		ID int `json:"id"`
	} `json:"team"`
	Player struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"player"`
}
