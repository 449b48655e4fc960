package types

// BroadcastPayload is the composite state pushed to overlay
// renderers: both teams' identity and score plus every seat's
// resolved final position.
type BroadcastPayload struct {
	Timestamp    int64        `json:"timestamp"` // unix millis
	VerticalMode bool         `json:"verticalMode"`
	Match        MatchPayload `json:"match"`
	Teams        SeatLists    `json:"teams"`
}

type MatchPayload struct {
	ScoreA  int         `json:"scoreA"`
	ScoreB  int         `json:"scoreB"`
	Elapsed int         `json:"elapsed"`
	Status  string      `json:"status"`
	TeamA   TeamPayload `json:"teamA"`
	TeamB   TeamPayload `json:"teamB"`
}

type TeamPayload struct {
	Name      string `json:"name"`
	LogoSVG   string `json:"logoSvg,omitempty"`
	LogoPNG   string `json:"logoPng,omitempty"`
	Color     string `json:"color,omitempty"`
	Formation string `json:"formation"`
}

type SeatLists struct {
	A []SeatPayload `json:"A"`
	B []SeatPayload `json:"B"`
}

// SeatPayload coordinates are display-space percent (mode transform
// applied) rounded to two decimals.
type SeatPayload struct {
	ID         int     `json:"id"`
	Team       string  `json:"team"`
	Number     string  `json:"number"`
	Name       string  `json:"name"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	YellowCard bool    `json:"yellowCard"`
	RedCard    bool    `json:"redCard"`
	Goals      int     `json:"goals"`
}
