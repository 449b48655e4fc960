package types

// Operator -> Server
//
// SetTeamName:    team, name
// SetScore:       team, score
// SetColor:       team, color
// SetFormation:   team, formation ("4-2-3-1" style string)
// EditPlayer:     team, seat, player
// SetVertical:    vertical
// ResetLayout:    {}
// SwapTeams:      {}
// PointerDown:    team, seat, x, y, width, height (pitch-surface px)
// PointerMove:    team, x, y
// PointerUp:      team
// LoadFixture:    fixture_id
// StopAutoRefresh: {}
type ClientMessage struct {
	Type      string      `json:"type"`
	Team      string      `json:"team,omitempty"` // "A" | "B"
	Seat      int         `json:"seat,omitempty"`
	Name      string      `json:"name,omitempty"`
	Score     int         `json:"score,omitempty"`
	Color     string      `json:"color,omitempty"`
	Formation string      `json:"formation,omitempty"`
	Player    *PlayerEdit `json:"player,omitempty"`
	Vertical  bool        `json:"vertical,omitempty"`
	X         float64     `json:"x,omitempty"`
	Y         float64     `json:"y,omitempty"`
	Width     float64     `json:"width,omitempty"`
	Height    float64     `json:"height,omitempty"`
	FixtureID int         `json:"fixture_id,omitempty"`
}

type PlayerEdit struct {
	Number     string `json:"number"`
	Name       string `json:"name"`
	YellowCard bool   `json:"yellowCard"`
	RedCard    bool   `json:"redCard"`
	Goals      int    `json:"goals"`
}

// Server -> Client
//
// Broadcast:    the composite overlay payload
// SeatSelected: a click resolved on a seat (operators only)
// SeatEdit:     a double-click asking for the edit dialog (operators only)
// Error:        something the client sent was rejected
type ServerMessage struct {
	Type    string            `json:"type"`
	Payload *BroadcastPayload `json:"payload,omitempty"`
	Team    string            `json:"team,omitempty"`
	Seat    int               `json:"seat,omitempty"`
	Error   string            `json:"error,omitempty"`
}
