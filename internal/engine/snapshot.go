package engine

import "encoding/json"

// Snapshot is the tolerant wire form of a Session for file
// export/import. Every field is optional on the way in: loading an
// older snapshot applies only the fields it carries and leaves the
// rest of the session alone. Unknown fields are ignored.
type Snapshot struct {
	TeamA        *TeamSnapshot `json:"teamA,omitempty"`
	TeamB        *TeamSnapshot `json:"teamB,omitempty"`
	VerticalMode *bool         `json:"verticalMode,omitempty"`
	Status       *string       `json:"status,omitempty"`
	Elapsed      *int          `json:"elapsed,omitempty"`
}

type TeamSnapshot struct {
	Name      *string    `json:"name,omitempty"`
	LogoID    *string    `json:"logoId,omitempty"`
	LogoSVG   *string    `json:"logoSvg,omitempty"`
	LogoPNG   *string    `json:"logoPng,omitempty"`
	Color     *string    `json:"color,omitempty"`
	Score     *int       `json:"score,omitempty"`
	Formation *Formation `json:"formation,omitempty"`
	Players   *[]Player  `json:"players,omitempty"`
	Overrides *Overrides `json:"overrides,omitempty"`
}

// ExportSnapshot serializes the full session. The feed binding is
// deliberately not part of the snapshot: a loaded file should never
// resurrect a polling loop.
func ExportSnapshot(s *Session) ([]byte, error) {
	snap := Snapshot{
		TeamA:        exportTeam(&s.TeamA),
		TeamB:        exportTeam(&s.TeamB),
		VerticalMode: &s.VerticalMode,
		Status:       &s.Status,
		Elapsed:      &s.Elapsed,
	}
	return json.MarshalIndent(snap, "", "  ")
}

func exportTeam(t *TeamState) *TeamSnapshot {
	return &TeamSnapshot{
		Name:      &t.Name,
		LogoID:    &t.LogoID,
		LogoSVG:   &t.LogoSVG,
		LogoPNG:   &t.LogoPNG,
		Color:     &t.Color,
		Score:     &t.Score,
		Formation: &t.Formation,
		Players:   &t.Players,
		Overrides: &t.Overrides,
	}
}

// ImportSnapshot applies a snapshot document onto the session. Fields
// absent from the document keep their current values; malformed JSON
// leaves the session untouched.
func ImportSnapshot(s *Session, data []byte) error {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return err
	}
	importTeam(&s.TeamA, snap.TeamA)
	importTeam(&s.TeamB, snap.TeamB)
	if snap.VerticalMode != nil {
		s.VerticalMode = *snap.VerticalMode
	}
	if snap.Status != nil {
		s.Status = *snap.Status
	}
	if snap.Elapsed != nil {
		s.Elapsed = *snap.Elapsed
	}
	return nil
}

func importTeam(t *TeamState, snap *TeamSnapshot) {
	if snap == nil {
		return
	}
	if snap.Name != nil {
		t.Name = clampText(*snap.Name, maxNameLen)
	}
	if snap.LogoID != nil {
		t.LogoID = *snap.LogoID
	}
	if snap.LogoSVG != nil {
		t.LogoSVG = *snap.LogoSVG
	}
	if snap.LogoPNG != nil {
		t.LogoPNG = *snap.LogoPNG
	}
	if snap.Color != nil {
		t.Color = *snap.Color
	}
	if snap.Score != nil {
		t.SetScore(*snap.Score)
	}
	if snap.Formation != nil && validateFormation(*snap.Formation) == nil {
		t.Formation = *snap.Formation
		t.resizeRoster(snap.Formation.Seats())
	}
	if snap.Players != nil {
		t.Players = clonePlayers(*snap.Players)
		t.resizeRoster(t.Formation.Seats())
	}
	if snap.Overrides != nil {
		t.Overrides = Overrides{}
		for seat, p := range *snap.Overrides {
			t.Overrides.Set(seat, p)
		}
	}
	// Saved overrides may predate the saved formation's seat count.
	t.Overrides.Prune(t.Formation.Seats())
}
