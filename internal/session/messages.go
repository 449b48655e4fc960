package session

import (
	"github.com/mierzida/FLP-forBBK/internal/drag"
	"github.com/mierzida/FLP-forBBK/internal/engine"
	"github.com/mierzida/FLP-forBBK/pkg/types"
)

type Msg interface{ isSessionMsg() }

type Role string

const (
	RoleOperator Role = "operator"
	RoleViewer   Role = "viewer"
)

// Join registers a client; it immediately receives the current
// payload on its outbox so late joiners hydrate without waiting for
// the next change.
type Join struct {
	ClientID string
	Role     Role
	Outbox   chan types.ServerMessage
}

type Leave struct{ ClientID string }

type Shutdown struct{}

// GetState is test-only: reflect internal state without data races.
type GetState struct{ Reply chan View }

type View struct {
	NumClients  int
	AutoRefresh bool
	Emits       int
	State       engine.Session
}

// Operator commands.

type SetTeamName struct {
	Side engine.TeamSide
	Name string
}

type SetScore struct {
	Side  engine.TeamSide
	Score int
}

type SetColor struct {
	Side  engine.TeamSide
	Color string
}

type SetFormation struct {
	Side      engine.TeamSide
	Formation engine.Formation
}

type EditPlayer struct {
	Side   engine.TeamSide
	Seat   int
	Player engine.Player
}

type SetVertical struct{ Vertical bool }

type ResetLayout struct{}

type SwapTeams struct{}

// SetTeamIdentity applies a team-catalog selection event to one side.
type SetTeamIdentity struct {
	Side    engine.TeamSide
	Name    string
	LogoID  string
	LogoSVG string
	LogoPNG string
}

type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
)

type Pointer struct {
	Side  engine.TeamSide
	Kind  PointerKind
	Event drag.PointerEvent
}

type LoadFixture struct {
	FixtureID int
	Reply     chan error
}

type StopAutoRefresh struct{}

type ImportSnapshot struct {
	Data  []byte
	Reply chan error
}

type SnapshotResult struct {
	Data []byte
	Err  error
}

type ExportSnapshot struct{ Reply chan SnapshotResult }

// Internal messages: timers and fetch results re-enter through the
// inbox so every mutation happens on the loop goroutine.

type flushFired struct{}

type callbackFired struct{ fn func() }

type autoTick struct{ fixtureID int }

type feedResult struct {
	req    engine.ReconcileRequest
	gen    int
	update engine.FeedUpdate
	err    error
	reply  chan error
}

func (Join) isSessionMsg()            {}
func (Leave) isSessionMsg()           {}
func (Shutdown) isSessionMsg()        {}
func (GetState) isSessionMsg()        {}
func (SetTeamName) isSessionMsg()     {}
func (SetScore) isSessionMsg()        {}
func (SetColor) isSessionMsg()        {}
func (SetFormation) isSessionMsg()    {}
func (EditPlayer) isSessionMsg()      {}
func (SetVertical) isSessionMsg()     {}
func (ResetLayout) isSessionMsg()     {}
func (SwapTeams) isSessionMsg()       {}
func (SetTeamIdentity) isSessionMsg() {}
func (Pointer) isSessionMsg()         {}
func (LoadFixture) isSessionMsg()     {}
func (StopAutoRefresh) isSessionMsg() {}
func (ImportSnapshot) isSessionMsg()  {}
func (ExportSnapshot) isSessionMsg()  {}
func (flushFired) isSessionMsg()      {}
func (callbackFired) isSessionMsg()   {}
func (autoTick) isSessionMsg()        {}
func (feedResult) isSessionMsg()      {}
