// Package session hosts one lineup overlay as an actor: a single
// goroutine owns the engine state, consumes commands from an inbox
// and pushes debounced broadcast payloads to subscribed clients.
package session

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/mierzida/FLP-forBBK/internal/broadcast"
	"github.com/mierzida/FLP-forBBK/internal/drag"
	"github.com/mierzida/FLP-forBBK/internal/engine"
	"github.com/mierzida/FLP-forBBK/pkg/types"
)

var ErrLoadSuperseded = errors.New("fixture load superseded by a newer load")

const (
	// Quiet period that coalesces a burst of changes into one
	// broadcast. Team-identity changes flush with no quiet period.
	debounceWindow = 100 * time.Millisecond
	flushNow       = 0

	defaultPollInterval = 10 * time.Second
	fetchTimeout        = 12 * time.Second
)

// FeedClient is what the reconciler needs from the live-match feed.
type FeedClient interface {
	FetchFixture(ctx context.Context, fixtureID int) (engine.FeedUpdate, error)
}

type Config struct {
	Feed         FeedClient
	PollInterval time.Duration
	Log          *zap.Logger
}

type client struct {
	role   Role
	outbox chan types.ServerMessage
}

type Session struct {
	inbox   chan Msg
	state   engine.Session
	clients map[string]client

	dragA *drag.Controller
	dragB *drag.Controller

	feed         FeedClient
	pollInterval time.Duration
	pollCancel   context.CancelFunc
	loadGen      int

	debounce *time.Timer
	dirty    bool
	emits    int

	log    *zap.Logger
	ctx    context.Context
	cancel context.CancelFunc
}

func New(parent context.Context, cfg Config) *Session {
	ctx, cancel := context.WithCancel(parent)
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}
	if cfg.Log == nil {
		cfg.Log = zap.NewNop()
	}

	s := &Session{
		inbox:        make(chan Msg, 64),
		state:        engine.NewSession(),
		clients:      make(map[string]client),
		feed:         cfg.Feed,
		pollInterval: cfg.PollInterval,
		log:          cfg.Log,
		ctx:          ctx,
		cancel:       cancel,
	}
	s.dragA = drag.NewController(engine.TeamA, s.schedule, s.dragCallbacks(engine.TeamA))
	s.dragB = drag.NewController(engine.TeamB, s.schedule, s.dragCallbacks(engine.TeamB))

	go s.loop()
	return s
}

func (s *Session) Inbox() chan<- Msg { return s.inbox }

// schedule satisfies drag.Scheduler: the callback re-enters the loop
// through the inbox instead of firing on the timer goroutine.
func (s *Session) schedule(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, func() {
		select {
		case s.inbox <- callbackFired{fn: fn}:
		case <-s.ctx.Done():
		}
	})
	return func() { t.Stop() }
}

func (s *Session) dragCallbacks(side engine.TeamSide) drag.Callbacks {
	return drag.Callbacks{
		SetOverride: func(seat int, pos engine.Position) {
			s.state.Team(side).Overrides.Set(seat, pos)
			s.markDirty(debounceWindow)
		},
		Click: func(seat int) {
			s.sendToOperators(types.ServerMessage{Type: "SeatSelected", Team: string(side), Seat: seat})
		},
		DoubleClick: func(seat int) {
			s.sendToOperators(types.ServerMessage{Type: "SeatEdit", Team: string(side), Seat: seat})
		},
		DragEnd: func(int) {
			s.markDirty(debounceWindow)
		},
	}
}

func (s *Session) loop() {
	for {
		select {
		case <-s.ctx.Done():
			s.shutdown()
			return

		case m := <-s.inbox:
			switch msg := m.(type) {
			case Join:
				s.clients[msg.ClientID] = client{role: msg.Role, outbox: msg.Outbox}
				if payload, err := broadcast.Assemble(&s.state, time.Now()); err == nil {
					s.trySend(msg.ClientID, types.ServerMessage{Type: "Broadcast", Payload: &payload})
				}

			case Leave:
				if c, ok := s.clients[msg.ClientID]; ok {
					close(c.outbox)
					delete(s.clients, msg.ClientID)
				}

			case SetTeamName:
				s.state.Team(msg.Side).SetName(msg.Name)
				s.markDirty(flushNow)

			case SetTeamIdentity:
				t := s.state.Team(msg.Side)
				t.SetName(msg.Name)
				t.LogoID = msg.LogoID
				t.LogoSVG = msg.LogoSVG
				t.LogoPNG = msg.LogoPNG
				s.markDirty(flushNow)

			case SetScore:
				s.state.Team(msg.Side).SetScore(msg.Score)
				s.markDirty(debounceWindow)

			case SetColor:
				s.state.Team(msg.Side).Color = msg.Color
				s.markDirty(debounceWindow)

			case SetFormation:
				if err := s.state.Team(msg.Side).SetFormation(msg.Formation); err != nil {
					s.log.Debug("formation rejected", zap.Error(err), zap.Any("formation", msg.Formation))
					break
				}
				s.markDirty(debounceWindow)

			case EditPlayer:
				if err := s.state.Team(msg.Side).EditPlayer(msg.Seat, msg.Player); err != nil {
					s.log.Debug("player edit rejected", zap.Error(err), zap.Int("seat", msg.Seat))
					break
				}
				s.markDirty(debounceWindow)

			case SetVertical:
				s.state.VerticalMode = msg.Vertical
				s.markDirty(debounceWindow)

			case ResetLayout:
				s.state.ResetLayout()
				s.markDirty(debounceWindow)

			case SwapTeams:
				s.state.SwapTeams()
				s.markDirty(flushNow)

			case Pointer:
				s.handlePointer(msg)

			case LoadFixture:
				if s.feed == nil {
					if msg.Reply != nil {
						msg.Reply <- errors.New("no feed client configured")
					}
					break
				}
				// The active poll loop keeps running until the load
				// succeeds; startPolling replaces it then. A failed
				// load must leave the prior binding live.
				s.loadGen++
				go s.fetch(engine.UserLoad{FixtureID: msg.FixtureID}, s.loadGen, msg.Reply)

			case StopAutoRefresh:
				if s.pollCancel != nil {
					s.pollCancel()
					s.pollCancel = nil
				}
				s.state.Feed = nil

			case ImportSnapshot:
				err := engine.ImportSnapshot(&s.state, msg.Data)
				if err == nil {
					s.markDirty(flushNow)
				}
				if msg.Reply != nil {
					msg.Reply <- err
				}

			case ExportSnapshot:
				data, err := engine.ExportSnapshot(&s.state)
				msg.Reply <- SnapshotResult{Data: data, Err: err}

			case autoTick:
				if s.state.Feed == nil || s.state.Feed.FixtureID != msg.fixtureID {
					break // stale tick from a cancelled loop
				}
				go s.fetch(engine.AutoTick{FixtureID: msg.fixtureID}, s.loadGen, nil)

			case feedResult:
				s.handleFeedResult(msg)

			case flushFired:
				s.flush()

			case callbackFired:
				msg.fn()

			case GetState:
				msg.Reply <- View{
					NumClients:  len(s.clients),
					AutoRefresh: s.state.Feed != nil && s.state.Feed.AutoRefresh,
					Emits:       s.emits,
					State:       s.state,
				}

			case Shutdown:
				s.shutdown()
				return
			}
		}
	}
}

func (s *Session) handlePointer(msg Pointer) {
	ctrl := s.dragA
	if msg.Side != engine.TeamA {
		ctrl = s.dragB
	}
	switch msg.Kind {
	case PointerDown:
		center, err := s.state.Team(msg.Side).EffectivePosition(msg.Event.Seat)
		if err != nil {
			s.log.Debug("pointer down on invalid seat", zap.Error(err), zap.Int("seat", msg.Event.Seat))
			return
		}
		if s.state.VerticalMode {
			center = engine.ProjectCombined(msg.Side, center)
		}
		ctrl.PointerDown(msg.Event, center, s.state.VerticalMode)
	case PointerMove:
		ctrl.PointerMove(msg.Event)
	case PointerUp:
		ctrl.PointerUp()
	}
}

// fetch runs off-loop; the result re-enters through the inbox.
func (s *Session) fetch(req engine.ReconcileRequest, gen int, reply chan error) {
	var fixtureID int
	switch r := req.(type) {
	case engine.UserLoad:
		fixtureID = r.FixtureID
	case engine.AutoTick:
		fixtureID = r.FixtureID
	}

	ctx, cancel := context.WithTimeout(s.ctx, fetchTimeout)
	defer cancel()
	update, err := s.feed.FetchFixture(ctx, fixtureID)

	select {
	case s.inbox <- feedResult{req: req, gen: gen, update: update, err: err, reply: reply}:
	case <-s.ctx.Done():
		if reply != nil {
			reply <- s.ctx.Err()
		}
	}
}

func (s *Session) handleFeedResult(msg feedResult) {
	switch req := msg.req.(type) {
	case engine.UserLoad:
		if msg.gen != s.loadGen {
			if msg.reply != nil {
				msg.reply <- ErrLoadSuperseded
			}
			return
		}
		if msg.err != nil {
			// Explicit action: surface the failure, leave prior
			// state untouched.
			s.log.Warn("fixture load failed", zap.Int("fixture", req.FixtureID), zap.Error(msg.err))
			if msg.reply != nil {
				msg.reply <- msg.err
			}
			return
		}
		engine.ApplyUserLoad(&s.state, msg.update)
		s.state.Feed = &engine.FeedBinding{FixtureID: req.FixtureID, AutoRefresh: true}
		s.startPolling(req.FixtureID)
		s.log.Info("fixture loaded",
			zap.Int("fixture", req.FixtureID),
			zap.String("home", s.state.TeamA.Name),
			zap.String("away", s.state.TeamB.Name))
		s.markDirty(flushNow)
		if msg.reply != nil {
			msg.reply <- nil
		}

	case engine.AutoTick:
		if s.state.Feed == nil || s.state.Feed.FixtureID != req.FixtureID {
			return
		}
		if msg.err != nil {
			// Background tick: log, skip, let the next tick retry.
			s.log.Warn("auto refresh tick failed", zap.Int("fixture", req.FixtureID), zap.Error(msg.err))
			return
		}
		engine.ApplyAutoTick(&s.state, msg.update)
		s.markDirty(debounceWindow)
	}
}

func (s *Session) startPolling(fixtureID int) {
	if s.pollCancel != nil {
		s.pollCancel()
	}
	ctx, cancel := context.WithCancel(s.ctx)
	s.pollCancel = cancel

	go func() {
		ticker := time.NewTicker(s.pollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				select {
				case s.inbox <- autoTick{fixtureID: fixtureID}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
}

// markDirty arms (or re-arms) the debounce timer. The emitted payload
// always reflects state at fire time, never an intermediate burst
// state.
func (s *Session) markDirty(quiet time.Duration) {
	s.dirty = true
	if s.debounce == nil {
		s.debounce = time.AfterFunc(quiet, func() {
			select {
			case s.inbox <- flushFired{}:
			case <-s.ctx.Done():
			}
		})
		return
	}
	s.debounce.Reset(quiet)
}

func (s *Session) flush() {
	if !s.dirty {
		return
	}
	s.dirty = false

	payload, err := broadcast.Assemble(&s.state, time.Now())
	if err != nil {
		s.log.Error("broadcast assembly failed", zap.Error(err))
		return
	}
	s.emits++
	msg := types.ServerMessage{Type: "Broadcast", Payload: &payload}
	for id := range s.clients {
		s.trySend(id, msg)
	}
}

func (s *Session) sendToOperators(msg types.ServerMessage) {
	for id, c := range s.clients {
		if c.role != RoleOperator {
			continue
		}
		s.trySend(id, msg)
	}
}

// trySend drops slow clients rather than blocking the loop.
func (s *Session) trySend(id string, msg types.ServerMessage) {
	c, ok := s.clients[id]
	if !ok {
		return
	}
	select {
	case c.outbox <- msg:
	default:
		close(c.outbox)
		delete(s.clients, id)
	}
}

func (s *Session) shutdown() {
	if s.pollCancel != nil {
		s.pollCancel()
		s.pollCancel = nil
	}
	if s.debounce != nil {
		s.debounce.Stop()
	}
	for id, c := range s.clients {
		close(c.outbox)
		delete(s.clients, id)
	}
	s.cancel()
}
