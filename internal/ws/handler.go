package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mierzida/FLP-forBBK/internal/drag"
	"github.com/mierzida/FLP-forBBK/internal/engine"
	"github.com/mierzida/FLP-forBBK/internal/hub"
	"github.com/mierzida/FLP-forBBK/internal/session"
	"github.com/mierzida/FLP-forBBK/pkg/types"
)

// Handler joins a websocket client to a session. `?code=` picks the
// session; `?role=operator` additionally lets the connection send
// commands and receive seat selection events. Everything else is a
// viewer: broadcast payloads only.
func Handler(h *hub.Hub, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("code")
		if code == "" {
			http.Error(w, "missing code", http.StatusBadRequest)
			return
		}
		role := session.RoleViewer
		if r.URL.Query().Get("role") == string(session.RoleOperator) {
			role = session.RoleOperator
		}

		reply := make(chan *session.Session, 1)
		h.Inbox() <- hub.GetSession{Code: code, Reply: reply}
		sess := <-reply
		if sess == nil {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}

		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close(websocket.StatusNormalClosure, "bye")

		clientID := uuid.NewString()
		out := make(chan types.ServerMessage, 32)
		sess.Inbox() <- session.Join{ClientID: clientID, Role: role, Outbox: out}
		defer func() { sess.Inbox() <- session.Leave{ClientID: clientID} }()

		log.Debug("client joined",
			zap.String("code", code),
			zap.String("client", clientID),
			zap.String("role", string(role)))

		writeCtx, writeCancel := context.WithCancel(r.Context())
		defer writeCancel()
		go func() {
			for msg := range out {
				payload, err := json.Marshal(msg)
				if err != nil {
					continue
				}
				ctx, cancel := context.WithTimeout(writeCtx, 3*time.Second)
				_ = conn.Write(ctx, websocket.MessageText, payload)
				cancel()
			}
		}()

		for {
			_, data, err := conn.Read(r.Context())
			if err != nil {
				switch websocket.CloseStatus(err) {
				case websocket.StatusNormalClosure, websocket.StatusGoingAway:
					return
				}
				return
			}
			if role != session.RoleOperator {
				continue // viewers have nothing to say
			}

			var cm types.ClientMessage
			if err := json.Unmarshal(data, &cm); err != nil {
				writeError(r.Context(), conn, "bad json")
				continue
			}
			msg, ok := toSessionMsg(cm)
			if !ok {
				writeError(r.Context(), conn, "unknown type")
				continue
			}
			sess.Inbox() <- msg
		}
	}
}

func writeError(ctx context.Context, conn *websocket.Conn, text string) {
	payload, _ := json.Marshal(types.ServerMessage{Type: "Error", Error: text})
	_ = conn.Write(ctx, websocket.MessageText, payload)
}

func toSessionMsg(m types.ClientMessage) (session.Msg, bool) {
	side, sideOK := parseSide(m.Team)

	switch m.Type {
	case "SetTeamName":
		if !sideOK {
			return nil, false
		}
		return session.SetTeamName{Side: side, Name: m.Name}, true
	case "SetScore":
		if !sideOK {
			return nil, false
		}
		return session.SetScore{Side: side, Score: m.Score}, true
	case "SetColor":
		if !sideOK {
			return nil, false
		}
		return session.SetColor{Side: side, Color: m.Color}, true
	case "SetFormation":
		if !sideOK {
			return nil, false
		}
		return session.SetFormation{Side: side, Formation: engine.ParseFormation(m.Formation)}, true
	case "EditPlayer":
		if !sideOK || m.Player == nil {
			return nil, false
		}
		return session.EditPlayer{Side: side, Seat: m.Seat, Player: engine.Player{
			Number:     m.Player.Number,
			Name:       m.Player.Name,
			YellowCard: m.Player.YellowCard,
			RedCard:    m.Player.RedCard,
			Goals:      m.Player.Goals,
		}}, true
	case "SetVertical":
		return session.SetVertical{Vertical: m.Vertical}, true
	case "ResetLayout":
		return session.ResetLayout{}, true
	case "SwapTeams":
		return session.SwapTeams{}, true
	case "PointerDown", "PointerMove", "PointerUp":
		if !sideOK {
			return nil, false
		}
		kind := session.PointerDown
		switch m.Type {
		case "PointerMove":
			kind = session.PointerMove
		case "PointerUp":
			kind = session.PointerUp
		}
		return session.Pointer{Side: side, Kind: kind, Event: drag.PointerEvent{
			Seat:   m.Seat,
			X:      m.X,
			Y:      m.Y,
			Width:  m.Width,
			Height: m.Height,
		}}, true
	case "LoadFixture":
		if m.FixtureID <= 0 {
			return nil, false
		}
		return session.LoadFixture{FixtureID: m.FixtureID}, true
	case "StopAutoRefresh":
		return session.StopAutoRefresh{}, true
	default:
		return nil, false
	}
}

func parseSide(team string) (engine.TeamSide, bool) {
	switch team {
	case "A":
		return engine.TeamA, true
	case "B":
		return engine.TeamB, true
	default:
		return "", false
	}
}
