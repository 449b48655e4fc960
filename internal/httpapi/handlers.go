package httpapi

import (
	"crypto/rand"
	"encoding/json"
	"io"
	"math/big"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/mierzida/FLP-forBBK/internal/catalog"
	"github.com/mierzida/FLP-forBBK/internal/engine"
	"github.com/mierzida/FLP-forBBK/internal/hub"
	"github.com/mierzida/FLP-forBBK/internal/session"
)

const maxSnapshotBytes = 1 << 20

func GenerateCode() (string, error) {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	code := make([]byte, 6)
	for i := 0; i < 6; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		code[i] = charset[num.Int64()]
	}
	return string(code), nil
}

func CreateSession(h *hub.Hub, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var code string
		for {
			c, err := GenerateCode()
			if err != nil {
				http.Error(w, "failed to generate code", http.StatusInternalServerError)
				return
			}
			reply := make(chan *session.Session, 1)
			h.Inbox() <- hub.GetSession{Code: c, Reply: reply}
			if <-reply == nil {
				code = c
				break
			}
			log.Debug("code collision, regenerating", zap.String("code", c))
		}

		reply := make(chan *session.Session, 1)
		h.Inbox() <- hub.EnsureSession{Code: code, Reply: reply}
		if <-reply == nil {
			http.Error(w, "failed to create session", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(struct {
			Code string `json:"code"`
		}{Code: code})
	}
}

func getSession(h *hub.Hub, w http.ResponseWriter, r *http.Request) *session.Session {
	code := chi.URLParam(r, "code")
	reply := make(chan *session.Session, 1)
	h.Inbox() <- hub.GetSession{Code: code, Reply: reply}
	sess := <-reply
	if sess == nil {
		http.Error(w, "session not found", http.StatusNotFound)
	}
	return sess
}

// ExportSnapshot hands the full session document to the file-save
// dialog on the operator side.
func ExportSnapshot(h *hub.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := getSession(h, w, r)
		if sess == nil {
			return
		}
		reply := make(chan session.SnapshotResult, 1)
		sess.Inbox() <- session.ExportSnapshot{Reply: reply}
		res := <-reply
		if res.Err != nil {
			http.Error(w, "failed to export snapshot", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(res.Data)
	}
}

func ImportSnapshot(h *hub.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := getSession(h, w, r)
		if sess == nil {
			return
		}
		data, err := io.ReadAll(io.LimitReader(r.Body, maxSnapshotBytes))
		if err != nil {
			http.Error(w, "failed to read snapshot", http.StatusBadRequest)
			return
		}
		reply := make(chan error, 1)
		sess.Inbox() <- session.ImportSnapshot{Data: data, Reply: reply}
		if err := <-reply; err != nil {
			http.Error(w, "invalid snapshot: "+err.Error(), http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func ListCatalog(c *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(c.Teams())
	}
}

// SelectTeam applies a catalog selection event {team, target} to one
// side of the session.
func SelectTeam(h *hub.Hub, c *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := getSession(h, w, r)
		if sess == nil {
			return
		}
		var req struct {
			Team   string `json:"team"`
			Target string `json:"target"` // "A" | "B"
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if req.Target != "A" && req.Target != "B" {
			http.Error(w, "target must be A or B", http.StatusBadRequest)
			return
		}
		team, ok := c.ByID(req.Team)
		if !ok {
			http.Error(w, "unknown team", http.StatusNotFound)
			return
		}

		sess.Inbox() <- session.SetTeamIdentity{
			Side:    engine.TeamSide(req.Target),
			Name:    team.EnglishName,
			LogoID:  team.ID,
			LogoSVG: team.Logos.SVG,
			LogoPNG: team.Logos.PNG,
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
