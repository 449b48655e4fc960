package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/mierzida/FLP-forBBK/internal/catalog"
	"github.com/mierzida/FLP-forBBK/internal/hub"
	"github.com/mierzida/FLP-forBBK/internal/ws"
)

func SetupRoutes(h *hub.Hub, c *catalog.Catalog, log *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Post("/sessions", CreateSession(h, log))
	r.Get("/sessions/{code}/snapshot", ExportSnapshot(h))
	r.Put("/sessions/{code}/snapshot", ImportSnapshot(h))
	r.Post("/sessions/{code}/team", SelectTeam(h, c))
	r.Get("/catalog/teams", ListCatalog(c))
	r.Get("/healthz", Healthz)
	r.Get("/ws", ws.Handler(h, log))
	return r
}
