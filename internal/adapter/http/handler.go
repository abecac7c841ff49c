package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"setsync/internal/core/port"
)

const defaultMaxBodyBytes = 1 << 20

// Handler is the inbound HTTP adapter. It decodes requests, calls the use
// cases and maps their errors onto status codes.
type Handler struct {
	audit   port.AuditUseCase
	publish port.PublishUseCase
	view    port.ViewUseCase
	logger  *slog.Logger
	maxBody int64
	router  chi.Router
}

// NewHandler creates a handler with all routes configured. maxBody caps
// request bodies; zero or less selects 1 MiB.
func NewHandler(audit port.AuditUseCase, publish port.PublishUseCase, view port.ViewUseCase, logger *slog.Logger, maxBody int64) *Handler {
	if maxBody <= 0 {
		maxBody = defaultMaxBodyBytes
	}
	h := &Handler{audit: audit, publish: publish, view: view, logger: logger, maxBody: maxBody}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.handleHealth)

	r.Post("/audit/{contract_id}", h.handleAudit)
	r.Post("/rerun-audit/{contract_id}/{campaign_name}", h.handleRerunAudit)
	r.Post("/publish-live/{campaign_name}", h.handlePublishLive)

	r.Get("/contracts/{contract_id}", h.handleContract)
	r.Route("/campaigns/{campaign_name}", func(r chi.Router) {
		r.Get("/", h.handleCampaign)
		r.Get("/diff", h.handleDiff)
		r.Get("/flags", h.handleFlags)
		r.Get("/score", h.handleScore)
		r.Get("/pillars/{pillar}", h.handlePillar)
	})

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
