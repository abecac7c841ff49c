package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"setsync/internal/core/domain"
)

// handleAudit audits the campaign in the body against the contract named
// in the path and returns the stored report.
func (h *Handler) handleAudit(w http.ResponseWriter, r *http.Request) {
	contractID := chi.URLParam(r, "contract_id")
	var campaign domain.Campaign
	if !h.decodeBody(w, r, &campaign) {
		return
	}
	report, err := h.audit.Audit(r.Context(), contractID, campaign)
	if err != nil {
		h.fail(w, r, "audit", err)
		return
	}
	h.writeJSON(w, http.StatusOK, report)
}

// handleRerunAudit merges the section overrides in the body into the stored
// campaign and audits the result. The body maps section names to objects of
// field overrides.
func (h *Handler) handleRerunAudit(w http.ResponseWriter, r *http.Request) {
	contractID := chi.URLParam(r, "contract_id")
	name := chi.URLParam(r, "campaign_name")
	var updates map[string]json.RawMessage
	if !h.decodeBody(w, r, &updates) {
		return
	}
	report, err := h.audit.Reaudit(r.Context(), contractID, name, updates)
	if err != nil {
		h.fail(w, r, "rerun audit", err)
		return
	}
	h.writeJSON(w, http.StatusOK, report)
}
