package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"setsync/internal/core/domain"
)

type contractSummary struct {
	ContractID string            `json:"contract_id"`
	ClientName string            `json:"client_name"`
	Guardrails domain.Guardrails `json:"guardrails"`
}

func (h *Handler) handleContract(w http.ResponseWriter, r *http.Request) {
	c, err := h.view.Contract(r.Context(), chi.URLParam(r, "contract_id"))
	if err != nil {
		h.fail(w, r, "contract", err)
		return
	}
	h.writeJSON(w, http.StatusOK, contractSummary{ContractID: c.ContractID, ClientName: c.ClientName, Guardrails: c.Guardrails})
}

func (h *Handler) handleCampaign(w http.ResponseWriter, r *http.Request) {
	c, err := h.view.Campaign(r.Context(), chi.URLParam(r, "campaign_name"))
	if err != nil {
		h.fail(w, r, "campaign", err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

func (h *Handler) handleDiff(w http.ResponseWriter, r *http.Request) {
	diffs, err := h.view.FieldDiffs(r.Context(), chi.URLParam(r, "campaign_name"))
	if err != nil {
		h.fail(w, r, "diff", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"diffs": diffs})
}

func (h *Handler) handleFlags(w http.ResponseWriter, r *http.Request) {
	flags, err := h.view.Flags(r.Context(), chi.URLParam(r, "campaign_name"))
	if err != nil {
		h.fail(w, r, "flags", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"flags": flags})
}

func (h *Handler) handleScore(w http.ResponseWriter, r *http.Request) {
	score, err := h.view.Score(r.Context(), chi.URLParam(r, "campaign_name"))
	if err != nil {
		h.fail(w, r, "score", err)
		return
	}
	h.writeJSON(w, http.StatusOK, score)
}

// handlePillar returns one pillar snapshot of the last report. Unknown
// pillar names are a 404.
func (h *Handler) handlePillar(w http.ResponseWriter, r *http.Request) {
	p, ok := domain.ParsePillar(chi.URLParam(r, "pillar"))
	if !ok {
		h.writeDetail(w, http.StatusNotFound, "Pillar not found")
		return
	}
	ps, err := h.view.Pillar(r.Context(), chi.URLParam(r, "campaign_name"), p)
	if err != nil {
		h.fail(w, r, "pillar", err)
		return
	}
	h.writeJSON(w, http.StatusOK, ps)
}
