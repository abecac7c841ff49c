package httpadapter

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"setsync/internal/core/domain"
)

type publishResponse struct {
	Status       string        `json:"status"`
	Message      string        `json:"message"`
	CampaignName string        `json:"campaign_name"`
	Campaign     domain.Status `json:"campaign_status"`
	AlreadyLive  bool          `json:"already_live"`
}

// handlePublishLive moves a certified campaign to LIVE.
func (h *Handler) handlePublishLive(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "campaign_name")
	res, err := h.publish.Publish(r.Context(), name)
	if err != nil {
		h.fail(w, r, "publish", err)
		return
	}
	h.writeJSON(w, http.StatusOK, publishResponse{
		Status:       "SUCCESS",
		Message:      fmt.Sprintf("Campaign '%s' is now LIVE.", res.CampaignName),
		CampaignName: res.CampaignName,
		Campaign:     res.Status,
		AlreadyLive:  res.AlreadyLive,
	})
}
