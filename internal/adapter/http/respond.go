package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"setsync/internal/core/domain"
	"setsync/internal/core/port"
)

// errorBody is the envelope of every error response.
type errorBody struct {
	Detail any `json:"detail"`
}

type validationDetail struct {
	Error   string `json:"error"`
	Section string `json:"section,omitempty"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

type rejectionDetail struct {
	Error      string   `json:"error"`
	Violations []string `json:"violations"`
	Message    string   `json:"message"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

func (h *Handler) writeDetail(w http.ResponseWriter, status int, detail any) {
	h.writeJSON(w, status, errorBody{Detail: detail})
}

// fail maps a use case error to its response.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	var (
		ve  *domain.ValidationError
		rej *port.RejectedError
	)
	switch {
	case errors.As(err, &rej):
		h.writeDetail(w, http.StatusUnprocessableEntity, rejectionDetail{
			Error:      "Compliance Check Failed",
			Violations: rej.Violations,
			Message:    "Campaign cannot be published until all legal guardrails are met.",
		})
	case errors.As(err, &ve):
		h.writeDetail(w, http.StatusBadRequest, validationDetail{
			Error:   "Validation Failed",
			Section: ve.Section,
			Field:   ve.Field,
			Message: ve.Error(),
		})
	case errors.Is(err, port.ErrContractNotFound):
		h.writeDetail(w, http.StatusNotFound, "Contract not found")
	case errors.Is(err, port.ErrCampaignNotFound):
		h.writeDetail(w, http.StatusNotFound, "Campaign not found")
	case errors.Is(err, port.ErrPillarNotFound):
		h.writeDetail(w, http.StatusNotFound, "Pillar not found")
	case errors.Is(err, port.ErrCampaignNotAudited) && op == "publish":
		h.writeDetail(w, http.StatusBadRequest, "Campaign must be audited before publishing.")
	case errors.Is(err, port.ErrCampaignNotAudited):
		h.writeDetail(w, http.StatusNotFound, "Campaign has not been audited.")
	default:
		h.logger.Error(op+" error",
			slog.Any("error", err),
			slog.String("path", r.URL.Path),
		)
		h.writeDetail(w, http.StatusInternalServerError, "internal error")
	}
}

// decodeBody reads a JSON body into dst, enforcing the size cap. It writes
// the 400 response itself and reports whether decoding succeeded.
func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBody)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.writeDetail(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			h.fail(w, r, "decode", ve)
			return false
		}
		h.writeDetail(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return false
	}
	return true
}
