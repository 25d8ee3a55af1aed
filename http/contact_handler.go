package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"wealth-site/domain"
	"wealth-site/service"
)

const maxContactBodyBytes = 64 << 10

type ContactHandler struct {
	service *service.LeadService
	logger  *zap.Logger
}

func NewContactHandler(service *service.LeadService, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{service: service, logger: logger}
}

type contactResponse struct {
	Success bool `json:"success"`
}

// Submit handles POST /api/contact.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var lead domain.Lead
	r.Body = http.MaxBytesReader(w, r.Body, maxContactBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&lead); err != nil {
		// unreadable bodies fall into the same catch-all as transport failures
		h.logger.Warn("invalid contact body", zap.Error(err))
		writeError(w, h.logger, http.StatusInternalServerError, service.MsgUnableToSend)
		return
	}

	_, err := h.service.Submit(r.Context(), lead)
	switch {
	case err == nil:
		writeJSON(w, h.logger, http.StatusOK, contactResponse{Success: true})
	case errors.Is(err, service.ErrValidation):
		writeError(w, h.logger, http.StatusBadRequest, service.MsgMissingFields)
	case errors.Is(err, service.ErrNotConfigured):
		writeError(w, h.logger, http.StatusInternalServerError, service.MsgNotConfigured)
	default:
		writeError(w, h.logger, http.StatusInternalServerError, service.MsgUnableToSend)
	}
}
