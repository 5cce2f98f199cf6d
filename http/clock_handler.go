package http

import (
	"io"
	"log/slog"
	"net/http"

	"growth-projector/service"
)

const defaultTimeZone = "UTC"

type ClockHandler struct {
	service *service.ClockService
	logger  *slog.Logger
}

func NewClockHandler(service *service.ClockService, logger *slog.Logger) *ClockHandler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &ClockHandler{service: service, logger: logger}
}

// Now reports the time period for the zone named by the tz parameter.
func (h *ClockHandler) Now(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	tz := r.URL.Query().Get("tz")
	if tz == "" {
		tz = defaultTimeZone
	}

	reading, err := h.service.Read(tz)
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, reading)
}
