package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"growth-projector/domain"
	"growth-projector/service"
)

const maxBodyBytes = 1 << 16

type GrowthHandler struct {
	service  *service.GrowthService
	defaults domain.GrowthInput
	logger   *slog.Logger
}

func NewGrowthHandler(
	service *service.GrowthService,
	defaults domain.GrowthInput,
	logger *slog.Logger,
) *GrowthHandler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &GrowthHandler{service: service, defaults: defaults, logger: logger}
}

type pointResponse struct {
	Year    int     `json:"year"`
	Value   float64 `json:"value"`
	Display float64 `json:"display"`
}

type projectionResponse struct {
	Input       domain.GrowthInput `json:"input"`
	Rate        float64            `json:"rate"`
	RatePercent float64            `json:"ratePercent"`
	Series      []pointResponse    `json:"series"`
	Summary     string             `json:"summary"`
}

func newProjectionResponse(p domain.Projection) projectionResponse {
	points := make([]pointResponse, 0, len(p.Series))
	for _, pt := range p.Series {
		points = append(points, pointResponse{
			Year:    pt.Year,
			Value:   pt.Value,
			Display: service.CeilToOneDecimal(pt.Value),
		})
	}
	return projectionResponse{
		Input:       p.Input,
		Rate:        p.Rate,
		RatePercent: service.RoundTo2Decimals(p.Rate * 100),
		Series:      points,
		Summary:     p.Summary,
	}
}

// Project serves GET (query parameters with defaults) and POST (JSON body).
func (h *GrowthHandler) Project(w http.ResponseWriter, r *http.Request) {
	var input domain.GrowthInput

	switch r.Method {
	case http.MethodGet:
		query := r.URL.Query()
		if !HasAllParams(query) {
			h.logger.Debug("incomplete query, filling from defaults", slog.String("query", r.URL.RawQuery))
		}
		input = InputFromQuery(query, h.defaults)
	case http.MethodPost:
		if !strings.Contains(r.Header.Get("Content-Type"), "application/json") {
			http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
			return
		}
		dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&input); err != nil {
			h.logger.Debug("invalid projection body", slog.String("error", err.Error()))
			writeError(w, h.logger, http.StatusBadRequest, errors.New("invalid request body"))
			return
		}
	default:
		w.Header().Set("Allow", "GET, POST")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	result, err := h.service.Project(r.Context(), input)
	if err != nil {
		if service.IsValidation(err) {
			writeError(w, h.logger, http.StatusBadRequest, err)
			return
		}
		h.logger.Error("projection failed", slog.String("error", err.Error()))
		writeError(w, h.logger, http.StatusInternalServerError, errors.New("internal server error"))
		return
	}

	writeJSON(w, h.logger, http.StatusOK, newProjectionResponse(result))
}
