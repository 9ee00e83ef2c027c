package projection

import (
	"errors"
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/chaeyoonyunakim/community-pharmacy-workforce-with-open-data/pkg/adapters"
	"github.com/chaeyoonyunakim/community-pharmacy-workforce-with-open-data/pkg/models/api"
	"github.com/chaeyoonyunakim/community-pharmacy-workforce-with-open-data/pkg/services/baseline"
	"github.com/chaeyoonyunakim/community-pharmacy-workforce-with-open-data/pkg/services/forecast"
	"github.com/chaeyoonyunakim/community-pharmacy-workforce-with-open-data/pkg/services/workforce"
)

type Handler struct {
	workforce workforce.Controller
}

func NewHandler(ctrl workforce.Controller) *Handler {
	return &Handler{workforce: ctrl}
}

func (h *Handler) GetRates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	result, err := h.workforce.Rates(ctx)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, adapters.MapGrowthRatesDomainToApi(result.Rates))
}

func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, adapters.MapScenariosDomainToApi(h.workforce.Scenarios()))
}

func (h *Handler) GetSupplyProjections(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	source := sourceParam(r)

	supply, err := h.workforce.Supply(ctx, source)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, adapters.MapSupplyProjectionsDomainToApi(supply))
}

func (h *Handler) GetOpsProjections(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ops, err := h.workforce.Ops(ctx)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, adapters.MapOpsProjectionsDomainToApi(ops))
}

func (h *Handler) GetGap(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	source := sourceParam(r)

	result, err := h.workforce.Gap(ctx, source)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, api.GapReport{
		RunID:       result.RunID,
		GeneratedAt: result.GeneratedAt,
		Source:      result.Source,
		Records:     adapters.MapGapRecordsDomainToApi(result.Records),
	})
}

func sourceParam(r *http.Request) string {
	if source := r.URL.Query().Get("source"); source != "" {
		return source
	}
	return baseline.SourceSurvey
}

func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Str("path", r.URL.Path).
			Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	zerolog.Ctx(r.Context()).Error().
		Err(err).
		Int("status", status).
		Str("path", r.URL.Path).
		Msg("request failed")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encErr := json.NewEncoder(w).Encode(api.Error{Message: err.Error()}); encErr != nil {
		zerolog.Ctx(r.Context()).Error().Err(encErr).Msg("failed to encode error response")
	}
}

// statusFor distinguishes caller mistakes (unknown source or scenario) from
// data preconditions the caller cannot fix by changing the request.
func statusFor(err error) int {
	switch {
	case errors.Is(err, baseline.ErrUnknownSource),
		errors.Is(err, forecast.ErrUnknownScenario):
		return http.StatusBadRequest
	case errors.Is(err, forecast.ErrInsufficientData),
		errors.Is(err, forecast.ErrInvalidBaseline),
		errors.Is(err, forecast.ErrMisalignedSeries):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
