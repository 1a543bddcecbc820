// CloudCompass - Cloud Provider and Service Model Recommendation
// Copyright 2026 The CloudCompass Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cloudcompass/cloudcompass

package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	json "github.com/goccy/go-json"

	"github.com/cloudcompass/cloudcompass/internal/logging"
	"github.com/cloudcompass/cloudcompass/internal/metrics"
	"github.com/cloudcompass/cloudcompass/internal/middleware"
	"github.com/cloudcompass/cloudcompass/internal/models"
	"github.com/cloudcompass/cloudcompass/internal/recommend"
	"github.com/cloudcompass/cloudcompass/internal/validation"
)

// maxBodyBytes bounds the request body. Recommendation payloads are tiny;
// anything near this limit is abuse.
const maxBodyBytes = 64 << 10

// Handler serves the recommendation API endpoints.
type Handler struct {
	engine *recommend.Engine
}

// NewHandler builds a Handler around a ready engine.
func NewHandler(engine *recommend.Engine) *Handler {
	return &Handler{engine: engine}
}

// Health reports overall service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "cloudcompass",
	}, time.Now())
}

// HealthLive is the liveness probe. It answers as long as the process
// serves requests.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, http.StatusOK, map[string]string{"status": "alive"}, time.Now())
}

// HealthReady is the readiness probe. The engine validates its catalog at
// construction, so a running handler is always ready.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, http.StatusOK, map[string]string{"status": "ready"}, time.Now())
}

// RecommendUsage answers GET on the recommend endpoint with a usage hint
// instead of a bare 405, since browsers hit it first.
func (h *Handler) RecommendUsage(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, http.StatusOK, map[string]interface{}{
		"message": "send a POST request with a JSON body to get a recommendation",
		"example": map[string]string{
			"budget":         "high",
			"scalability":    "high",
			"security":       "medium",
			"ease_of_use":    "medium",
			"free_tier":      "low",
			"team_expertise": "medium",
			"industry":       "fintech",
		},
	}, time.Now())
}

// Recommend handles POST /api/v1/recommend: decode, validate, run the
// engine, and wrap the result in the response envelope.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)
	log := logging.Ctx(ctx)

	var payload models.RecommendRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		metrics.RecordValidationFailure("/api/v1/recommend")
		respondError(w, r, http.StatusBadRequest, &models.APIError{
			Code:    "INVALID_BODY",
			Message: "request body must be a JSON object",
		})
		return
	}

	payload.Canonicalize()
	if err := validation.ValidateStruct(&payload); err != nil {
		metrics.RecordValidationFailure("/api/v1/recommend")
		var verr *validation.RequestValidationError
		if errors.As(err, &verr) {
			log.Debug().
				Int("failures", len(verr.Errors)).
				Msg("request validation failed")
			respondError(w, r, http.StatusBadRequest, verr.ToAPIError())
			return
		}
		respondError(w, r, http.StatusBadRequest, &models.APIError{
			Code:    "VALIDATION_ERROR",
			Message: "request validation failed",
		})
		return
	}

	resp, err := h.engine.Recommend(ctx, payload.ToEngineRequest(requestID))
	if err != nil {
		switch {
		case errors.Is(err, recommend.ErrInvalidRating):
			metrics.RecordRecommendationError("invalid_rating")
			respondError(w, r, http.StatusBadRequest, &models.APIError{
				Code:    "INVALID_RATING",
				Message: sanitizeLogValue(err.Error()),
			})
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			// Client went away; nothing useful to write.
			metrics.RecordRecommendationError("canceled")
		default:
			metrics.RecordRecommendationError("internal")
			log.Error().Err(err).Msg("recommendation failed")
			respondError(w, r, http.StatusInternalServerError, &models.APIError{
				Code:    "INTERNAL_ERROR",
				Message: "recommendation engine failure",
			})
		}
		return
	}

	metrics.RecordRecommendation(string(resp.Provider), string(resp.ServiceModel), time.Since(start))
	respondSuccess(w, r, http.StatusOK, resp, start)
}
