// CloudCompass - Cloud Provider and Service Model Recommendation
// Copyright 2026 The CloudCompass Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cloudcompass/cloudcompass

package recommend

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Engine runs the recommendation pipeline. It holds only immutable
// configuration and a logger, so it is safe for concurrent use without
// locking.
type Engine struct {
	cfg    *Config
	logger zerolog.Logger
}

// NewEngine creates an engine after validating both the tunable
// configuration and the static catalog. A catalog integrity failure is a
// deployment defect and must abort startup.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewEngine(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if err := ValidateCatalog(); err != nil {
		return nil, err
	}

	return &Engine{
		cfg:    cfg,
		logger: logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// Recommend runs the full decision pipeline: weight normalization, weighted
// scoring, winner selection, service-model selection, confidence derivation,
// and explanation generation. Every step is a pure function over the same
// inputs; the ctx parameter exists only so callers can abandon a request
// before the (cheap, fixed-cost) computation starts.
func (e *Engine) Recommend(ctx context.Context, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !req.TeamExpertise.Valid() {
		return nil, fmt.Errorf("%w: %q for team expertise", ErrInvalidRating, req.TeamExpertise)
	}

	weights, usedDefaults := NormalizeWeights(req.Weights)
	if usedDefaults && req.Weights != nil {
		e.logger.Debug().
			Str("request_id", req.RequestID).
			Msg("degenerate custom weights, falling back to defaults")
	}

	board, err := e.Score(req, weights)
	if err != nil {
		return nil, err
	}

	winner := e.Winner(board)
	model, modelReason := SelectModel(req)
	confidence := e.Confidence(board)

	resp := &Response{
		Provider:           winner,
		ServiceModel:       model,
		ServiceModelReason: modelReason,
		Scores:             board,
		Confidence:         confidence,
		Explanation:        e.Explain(req, weights, board, winner, model, modelReason),
		Alternatives:       e.WhyNot(board, winner),
		EstimatedCosts:     EstimateCosts(req),
	}

	e.logger.Info().
		Str("request_id", req.RequestID).
		Str("provider", string(winner)).
		Str("service_model", string(model)).
		Int("confidence_percent", confidence.Percent).
		Msg("recommendation computed")

	return resp, nil
}
