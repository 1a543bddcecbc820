// CloudCompass - Cloud Provider and Service Model Recommendation
// Copyright 2026 The CloudCompass Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cloudcompass/cloudcompass

package models

import (
	"strings"

	"github.com/cloudcompass/cloudcompass/internal/recommend"
)

// RecommendRequest is the JSON payload of POST /api/v1/recommend.
//
// Every qualitative field is required and must be one of low/medium/high;
// industry must be one of the supported values. Weights is optional and
// deliberately lenient: unknown keys are ignored and negative or degenerate
// values fall back to the default weight vector inside the engine, so no
// validation tag constrains it.
type RecommendRequest struct {
	Budget        string             `json:"budget" validate:"required,oneof=low medium high"`
	Scalability   string             `json:"scalability" validate:"required,oneof=low medium high"`
	Security      string             `json:"security" validate:"required,oneof=low medium high"`
	EaseOfUse     string             `json:"ease_of_use" validate:"required,oneof=low medium high"`
	FreeTier      string             `json:"free_tier" validate:"required,oneof=low medium high"`
	TeamExpertise string             `json:"team_expertise" validate:"required,oneof=low medium high"`
	Industry      string             `json:"industry" validate:"required,oneof=general fintech healthcare ai"`
	Region        string             `json:"region,omitempty" validate:"omitempty,oneof=india us europe"`
	Weights       map[string]float64 `json:"weights,omitempty"`
}

// Canonicalize trims whitespace and lowercases the enumerated string fields
// so validation and the engine see canonical values regardless of client
// casing.
func (r *RecommendRequest) Canonicalize() {
	for _, f := range []*string{
		&r.Budget, &r.Scalability, &r.Security, &r.EaseOfUse,
		&r.FreeTier, &r.TeamExpertise, &r.Industry, &r.Region,
	} {
		*f = strings.ToLower(strings.TrimSpace(*f))
	}
}

// ToEngineRequest converts the validated payload into an engine request.
// Weight keys outside the criterion set are dropped; the engine's lenient
// normalization handles everything else.
func (r *RecommendRequest) ToEngineRequest(requestID string) recommend.Request {
	req := recommend.Request{
		Budget:        recommend.Rating(r.Budget),
		Scalability:   recommend.Rating(r.Scalability),
		Security:      recommend.Rating(r.Security),
		EaseOfUse:     recommend.Rating(r.EaseOfUse),
		FreeTier:      recommend.Rating(r.FreeTier),
		TeamExpertise: recommend.Rating(r.TeamExpertise),
		Industry:      recommend.Industry(r.Industry),
		Region:        recommend.Region(r.Region),
		RequestID:     requestID,
	}

	if r.Weights != nil {
		weights := make(map[recommend.Criterion]float64, len(r.Weights))
		for _, c := range recommend.Criteria() {
			if v, ok := r.Weights[string(c)]; ok {
				weights[c] = v
			}
		}
		req.Weights = weights
	}

	return req
}
