// CloudCompass - Cloud Provider and Service Model Recommendation
// Copyright 2026 The CloudCompass Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cloudcompass/cloudcompass

package recommend

import "errors"

// Provider identifies a cloud provider in the fixed catalog.
type Provider string

const (
	ProviderAWS   Provider = "aws"
	ProviderAzure Provider = "azure"
	ProviderGCP   Provider = "gcp"
)

// providerOrder is the fixed enumeration order. It doubles as the tie-break
// priority: earlier providers win ties. Never reorder.
var providerOrder = [...]Provider{ProviderAWS, ProviderAzure, ProviderGCP}

// Providers returns all catalog providers in fixed enumeration order.
func Providers() []Provider {
	out := make([]Provider, len(providerOrder))
	copy(out, providerOrder[:])
	return out
}

// Criterion is one of the five weighted decision factors.
type Criterion string

const (
	CriterionBudget      Criterion = "budget"
	CriterionScalability Criterion = "scalability"
	CriterionSecurity    Criterion = "security"
	CriterionEaseOfUse   Criterion = "ease_of_use"
	CriterionFreeTier    Criterion = "free_tier"
)

var criterionOrder = [...]Criterion{
	CriterionBudget,
	CriterionScalability,
	CriterionSecurity,
	CriterionEaseOfUse,
	CriterionFreeTier,
}

// Criteria returns all decision criteria in fixed enumeration order.
func Criteria() []Criterion {
	out := make([]Criterion, len(criterionOrder))
	copy(out, criterionOrder[:])
	return out
}

// Rating is a qualitative user rating for a criterion or for team expertise.
type Rating string

const (
	RatingLow    Rating = "low"
	RatingMedium Rating = "medium"
	RatingHigh   Rating = "high"
)

// Valid reports whether the rating is one of low, medium, high.
func (r Rating) Valid() bool {
	switch r {
	case RatingLow, RatingMedium, RatingHigh:
		return true
	default:
		return false
	}
}

// Industry identifies the user's industry context. It participates only in
// service-model selection, never in provider scoring.
type Industry string

const (
	IndustryGeneral    Industry = "general"
	IndustryFintech    Industry = "fintech"
	IndustryHealthcare Industry = "healthcare"
	IndustryAI         Industry = "ai"
)

// Region identifies an optional deployment region. When present, a small
// fixed per-provider advantage is added after base scoring.
type Region string

const (
	RegionIndia  Region = "india"
	RegionUS     Region = "us"
	RegionEurope Region = "europe"
)

// ServiceModel is the recommended deployment abstraction level.
type ServiceModel string

const (
	ServiceModelIaaS ServiceModel = "IaaS"
	ServiceModelPaaS ServiceModel = "PaaS"
	ServiceModelSaaS ServiceModel = "SaaS"
)

// ConfidenceLevel is the qualitative confidence bucket.
type ConfidenceLevel string

const (
	ConfidenceLow      ConfidenceLevel = "low"
	ConfidenceModerate ConfidenceLevel = "moderate"
	ConfidenceHigh     ConfidenceLevel = "high"
)

// WeightVector maps each criterion to a non-negative weight. After
// normalization the values sum to 1.0 within floating tolerance.
type WeightVector map[Criterion]float64

// ScoreBoard maps every provider to its final numeric score. A well-formed
// board has exactly one entry per provider, all finite and non-negative.
type ScoreBoard map[Provider]float64

// Request is a validated recommendation request. The HTTP layer is
// responsible for rejecting malformed payloads before constructing one.
type Request struct {
	Budget        Rating                `json:"budget"`
	Scalability   Rating                `json:"scalability"`
	Security      Rating                `json:"security"`
	EaseOfUse     Rating                `json:"ease_of_use"`
	FreeTier      Rating                `json:"free_tier"`
	TeamExpertise Rating                `json:"team_expertise"`
	Industry      Industry              `json:"industry"`
	Region        Region                `json:"region,omitempty"`
	Weights       map[Criterion]float64 `json:"weights,omitempty"`
	RequestID     string                `json:"request_id,omitempty"`
}

// Rating returns the user's qualitative rating for the given criterion.
func (r Request) Rating(c Criterion) Rating {
	switch c {
	case CriterionBudget:
		return r.Budget
	case CriterionScalability:
		return r.Scalability
	case CriterionSecurity:
		return r.Security
	case CriterionEaseOfUse:
		return r.EaseOfUse
	case CriterionFreeTier:
		return r.FreeTier
	default:
		return ""
	}
}

// Confidence describes how decisively the winner beat the runner-up.
type Confidence struct {
	Percent int             `json:"percent"`
	Level   ConfidenceLevel `json:"level"`
}

// Alternative explains why a non-winning provider was not recommended.
type Alternative struct {
	Provider Provider `json:"provider"`
	Reason   string   `json:"reason"`
}

// Response is the complete recommendation. It is constructed fresh per
// request and never mutated afterwards.
type Response struct {
	Provider           Provider             `json:"recommended_provider"`
	ServiceModel       ServiceModel         `json:"recommended_service_model"`
	ServiceModelReason string               `json:"service_model_reason"`
	Scores             ScoreBoard           `json:"final_scores"`
	Confidence         Confidence           `json:"confidence"`
	Explanation        []string             `json:"explanation"`
	Alternatives       []Alternative        `json:"why_not"`
	EstimatedCosts     map[Provider]float64 `json:"estimated_costs"`
}

var (
	// ErrInvalidRating indicates a qualitative rating outside low/medium/high.
	ErrInvalidRating = errors.New("invalid rating")

	// ErrInvalidCatalog indicates the provider catalog is missing an entry.
	// This is a configuration integrity defect, not a user error; callers
	// must abort rather than produce a partial score.
	ErrInvalidCatalog = errors.New("invalid catalog")
)
