// CloudCompass - Cloud Provider and Service Model Recommendation
// Copyright 2026 The CloudCompass Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cloudcompass/cloudcompass

package recommend

import "math"

// EstimateCost computes an indicative monthly cost in USD for a provider
// from the mock pricing table and the request profile. Deterministic, no
// external pricing APIs. Returns 0 for a provider missing from the table.
//
// Multipliers are additive on top of the base compute+storage total:
// high scalability +30% (medium +15%), high security +20% (medium +10%),
// low team expertise +10% for the extra managed tooling it implies.
func EstimateCost(req Request, p Provider) float64 {
	bases, ok := basePricing[p]
	if !ok {
		return 0
	}

	mult := 1.0
	switch req.Scalability {
	case RatingHigh:
		mult += 0.30
	case RatingMedium:
		mult += 0.15
	}
	switch req.Security {
	case RatingHigh:
		mult += 0.20
	case RatingMedium:
		mult += 0.10
	}
	if req.TeamExpertise == RatingLow {
		mult += 0.10
	}

	return math.Round((bases.Compute + bases.Storage) * mult)
}

// EstimateCosts returns the estimated monthly cost for every provider.
func EstimateCosts(req Request) map[Provider]float64 {
	costs := make(map[Provider]float64, len(providerOrder))
	for _, p := range providerOrder {
		costs[p] = EstimateCost(req, p)
	}
	return costs
}
