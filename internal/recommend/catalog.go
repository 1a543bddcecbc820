// CloudCompass - Cloud Provider and Service Model Recommendation
// Copyright 2026 The CloudCompass Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cloudcompass/cloudcompass

package recommend

import (
	"fmt"
	"math"
)

// Provider catalog: base scores per criterion on a 3-10 scale. Each provider
// is deliberately specialized with clear strengths and weaknesses so that
// different inputs yield different winners. Reference data, never derived
// from user input.
var providerCatalog = map[Provider]map[Criterion]float64{
	ProviderAWS: {
		CriterionScalability: 10,
		CriterionSecurity:    9,
		CriterionEaseOfUse:   7,
		CriterionBudget:      6,
		CriterionFreeTier:    5,
	},
	ProviderAzure: {
		CriterionSecurity:    10,
		CriterionScalability: 8,
		CriterionEaseOfUse:   6,
		CriterionBudget:      5,
		CriterionFreeTier:    4,
	},
	ProviderGCP: {
		CriterionFreeTier:    10,
		CriterionBudget:      9,
		CriterionEaseOfUse:   9,
		CriterionScalability: 7,
		CriterionSecurity:    6,
	},
}

// providerStrengths feeds the explanation generator. At most the first three
// entries are quoted per provider.
var providerStrengths = map[Provider][]string{
	ProviderAWS: {
		"Broadest service catalog and global footprint",
		"Strong enterprise and compliance offerings",
		"Leading scalability and security",
	},
	ProviderAzure: {
		"Deep integration with Microsoft stack and hybrid cloud",
		"Strong compliance and government offerings",
		"Top-tier security and enterprise focus",
	},
	ProviderGCP: {
		"Strong data and ML/AI capabilities",
		"Generous free tier and sustained-use discounts",
		"Cost-effective and developer-friendly",
	},
}

// defaultWeights is the fallback importance distribution. Must sum to 1.0.
var defaultWeights = WeightVector{
	CriterionBudget:      0.25,
	CriterionScalability: 0.20,
	CriterionSecurity:    0.25,
	CriterionEaseOfUse:   0.15,
	CriterionFreeTier:    0.15,
}

// DefaultWeights returns a copy of the default weight vector.
func DefaultWeights() WeightVector {
	out := make(WeightVector, len(defaultWeights))
	for c, w := range defaultWeights {
		out[c] = w
	}
	return out
}

// regionModifiers are small non-negative per-provider boosts applied after
// base scoring when a deployment region is given. Non-negative keeps final
// scores non-negative.
var regionModifiers = map[Region]map[Provider]float64{
	RegionIndia:  {ProviderAWS: 0.2, ProviderAzure: 0.3, ProviderGCP: 0.1},
	RegionUS:     {ProviderAWS: 0.3, ProviderAzure: 0.2, ProviderGCP: 0.2},
	RegionEurope: {ProviderAWS: 0.2, ProviderAzure: 0.3, ProviderGCP: 0.2},
}

// basePricing is mock monthly pricing in USD used for cost estimates only.
// It never participates in provider scoring.
var basePricing = map[Provider]struct {
	Compute float64
	Storage float64
}{
	ProviderAWS:   {Compute: 120, Storage: 40},
	ProviderAzure: {Compute: 110, Storage: 45},
	ProviderGCP:   {Compute: 100, Storage: 35},
}

// CatalogScore returns the base score for a provider/criterion pair.
// A missing entry is a deployment defect and yields ErrInvalidCatalog.
func CatalogScore(p Provider, c Criterion) (float64, error) {
	scores, ok := providerCatalog[p]
	if !ok {
		return 0, fmt.Errorf("%w: no entry for provider %q", ErrInvalidCatalog, p)
	}
	score, ok := scores[c]
	if !ok {
		return 0, fmt.Errorf("%w: provider %q missing criterion %q", ErrInvalidCatalog, p, c)
	}
	return score, nil
}

// Strengths returns the catalog strengths for a provider, or nil if unknown.
func Strengths(p Provider) []string {
	s := providerStrengths[p]
	out := make([]string, len(s))
	copy(out, s)
	return out
}

// ValidateCatalog verifies the reference data is internally consistent:
// every provider/criterion pair is present with a finite positive score, and
// the default weights form a probability simplex. Called at engine
// construction so a broken catalog aborts startup instead of fabricating
// partial scores.
func ValidateCatalog() error {
	for _, p := range providerOrder {
		for _, c := range criterionOrder {
			score, err := CatalogScore(p, c)
			if err != nil {
				return err
			}
			if math.IsNaN(score) || math.IsInf(score, 0) || score <= 0 {
				return fmt.Errorf("%w: provider %q criterion %q has score %v", ErrInvalidCatalog, p, c, score)
			}
		}
		if _, ok := basePricing[p]; !ok {
			return fmt.Errorf("%w: provider %q missing pricing", ErrInvalidCatalog, p)
		}
	}

	var sum float64
	for _, c := range criterionOrder {
		w, ok := defaultWeights[c]
		if !ok || w <= 0 {
			return fmt.Errorf("%w: default weight for criterion %q missing or non-positive", ErrInvalidCatalog, c)
		}
		sum += w
	}
	if math.Abs(sum-1.0) > weightTolerance {
		return fmt.Errorf("%w: default weights sum to %v, want 1.0", ErrInvalidCatalog, sum)
	}
	return nil
}
