// CloudCompass - Cloud Provider and Service Model Recommendation
// Copyright 2026 The CloudCompass Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cloudcompass/cloudcompass

package recommend

import "fmt"

// scoreTolerance is the floating tolerance under which two provider scores
// are considered tied.
const scoreTolerance = 1e-9

// Score computes the weighted multi-criteria score for every provider.
//
// For each provider and criterion the user's qualitative rating is mapped to
// an ordinal multiplier, multiplied by the provider's base catalog score and
// by the criterion's weight, then summed across all criteria. The multiplier
// interacts with the weight rather than substituting for it, so a "high" on
// a criterion the provider excels at amplifies that advantage more than a
// flat additive sum would.
//
// Team expertise and industry never participate here; they drive
// service-model selection only, keeping the two decisions orthogonal.
//
// When a region is present, the fixed regional advantage for each provider
// is added after the weighted sum.
func (e *Engine) Score(req Request, weights WeightVector) (ScoreBoard, error) {
	board := make(ScoreBoard, len(providerOrder))

	for _, p := range providerOrder {
		var total float64
		for _, c := range criterionOrder {
			rating := req.Rating(c)
			if !rating.Valid() {
				return nil, fmt.Errorf("%w: %q for criterion %q", ErrInvalidRating, rating, c)
			}
			base, err := CatalogScore(p, c)
			if err != nil {
				return nil, err
			}
			total += weights[c] * e.cfg.Multipliers[rating] * base
		}
		board[p] = total
	}

	if req.Region != "" {
		if mods, ok := regionModifiers[req.Region]; ok {
			for p, boost := range mods {
				board[p] += boost
			}
		}
	}

	return board, nil
}

// Winner selects the provider with the strictly maximum score. Providers
// tied within floating tolerance resolve by fixed priority aws > azure > gcp
// so identical inputs always yield identical output.
func (e *Engine) Winner(board ScoreBoard) Provider {
	best := providerOrder[0]
	for _, p := range providerOrder[1:] {
		if board[p] > board[best]+scoreTolerance {
			best = p
		}
	}
	return best
}
