// CloudCompass - Cloud Provider and Service Model Recommendation
// Copyright 2026 The CloudCompass Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cloudcompass/cloudcompass

package recommend

// weightTolerance bounds the floating error accepted when checking that a
// weight vector sums to 1.0.
const weightTolerance = 1e-6

// NormalizeWeights turns raw user-supplied importance values into a weight
// vector on the probability simplex. Negative values are clamped to zero and
// missing criteria count as zero. If raw is nil, or no value survives
// clamping with a positive sum, the default weights are returned and the
// second result is true.
//
// Malformed numeric input never raises an error; the lenient-degrade policy
// leaves pre-validation of numeric fields to the transport layer.
func NormalizeWeights(raw map[Criterion]float64) (WeightVector, bool) {
	if raw == nil {
		return DefaultWeights(), true
	}

	clamped := make(WeightVector, len(criterionOrder))
	var sum float64
	for _, c := range criterionOrder {
		v := raw[c]
		if v < 0 || v != v { // clamp negatives and NaN
			v = 0
		}
		clamped[c] = v
		sum += v
	}

	if sum <= 0 {
		return DefaultWeights(), true
	}

	for c, v := range clamped {
		clamped[c] = v / sum
	}
	return clamped, false
}
