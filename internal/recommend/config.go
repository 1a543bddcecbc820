// CloudCompass - Cloud Provider and Service Model Recommendation
// Copyright 2026 The CloudCompass Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cloudcompass/cloudcompass

package recommend

import "fmt"

// Config holds the tunable constants of the decision engine. The defaults
// are inherited heuristics, not load-bearing invariants, so they are kept
// adjustable rather than hardcoded.
type Config struct {
	// Multipliers translate a qualitative rating into an ordinal factor
	// that amplifies or dampens a provider's base score for a criterion.
	Multipliers map[Rating]float64

	// StrongDiff and ModerateDiff are the score-difference thresholds that
	// pick the why-not phrasing tier: diff > StrongDiff is a strong gap,
	// ModerateDiff < diff <= StrongDiff a moderate one, anything smaller
	// marginal. StrongDiff must exceed ModerateDiff.
	StrongDiff   float64
	ModerateDiff float64

	// HighConfidencePercent and ModerateConfidencePercent partition the
	// 0-100 confidence range: above High is high, from Moderate to High
	// inclusive is moderate, below Moderate is low.
	HighConfidencePercent     int
	ModerateConfidencePercent int
}

// DefaultConfig returns the engine defaults inherited from the tuned
// production heuristics.
func DefaultConfig() *Config {
	return &Config{
		Multipliers: map[Rating]float64{
			RatingLow:    0.5,
			RatingMedium: 1.0,
			RatingHigh:   1.5,
		},
		StrongDiff:                2.0,
		ModerateDiff:              0.6,
		HighConfidencePercent:     20,
		ModerateConfidencePercent: 10,
	}
}

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	for _, r := range []Rating{RatingLow, RatingMedium, RatingHigh} {
		m, ok := c.Multipliers[r]
		if !ok {
			return fmt.Errorf("multiplier for rating %q is missing", r)
		}
		if m <= 0 {
			return fmt.Errorf("multiplier for rating %q must be positive, got %v", r, m)
		}
	}
	if c.ModerateDiff <= 0 {
		return fmt.Errorf("moderate diff threshold must be positive, got %v", c.ModerateDiff)
	}
	if c.StrongDiff <= c.ModerateDiff {
		return fmt.Errorf("strong diff threshold %v must exceed moderate %v", c.StrongDiff, c.ModerateDiff)
	}
	if c.ModerateConfidencePercent < 1 || c.ModerateConfidencePercent > 100 {
		return fmt.Errorf("moderate confidence percent %d out of range 1-100", c.ModerateConfidencePercent)
	}
	if c.HighConfidencePercent <= c.ModerateConfidencePercent || c.HighConfidencePercent > 100 {
		return fmt.Errorf("high confidence percent %d must be in (%d, 100]", c.HighConfidencePercent, c.ModerateConfidencePercent)
	}
	return nil
}
