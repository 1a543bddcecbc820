// CloudCompass - Cloud Provider and Service Model Recommendation
// Copyright 2026 The CloudCompass Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cloudcompass/cloudcompass

package recommend

import (
	"math"
	"sort"
)

// Confidence derives a 0-100 confidence percentage and qualitative level
// from the relative spread between the top two scores:
//
//	raw = (top - second) / top
//
// A non-positive top score is the degenerate no-signal case and yields zero
// confidence. The level thresholds partition the full range with no gap:
// the high boundary is exclusive, so a percentage exactly at it is moderate.
func (e *Engine) Confidence(board ScoreBoard) Confidence {
	scores := make([]float64, 0, len(board))
	for _, s := range board {
		scores = append(scores, s)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(scores)))

	if len(scores) < 2 || scores[0] <= 0 {
		return Confidence{Percent: 0, Level: ConfidenceLow}
	}

	raw := (scores[0] - scores[1]) / scores[0]
	percent := int(math.Round(raw * 100))
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	level := ConfidenceLow
	switch {
	case percent > e.cfg.HighConfidencePercent:
		level = ConfidenceHigh
	case percent >= e.cfg.ModerateConfidencePercent:
		level = ConfidenceModerate
	}

	return Confidence{Percent: percent, Level: level}
}
