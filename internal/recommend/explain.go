// CloudCompass - Cloud Provider and Service Model Recommendation
// Copyright 2026 The CloudCompass Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cloudcompass/cloudcompass

package recommend

import (
	"fmt"
	"sort"
	"strings"
)

// Why-not phrasing templates per severity tier. Each tier carries at least
// two alternates so consecutive runners-up in the same tier do not read
// identically; the alternate is picked by the runner-up's position index,
// never by a random source, so output is reproducible. Plain text only;
// escaping for any output medium is the consumer's job.
var (
	strongPhrases = []string{
		"%s trailed the recommendation by %.2f points, a clear gap across your weighted priorities.",
		"%s scored well below the recommended provider, finishing %.2f points behind on the criteria you weighted most.",
	}
	moderatePhrases = []string{
		"%s was a reasonable option but fell %.2f points short on your weighted priorities.",
		"%s came in %.2f points behind, losing ground on several of the criteria you emphasized.",
	}
	marginalPhrases = []string{
		"%s finished only %.2f points behind; the decision was close.",
		"%s was nearly tied, trailing by just %.2f points.",
	}
	closePhrases = []string{
		"%s is a close alternative with a very similar overall score.",
		"%s matched the recommendation almost exactly and remains a strong alternative.",
	}
)

// Explain produces the ordered human-readable rationale for the winning
// provider and selected service model: the winner line with the user's most
// influential criteria, the winner's catalog strengths, then the
// service-model reason.
func (e *Engine) Explain(req Request, weights WeightVector, board ScoreBoard, winner Provider, model ServiceModel, modelReason string) []string {
	lines := make([]string, 0, 3)

	names := e.topInfluences(req, weights, 3)
	display := strings.ToUpper(string(winner))
	if len(names) > 0 {
		lines = append(lines, fmt.Sprintf("%s was selected (score %.2f) based on your priorities: %s.",
			display, board[winner], strings.Join(names, ", ")))
	} else {
		lines = append(lines, fmt.Sprintf("%s was selected as the recommended provider (score %.2f).",
			display, board[winner]))
	}

	if strengths := Strengths(winner); len(strengths) > 0 {
		if len(strengths) > 3 {
			strengths = strengths[:3]
		}
		lines = append(lines, fmt.Sprintf("Key strengths: %s.", strings.Join(strengths, "; ")))
	}

	lines = append(lines, fmt.Sprintf("Service model %s: %s", model, modelReason))
	return lines
}

// topInfluences ranks criteria by weight times ordinal multiplier and
// returns up to n display names with positive influence, most influential
// first. Ties resolve by fixed criterion enumeration order.
func (e *Engine) topInfluences(req Request, weights WeightVector, n int) []string {
	type influence struct {
		criterion Criterion
		value     float64
	}
	ranked := make([]influence, 0, len(criterionOrder))
	for _, c := range criterionOrder {
		rating := req.Rating(c)
		if !rating.Valid() {
			continue
		}
		ranked = append(ranked, influence{c, weights[c] * e.cfg.Multipliers[rating]})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].value > ranked[j].value })

	names := make([]string, 0, n)
	for _, r := range ranked {
		if r.value <= 0 || len(names) == n {
			break
		}
		names = append(names, strings.ReplaceAll(string(r.criterion), "_", " "))
	}
	return names
}

// WhyNot explains why each non-winning provider lost, covering every
// runner-up exactly once in fixed enumeration order. The phrasing tier is
// chosen from the score difference to the winner; a non-positive difference
// guards float noise with a close-alternative message.
func (e *Engine) WhyNot(board ScoreBoard, winner Provider) []Alternative {
	alts := make([]Alternative, 0, len(providerOrder)-1)
	idx := 0
	for _, p := range providerOrder {
		if p == winner {
			continue
		}
		diff := board[winner] - board[p]
		display := strings.ToUpper(string(p))

		var reason string
		switch {
		case diff <= 0:
			reason = fmt.Sprintf(closePhrases[idx%len(closePhrases)], display)
		case diff > e.cfg.StrongDiff:
			reason = fmt.Sprintf(strongPhrases[idx%len(strongPhrases)], display, diff)
		case diff > e.cfg.ModerateDiff:
			reason = fmt.Sprintf(moderatePhrases[idx%len(moderatePhrases)], display, diff)
		default:
			reason = fmt.Sprintf(marginalPhrases[idx%len(marginalPhrases)], display, diff)
		}

		alts = append(alts, Alternative{Provider: p, Reason: reason})
		idx++
	}
	return alts
}
