// CloudCompass - Cloud Provider and Service Model Recommendation
// Copyright 2026 The CloudCompass Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cloudcompass/cloudcompass

package recommend

// rule is one row of the service-model decision table.
type rule struct {
	name    string
	matches func(Request) bool
	model   ServiceModel
	reason  string
}

// serviceModelRules is evaluated top to bottom; the first matching rule
// wins, and the final row matches everything so the table is total. Rule
// order is semantic: reordering changes outcomes for overlapping conditions.
var serviceModelRules = []rule{
	{
		name: "regulated-low-expertise",
		matches: func(r Request) bool {
			return (r.Industry == IndustryHealthcare || r.Industry == IndustryFintech) &&
				r.TeamExpertise == RatingLow
		},
		model:  ServiceModelPaaS,
		reason: "Regulated industries with limited in-house operations capacity are best served by a managed platform rather than raw infrastructure.",
	},
	{
		name: "expert-team-with-budget",
		matches: func(r Request) bool {
			return r.TeamExpertise == RatingHigh && r.Budget != RatingLow
		},
		model:  ServiceModelIaaS,
		reason: "Expert teams extract more value from low-level infrastructure control when the budget allows the added operational cost.",
	},
	{
		name: "ai-workload",
		matches: func(r Request) bool {
			return r.Industry == IndustryAI && r.TeamExpertise != RatingLow
		},
		model:  ServiceModelPaaS,
		reason: "AI workloads benefit from managed ML and platform services without taking on full infrastructure ownership.",
	},
	{
		name: "simplicity-first",
		matches: func(r Request) bool {
			return r.EaseOfUse == RatingHigh && r.TeamExpertise == RatingLow
		},
		model:  ServiceModelSaaS,
		reason: "Teams with limited expertise that prioritize simplicity are steered to the most abstracted model.",
	},
	{
		name:    "default",
		matches: func(Request) bool { return true },
		model:   ServiceModelPaaS,
		reason:  "No specialized rule applies; a managed platform is the balanced default.",
	},
}

// SelectModel maps the request context to a deployment service model by
// evaluating the ordered decision table. The trailing default guarantees a
// result for every input combination, and evaluation is deterministic.
func SelectModel(req Request) (ServiceModel, string) {
	for _, r := range serviceModelRules {
		if r.matches(req) {
			return r.model, r.reason
		}
	}
	// Unreachable: the last rule matches everything.
	return ServiceModelPaaS, serviceModelRules[len(serviceModelRules)-1].reason
}
