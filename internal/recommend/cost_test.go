// CloudCompass - Cloud Provider and Service Model Recommendation
// Copyright 2026 The CloudCompass Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cloudcompass/cloudcompass

package recommend

import "testing"

func TestEstimateCost(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Request)
		provider Provider
		want     float64
	}{
		{
			name:     "aws all medium",
			mutate:   func(*Request) {},
			provider: ProviderAWS,
			// (120+40) * (1 + 0.15 + 0.10) = 200
			want: 200,
		},
		{
			name: "aws maxed multipliers",
			mutate: func(r *Request) {
				r.Scalability = RatingHigh
				r.Security = RatingHigh
				r.TeamExpertise = RatingLow
			},
			provider: ProviderAWS,
			// (120+40) * (1 + 0.30 + 0.20 + 0.10) = 256
			want: 256,
		},
		{
			name: "gcp low profile",
			mutate: func(r *Request) {
				r.Scalability = RatingLow
				r.Security = RatingLow
			},
			provider: ProviderGCP,
			// (100+35) * 1.0 = 135
			want: 135,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := allMedium()
			tt.mutate(&req)
			if got := EstimateCost(req, tt.provider); got != tt.want {
				t.Errorf("EstimateCost = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEstimateCostUnknownProvider(t *testing.T) {
	if got := EstimateCost(allMedium(), Provider("oracle")); got != 0 {
		t.Errorf("EstimateCost for unknown provider = %v, want 0", got)
	}
}

func TestEstimateCostsAllProviders(t *testing.T) {
	costs := EstimateCosts(allMedium())
	if len(costs) != 3 {
		t.Fatalf("EstimateCosts returned %d entries, want 3", len(costs))
	}
	for _, p := range Providers() {
		c, ok := costs[p]
		if !ok {
			t.Errorf("missing cost for %s", p)
			continue
		}
		if c <= 0 {
			t.Errorf("cost for %s = %v, want positive", p, c)
		}
	}
}
