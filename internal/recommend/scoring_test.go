// CloudCompass - Cloud Provider and Service Model Recommendation
// Copyright 2026 The CloudCompass Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cloudcompass/cloudcompass

package recommend

import (
	"errors"
	"math"
	"testing"

	"github.com/rs/zerolog"
)

// newTestEngine returns an engine with default configuration and a silent
// logger.
func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(DefaultConfig(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	return e
}

// allMedium returns a request with every qualitative field set to medium.
func allMedium() Request {
	return Request{
		Budget:        RatingMedium,
		Scalability:   RatingMedium,
		Security:      RatingMedium,
		EaseOfUse:     RatingMedium,
		FreeTier:      RatingMedium,
		TeamExpertise: RatingMedium,
		Industry:      IndustryGeneral,
	}
}

func TestScoreReturnsAllProviders(t *testing.T) {
	e := newTestEngine(t)
	weights, _ := NormalizeWeights(nil)

	board, err := e.Score(allMedium(), weights)
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}

	if len(board) != 3 {
		t.Fatalf("board has %d entries, want 3", len(board))
	}
	for _, p := range Providers() {
		score, ok := board[p]
		if !ok {
			t.Errorf("board missing provider %s", p)
			continue
		}
		if math.IsNaN(score) || math.IsInf(score, 0) || score < 0 {
			t.Errorf("board[%s] = %v, want finite non-negative", p, score)
		}
	}
}

func TestScoreOrdinalMultiplierAmplifies(t *testing.T) {
	e := newTestEngine(t)
	weights, _ := NormalizeWeights(nil)

	low := allMedium()
	low.FreeTier = RatingLow
	high := allMedium()
	high.FreeTier = RatingHigh

	lowBoard, err := e.Score(low, weights)
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	highBoard, err := e.Score(high, weights)
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}

	// GCP leads the free tier criterion, so a higher rating there must widen
	// its advantage.
	lowGap := lowBoard[ProviderGCP] - lowBoard[ProviderAzure]
	highGap := highBoard[ProviderGCP] - highBoard[ProviderAzure]
	if highGap <= lowGap {
		t.Errorf("free_tier high gap %v, low gap %v; want amplification", highGap, lowGap)
	}
}

func TestScoreInvalidRating(t *testing.T) {
	e := newTestEngine(t)
	weights, _ := NormalizeWeights(nil)

	req := allMedium()
	req.Security = Rating("extreme")

	_, err := e.Score(req, weights)
	if !errors.Is(err, ErrInvalidRating) {
		t.Errorf("error = %v, want ErrInvalidRating", err)
	}
}

func TestScoreRegionModifier(t *testing.T) {
	e := newTestEngine(t)
	weights, _ := NormalizeWeights(nil)

	base, err := e.Score(allMedium(), weights)
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}

	req := allMedium()
	req.Region = RegionEurope
	boosted, err := e.Score(req, weights)
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}

	for p, boost := range regionModifiers[RegionEurope] {
		got := boosted[p] - base[p]
		if math.Abs(got-boost) > 1e-9 {
			t.Errorf("region boost for %s = %v, want %v", p, got, boost)
		}
	}

	// Unknown region leaves scores untouched.
	req.Region = Region("antarctica")
	same, err := e.Score(req, weights)
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	for p := range base {
		if same[p] != base[p] {
			t.Errorf("unknown region changed score for %s", p)
		}
	}
}

func TestWinnerTieBreakPrefersAWS(t *testing.T) {
	e := newTestEngine(t)

	// Weights scalability:security = 1:2 force an exact aws/azure tie:
	// aws  = 10/3 + 2*9/3  = 28/3
	// azure =  8/3 + 2*10/3 = 28/3
	weights, usedDefaults := NormalizeWeights(map[Criterion]float64{
		CriterionScalability: 1,
		CriterionSecurity:    2,
	})
	if usedDefaults {
		t.Fatal("did not expect defaults fallback")
	}

	board, err := e.Score(allMedium(), weights)
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	if math.Abs(board[ProviderAWS]-board[ProviderAzure]) > scoreTolerance {
		t.Fatalf("expected tie, got aws=%v azure=%v", board[ProviderAWS], board[ProviderAzure])
	}

	if winner := e.Winner(board); winner != ProviderAWS {
		t.Errorf("tie-break winner = %s, want aws", winner)
	}
}

func TestWinnerExactTieBoard(t *testing.T) {
	e := newTestEngine(t)
	tests := []struct {
		name  string
		board ScoreBoard
		want  Provider
	}{
		{
			name:  "all tied",
			board: ScoreBoard{ProviderAWS: 5, ProviderAzure: 5, ProviderGCP: 5},
			want:  ProviderAWS,
		},
		{
			name:  "azure gcp tied above aws",
			board: ScoreBoard{ProviderAWS: 1, ProviderAzure: 5, ProviderGCP: 5},
			want:  ProviderAzure,
		},
		{
			name:  "strict max wins",
			board: ScoreBoard{ProviderAWS: 2, ProviderAzure: 3, ProviderGCP: 9},
			want:  ProviderGCP,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.Winner(tt.board); got != tt.want {
				t.Errorf("Winner() = %s, want %s", got, tt.want)
			}
		})
	}
}
