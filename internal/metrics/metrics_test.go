// CloudCompass - Cloud Provider and Service Model Recommendation
// Copyright 2026 The CloudCompass Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cloudcompass/cloudcompass

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("POST", "/api/v1/recommend", "200"))
	RecordAPIRequest("POST", "/api/v1/recommend", "200", 5*time.Millisecond)
	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("POST", "/api/v1/recommend", "200"))

	if after != before+1 {
		t.Errorf("counter = %v, want %v", after, before+1)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	base := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != base+1 {
		t.Errorf("gauge after inc = %v, want %v", got, base+1)
	}
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != base {
		t.Errorf("gauge after dec = %v, want %v", got, base)
	}
}

func TestRecordRecommendation(t *testing.T) {
	before := testutil.ToFloat64(RecommendationsTotal.WithLabelValues("gcp", "PaaS"))
	RecordRecommendation("gcp", "PaaS", time.Microsecond)
	after := testutil.ToFloat64(RecommendationsTotal.WithLabelValues("gcp", "PaaS"))

	if after != before+1 {
		t.Errorf("counter = %v, want %v", after, before+1)
	}
}

func TestRecordRecommendationError(t *testing.T) {
	before := testutil.ToFloat64(RecommendationErrors.WithLabelValues("invalid_rating"))
	RecordRecommendationError("invalid_rating")
	after := testutil.ToFloat64(RecommendationErrors.WithLabelValues("invalid_rating"))

	if after != before+1 {
		t.Errorf("counter = %v, want %v", after, before+1)
	}
}
