// CloudCompass - Cloud Provider and Service Model Recommendation
// Copyright 2026 The CloudCompass Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cloudcompass/cloudcompass

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API endpoint metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIValidationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_validation_failures_total",
			Help: "Total number of requests rejected by payload validation",
		},
		[]string{"endpoint"},
	)

	// Decision engine metrics
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_total",
			Help: "Total number of recommendations by provider and service model",
		},
		[]string{"provider", "service_model"},
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_duration_seconds",
			Help:    "Decision engine pipeline duration in seconds",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		},
	)

	RecommendationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_errors_total",
			Help: "Total number of decision engine failures",
		},
		[]string{"kind"},
	)
)

// RecordAPIRequest records method, endpoint, status, and latency for a
// completed API request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest adjusts the in-flight request gauge.
func TrackActiveRequest(active bool) {
	if active {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordValidationFailure counts a payload rejected before reaching the
// engine.
func RecordValidationFailure(endpoint string) {
	APIValidationFailures.WithLabelValues(endpoint).Inc()
}

// RecordRecommendation records a successful engine run.
func RecordRecommendation(provider, serviceModel string, duration time.Duration) {
	RecommendationsTotal.WithLabelValues(provider, serviceModel).Inc()
	RecommendationDuration.Observe(duration.Seconds())
}

// RecordRecommendationError counts an engine failure by error kind.
func RecordRecommendationError(kind string) {
	RecommendationErrors.WithLabelValues(kind).Inc()
}
