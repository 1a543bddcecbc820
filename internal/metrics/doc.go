// CloudCompass - Cloud Provider and Service Model Recommendation
// Copyright 2026 The CloudCompass Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cloudcompass/cloudcompass

// Package metrics provides Prometheus instrumentation for the HTTP API and
// the recommendation engine. All collectors are registered with the default
// registry via promauto and exposed on /metrics.
package metrics
