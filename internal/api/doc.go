// CloudCompass - Cloud Provider and Service Model Recommendation
// Copyright 2026 The CloudCompass Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cloudcompass/cloudcompass

// Package api exposes the recommendation engine over HTTP: a chi router
// with CORS, per-IP rate limiting, Prometheus instrumentation, request ID
// propagation, and a uniform JSON response envelope.
package api
