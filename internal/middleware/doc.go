// CloudCompass - Cloud Provider and Service Model Recommendation
// Copyright 2026 The CloudCompass Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cloudcompass/cloudcompass

// Package middleware provides HTTP middleware shared across routes: request
// ID propagation and Prometheus instrumentation. CORS and rate limiting use
// the Chi ecosystem implementations and are wired in the api package.
package middleware
