// CloudCompass - Cloud Provider and Service Model Recommendation
// Copyright 2026 The CloudCompass Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cloudcompass/cloudcompass

// Package models defines the wire-level request and response structures of
// the HTTP API: the standard response envelope, the structured error
// format, and the recommendation request payload with its validation tags.
package models
