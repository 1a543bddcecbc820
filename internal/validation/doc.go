// CloudCompass - Cloud Provider and Service Model Recommendation
// Copyright 2026 The CloudCompass Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cloudcompass/cloudcompass

// Package validation wraps go-playground/validator v10 behind a thread-safe
// singleton and translates its failures into the API's VALIDATION_ERROR
// format, with field names taken from JSON tags so clients see the names
// they sent.
package validation
