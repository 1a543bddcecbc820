// CloudCompass - Cloud Provider and Service Model Recommendation
// Copyright 2026 The CloudCompass Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cloudcompass/cloudcompass

package models

import "time"

// APIResponse is the standardized envelope used by all HTTP endpoints.
//
// Status is "success" or "error"; Data carries the payload on success and
// Error is populated only on failure.
//
//	{
//	  "status": "success",
//	  "data": {"recommended_provider": "gcp", ...},
//	  "metadata": {"timestamp": "2026-08-31T12:00:00Z", "query_time_ms": 1}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata carries per-response observability information.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	RequestID   string    `json:"request_id,omitempty"`
}

// APIError is the structured error detail of a failed response.
//
// Common codes:
//   - VALIDATION_ERROR: missing field or value outside its enumerated set
//   - INVALID_RATING: a qualitative rating rejected by the engine
//   - INVALID_BODY: request body is not a JSON object
//   - INTERNAL_ERROR: configuration integrity failure in the engine
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
