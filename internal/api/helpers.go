// CloudCompass - Cloud Provider and Service Model Recommendation
// Copyright 2026 The CloudCompass Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cloudcompass/cloudcompass

package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"github.com/cloudcompass/cloudcompass/internal/logging"
	"github.com/cloudcompass/cloudcompass/internal/middleware"
	"github.com/cloudcompass/cloudcompass/internal/models"
)

// respondJSON writes the envelope with the given status code. Encoding
// failures after the header is written can only be logged.
func respondJSON(w http.ResponseWriter, r *http.Request, status int, resp models.APIResponse) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("failed to encode response")
	}
}

// respondSuccess wraps data in a success envelope with timing metadata.
func respondSuccess(w http.ResponseWriter, r *http.Request, status int, data interface{}, start time.Time) {
	respondJSON(w, r, status, models.APIResponse{
		Status: "success",
		Data:   data,
		Metadata: models.Metadata{
			Timestamp:   time.Now().UTC(),
			QueryTimeMS: time.Since(start).Milliseconds(),
			RequestID:   middleware.GetRequestID(r.Context()),
		},
	})
}

// respondError writes an error envelope. Data is always null on failure.
func respondError(w http.ResponseWriter, r *http.Request, status int, apiErr *models.APIError) {
	respondJSON(w, r, status, models.APIResponse{
		Status: "error",
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
			RequestID: middleware.GetRequestID(r.Context()),
		},
		Error: apiErr,
	})
}

// maxLogValueRunes caps attacker-supplied strings before they reach a log
// line or error message.
const maxLogValueRunes = 256

// sanitizeLogValue escapes control characters so attacker-supplied strings
// cannot forge log entries, and truncates on a rune boundary so multi-byte
// characters are never split.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	runes := 0
	for _, r := range s {
		if runes == maxLogValueRunes {
			break
		}
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
		runes++
	}
	return result.String()
}
