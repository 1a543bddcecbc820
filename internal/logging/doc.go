// CloudCompass - Cloud Provider and Service Model Recommendation
// Copyright 2026 The CloudCompass Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cloudcompass/cloudcompass

// Package logging provides centralized zerolog-based logging.
//
// A single global logger is configured once at startup and shared by every
// component:
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Str("provider", "gcp").Msg("recommendation computed")
//
// JSON output is the production default; console output is available for
// development. Request-scoped loggers carry the request ID via
// logging.Ctx(ctx).
//
// Always terminate log chains with .Msg() or .Send(); an unterminated chain
// is silently dropped.
package logging
