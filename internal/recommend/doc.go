// CloudCompass - Cloud Provider and Service Model Recommendation
// Copyright 2026 The CloudCompass Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cloudcompass/cloudcompass

// Package recommend implements the recommendation decision engine.
//
// The engine turns a user's qualitative priorities (budget, scalability,
// security, ease of use, free tier), context (team expertise, industry,
// optional region), and optional custom importance weights into a cloud
// provider recommendation (aws, azure, or gcp), a deployment service model
// (IaaS, PaaS, or SaaS), a confidence estimate, and a deterministic
// natural-language explanation.
//
// The pipeline is a composition of pure functions over immutable reference
// data:
//
//	weights := NormalizeWeights(req.Weights)
//	board   := engine.Score(req, weights)
//	winner  := engine.Winner(board)
//	model   := SelectModel(req)
//
// The provider catalog, default weights, and service-model rule table are
// package-level constants initialized once and never mutated, so the engine
// is safe for unlimited concurrent use with no locking. There is no I/O, no
// caching, and no cross-request state: identical inputs always produce
// identical outputs, including explanation text ordering.
//
// This package has no dependencies on other internal packages to maintain
// clean separation; the HTTP layer adapts wire payloads into Request values
// before calling the engine.
package recommend
