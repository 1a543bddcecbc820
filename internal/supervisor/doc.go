// CloudCompass - Cloud Provider and Service Model Recommendation
// Copyright 2026 The CloudCompass Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cloudcompass/cloudcompass

// Package supervisor arranges long-running services under a suture
// supervision tree so a crashed HTTP listener restarts with backoff
// instead of taking the process down.
package supervisor
