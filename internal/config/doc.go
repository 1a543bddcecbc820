// CloudCompass - Cloud Provider and Service Model Recommendation
// Copyright 2026 The CloudCompass Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cloudcompass/cloudcompass

// Package config loads service configuration through koanf with three
// layers, later layers overriding earlier ones: struct defaults, an
// optional YAML file, then environment variables.
package config
