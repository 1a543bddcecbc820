// CloudCompass - Cloud Provider and Service Model Recommendation
// Copyright 2026 The CloudCompass Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cloudcompass/cloudcompass

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// ConfigPathEnvVar overrides the config file location when set.
const ConfigPathEnvVar = "CONFIG_PATH"

// envSections maps environment variable prefixes to config sections.
// SERVER_PORT becomes server.port, SECURITY_CORS_ORIGINS becomes
// security.cors_origins, and so on. Variables outside these prefixes
// are ignored.
var envSections = map[string]string{
	"SERVER_":   "server",
	"SECURITY_": "security",
	"LOGGING_":  "logging",
	"ENGINE_":   "engine",
}

// sliceConfigPaths lists keys whose env values are comma-separated lists.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// Load builds the configuration from defaults, an optional YAML file,
// and environment variables, in that order of precedence.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", transformEnv), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("processing slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// transformEnv maps a recognized environment variable to its koanf key.
// Returning an empty string drops the variable.
func transformEnv(key string) string {
	for prefix, section := range envSections {
		if strings.HasPrefix(key, prefix) {
			return section + "." + strings.ToLower(strings.TrimPrefix(key, prefix))
		}
	}
	return ""
}

// processSliceFields splits comma-separated env values into slices for the
// known list-valued keys. YAML-sourced values arrive as slices already and
// are left alone.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		val := k.Get(path)
		if val == nil {
			continue
		}
		if _, ok := val.([]interface{}); ok {
			continue
		}
		if _, ok := val.([]string); ok {
			continue
		}

		s, ok := val.(string)
		if !ok {
			return fmt.Errorf("config key %s: expected string or slice, got %T", path, val)
		}
		parts := strings.Split(s, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		if err := k.Set(path, out); err != nil {
			return fmt.Errorf("config key %s: %w", path, err)
		}
	}
	return nil
}

// findConfigFile resolves the YAML config path. CONFIG_PATH wins when set;
// otherwise config.yaml in the working directory is used when present.
func findConfigFile() string {
	if path := os.Getenv(ConfigPathEnvVar); path != "" {
		return path
	}
	if _, err := os.Stat("config.yaml"); err == nil {
		return "config.yaml"
	}
	return ""
}
