// CloudCompass - Cloud Provider and Service Model Recommendation
// Copyright 2026 The CloudCompass Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cloudcompass/cloudcompass

package supervisor

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"
	"github.com/thejerf/sutureslog"

	"github.com/cloudcompass/cloudcompass/internal/logging"
)

// Tree is the root supervision tree. Services added to it restart with
// exponential backoff on failure; supervisor events flow into zerolog
// through the slog bridge.
type Tree struct {
	root   *suture.Supervisor
	logger zerolog.Logger
}

// NewTree builds the root supervisor.
func NewTree(logger zerolog.Logger) *Tree {
	handler := &sutureslog.Handler{Logger: logging.NewSlogLogger(logger)}

	root := suture.New("cloudcompass", suture.Spec{
		EventHook:        handler.MustHook(),
		FailureThreshold: 5,
		FailureDecay:     30,
		FailureBackoff:   3 * time.Second,
		Timeout:          30 * time.Second,
	})

	return &Tree{root: root, logger: logger}
}

// Add registers a service with the root supervisor.
func (t *Tree) Add(service suture.Service) suture.ServiceToken {
	return t.root.Add(service)
}

// Serve runs the tree until ctx is canceled and all services have stopped.
func (t *Tree) Serve(ctx context.Context) error {
	t.logger.Info().Msg("supervision tree starting")
	err := t.root.Serve(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		t.logger.Error().Err(err).Msg("supervision tree exited with error")
		return err
	}
	t.logger.Info().Msg("supervision tree stopped")
	return nil
}
