// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-vocab-keeper/internal/service"
)

// Client defines the lifecycle contract of the client runtime used by the
// CLI commands.
type Client interface {
	// Start restores pending work and launches background synchronisation.
	Start(ctx context.Context) error
	// Run starts the client, runs fn and closes the client.
	Run(ctx context.Context, fn func(ctx context.Context, services *service.ClientServices) error) error
	// Close stops background work and releases local resources.
	Close() error
}

var _ Client = (*App)(nil)
