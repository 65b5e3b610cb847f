package server

import "context"

// Server is the transport server of the remote store.
type Server interface {
	// Run serves requests until ctx is cancelled and then drains open
	// connections. It returns early when the listener cannot be started.
	Run(ctx context.Context) error
}
