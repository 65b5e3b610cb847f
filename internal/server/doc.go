// Package server runs the remote card store's HTTP server until its context
// is cancelled and drains open requests before returning.
package server
