// Package http implements the REST transport of the remote card store.
//
// It exposes route wiring, request handlers, and middleware. Authentication,
// request tracing, access logging, rate limiting and response compression
// are handled here before requests are delegated to the service layer.
package http
