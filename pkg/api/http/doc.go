// Package http provides the HTTP REST API implementation.
//
// The HTTP server exposes endpoints for:
//   - Question retrieval (GET /)
//   - Health checks
//   - Prometheus metrics
package http
