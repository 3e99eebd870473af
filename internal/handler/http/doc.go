// Package http implements the HTTP transport layer of the gateway.
//
// It exposes route wiring, request handlers, and middleware for the public
// REST API. Cross-cutting concerns such as bearer authentication, request
// tracing, access logging, metrics, timeouts and response compression are
// handled in this package before requests are delegated to the service layer.
package http
