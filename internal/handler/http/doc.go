// Package http implements the HTTP transport layer of the request inbox
// server.
//
// It exposes the request CRUD API and the live text/event-stream endpoint.
// Cross-cutting concerns such as tenant authentication, request tracing,
// access logging and response compression are handled here before requests
// are delegated to the service layer.
package http
