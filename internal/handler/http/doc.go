// Package http implements the HTTP transport layer of the users service.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Request tracing, access logging and response compression are handled
// in this package before requests are delegated to the service layer.
//
// Every response body, including router-level 404 and 405 responses, is a
// JSON document.
package http
