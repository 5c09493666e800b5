// Package requestid tags every request with a correlation ID.
//
// Middleware reuses a well-formed X-Request-ID header from the client or
// generates a UUID, stores it in the request context and echoes it in the
// response. LoggerExtractor feeds it into the logger so access and handler
// logs for one form submission share the same request_id.
package requestid
