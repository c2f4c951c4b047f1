// Package requestid tags each HTTP request with a correlation ID.
//
// Middleware reuses a well-formed X-Request-ID header from the client or
// generates a UUIDv4, echoes it in the response and stores it in the context.
// LoggerExtractor adds it to every log record written with that context.
package requestid
