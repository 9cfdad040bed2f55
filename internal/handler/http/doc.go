// Package http implements the REST transport of the entry server.
//
// Routes are scoped by the `user_id` query parameter instead of an
// authenticated identity. Failures are written as
// `{"success":false,"message":...}` with a status taken from the error
// mapper. Request tracing, access logging and response compression are
// handled by middleware before requests reach the service layer.
package http
