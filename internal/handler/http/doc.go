// Package http implements the RemoteStorage endpoint of the file storage
// service.
//
// A single path (the configured base path) accepts GET, PUT, DELETE and POST.
// POST carries the real operation in its "method" form value so that blob
// names and content never have to travel in a URL. Responses are plain text;
// a read returns the blob, a listing returns one name per CRLF-terminated
// line, and every failure is an empty 500.
//
// Request tracing, access logging, throttling, simple CORS and gzip are
// applied as middleware before the request is parsed into a
// models.StorageRequest and handed to the service layer.
package http
