// Package httpclient provides the HTTP client used to call cloud
// transcription APIs.
//
// It supports base URLs, default headers, bearer and API-key authentication,
// multipart/form-data bodies for audio uploads, and status-code error
// classification. There is no retry, circuit breaker, or rate limiter:
// a benchmark run performs exactly one attempt per backend and surfaces
// the failure as-is.
package httpclient
