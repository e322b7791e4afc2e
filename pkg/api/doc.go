// Package api serves the closest-pair solvers over HTTP.
//
// # Endpoints
//
//	GET  /healthz      liveness probe, always {"status": "ok"}
//	GET  /version      build information
//	POST /v1/closest   solve one point set with one algorithm
//	POST /v1/compare   run both solvers on supplied or generated points
//
// Point sets use the same JSON encoding as files read by the CLI: an array
// of [x, y] pairs or {"x", "y"} objects.
//
//	POST /v1/closest
//	{"points": [[0, 0], [3, 4], [0, 1e-7]], "algorithm": "dc"}
//
//	POST /v1/compare
//	{"generate": {"count": 10000, "distribution": "uniform", "seed": 7}}
//
// # Errors
//
// Failures are reported as {"code": "...", "message": "..."} with a status
// derived from the error code: 400 for INVALID_*, 413 for TOO_LARGE and
// oversized bodies, 500 otherwise.
//
// # Request IDs
//
// Every response carries an X-Request-ID header. A well-formed UUID sent by
// the client in the same header is reused; otherwise a new one is
// generated.
package api
