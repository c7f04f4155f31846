// Package server exposes the wetland sizer over HTTP.
//
// The server offers a browser form that mirrors the command-line inputs and a
// small JSON API:
//
//	GET  /                 design form
//	POST /                 size the submitted form and show the summary and plan
//	POST /api/v1/size      size a JSON design brief, respond with the result
//	GET  /api/v1/plan.svg  render the plan (or schematic) for query inputs
//	GET  /healthz          liveness and build version
//
// Every request gets an X-Request-ID (generated with google/uuid when the
// client does not send one), a request-scoped charmbracelet logger, panic
// recovery, and is reported to the [observability.HTTPHooks].
//
// Requests are independent: sizing is pure and the pipeline runner holds no
// per-request state, so handlers need no locking.
package server
