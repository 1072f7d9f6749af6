// Package http provides the widget hub's HTTP API.
//
// The server exposes:
//   - Widget discovery (/widgets.json, /apps.json)
//   - Widget data endpoints (markdown intro, latest filings table, charts)
//   - Year options for widget dropdowns
//   - Health checks
//   - Prometheus metrics
//
// Every widget request translates into one backend call; failures map to a
// 502 with a structured error body.
package http
