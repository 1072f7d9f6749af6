// Package backend is the HTTP client for the Form D aggregates backend.
//
// The backend serves pre-aggregated filing data: distributions by security
// type, industry and state, monthly time series, top fundraisers and the
// latest filings feed. The client fetches and decodes those payloads and
// classifies failures into three sentinel errors (ErrUnreachable, ErrStatus,
// ErrMalformed) so the HTTP layer can map them onto responses without
// inspecting messages.
//
// There is no caching and no retrying: one request in, one upstream call out.
package backend
