// Package handler implements HTTP request handlers for the entity
// reporting API.
//
// # Handlers
//
// TreeHandler serves the two tree endpoints: the domains summary tree and
// the per-(domain, sub_domain) entity tree, both with an optional
// refresh parameter that forces a cache rebuild.
//
// ReportHandler serves the aggregate count endpoints, entity detail
// lookups, the health check, and the API index.
//
// Middleware provides panic recovery, request logging, and CORS support,
// applied via Chain.
//
// # Response Format
//
// Success responses return JSON with status 200. Error responses return a
// structured {error_type, message} body; the error_type maps the internal
// error classification (validation, not_found, data_source, internal) and
// never carries internal exception detail.
package handler
