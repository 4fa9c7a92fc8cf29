// Package service implements business logic for the entity reporting API.
//
// This package provides the service layers that coordinate between the
// HTTP handlers and the repository layer.
//
// # Services
//
// TreeService is the path-tree materializer: it turns flat catalog paths
// into nested PathNode trees and keeps them in the in-process cache, with
// read-through serving and caller-forced refresh. Concurrent rebuilds of
// the same scope coalesce into a single in-flight build.
//
// ReportService serves the aggregate reporting queries (entity counts,
// per-domain counts), entity detail lookups, and the database health
// probe.
//
// # Design Principles
//
// - Services own validation and error classification
// - Repository pattern for data access; the materializer sees only the
//   narrow RowSource interface
// - Context-aware for cancellation and timeouts
package service
