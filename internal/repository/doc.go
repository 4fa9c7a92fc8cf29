// Package repository defines the data access interfaces for the entity
// reporting API.
//
// This package provides the repository abstraction layer for reading
// entities and their catalog classification from the relational store. The
// actual implementation is in the postgres subpackage.
//
// # Interfaces
//
// RowSource is the narrow interface the tree materializer depends on: it
// supplies catalog path rows for a scope and nothing else, so the core can
// be tested against fakes without a database.
//
// PairLister enumerates the known (domain, sub_domain) pairs and exists
// only for cache warming.
//
// Repository is the full surface the reporting endpoints use: aggregate
// counts, entity detail lookups, and health probes, on top of RowSource
// and PairLister.
//
// # PostgreSQL Implementation
//
// The postgres implementation runs over a pgx connection pool against the
// ks schema. Every failure it returns is classified as a data-source error
// so callers surface a single "data source unavailable" condition for
// connectivity problems, timeouts, and query errors alike.
package repository
