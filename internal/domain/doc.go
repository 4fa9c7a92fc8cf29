// Package domain defines the core domain types for the entity reporting API.
//
// This package contains the fundamental entities and value objects shared by
// the repository, service, and handler layers.
//
// # Core Types
//
// Entity represents one record of the entities table, with its validity
// verification metadata. EntitySource describes one data source an entity
// was collected from.
//
// PathRow is a single catalog row as fetched from the relational store: a
// slash-delimited classification path plus the (domain, sub_domain) pair it
// is filed under and the entity attached to it, if any.
//
// PathNode is one node of a materialized classification tree, corresponding
// to a path prefix. Trees of PathNodes are what the tree endpoints serve
// and what the cache stores.
//
// Scope identifies the filter dimension of a tree query: the zero value
// means "all domains", otherwise a specific (domain, sub_domain) pair.
// Scope.Key produces the stable string encoding used as the cache map key.
//
// # Error Classification
//
// Error carries an ErrorType classification (validation, not_found,
// data_source, internal) that the handler layer maps onto HTTP status codes
// and the {error_type, message} JSON error body. Only the classified
// message is exposed to API clients; wrapped causes stay in the logs.
package domain
