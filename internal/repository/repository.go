package repository

import (
	"context"

	"github.com/DerickDu/ks-backend/internal/domain"
)

// RowSource supplies catalog path rows for tree materialization. For the
// all-domains scope it returns one synthetic row per distinct
// domain/sub_domain pair; for a pair scope it returns the catalog rows
// filed under that pair, in a stable order.
type RowSource interface {
	FetchPathRows(ctx context.Context, scope domain.Scope) ([]domain.PathRow, error)
}

// PairLister enumerates the known (domain, sub_domain) pairs. Used only
// for cache warming.
type PairLister interface {
	ListDomainPairs(ctx context.Context) ([]domain.Scope, error)
}

// Repository defines all data access for the reporting endpoints.
type Repository interface {
	RowSource
	PairLister

	CountEntities(ctx context.Context) (int64, error)
	CountEntitiesByDomain(ctx context.Context) (map[string]int64, error)
	GetEntity(ctx context.Context, entityID int64) (*domain.Entity, error)
	ListEntitySources(ctx context.Context, entityID int64) ([]domain.EntitySource, error)

	// Ping verifies the store is reachable. SchemaAvailable additionally
	// reports whether the configured schema exists.
	Ping(ctx context.Context) error
	SchemaAvailable(ctx context.Context) (bool, error)
}
