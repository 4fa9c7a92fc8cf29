// Package postgres implements the repository interfaces over a PostgreSQL
// connection pool.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/DerickDu/ks-backend/internal/domain"
)

// Repository reads entities and catalog classification from the configured
// schema (ks in production). All query failures come back classified as
// data-source errors.
type Repository struct {
	pool   *pgxpool.Pool
	schema string
}

// New creates a repository over an existing pool. schema defaults to "ks"
// when empty.
func New(pool *pgxpool.Pool, schema string) *Repository {
	if schema == "" {
		schema = "ks"
	}
	return &Repository{pool: pool, schema: schema}
}

// CountEntities returns the total number of entity records.
func (r *Repository) CountEntities(ctx context.Context) (int64, error) {
	var count int64
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s.entities`, r.schema)
	if err := r.pool.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, domain.NewDataSourceError(fmt.Errorf("count entities: %w", err))
	}
	return count, nil
}

// CountEntitiesByDomain groups catalog rows by domain and counts the
// entities filed under each.
func (r *Repository) CountEntitiesByDomain(ctx context.Context) (map[string]int64, error) {
	query := fmt.Sprintf(`SELECT domain, COUNT(entity_id) FROM %s.catalog GROUP BY domain`, r.schema)
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, domain.NewDataSourceError(fmt.Errorf("count by domain: %w", err))
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var dom string
		var count int64
		if err := rows.Scan(&dom, &count); err != nil {
			return nil, domain.NewDataSourceError(fmt.Errorf("scan domain count: %w", err))
		}
		counts[dom] = count
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewDataSourceError(fmt.Errorf("iterate domain counts: %w", err))
	}
	return counts, nil
}

// ListDomainPairs returns the distinct (domain, sub_domain) pairs in the
// catalog, ordered for deterministic tree building.
func (r *Repository) ListDomainPairs(ctx context.Context) ([]domain.Scope, error) {
	query := fmt.Sprintf(
		`SELECT DISTINCT domain, COALESCE(sub_domain, '') FROM %s.catalog ORDER BY domain, 2`,
		r.schema,
	)
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, domain.NewDataSourceError(fmt.Errorf("list domain pairs: %w", err))
	}
	defer rows.Close()

	var pairs []domain.Scope
	for rows.Next() {
		var s domain.Scope
		if err := rows.Scan(&s.Domain, &s.SubDomain); err != nil {
			return nil, domain.NewDataSourceError(fmt.Errorf("scan domain pair: %w", err))
		}
		pairs = append(pairs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewDataSourceError(fmt.Errorf("iterate domain pairs: %w", err))
	}
	return pairs, nil
}

// FetchPathRows implements repository.RowSource. The all-domains scope is
// served from the distinct domain pairs as synthetic one- or two-segment
// paths with no entity attached; a pair scope returns the catalog rows
// filed under it, ordered by path.
func (r *Repository) FetchPathRows(ctx context.Context, scope domain.Scope) ([]domain.PathRow, error) {
	if scope.All() {
		pairs, err := r.ListDomainPairs(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]domain.PathRow, 0, len(pairs))
		for _, p := range pairs {
			path := p.Domain
			if p.SubDomain != "" {
				path = p.Domain + "/" + p.SubDomain
			}
			out = append(out, domain.PathRow{Path: path, Domain: p.Domain, SubDomain: p.SubDomain})
		}
		return out, nil
	}

	query := fmt.Sprintf(
		`SELECT entity_id, path, domain, COALESCE(sub_domain, '')
		 FROM %s.catalog
		 WHERE domain = $1 AND sub_domain = $2
		 ORDER BY path`,
		r.schema,
	)
	rows, err := r.pool.Query(ctx, query, scope.Domain, scope.SubDomain)
	if err != nil {
		return nil, domain.NewDataSourceError(fmt.Errorf("fetch catalog rows for %s: %w", scope, err))
	}
	defer rows.Close()

	var out []domain.PathRow
	for rows.Next() {
		var row domain.PathRow
		if err := rows.Scan(&row.EntityID, &row.Path, &row.Domain, &row.SubDomain); err != nil {
			return nil, domain.NewDataSourceError(fmt.Errorf("scan catalog row: %w", err))
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewDataSourceError(fmt.Errorf("iterate catalog rows: %w", err))
	}
	return out, nil
}

// GetEntity returns the entity with the given id, or nil when it does not
// exist.
func (r *Repository) GetEntity(ctx context.Context, entityID int64) (*domain.Entity, error) {
	query := fmt.Sprintf(
		`SELECT entity_id, entity_name, COALESCE(description, ''), validity_result,
		        COALESCE(validity_method, ''), created_at, updated_at
		 FROM %s.entities WHERE entity_id = $1`,
		r.schema,
	)

	var e domain.Entity
	err := r.pool.QueryRow(ctx, query, entityID).Scan(
		&e.EntityID, &e.EntityName, &e.Description, &e.ValidityResult,
		&e.ValidityMethod, &e.CreatedAt, &e.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.NewDataSourceError(fmt.Errorf("get entity %d: %w", entityID, err))
	}
	return &e, nil
}

// ListEntitySources returns the data sources mapped to an entity. An
// entity with no sources yields an empty slice, not an error.
func (r *Repository) ListEntitySources(ctx context.Context, entityID int64) ([]domain.EntitySource, error) {
	query := fmt.Sprintf(
		`SELECT s.source_id, s.source_type, COALESCE(s.source_ref, ''), s.created_at
		 FROM %s.entities_sources s
		 JOIN %s.entities_source_map m ON m.source_id = s.source_id
		 WHERE m.entity_id = $1
		 ORDER BY s.source_id`,
		r.schema, r.schema,
	)
	rows, err := r.pool.Query(ctx, query, entityID)
	if err != nil {
		return nil, domain.NewDataSourceError(fmt.Errorf("list sources for entity %d: %w", entityID, err))
	}
	defer rows.Close()

	sources := []domain.EntitySource{}
	for rows.Next() {
		var s domain.EntitySource
		if err := rows.Scan(&s.SourceID, &s.SourceType, &s.SourceRef, &s.CreatedAt); err != nil {
			return nil, domain.NewDataSourceError(fmt.Errorf("scan entity source: %w", err))
		}
		sources = append(sources, s)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewDataSourceError(fmt.Errorf("iterate entity sources: %w", err))
	}
	return sources, nil
}

// Ping verifies the database is reachable.
func (r *Repository) Ping(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		return domain.NewDataSourceError(fmt.Errorf("ping: %w", err))
	}
	return nil
}

// SchemaAvailable reports whether the configured schema exists.
func (r *Repository) SchemaAvailable(ctx context.Context) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM information_schema.schemata WHERE schema_name = $1)`,
		r.schema,
	).Scan(&exists)
	if err != nil {
		return false, domain.NewDataSourceError(fmt.Errorf("check schema: %w", err))
	}
	return exists, nil
}

// Schema returns the schema this repository reads from.
func (r *Repository) Schema() string {
	return r.schema
}
