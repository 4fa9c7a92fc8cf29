package service

import (
	"context"
	"fmt"

	"github.com/DerickDu/ks-backend/internal/domain"
	"github.com/DerickDu/ks-backend/internal/repository"
)

// ReportService serves the aggregate reporting queries and entity detail
// lookups.
type ReportService struct {
	repo repository.Repository
}

// NewReportService creates a report service over a repository.
func NewReportService(repo repository.Repository) *ReportService {
	return &ReportService{repo: repo}
}

// TotalEntities returns the total number of entity records.
func (s *ReportService) TotalEntities(ctx context.Context) (int64, error) {
	return s.repo.CountEntities(ctx)
}

// EntitiesByDomain returns entity counts grouped by domain.
func (s *ReportService) EntitiesByDomain(ctx context.Context) (map[string]int64, error) {
	return s.repo.CountEntitiesByDomain(ctx)
}

// Entity returns the entity with the given id. Ids below 1 are rejected
// before the repository is consulted; unknown ids classify as not found.
func (s *ReportService) Entity(ctx context.Context, entityID int64) (*domain.Entity, error) {
	if entityID < 1 {
		return nil, domain.NewValidationError("entity_id must be a positive integer")
	}
	entity, err := s.repo.GetEntity(ctx, entityID)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, domain.NewNotFoundError("entity not found: entity_id=%d", entityID)
	}
	return entity, nil
}

// EntitySources returns the data sources mapped to an entity. An entity
// with no sources yields an empty slice.
func (s *ReportService) EntitySources(ctx context.Context, entityID int64) ([]domain.EntitySource, error) {
	if entityID < 1 {
		return nil, domain.NewValidationError("entity_id must be a positive integer")
	}
	return s.repo.ListEntitySources(ctx, entityID)
}

// DBStatus describes the database connection state for the health
// endpoint. A missing schema is reported but does not make the service
// unhealthy.
func (s *ReportService) DBStatus(ctx context.Context) string {
	if err := s.repo.Ping(ctx); err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	available, err := s.repo.SchemaAvailable(ctx)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	if !available {
		return "connected (ks schema not found)"
	}
	return "connected (ks schema available)"
}
