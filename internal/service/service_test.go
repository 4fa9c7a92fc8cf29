package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DerickDu/ks-backend/internal/domain"
)

// fakeRepo is a canned repository.Repository for report service tests.
type fakeRepo struct {
	total    int64
	byDomain map[string]int64
	entities map[int64]*domain.Entity
	sources  map[int64][]domain.EntitySource
	pingErr  error
	schemaOK bool
}

func (f *fakeRepo) FetchPathRows(ctx context.Context, scope domain.Scope) ([]domain.PathRow, error) {
	return nil, nil
}

func (f *fakeRepo) ListDomainPairs(ctx context.Context) ([]domain.Scope, error) {
	return nil, nil
}

func (f *fakeRepo) CountEntities(ctx context.Context) (int64, error) {
	return f.total, nil
}

func (f *fakeRepo) CountEntitiesByDomain(ctx context.Context) (map[string]int64, error) {
	return f.byDomain, nil
}

func (f *fakeRepo) GetEntity(ctx context.Context, entityID int64) (*domain.Entity, error) {
	return f.entities[entityID], nil
}

func (f *fakeRepo) ListEntitySources(ctx context.Context, entityID int64) ([]domain.EntitySource, error) {
	if s, ok := f.sources[entityID]; ok {
		return s, nil
	}
	return []domain.EntitySource{}, nil
}

func (f *fakeRepo) Ping(ctx context.Context) error {
	return f.pingErr
}

func (f *fakeRepo) SchemaAvailable(ctx context.Context) (bool, error) {
	return f.schemaOK, nil
}

func TestReportServiceCounts(t *testing.T) {
	svc := NewReportService(&fakeRepo{
		total:    123,
		byDomain: map[string]int64{"通信": 15, "计算机": 23},
	})

	total, err := svc.TotalEntities(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(123), total)

	counts, err := svc.EntitiesByDomain(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"通信": 15, "计算机": 23}, counts)
}

func TestReportServiceEntity(t *testing.T) {
	svc := NewReportService(&fakeRepo{
		entities: map[int64]*domain.Entity{
			42: {EntityID: 42, EntityName: "5G"},
		},
	})

	t.Run("existing entity", func(t *testing.T) {
		e, err := svc.Entity(context.Background(), 42)
		require.NoError(t, err)
		assert.Equal(t, "5G", e.EntityName)
	})

	t.Run("unknown entity is not found", func(t *testing.T) {
		_, err := svc.Entity(context.Background(), 77)
		require.Error(t, err)
		assert.Equal(t, domain.ErrorTypeNotFound, domain.TypeOf(err))
	})

	t.Run("non-positive id is a validation error", func(t *testing.T) {
		for _, id := range []int64{0, -1} {
			_, err := svc.Entity(context.Background(), id)
			require.Error(t, err)
			assert.Equal(t, domain.ErrorTypeValidation, domain.TypeOf(err))
		}
	})
}

func TestReportServiceEntitySources(t *testing.T) {
	svc := NewReportService(&fakeRepo{
		sources: map[int64][]domain.EntitySource{
			42: {{SourceID: 1, SourceType: "paper"}},
		},
	})

	t.Run("entity with sources", func(t *testing.T) {
		sources, err := svc.EntitySources(context.Background(), 42)
		require.NoError(t, err)
		require.Len(t, sources, 1)
		assert.Equal(t, "paper", sources[0].SourceType)
	})

	t.Run("entity without sources yields empty slice", func(t *testing.T) {
		sources, err := svc.EntitySources(context.Background(), 7)
		require.NoError(t, err)
		assert.NotNil(t, sources)
		assert.Empty(t, sources)
	})
}

func TestReportServiceDBStatus(t *testing.T) {
	tests := []struct {
		name string
		repo *fakeRepo
		want string
	}{
		{
			name: "schema available",
			repo: &fakeRepo{schemaOK: true},
			want: "connected (ks schema available)",
		},
		{
			name: "schema missing",
			repo: &fakeRepo{schemaOK: false},
			want: "connected (ks schema not found)",
		},
		{
			name: "unreachable",
			repo: &fakeRepo{pingErr: domain.NewDataSourceError(errors.New("refused"))},
			want: "error: data source unavailable: refused",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewReportService(tt.repo).DBStatus(context.Background()))
		})
	}
}
