package service

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/DerickDu/ks-backend/internal/cache"
	"github.com/DerickDu/ks-backend/internal/domain"
	"github.com/DerickDu/ks-backend/internal/repository"
	"github.com/DerickDu/ks-backend/internal/tree"
)

// TreeService materializes catalog paths into cached classification trees.
//
// A refresh=true call rebuilds from the row source and overwrites the
// cached entry for its scope key, so the fresh tree is also what every
// later non-refresh call sees. That shared cache mutation is the intended
// contract, not an implementation accident. Returned trees are snapshots;
// callers must treat them as immutable.
type TreeService struct {
	rows  repository.RowSource
	cache *cache.Store
	group singleflight.Group
}

// NewTreeService creates a materializer over a row source and a cache
// store.
func NewTreeService(rows repository.RowSource, store *cache.Store) *TreeService {
	return &TreeService{rows: rows, cache: store}
}

// DomainsTree returns the domain/sub-domain summary tree for all domains.
func (s *TreeService) DomainsTree(ctx context.Context, refresh bool) ([]*domain.PathNode, error) {
	return s.tree(ctx, domain.ScopeAll, refresh)
}

// EntitiesTree returns the entity path tree for a (domain, sub_domain)
// pair. Both parameters must be non-empty; validation fails before any
// cache or row-source interaction.
func (s *TreeService) EntitiesTree(ctx context.Context, dom, subDomain string, refresh bool) ([]*domain.PathNode, error) {
	if dom == "" || subDomain == "" {
		return nil, domain.NewValidationError("missing required parameters: domain and sub_domain")
	}
	return s.tree(ctx, domain.Scope{Domain: dom, SubDomain: subDomain}, refresh)
}

// Invalidate drops the cached tree for a scope without rebuilding it.
func (s *TreeService) Invalidate(scope domain.Scope) {
	s.cache.Invalidate(scope.Key())
}

func (s *TreeService) tree(ctx context.Context, scope domain.Scope, refresh bool) ([]*domain.PathNode, error) {
	key := scope.Key()
	if !refresh {
		if entry, ok := s.cache.Get(key); ok {
			return entry.Tree, nil
		}
	}

	// Concurrent rebuilds of the same scope coalesce into one in-flight
	// build; every waiter observes its result. Followers share the
	// leader's context, so a follower cancelling does not abort the
	// build.
	v, err, _ := s.group.Do(key, func() (any, error) {
		return s.rebuild(ctx, scope)
	})
	if err != nil {
		return nil, err
	}
	return v.([]*domain.PathNode), nil
}

// rebuild fetches rows, builds the tree, and overwrites the cache entry.
// On a fetch failure the prior entry stays untouched.
func (s *TreeService) rebuild(ctx context.Context, scope domain.Scope) ([]*domain.PathNode, error) {
	start := time.Now()
	rows, err := s.rows.FetchPathRows(ctx, scope)
	if err != nil {
		return nil, err
	}

	res := tree.Build(rows, scope.PrefixLen())
	for _, w := range res.Warnings {
		log.WithFields(log.Fields{
			"scope": scope.String(),
			"path":  w.Path,
		}).Warn("skipped catalog row: " + w.Reason)
	}

	s.cache.Put(scope.Key(), res.Roots)

	log.WithFields(log.Fields{
		"scope": scope.String(),
		"rows":  len(rows),
		"roots": len(res.Roots),
		"took":  time.Since(start),
	}).Debug("tree rebuilt")

	return res.Roots, nil
}

// Warm force-builds the all-domains tree and then every pair tree, with
// bounded concurrency. Intended for startup; partial failure aborts the
// remaining builds but already-warmed scopes stay cached.
func (s *TreeService) Warm(ctx context.Context, pairs repository.PairLister, parallelism int) error {
	if parallelism < 1 {
		parallelism = 1
	}

	if _, err := s.tree(ctx, domain.ScopeAll, true); err != nil {
		return err
	}

	scopes, err := pairs.ListDomainPairs(ctx)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)
	for _, scope := range scopes {
		scope := scope
		g.Go(func() error {
			_, err := s.tree(ctx, scope, true)
			return err
		})
	}
	return g.Wait()
}
