package catalog

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/caseforge/caseforge/internal/domain"
)

// Cache sizing for case detail reads. The catalog is small; the TTL
// just bounds how long an admin edit can take to show on detail pages.
const (
	cacheSize = 128
	cacheTTL  = 30 * time.Second
)

// snapshotCache is an in-memory LRU for case snapshots keyed by slug.
// Entries go in and come out as deep copies so no caller can mutate
// what another caller reads.
type snapshotCache struct {
	lru *expirable.LRU[string, *domain.CaseSnapshot]
}

func newSnapshotCache() *snapshotCache {
	return &snapshotCache{
		lru: expirable.NewLRU[string, *domain.CaseSnapshot](cacheSize, nil, cacheTTL),
	}
}

func (c *snapshotCache) Get(slug string) (*domain.CaseSnapshot, bool) {
	snapshot, found := c.lru.Get(slug)
	if !found {
		return nil, false
	}
	return snapshot.Clone(), true
}

func (c *snapshotCache) Set(slug string, snapshot *domain.CaseSnapshot) {
	c.lru.Add(slug, snapshot.Clone())
}
