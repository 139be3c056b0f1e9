package usecase_pool

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/humanbelnik/kinomatch/core/internal/model"
)

var (
	ErrPoolUnavailable = errors.New("pool unavailable")
)

// Fixed "interesting" categories forming the base deck universe.
var interestingCategories = []string{
	"popular_movies",
	"popular_series",
	"top_rated_movies",
}

const pagesPerCategory = 2

//go:generate mockery --name=CatalogLister --output=./mocks --outpkg=mocks
type CatalogLister interface {
	ListInteresting(ctx context.Context, category string, page int) ([]model.PoolItem, error)
}

//go:generate mockery --name=Cache --output=./mocks --outpkg=mocks
type Cache interface {
	Get(ctx context.Context) ([]model.PoolItem, bool, error)
	Set(ctx context.Context, items []model.PoolItem, ttl time.Duration) error
}

type Usecase struct {
	catalog CatalogLister
	cache   Cache
	ttl     time.Duration
}

func New(catalog CatalogLister, cache Cache, ttl time.Duration) *Usecase {
	if ttl <= 0 {
		ttl = 5 * time.Minute /* default */
	}
	return &Usecase{
		catalog: catalog,
		cache:   cache,
		ttl:     ttl,
	}
}

// BuildPool returns the deduplicated, canonically ordered set of catalog
// items eligible for a base deck. The result is cached with a short TTL;
// a snapshot change between cache expiries may shift permutations, which
// is accepted soft consistency.
func (u *Usecase) BuildPool(ctx context.Context) ([]model.PoolItem, error) {
	if items, ok, err := u.cache.Get(ctx); err == nil && ok {
		return items, nil
	}

	seen := make(map[model.PoolItem]struct{})
	items := make([]model.PoolItem, 0, 64)

	var lastErr error
	for _, category := range interestingCategories {
		for page := 1; page <= pagesPerCategory; page++ {
			batch, err := u.catalog.ListInteresting(ctx, category, page)
			if err != nil {
				lastErr = err
				continue
			}
			for _, it := range batch {
				if _, ok := seen[it]; ok {
					continue
				}
				seen[it] = struct{}{}
				items = append(items, it)
			}
		}
	}

	if len(items) == 0 {
		if lastErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrPoolUnavailable, lastErr)
		}
		return nil, ErrPoolUnavailable
	}

	sortCanonical(items)

	// Cache failures only cost the next request a refetch.
	_ = u.cache.Set(ctx, items, u.ttl)

	return items, nil
}

// Shuffle returns a seeded permutation of the pool. The ordering is a pure
// function of (canonical pool snapshot, seed): any slot, any process and
// any request time reproduce the same sequence.
func Shuffle(pool []model.PoolItem, seed int64) []model.PoolItem {
	out := make([]model.PoolItem, len(pool))
	copy(out, pool)
	sortCanonical(out)

	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// sortCanonical fixes the pre-shuffle order so the permutation does not
// depend on catalog response ordering.
func sortCanonical(items []model.PoolItem) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].Kind != items[j].Kind {
			return items[i].Kind < items[j].Kind
		}
		return items[i].ID < items[j].ID
	})
}
