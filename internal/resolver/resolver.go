package resolver

import (
	"context"
	"log/slog"
	"time"

	"sayyara-vehicle-api/internal/catalog"
	"sayyara-vehicle-api/internal/client"
	"sayyara-vehicle-api/internal/matching"
	"sayyara-vehicle-api/internal/metrics"
	"sayyara-vehicle-api/internal/model"
)

const (
	// defaultLookbackYears bounds the registry scan cost.
	defaultLookbackYears = 50
	// maxLeadMisses is how many recent years may miss before the registry
	// scan gives up on a model it has never seen.
	maxLeadMisses = 8
	// missStreakStop ends the scan once production clearly stopped
	// appearing below the oldest hit.
	missStreakStop = 3
)

// TrimSource is the vehicle-trim provider contract (live source A).
type TrimSource interface {
	GetTrims(ctx context.Context, mk, model string) ([]client.TrimRecord, error)
}

// RegistrySource is the vehicle-registry provider contract (live source B).
type RegistrySource interface {
	HasModel(ctx context.Context, mk, model string, year int) (bool, error)
}

// Resolver resolves the production-year range for a brand/model pair through
// ranked tiers: cache, trim provider, registry scan, static catalog, generic
// fallback. The first tier that produces data wins; tiers are never merged.
// Resolve never fails: the worst case is the generic sanity range with
// Confidence false.
type Resolver struct {
	cache    *Cache
	trims    TrimSource
	registry RegistrySource
	catalog  *catalog.Catalog
	metrics  *metrics.Metrics
	logger   *slog.Logger
	lookback int
	now      func() time.Time
}

// New creates a resolver owning the given cache. Either live source may be
// nil, which skips its tier.
func New(cache *Cache, trims TrimSource, registry RegistrySource, cat *catalog.Catalog, m *metrics.Metrics, logger *slog.Logger) *Resolver {
	return &Resolver{
		cache:    cache,
		trims:    trims,
		registry: registry,
		catalog:  cat,
		metrics:  m,
		logger:   logger,
		lookback: defaultLookbackYears,
		now:      time.Now,
	}
}

// Cache exposes the resolver-owned cache for ops surfaces (clear, size).
func (r *Resolver) Cache() *Cache {
	return r.cache
}

// Resolve returns the year range for a brand/model pair.
func (r *Resolver) Resolve(ctx context.Context, brand, mdl string) model.YearRange {
	if rng, ok := r.cache.Get(brand, mdl); ok {
		r.metrics.RecordCacheLookup(true)
		r.metrics.RecordResolution(string(model.TierCached))
		rng.Source = model.TierCached
		return rng
	}
	r.metrics.RecordCacheLookup(false)

	if rng, ok := r.fromTrims(ctx, brand, mdl); ok {
		return r.store(brand, mdl, rng)
	}

	if rng, ok := r.fromRegistry(ctx, brand, mdl); ok {
		return r.store(brand, mdl, rng)
	}

	if rng, ok := r.fromCatalog(brand, mdl); ok {
		return r.store(brand, mdl, rng)
	}

	// Generic sanity bounds; never brand/model-specific, hence Confidence false
	rng := model.YearRange{
		MinYear:    1900,
		MaxYear:    r.currentYear() + 1,
		Source:     model.TierFallback,
		Confidence: false,
	}
	return r.store(brand, mdl, rng)
}

func (r *Resolver) store(brand, mdl string, rng model.YearRange) model.YearRange {
	r.metrics.RecordResolution(string(rng.Source))
	r.cache.Put(brand, mdl, rng)
	return rng
}

// fromTrims derives a range from the trim provider's production records.
func (r *Resolver) fromTrims(ctx context.Context, brand, mdl string) (model.YearRange, bool) {
	if r.trims == nil {
		return model.YearRange{}, false
	}

	start := time.Now()
	records, err := r.trims.GetTrims(ctx, brand, mdl)
	r.metrics.ObserveSourceDuration(float64(time.Since(start).Milliseconds()))
	if err != nil {
		r.logger.Debug("trim source produced no data", "brand", brand, "model", mdl, "error", err)
		return model.YearRange{}, false
	}

	minYear, maxYear := 0, 0
	for _, rec := range records {
		year := matching.ParseYear(rec.ModelYear)
		if year == 0 {
			continue
		}
		if minYear == 0 || year < minYear {
			minYear = year
		}
		if year > maxYear {
			maxYear = year
		}
	}
	if minYear == 0 {
		return model.YearRange{}, false
	}

	// Always allow the following model year
	if next := r.currentYear() + 1; next > maxYear {
		maxYear = next
	}

	return model.YearRange{
		MinYear:    minYear,
		MaxYear:    maxYear,
		Source:     model.TierTrims,
		Confidence: true,
	}, true
}

// fromRegistry scans the registry downward from next year until records stop
// appearing, bounded by the lookback window. Any error fails the whole tier:
// partial hits are discarded, since a range truncated by a transient failure
// would confidently reject valid older years while the catalog tier below
// still holds the full span.
func (r *Resolver) fromRegistry(ctx context.Context, brand, mdl string) (model.YearRange, bool) {
	if r.registry == nil {
		return model.YearRange{}, false
	}

	top := r.currentYear() + 1
	floor := top - r.lookback

	newest, oldest := 0, 0
	misses := 0

	for year := top; year >= floor; year-- {
		start := time.Now()
		found, err := r.registry.HasModel(ctx, brand, mdl, year)
		r.metrics.ObserveSourceDuration(float64(time.Since(start).Milliseconds()))
		if err != nil {
			r.logger.Debug("registry scan aborted", "brand", brand, "model", mdl, "year", year, "error", err)
			return model.YearRange{}, false
		}

		if found {
			if newest == 0 {
				newest = year
			}
			oldest = year
			misses = 0
			continue
		}

		misses++
		if newest == 0 {
			if misses >= maxLeadMisses {
				break
			}
		} else if misses >= missStreakStop {
			break
		}
	}

	if oldest == 0 {
		return model.YearRange{}, false
	}

	maxYear := newest
	if top > maxYear {
		maxYear = top
	}

	return model.YearRange{
		MinYear:    oldest,
		MaxYear:    maxYear,
		Source:     model.TierRegistry,
		Confidence: true,
	}, true
}

// fromCatalog uses the curated static production table.
func (r *Resolver) fromCatalog(brand, mdl string) (model.YearRange, bool) {
	rec, ok := r.catalog.ModelYears(brand, mdl)
	if !ok {
		return model.YearRange{}, false
	}

	maxYear := rec.EndYear
	if maxYear == 0 {
		// Still in production
		maxYear = r.currentYear() + 1
	}

	return model.YearRange{
		MinYear:    rec.StartYear,
		MaxYear:    maxYear,
		Source:     model.TierCatalog,
		Confidence: true,
	}, true
}

func (r *Resolver) currentYear() int {
	return r.now().Year()
}
