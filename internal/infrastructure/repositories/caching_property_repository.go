package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/indohomz/indohomz-backend/internal/core/domain/property"
	"github.com/indohomz/indohomz-backend/internal/core/ports"
)

// singleflight group for coalescing cache-miss loads in-process
var sf singleflight.Group

func cacheSetSilently(c ports.Cache, ctx context.Context, key string, v any, ttl time.Duration) {
	if c == nil {
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	_ = c.Set(ctx, key, b, ttl)
}

func cacheGet[T any](c ports.Cache, ctx context.Context, key string) (*T, bool) {
	if c == nil {
		return nil, false
	}
	b, ok, err := c.Get(ctx, key)
	if err != nil || !ok {
		return nil, false
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, false
	}
	return &v, true
}

// CachingPropertyRepository decorates a PropertyRepository with cache-aside
// for the public read paths. Listing detail pages are read-heavy and change
// rarely, so slug and ID lookups plus the dashboard stats are cached; every
// write invalidates the affected keys.
type CachingPropertyRepository struct {
	inner ports.PropertyRepository
	cache ports.Cache
	ttl   time.Duration
}

func NewCachingPropertyRepository(inner ports.PropertyRepository, cache ports.Cache, ttl time.Duration) ports.PropertyRepository {
	return &CachingPropertyRepository{inner: inner, cache: cache, ttl: ttl}
}

func (c *CachingPropertyRepository) invalidate(ctx context.Context, p *property.Property) {
	if c.cache == nil {
		return
	}
	if p != nil {
		_ = c.cache.Delete(ctx, "property:id:"+p.ID.String())
		_ = c.cache.Delete(ctx, "property:slug:"+p.Slug)
	}
	_ = c.cache.Delete(ctx, "property:stats")
}

func (c *CachingPropertyRepository) Create(ctx context.Context, p *property.Property) error {
	if err := c.inner.Create(ctx, p); err != nil {
		return err
	}
	c.invalidate(ctx, p)
	return nil
}

func (c *CachingPropertyRepository) GetByID(ctx context.Context, id uuid.UUID) (*property.Property, error) {
	key := "property:id:" + id.String()
	if v, ok := cacheGet[property.Property](c.cache, ctx, key); ok {
		return v, nil
	}

	res, err, _ := sf.Do(key, func() (any, error) {
		p, err := c.inner.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		cacheSetSilently(c.cache, ctx, key, p, c.ttl)
		return p, nil
	})
	if err != nil {
		return nil, err
	}
	p, ok := res.(*property.Property)
	if !ok {
		return nil, fmt.Errorf("unexpected type from singleflight result")
	}
	return p, nil
}

func (c *CachingPropertyRepository) GetBySlug(ctx context.Context, slug string) (*property.Property, error) {
	key := "property:slug:" + slug
	if v, ok := cacheGet[property.Property](c.cache, ctx, key); ok {
		return v, nil
	}

	res, err, _ := sf.Do(key, func() (any, error) {
		p, err := c.inner.GetBySlug(ctx, slug)
		if err != nil {
			return nil, err
		}
		cacheSetSilently(c.cache, ctx, key, p, c.ttl)
		return p, nil
	})
	if err != nil {
		return nil, err
	}
	p, ok := res.(*property.Property)
	if !ok {
		return nil, fmt.Errorf("unexpected type from singleflight result")
	}
	return p, nil
}

// List is filter-dependent and paginated; passed through uncached.
func (c *CachingPropertyRepository) List(ctx context.Context, filter *property.Filter) ([]*property.Property, error) {
	return c.inner.List(ctx, filter)
}

func (c *CachingPropertyRepository) Count(ctx context.Context, filter *property.Filter) (int, error) {
	return c.inner.Count(ctx, filter)
}

func (c *CachingPropertyRepository) Update(ctx context.Context, p *property.Property) error {
	if err := c.inner.Update(ctx, p); err != nil {
		return err
	}
	c.invalidate(ctx, p)
	return nil
}

func (c *CachingPropertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// Fetch first so the slug key can be invalidated too.
	p, _ := c.inner.GetByID(ctx, id)
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx, p)
	return nil
}

func (c *CachingPropertyRepository) SetAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	p, _ := c.inner.GetByID(ctx, id)
	if err := c.inner.SetAvailability(ctx, id, available); err != nil {
		return err
	}
	c.invalidate(ctx, p)
	return nil
}

func (c *CachingPropertyRepository) Stats(ctx context.Context) (*property.Stats, error) {
	const key = "property:stats"
	if v, ok := cacheGet[property.Stats](c.cache, ctx, key); ok {
		return v, nil
	}

	res, err, _ := sf.Do(key, func() (any, error) {
		stats, err := c.inner.Stats(ctx)
		if err != nil {
			return nil, err
		}
		cacheSetSilently(c.cache, ctx, key, stats, c.ttl)
		return stats, nil
	})
	if err != nil {
		return nil, err
	}
	stats, ok := res.(*property.Stats)
	if !ok {
		return nil, fmt.Errorf("unexpected type from singleflight result")
	}
	return stats, nil
}

func (c *CachingPropertyRepository) ListPrices(ctx context.Context) ([]string, error) {
	return c.inner.ListPrices(ctx)
}

func (c *CachingPropertyRepository) CountCreatedSince(ctx context.Context, days int) (int, error) {
	return c.inner.CountCreatedSince(ctx, days)
}
