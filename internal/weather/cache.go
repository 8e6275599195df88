// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package weather

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/singleflight"
)

// sharedFetchTimeout bounds an upstream call that is shared by all callers waiting on the same
// key. It does not end when the caller that started it goes away.
const sharedFetchTimeout = time.Second * 30

type cacheKey struct {
	Provider string
	LatQ     int32
	LonQ     int32
	Days     int
}

type cacheEntry struct {
	Forecast *Forecast
	Expiry   time.Time
}

// CachedProvider caches forecasts of the wrapped provider per quantized coordinate and
// number of days. Concurrent misses for the same key result in a single upstream call.
type CachedProvider struct {
	provider Provider
	ttl      time.Duration
	clock    clockwork.Clock
	group    singleflight.Group

	mu    sync.RWMutex
	cache map[cacheKey]cacheEntry
}

// NewCachedProvider wraps provider with a forecast cache using the given TTL. If clock is nil
// the real clock is used.
func NewCachedProvider(provider Provider, ttl time.Duration, clock clockwork.Clock) *CachedProvider {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &CachedProvider{
		provider: provider,
		ttl:      ttl,
		clock:    clock,
		cache:    make(map[cacheKey]cacheEntry),
	}
}

func (c *CachedProvider) Name() string {
	return "forecast cache using " + c.provider.Name()
}

func (c *CachedProvider) GetForecast(ctx context.Context, coords Coordinate, days int) (*Forecast, error) {
	key := newKey(c.provider.Name(), coords, days)

	c.mu.RLock()
	entry, ok := c.cache[key]
	if ok && c.clock.Now().Before(entry.Expiry) {
		c.mu.RUnlock()
		return entry.Forecast, nil
	}
	c.mu.RUnlock()

	resChan := c.group.DoChan(key.String(), func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sharedFetchTimeout)
		defer cancel()
		forecast, err := c.provider.GetForecast(fetchCtx, coords, days)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		defer c.mu.Unlock()
		c.cache[key] = cacheEntry{
			Forecast: forecast,
			Expiry:   c.clock.Now().Add(c.ttl),
		}
		return forecast, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-resChan:
		if res.Err != nil {
			return nil, res.Err
		}
		forecast, ok := res.Val.(*Forecast)
		if !ok {
			return nil, fmt.Errorf("unexpected cache result type: %T", res.Val)
		}
		return forecast, nil
	}
}

// Prune removes all expired entries and returns the number of removed entries.
func (c *CachedProvider) Prune() int {
	now := c.clock.Now()

	c.mu.Lock()
	defer c.mu.Unlock()
	removed := 0
	for key, entry := range c.cache {
		if !now.Before(entry.Expiry) {
			delete(c.cache, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of cached entries, expired or not.
func (c *CachedProvider) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cache)
}

func newKey(provider string, coords Coordinate, days int) cacheKey {
	return cacheKey{
		Provider: provider,
		LatQ:     quantizeCoord(coords.Lat),
		LonQ:     quantizeCoord(coords.Lon),
		Days:     days,
	}
}

func (k cacheKey) String() string {
	return fmt.Sprintf("%s:%d:%d:%d", k.Provider, k.LatQ, k.LonQ, k.Days)
}
