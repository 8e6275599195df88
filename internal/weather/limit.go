// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package weather

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// RateLimitedProvider wraps a Provider with a token bucket rate limiter.
type RateLimitedProvider struct {
	provider Provider
	limiter  *rate.Limiter
}

// NewRateLimitedProvider creates a new rate limited provider. rps is the maximum number of
// upstream requests per second (fractions allowed), burst the maximum burst size.
func NewRateLimitedProvider(provider Provider, rps float64, burst int) *RateLimitedProvider {
	return &RateLimitedProvider{
		provider: provider,
		limiter:  rate.NewLimiter(rate.Limit(rps), burst),
	}
}

func (r *RateLimitedProvider) Name() string {
	return r.provider.Name()
}

// GetForecast waits for the rate limiter before forwarding to the wrapped provider.
func (r *RateLimitedProvider) GetForecast(ctx context.Context, coords Coordinate, days int) (*Forecast, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.provider.GetForecast(ctx, coords, days)
}
