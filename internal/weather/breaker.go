// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package weather

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/wneessen/brolly/internal/logger"
)

// ErrUpstreamUnavailable is returned while the circuit breaker rejects upstream calls.
var ErrUpstreamUnavailable = errors.New("weather upstream temporarily unavailable")

// BreakerProvider wraps a Provider with a circuit breaker that opens after a number of
// consecutive failures.
type BreakerProvider struct {
	provider Provider
	breaker  *gobreaker.CircuitBreaker[*Forecast]
}

// NewBreakerProvider creates a circuit breaking provider. The breaker opens after failures
// consecutive errors and allows a single probe request after timeout.
func NewBreakerProvider(provider Provider, failures uint32, timeout time.Duration, log *logger.Logger) *BreakerProvider {
	settings := gobreaker.Settings{
		Name:        provider.Name(),
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	}
	if log != nil {
		settings.OnStateChange = func(name string, from, to gobreaker.State) {
			log.Warn("weather provider circuit breaker changed state", slog.String("provider", name),
				slog.String("from", from.String()), slog.String("to", to.String()))
		}
	}

	return &BreakerProvider{
		provider: provider,
		breaker:  gobreaker.NewCircuitBreaker[*Forecast](settings),
	}
}

func (b *BreakerProvider) Name() string {
	return b.provider.Name()
}

func (b *BreakerProvider) GetForecast(ctx context.Context, coords Coordinate, days int) (*Forecast, error) {
	forecast, err := b.breaker.Execute(func() (*Forecast, error) {
		return b.provider.GetForecast(ctx, coords, days)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}
	return forecast, err
}

// State returns the current breaker state.
func (b *BreakerProvider) State() gobreaker.State {
	return b.breaker.State()
}
