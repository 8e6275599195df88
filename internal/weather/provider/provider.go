// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package provider builds the upstream weather provider chain shared by the brolly binaries.
package provider

import (
	"fmt"
	"strings"

	"github.com/jonboulle/clockwork"

	"github.com/wneessen/brolly/internal/config"
	"github.com/wneessen/brolly/internal/http"
	"github.com/wneessen/brolly/internal/logger"
	"github.com/wneessen/brolly/internal/weather"
	openmeteo "github.com/wneessen/brolly/internal/weather/provider/open-meteo"
)

// New creates the configured upstream weather provider and wraps it with the
// rate limiter, the circuit breaker and the forecast cache, in that order. The cache is
// returned so that callers can prune it.
func New(conf *config.Config, log *logger.Logger, clock clockwork.Clock) (*weather.CachedProvider, error) {
	var upstream weather.Provider
	switch strings.ToLower(conf.Weather.Provider) {
	case config.ProviderOpenMeteo:
		provider, err := openmeteo.New(http.New(log), log, conf.Weather.Timezone,
			openmeteo.WithTimeout(conf.Upstream.Timeout))
		if err != nil {
			return nil, fmt.Errorf("failed to create Open-Meteo weather provider: %w", err)
		}
		upstream = provider
	default:
		return nil, fmt.Errorf("unsupported weather provider: %s", conf.Weather.Provider)
	}

	upstream = weather.NewRateLimitedProvider(upstream, conf.Upstream.RateLimit, conf.Upstream.Burst)
	upstream = weather.NewBreakerProvider(upstream, conf.Upstream.BreakerFailures, conf.Upstream.BreakerTimeout, log)
	return weather.NewCachedProvider(upstream, conf.Upstream.CacheTTL, clock), nil
}
