// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package main implements the brolly HTTP API.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"github.com/jonboulle/clockwork"

	"github.com/wneessen/brolly/internal/config"
	"github.com/wneessen/brolly/internal/job"
	"github.com/wneessen/brolly/internal/logger"
	"github.com/wneessen/brolly/internal/server"
	weatherprovider "github.com/wneessen/brolly/internal/weather/provider"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, os.Interrupt)
	defer cancel()

	log := logger.New(slog.LevelError)

	confPath := flag.String("config", "", "path to the config file")
	flag.Parse()

	conf, err := config.Load(*confPath)
	if err != nil {
		log.Error("failed to load config", logger.Err(err))
		os.Exit(1)
	}
	log = logger.New(conf.LogLevel)

	clock := clockwork.NewRealClock()
	provider, err := weatherprovider.New(conf, log, clock)
	if err != nil {
		log.Error("failed to create weather provider", logger.Err(err))
		os.Exit(1)
	}

	pruneJob := job.New("forecast_cache_prune", conf.Upstream.CachePrune, func(context.Context) {
		if pruned := provider.Prune(); pruned > 0 {
			log.Debug("pruned expired forecasts", slog.Int("count", pruned), slog.Int("cached", provider.Len()))
		}
	})
	go pruneJob.Start(ctx)

	srv, err := server.New(conf, provider, log, clock)
	if err != nil {
		log.Error("failed to create API server", logger.Err(err))
		os.Exit(1)
	}

	log.Info("starting brolly API", slog.String("version", version),
		slog.String("commit", commit), slog.String("date", date))
	if err = srv.ListenAndServe(ctx); err != nil {
		log.Error("brolly API failed", logger.Err(err))
		os.Exit(1)
	}
}
