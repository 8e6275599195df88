// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

//go:build linux

// Package main implements the brolly status bar service.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"github.com/wneessen/brolly/internal/config"
	"github.com/wneessen/brolly/internal/logger"
	"github.com/wneessen/brolly/internal/service"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGABRT, os.Interrupt)
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

	serv, err := service.New(conf, log, nil)
	if err != nil {
		log.Error("failed to initialize brolly service", logger.Err(err))
		os.Exit(1)
	}

	// SIGUSR1 toggles the alternative text, SIGUSR2 logs the current summary
	sigChan := make(chan os.Signal, 1)
	serv.SignalSrc.Notify(sigChan, syscall.SIGUSR1, syscall.SIGUSR2)
	defer serv.SignalSrc.Stop(sigChan)
	go serv.HandleSignals(ctx, sigChan)
	go serv.MonitorSleepResume(ctx)

	log.Info("starting brolly service", slog.String("version", version),
		slog.String("commit", commit), slog.String("date", date))
	if err = serv.Run(ctx); err != nil {
		log.Error("failed to start brolly service", logger.Err(err))
	}
	log.Info("shutting down brolly service")
}
