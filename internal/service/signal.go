// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/wneessen/brolly/internal/summary"
)

type signalSource interface {
	Notify(c chan<- os.Signal, sig ...os.Signal)
	Stop(c chan<- os.Signal)
}

type stdLibSignalSource struct{}

func (stdLibSignalSource) Notify(c chan<- os.Signal, sig ...os.Signal) {
	signal.Notify(c, sig...)
}

func (stdLibSignalSource) Stop(c chan<- os.Signal) {
	signal.Stop(c)
}

// HandleSignals toggles between the text and the alternative text on SIGUSR1 and logs the
// current summary on SIGUSR2.
func (s *Service) HandleSignals(ctx context.Context, sigChan chan os.Signal) {
	for {
		select {
		case <-ctx.Done():
			return
		case sig := <-sigChan:
			switch sig {
			case syscall.SIGUSR1:
				s.displayAltLock.Lock()
				s.displayAltText = !s.displayAltText
				s.displayAltLock.Unlock()
				s.printWeather(ctx)
			case syscall.SIGUSR2:
				s.logSummary()
			}
		}
	}
}

func (s *Service) logSummary() {
	s.weatherLock.RLock()
	defer s.weatherLock.RUnlock()

	now := s.clock.Now().In(s.location)
	sum := summary.Generate(s.weather, summary.NowFrom(now))
	s.logger.Info("current summary", slog.String("location", s.config.Location.Name),
		slog.String("headline", sum.Headline), slog.String("today", sum.Today),
		slog.String("tomorrow", sum.Tomorrow), slog.String("weekend", sum.Weekend),
		slog.String("best_day", sum.BestDay.String()))
}
