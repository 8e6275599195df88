// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/godbus/dbus/v5"

	"github.com/wneessen/brolly/internal/logger"
)

const (
	dbusInterface   = "org.freedesktop.login1.Manager"
	dbusWatchMember = "PrepareForSleep"

	debounceWindow   = 2 * time.Second
	signalBufferSize = 8

	busReconnectDelay   = 5 * time.Second
	networkWakeupDelay  = 10 * time.Second
	subscribeRetryDelay = 10 * time.Second
)

// MonitorSleepResume refreshes the forecast whenever logind reports that the system resumed
// from suspend. It reconnects to the system bus until the context is canceled.
func (s *Service) MonitorSleepResume(ctx context.Context) {
	var lastResume time.Time
	for {
		conn := s.connectToSystemBus(ctx)
		if conn == nil {
			return
		}
		if !s.subscribeSleepSignal(ctx, conn) {
			continue
		}

		sigCh := make(chan *dbus.Signal, signalBufferSize)
		conn.Signal(sigCh)
		s.logger.Debug("subscribed to dbus signal", slog.String("interface", dbusInterface),
			slog.String("member", dbusWatchMember))

	listen:
		for {
			select {
			case <-ctx.Done():
				break listen
			case sgn, ok := <-sigCh:
				if !ok {
					break listen
				}
				if isResumeSignal(sgn) && s.clock.Since(lastResume) >= debounceWindow {
					lastResume = s.clock.Now()
					s.refreshAfterResume(ctx)
				}
			}
		}

		conn.RemoveSignal(sigCh)
		if err := conn.Close(); err != nil {
			s.logger.Error("failed to close system bus connection", logger.Err(err))
		}
		select {
		case <-ctx.Done():
			return
		case <-s.clock.After(busReconnectDelay):
		}
	}
}

func (s *Service) connectToSystemBus(ctx context.Context) *dbus.Conn {
	for {
		conn, err := dbus.ConnectSystemBus(dbus.WithContext(ctx))
		if err == nil {
			return conn
		}
		s.logger.Debug("failed to connect to system bus", logger.Err(err))
		select {
		case <-s.clock.After(busReconnectDelay):
		case <-ctx.Done():
			return nil
		}
	}
}

func (s *Service) subscribeSleepSignal(ctx context.Context, conn *dbus.Conn) bool {
	err := conn.AddMatchSignal(dbus.WithMatchInterface(dbusInterface), dbus.WithMatchMember(dbusWatchMember))
	if err == nil {
		return true
	}

	s.logger.Error("failed to subscribe to dbus signal", slog.String("interface", dbusInterface),
		slog.String("member", dbusWatchMember), logger.Err(err))
	if err = conn.Close(); err != nil {
		s.logger.Error("failed to close system bus connection", logger.Err(err))
	}
	select {
	case <-s.clock.After(subscribeRetryDelay):
	case <-ctx.Done():
	}
	return false
}

// isResumeSignal reports whether the signal is PrepareForSleep(false).
func isResumeSignal(sgn *dbus.Signal) bool {
	if sgn == nil || len(sgn.Body) != 1 {
		return false
	}
	sleeping, ok := sgn.Body[0].(bool)
	return ok && !sleeping
}

// refreshAfterResume waits for the network to come back before fetching and printing
// a fresh summary.
func (s *Service) refreshAfterResume(ctx context.Context) {
	select {
	case <-ctx.Done():
		return
	case <-s.clock.After(networkWakeupDelay):
	}

	s.logger.Debug("resumed from sleep, fetching latest weather data")
	s.fetchWeather(ctx)
	s.printWeather(ctx)
}
