// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/jonboulle/clockwork"

	"github.com/wneessen/brolly/internal/config"
	"github.com/wneessen/brolly/internal/logger"
	"github.com/wneessen/brolly/internal/presenter"
	"github.com/wneessen/brolly/internal/summary"
	"github.com/wneessen/brolly/internal/weather"
	weatherprovider "github.com/wneessen/brolly/internal/weather/provider"
)

const (
	OutputClass     = "brolly"
	RainOutputClass = "brolly-rain"
	SnowOutputClass = "brolly-snow"

	FetchTimeout = time.Second * 30
)

type outputData struct {
	Text    string   `json:"text"`
	Tooltip string   `json:"tooltip"`
	Classes []string `json:"class"`
}

type Service struct {
	SignalSrc signalSource

	clock       clockwork.Clock
	config      *config.Config
	jobs        []gocron.Job
	location    *time.Location
	logger      *logger.Logger
	output      io.Writer
	presenter   *presenter.Presenter
	scheduler   gocron.Scheduler
	weatherProv weather.Provider

	displayAltLock sync.RWMutex
	displayAltText bool

	weatherLock  sync.RWMutex
	weatherIsSet bool
	weather      *weather.Forecast
}

func New(conf *config.Config, log *logger.Logger, clock clockwork.Clock) (*Service, error) {
	if log == nil {
		return nil, errors.New("logger is required")
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	scheduler, err := gocron.NewScheduler(gocron.WithClock(clock), gocron.WithLocation(conf.TimeLocation()))
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	pres, err := presenter.New(conf)
	if err != nil {
		return nil, fmt.Errorf("failed to create presenter: %w", err)
	}

	provider, err := weatherprovider.New(conf, log, clock)
	if err != nil {
		return nil, fmt.Errorf("failed to create weather provider: %w", err)
	}

	service := &Service{
		SignalSrc:   stdLibSignalSource{},
		clock:       clock,
		config:      conf,
		location:    conf.TimeLocation(),
		logger:      log,
		output:      os.Stdout,
		presenter:   pres,
		scheduler:   scheduler,
		weatherProv: provider,
	}
	return service, nil
}

// Run starts the scheduled jobs and blocks until the context is canceled.
func (s *Service) Run(ctx context.Context) error {
	if err := s.createScheduledJob(ctx, s.config.Intervals.WeatherUpdate, s.fetchWeather,
		"weather_update_job"); err != nil {
		return err
	}
	if err := s.createScheduledJob(ctx, s.config.Intervals.Output, s.printWeather,
		"summary_output_job"); err != nil {
		return err
	}
	s.scheduler.Start()
	s.logger.Debug("scheduler started", slog.Int("jobs", len(s.jobs)),
		slog.String("location", s.config.Location.Name))

	// Fetch and print right away instead of waiting for the first tick
	s.fetchWeather(ctx)
	s.printWeather(ctx)

	<-ctx.Done()
	return s.scheduler.Shutdown()
}

func (s *Service) createScheduledJob(ctx context.Context, interval time.Duration, task func(context.Context),
	jobName string,
) error {
	job, err := s.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(task),
		gocron.WithContext(ctx),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithName(jobName),
	)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", jobName, err)
	}
	s.jobs = append(s.jobs, job)
	return nil
}

// fetchWeather retrieves the forecast for the configured location and stores it for the output job.
func (s *Service) fetchWeather(ctx context.Context) {
	ctxFetch, cancelFetch := context.WithTimeout(ctx, FetchTimeout)
	defer cancelFetch()

	coords := weather.Coordinate{Lat: s.config.Location.Latitude, Lon: s.config.Location.Longitude}
	forecast, err := s.weatherProv.GetForecast(ctxFetch, coords, s.config.Weather.ForecastDays)
	if err != nil {
		s.logger.Error("failed to fetch weather data", logger.Err(err),
			slog.String("source", s.weatherProv.Name()))
		return
	}
	s.logger.Debug("weather data updated", slog.String("coordinates", coords.String()),
		slog.Int("days", len(forecast.Daily)))

	s.weatherLock.Lock()
	defer s.weatherLock.Unlock()
	s.weather = forecast
	s.weatherIsSet = true
}

// printWeather generates the summary for the stored forecast, renders it using the configured
// templates and writes a single waybar JSON line to the output.
func (s *Service) printWeather(context.Context) {
	s.weatherLock.RLock()
	defer s.weatherLock.RUnlock()
	if !s.weatherIsSet {
		return
	}

	now := s.clock.Now().In(s.location)
	sum := summary.Generate(s.weather, summary.NowFrom(now))
	tplCtx := s.presenter.BuildContext(s.config.Location.Name, s.weather, sum, now)
	rendered, err := s.presenter.Render(tplCtx)
	if err != nil {
		s.logger.Error("failed to render templates", logger.Err(err))
		return
	}

	s.displayAltLock.RLock()
	text := rendered["text"]
	if s.displayAltText {
		text = rendered["alt_text"]
	}
	s.displayAltLock.RUnlock()

	output := outputData{
		Text:    text,
		Tooltip: rendered["tooltip"],
		Classes: s.outputClasses(now.Hour()),
	}
	if err = json.NewEncoder(s.output).Encode(output); err != nil {
		s.logger.Error("failed to encode weather data", logger.Err(err))
	}
}

// outputClasses returns the CSS classes for the module. Callers must hold the weather lock.
func (s *Service) outputClasses(currentHour int) []string {
	classes := []string{OutputClass}
	today, ok := s.weather.Today()
	if !ok {
		return classes
	}
	switch {
	case summary.IsSnowyCode(today.WeatherCode):
		classes = append(classes, SnowOutputClass)
	case summary.RemainingMaxPrecipProb(today.Hourly, currentHour) >= summary.RainThreshold:
		classes = append(classes, RainOutputClass)
	}
	return classes
}
