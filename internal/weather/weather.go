// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package weather holds the normalized forecast model that every provider maps its vendor
// response to, and the Provider decorators (caching, rate limiting, circuit breaking) that
// sit between the consumers and the upstream APIs.
package weather

import (
	"context"
	"time"
)

// Provider is implemented by each weather API backend.
type Provider interface {
	Name() string
	GetForecast(ctx context.Context, coords Coordinate, days int) (*Forecast, error)
}

// Forecast is the normalized forecast for a single location. Daily[0] is today in the
// location's timezone.
type Forecast struct {
	GeneratedAt time.Time `json:"-"`
	Location    Location  `json:"location"`
	Current     Current   `json:"current"`
	Daily       []Day     `json:"daily"`
}

type Location struct {
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Timezone string  `json:"timezone"`
}

// Current holds the conditions at the time the forecast was generated.
type Current struct {
	Time          time.Time `json:"time"`
	Temperature   float64   `json:"temperature"`
	FeelsLike     float64   `json:"feelsLike"`
	Humidity      float64   `json:"humidity"`
	WindSpeed     float64   `json:"windSpeed"`
	WindDirection float64   `json:"windDirection"`
	WeatherCode   int       `json:"weatherCode"`
	IsDay         bool      `json:"isDay"`
}

// Day is a single calendar day of the forecast. Hourly is ordered chronologically and
// normally carries 24 entries, starting at local midnight.
type Day struct {
	Date                     Date      `json:"date"`
	Sunrise                  time.Time `json:"sunrise"`
	Sunset                   time.Time `json:"sunset"`
	TemperatureMax           float64   `json:"temperatureMax"`
	TemperatureMin           float64   `json:"temperatureMin"`
	PrecipitationProbability int       `json:"precipitationProbability"`
	PrecipitationSum         float64   `json:"precipitationSum"`
	WeatherCode              int       `json:"weatherCode"`
	UVIndexMax               float64   `json:"uvIndexMax"`
	Hourly                   []Hour    `json:"hourly"`
}

// Hour is a single hourly forecast entry. Time is the local wall clock time of the entry.
type Hour struct {
	Time                     time.Time `json:"time"`
	Temperature              float64   `json:"temperature"`
	PrecipitationProbability int       `json:"precipitationProbability"`
	Precipitation            float64   `json:"precipitation"`
	WeatherCode              int       `json:"weatherCode"`
	WindSpeed                float64   `json:"windSpeed"`
	IsDay                    bool      `json:"isDay"`
}

// NewForecast returns an empty forecast with the daily slice allocated for the given
// number of days.
func NewForecast(days int) *Forecast {
	return &Forecast{
		Daily: make([]Day, 0, days),
	}
}

// Today returns the first forecast day, if any.
func (f *Forecast) Today() (Day, bool) {
	if f == nil || len(f.Daily) == 0 {
		return Day{}, false
	}
	return f.Daily[0], true
}

// HourOfDay returns the local hour of the entry.
func (h Hour) HourOfDay() int {
	return h.Time.Hour()
}
