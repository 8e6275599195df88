// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package openmeteo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/wneessen/brolly/internal/http"
	"github.com/wneessen/brolly/internal/logger"
	"github.com/wneessen/brolly/internal/weather"
)

const (
	name        = "open-meteo"
	apiEndpoint = "https://api.open-meteo.com/v1/forecast"
	apiTimeout  = time.Second * 10
	timeLayout  = "2006-01-02T15:04"
)

var (
	currentFields = []string{
		"temperature_2m", "relative_humidity_2m", "apparent_temperature", "weather_code",
		"wind_speed_10m", "wind_direction_10m", "is_day",
	}
	hourlyFields = []string{
		"temperature_2m", "precipitation_probability", "precipitation", "weather_code",
		"wind_speed_10m", "is_day",
	}
	dailyFields = []string{
		"sunrise", "sunset", "temperature_2m_max", "temperature_2m_min",
		"precipitation_probability_max", "precipitation_sum", "weather_code", "uv_index_max",
	}

	ErrMalformedResponse = errors.New("malformed Open-Meteo response")
)

type OpenMeteo struct {
	endpoint string
	timeout  time.Duration
	location *time.Location
	log      *logger.Logger
	http     *http.Client
}

type resTime struct {
	time.Time
}

type resBool struct {
	bool
}

type response struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
	Current   struct {
		Time                resTime `json:"time"`
		Temperature         float64 `json:"temperature_2m"`
		RelativeHumidity    float64 `json:"relative_humidity_2m"`
		ApparentTemperature float64 `json:"apparent_temperature"`
		WeatherCode         int     `json:"weather_code"`
		WindSpeed           float64 `json:"wind_speed_10m"`
		WindDirection       float64 `json:"wind_direction_10m"`
		IsDay               resBool `json:"is_day"`
	} `json:"current"`
	Hourly struct {
		Time                     []resTime `json:"time"`
		Temperature              []float64 `json:"temperature_2m"`
		PrecipitationProbability []int     `json:"precipitation_probability"`
		Precipitation            []float64 `json:"precipitation"`
		WeatherCode              []int     `json:"weather_code"`
		WindSpeed                []float64 `json:"wind_speed_10m"`
		IsDay                    []resBool `json:"is_day"`
	} `json:"hourly"`
	Daily struct {
		Time                        []weather.Date `json:"time"`
		Sunrise                     []resTime      `json:"sunrise"`
		Sunset                      []resTime      `json:"sunset"`
		TemperatureMax              []float64      `json:"temperature_2m_max"`
		TemperatureMin              []float64      `json:"temperature_2m_min"`
		PrecipitationProbabilityMax []int          `json:"precipitation_probability_max"`
		PrecipitationSum            []float64      `json:"precipitation_sum"`
		WeatherCode                 []int          `json:"weather_code"`
		UVIndexMax                  []float64      `json:"uv_index_max"`
	} `json:"daily"`
}

// Option modifies the OpenMeteo provider
type Option func(*OpenMeteo)

// WithEndpoint overrides the API endpoint
func WithEndpoint(endpoint string) Option {
	return func(o *OpenMeteo) {
		o.endpoint = endpoint
	}
}

// WithTimeout overrides the request timeout
func WithTimeout(timeout time.Duration) Option {
	return func(o *OpenMeteo) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// New returns an Open-Meteo forecast provider that requests and interprets all times in the
// given IANA timezone.
func New(http *http.Client, log *logger.Logger, timezone string, opts ...Option) (*OpenMeteo, error) {
	if http == nil {
		return nil, fmt.Errorf("http client is required")
	}
	if log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", timezone, err)
	}

	provider := &OpenMeteo{endpoint: apiEndpoint, timeout: apiTimeout, location: loc, http: http, log: log}
	for _, opt := range opts {
		opt(provider)
	}
	return provider, nil
}

func (o *OpenMeteo) Name() string {
	return name
}

func (o *OpenMeteo) GetForecast(ctx context.Context, coords weather.Coordinate, days int) (*weather.Forecast, error) {
	res := new(response)

	query := url.Values{}
	query.Set("latitude", strconv.FormatFloat(coords.Lat, 'f', -1, 64))
	query.Set("longitude", strconv.FormatFloat(coords.Lon, 'f', -1, 64))
	query.Set("current", strings.Join(currentFields, ","))
	query.Set("hourly", strings.Join(hourlyFields, ","))
	query.Set("daily", strings.Join(dailyFields, ","))
	query.Set("timezone", o.location.String())
	query.Set("forecast_days", strconv.Itoa(days))

	code, err := o.http.GetWithTimeout(ctx, o.endpoint, res, query, nil, o.timeout)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve weather data from Open-Meteo API: %w", err)
	}
	if code != 200 {
		return nil, fmt.Errorf("Open-Meteo API returned non-positive response code: %d", code)
	}
	if err = res.validate(); err != nil {
		return nil, err
	}

	data := weather.NewForecast(len(res.Daily.Time))
	data.GeneratedAt = time.Now()
	data.Location = weather.Location{Lat: res.Latitude, Lon: res.Longitude, Timezone: res.Timezone}
	data.Current = weather.Current{
		Time:          o.inLocation(res.Current.Time),
		Temperature:   res.Current.Temperature,
		FeelsLike:     res.Current.ApparentTemperature,
		Humidity:      res.Current.RelativeHumidity,
		WindSpeed:     res.Current.WindSpeed,
		WindDirection: res.Current.WindDirection,
		WeatherCode:   res.Current.WeatherCode,
		IsDay:         res.Current.IsDay.bool,
	}

	// Hours are attached to the day matching their calendar date in the forecast timezone
	hoursByDate := make(map[weather.Date][]weather.Hour, len(res.Daily.Time))
	for i := range res.Hourly.Time {
		hourTime := o.inLocation(res.Hourly.Time[i])
		date := weather.DateOf(hourTime)
		hoursByDate[date] = append(hoursByDate[date], weather.Hour{
			Time:                     hourTime,
			Temperature:              res.Hourly.Temperature[i],
			PrecipitationProbability: res.Hourly.PrecipitationProbability[i],
			Precipitation:            res.Hourly.Precipitation[i],
			WeatherCode:              res.Hourly.WeatherCode[i],
			WindSpeed:                res.Hourly.WindSpeed[i],
			IsDay:                    res.Hourly.IsDay[i].bool,
		})
	}

	for i, date := range res.Daily.Time {
		data.Daily = append(data.Daily, weather.Day{
			Date:                     date,
			Sunrise:                  o.inLocation(res.Daily.Sunrise[i]),
			Sunset:                   o.inLocation(res.Daily.Sunset[i]),
			TemperatureMax:           res.Daily.TemperatureMax[i],
			TemperatureMin:           res.Daily.TemperatureMin[i],
			PrecipitationProbability: res.Daily.PrecipitationProbabilityMax[i],
			PrecipitationSum:         res.Daily.PrecipitationSum[i],
			WeatherCode:              res.Daily.WeatherCode[i],
			UVIndexMax:               res.Daily.UVIndexMax[i],
			Hourly:                   hoursByDate[date],
		})
	}
	o.log.Debug("forecast retrieved from Open-Meteo", slog.Int("days", len(data.Daily)),
		slog.Int("hours", len(res.Hourly.Time)), slog.String("coordinates", coords.String()))

	return data, nil
}

// inLocation interprets the wall clock time of the API response in the forecast timezone
func (o *OpenMeteo) inLocation(t resTime) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, o.location)
}

func (r *response) validate() error {
	hours := len(r.Hourly.Time)
	for field, n := range map[string]int{
		"temperature_2m":            len(r.Hourly.Temperature),
		"precipitation_probability": len(r.Hourly.PrecipitationProbability),
		"precipitation":             len(r.Hourly.Precipitation),
		"weather_code":              len(r.Hourly.WeatherCode),
		"wind_speed_10m":            len(r.Hourly.WindSpeed),
		"is_day":                    len(r.Hourly.IsDay),
	} {
		if n != hours {
			return fmt.Errorf("%w: hourly %s has %d entries, expected %d", ErrMalformedResponse, field, n, hours)
		}
	}

	days := len(r.Daily.Time)
	for field, n := range map[string]int{
		"sunrise":                       len(r.Daily.Sunrise),
		"sunset":                        len(r.Daily.Sunset),
		"temperature_2m_max":            len(r.Daily.TemperatureMax),
		"temperature_2m_min":            len(r.Daily.TemperatureMin),
		"precipitation_probability_max": len(r.Daily.PrecipitationProbabilityMax),
		"precipitation_sum":             len(r.Daily.PrecipitationSum),
		"weather_code":                  len(r.Daily.WeatherCode),
		"uv_index_max":                  len(r.Daily.UVIndexMax),
	} {
		if n != days {
			return fmt.Errorf("%w: daily %s has %d entries, expected %d", ErrMalformedResponse, field, n, days)
		}
	}
	return nil
}

func (r *resTime) UnmarshalJSON(b []byte) error {
	if len(b) == 0 {
		return fmt.Errorf("empty time")
	}
	if b[0] != '"' || len(b) < 2 {
		return fmt.Errorf("invalid time format: %s", string(b))
	}

	apiTime, err := time.Parse(timeLayout, string(b[1:len(b)-1]))
	if err != nil {
		return fmt.Errorf("failed to parse time: %w", err)
	}
	r.Time = apiTime

	return nil
}

func (r *resBool) UnmarshalJSON(b []byte) error {
	if len(b) == 0 {
		return fmt.Errorf("empty bool")
	}
	if b[0] == '0' || string(b) == "null" {
		return nil
	}
	r.bool = true
	return nil
}
