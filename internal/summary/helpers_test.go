// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package summary

import (
	"time"

	"github.com/wneessen/brolly/internal/weather"
)

// testToday is a Monday.
var testToday = weather.NewDate(2026, 10, 19)

type dayOpt func(*weather.Day)

// newDay returns a dry, overcast 12°C day with 24 hourly entries.
func newDay(date weather.Date, opts ...dayOpt) weather.Day {
	day := weather.Day{
		Date:                     date,
		TemperatureMax:           12,
		TemperatureMin:           6,
		PrecipitationProbability: 10,
		WeatherCode:              3,
		Hourly:                   make([]weather.Hour, 0, 24),
	}
	for hour := range 24 {
		day.Hourly = append(day.Hourly, weather.Hour{
			Time:                     time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, time.UTC),
			Temperature:              10,
			PrecipitationProbability: 5,
			WeatherCode:              3,
		})
	}
	for _, opt := range opts {
		opt(&day)
	}
	return day
}

// daysFrom returns n consecutive default days starting at start.
func daysFrom(start weather.Date, n int) []weather.Day {
	days := make([]weather.Day, 0, n)
	for i := range n {
		days = append(days, newDay(start.AddDays(i)))
	}
	return days
}

func withCode(code int) dayOpt {
	return func(d *weather.Day) { d.WeatherCode = code }
}

func withTempMax(celsius float64) dayOpt {
	return func(d *weather.Day) { d.TemperatureMax = celsius }
}

func withDailyRain(prob int) dayOpt {
	return func(d *weather.Day) { d.PrecipitationProbability = prob }
}

// withRain sets the precipitation probability of the hours from to to (inclusive).
func withRain(from, to, prob int) dayOpt {
	return func(d *weather.Day) {
		for i := range d.Hourly {
			if hour := d.Hourly[i].HourOfDay(); hour >= from && hour <= to {
				d.Hourly[i].PrecipitationProbability = prob
			}
		}
	}
}

// withHourlyCode sets the weather code of the hours from to to (inclusive).
func withHourlyCode(from, to, code int) dayOpt {
	return func(d *weather.Day) {
		for i := range d.Hourly {
			if hour := d.Hourly[i].HourOfDay(); hour >= from && hour <= to {
				d.Hourly[i].WeatherCode = code
			}
		}
	}
}
