// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package summary turns a normalized forecast into short plain-English phrases, like
// "Grab your brolly - rain from 3pm". All functions are pure: the current hour and date are
// passed in, never read from the wall clock, so identical input always yields identical output.
package summary

import (
	"time"

	"github.com/wneessen/brolly/internal/vartype"
	"github.com/wneessen/brolly/internal/weather"
)

const (
	noForecastHeadline = "Forecast not available"
	noTodayForecast    = "Today's forecast not available"
	noTomorrowForecast = "Tomorrow's forecast not available"
)

// Now is the caller's point in time, in the forecast location's timezone.
type Now struct {
	Hour int
	Date weather.Date
}

// NowFrom returns the Now for t. Convert t to the forecast's timezone first.
func NowFrom(t time.Time) Now {
	return Now{
		Hour: t.Hour(),
		Date: weather.DateOf(t),
	}
}

// Summary is the plain-English summary of a forecast.
type Summary struct {
	Headline string            `json:"headline"`
	Today    string            `json:"today"`
	Tomorrow string            `json:"tomorrow"`
	Weekend  string            `json:"weekend"`
	BestDay  vartype.VarString `json:"bestDay"`
}

// Generate summarizes the forecast. The first daily entry is treated as today.
func Generate(fc *weather.Forecast, now Now) Summary {
	today, ok := fc.Today()
	if !ok {
		return Summary{
			Headline: noForecastHeadline,
			Today:    noTodayForecast,
			Tomorrow: noTomorrowForecast,
			Weekend:  DescribeWeekend(nil),
		}
	}

	result := Summary{
		Headline: Headline(today, now.Hour),
		Today:    DescribeToday(today, now.Hour),
		Tomorrow: noTomorrowForecast,
		Weekend:  DescribeWeekend(fc.Daily),
		BestDay:  BestDay(fc.Daily, now.Date),
	}
	if len(fc.Daily) > 1 {
		result.Tomorrow = DescribeDay(fc.Daily[1])
	}
	return result
}
