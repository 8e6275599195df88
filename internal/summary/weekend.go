// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package summary

import (
	"time"

	"github.com/wneessen/brolly/internal/weather"
)

const (
	// weekendNiceRain is the daily rain probability below which a nice-coded day counts as good.
	weekendNiceRain = 30
	// weekendSimilarRain is the rain probability difference below which both days count as similar.
	weekendSimilarRain = 20
	// weekendWetRain is the rain probability from which a similar day counts as wet.
	weekendWetRain = 60
)

// DescribeWeekend compares the first Saturday and Sunday found in daily.
func DescribeWeekend(daily []weather.Day) string {
	saturday, hasSaturday := findWeekday(daily, time.Saturday)
	sunday, hasSunday := findWeekday(daily, time.Sunday)

	switch {
	case !hasSaturday && !hasSunday:
		return "Weekend forecast not yet available"
	case !hasSaturday:
		return "Sunday: " + DescribeDay(sunday)
	case !hasSunday:
		return "Saturday: " + DescribeDay(saturday)
	}

	satRain := saturday.PrecipitationProbability
	sunRain := sunday.PrecipitationProbability
	satNice := satRain < weekendNiceRain && IsNiceCode(saturday.WeatherCode)
	sunNice := sunRain < weekendNiceRain && IsNiceCode(sunday.WeatherCode)

	if abs(satRain-sunRain) < weekendSimilarRain {
		switch {
		case satNice && sunNice:
			return "Both days looking good"
		case satRain >= weekendWetRain && sunRain >= weekendWetRain:
			return "Wet weekend ahead"
		default:
			return "Mixed conditions both days"
		}
	}

	switch {
	case satNice && !sunNice:
		return "Saturday looks better than Sunday"
	case sunNice && !satNice:
		return "Sunday looks better than Saturday"
	case satRain < sunRain:
		return "Saturday drier than Sunday"
	default:
		return "Sunday drier than Saturday"
	}
}

func findWeekday(daily []weather.Day, weekday time.Weekday) (weather.Day, bool) {
	for _, day := range daily {
		if day.Date.Weekday() == weekday {
			return day, true
		}
	}
	return weather.Day{}, false
}

func abs(val int) int {
	if val < 0 {
		return -val
	}
	return val
}
