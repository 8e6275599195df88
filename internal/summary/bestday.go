// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package summary

import (
	"github.com/wneessen/brolly/internal/vartype"
	"github.com/wneessen/brolly/internal/weather"
)

const (
	// bestDayMinDays is the minimum number of forecast days (today included) to pick a best day.
	bestDayMinDays = 3
	// bestDayMinScore is the score a day needs to be recommended at all.
	bestDayMinScore = 60
)

// BestDay recommends the best upcoming day of the forecast, excluding today. The result is
// unset if fewer than three days are available or if no day scores well enough. On equal
// scores the earlier day wins.
func BestDay(daily []weather.Day, today weather.Date) vartype.VarString {
	var best vartype.VarString
	if len(daily) < bestDayMinDays {
		return best
	}

	bestIdx, bestScore := -1, 0
	for i, day := range daily[1:] {
		score := DayScore(day)
		if bestIdx == -1 || score > bestScore {
			bestIdx, bestScore = i+1, score
		}
	}
	if bestScore < bestDayMinScore {
		return best
	}

	bestDay := daily[bestIdx]
	dayName := bestDay.Date.Weekday().String()
	switch daysAway := today.DaysUntil(bestDay.Date); {
	case daysAway == 1:
		best.Set("Tomorrow is your best bet")
	case daysAway > 5:
		best.Set("Next " + dayName + " looks like the best day")
	default:
		best.Set(dayName + " is your best bet this week")
	}
	return best
}

// DayScore rates a day for outdoor plans. Dry, clear days with mild highs score best.
func DayScore(day weather.Day) int {
	score := 100 - day.PrecipitationProbability

	switch {
	case IsNiceCode(day.WeatherCode):
		score += 30
	case day.WeatherCode == codeOvercast:
		score += 10
	case IsRainyCode(day.WeatherCode):
		score -= 20
	}

	if day.TemperatureMax >= 15 && day.TemperatureMax <= 22 {
		score += 15
	}
	return score
}
