// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package summary

import (
	"github.com/wneessen/brolly/internal/vartype"
	"github.com/wneessen/brolly/internal/weather"
)

// RainThreshold is the hourly precipitation probability (in percent) from which an hour
// counts as wet.
const RainThreshold = 40

// RainWindow describes when rain starts or stops within a sequence of hours. At most one of
// StartsAt and EndsAt is set: EndsAt only when it is raining in the first hour, StartsAt only
// when it is not.
type RainWindow struct {
	StartsAt           vartype.VarInt
	EndsAt             vartype.VarInt
	IsCurrentlyRaining bool
}

// DetectRain finds the rain window within the hours of a day that are at or after currentHour.
// The hour of each entry is taken from its timestamp, not from its position.
func DetectRain(hourly []weather.Hour, currentHour int) RainWindow {
	return detectRain(remainingHours(hourly, currentHour))
}

// RemainingMaxPrecipProb returns the highest precipitation probability of the hours at or
// after currentHour, or 0 if there are none.
func RemainingMaxPrecipProb(hourly []weather.Hour, currentHour int) int {
	maxProb := 0
	for _, hour := range remainingHours(hourly, currentHour) {
		maxProb = max(maxProb, hour.PrecipitationProbability)
	}
	return maxProb
}

func detectRain(hours []weather.Hour) RainWindow {
	var window RainWindow
	if len(hours) == 0 {
		return window
	}

	window.IsCurrentlyRaining = isWetHour(hours[0])
	for _, hour := range hours {
		if window.IsCurrentlyRaining && !isWetHour(hour) {
			window.EndsAt.Set(hour.HourOfDay())
			break
		}
		if !window.IsCurrentlyRaining && isWetHour(hour) {
			window.StartsAt.Set(hour.HourOfDay())
			break
		}
	}
	return window
}

func remainingHours(hourly []weather.Hour, currentHour int) []weather.Hour {
	remaining := make([]weather.Hour, 0, len(hourly))
	for _, hour := range hourly {
		if hour.HourOfDay() >= currentHour {
			remaining = append(remaining, hour)
		}
	}
	return remaining
}

func isWetHour(hour weather.Hour) bool {
	return hour.PrecipitationProbability >= RainThreshold || IsRainyCode(hour.WeatherCode)
}
