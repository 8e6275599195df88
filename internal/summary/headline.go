// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package summary

import (
	"github.com/wneessen/brolly/internal/weather"
)

// Headline returns the brolly advice for today. Only the hours from currentHour onwards are
// taken into account, so rain that already passed does not inflate the advice.
func Headline(today weather.Day, currentHour int) string {
	if IsSnowyCode(today.WeatherCode) {
		return "Snow expected today - wrap up warm"
	}

	rainProb := RemainingMaxPrecipProb(today.Hourly, currentHour)
	rain := DetectRain(today.Hourly, currentHour)

	switch {
	case rainProb >= 80:
		if rain.IsCurrentlyRaining {
			if rain.EndsAt.IsSet() {
				return "Keep your brolly handy until " + DescribeHour(rain.EndsAt.Value())
			}
			return "You'll need your brolly - rain all day"
		}
		if rain.StartsAt.IsSet() {
			return "Grab your brolly - rain from " + DescribeHour(rain.StartsAt.Value())
		}
		return "Definitely need your brolly today"
	case rainProb >= 60:
		if rain.StartsAt.IsSet() {
			return "Pack your brolly - rain likely " + DescribeTimeOfDay(rain.StartsAt.Value())
		}
		return "Pack your brolly just in case"
	case rainProb >= 40:
		return "Maybe pack a brolly - rain possible"
	case rainProb >= 20:
		return "Probably won't need your brolly"
	default:
		return "Leave the brolly at home"
	}
}
