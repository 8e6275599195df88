// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package summary

import (
	"fmt"

	"github.com/wneessen/brolly/internal/weather"
)

// DescribeDay describes a whole forecast day. All hours of the day are considered, which is
// what any day other than today needs.
func DescribeDay(day weather.Day) string {
	return describeDay(day, detectRain(day.Hourly))
}

// DescribeToday describes today, considering only the hours from currentHour onwards.
func DescribeToday(day weather.Day, currentHour int) string {
	return describeDay(day, DetectRain(day.Hourly, currentHour))
}

func describeDay(day weather.Day, rain RainWindow) string {
	tempDesc := DescribeTemperature(day.TemperatureMax)
	weatherDesc := WeatherDescription(day.WeatherCode)

	if IsSnowyCode(day.WeatherCode) {
		return fmt.Sprintf("Snow expected, %s with %s", tempDesc, highs(day.TemperatureMax))
	}

	if rain.IsCurrentlyRaining {
		if !rain.EndsAt.IsSet() {
			return "Rain for most of the day, " + tempDesc
		}
		endsAt := rain.EndsAt.Value()
		if endsAt < 12 {
			return "A wet start, brightening up " + DescribeTimeOfDay(endsAt)
		}
		return fmt.Sprintf("Rain clearing %s, then dry", DescribeTimeOfDay(endsAt))
	}

	if rain.StartsAt.IsSet() {
		startsAt := rain.StartsAt.Value()
		switch {
		case startsAt < 12:
			return "Dry early, rain arriving " + DescribeTimeOfDay(startsAt)
		case startsAt < 17:
			return "Dry this morning, rain " + DescribeTimeOfDay(startsAt)
		default:
			return "Staying dry until " + DescribeTimeOfDay(startsAt)
		}
	}

	if IsNiceCode(day.WeatherCode) {
		if day.TemperatureMax >= 20 {
			return fmt.Sprintf("A lovely %s day with %s", tempDesc, weatherDesc)
		}
		return fmt.Sprintf("%s and %s", capitalize(weatherDesc), tempDesc)
	}

	if day.WeatherCode == codeOvercast {
		return "Grey and overcast, staying dry, " + tempDesc
	}

	return fmt.Sprintf("%s, %s", capitalize(weatherDesc), highs(day.TemperatureMax))
}
