// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package summary

// weatherDescriptions maps WMO weather codes to the lower case phrases used inside summaries.
var weatherDescriptions = map[int]string{
	0:  "clear skies",
	1:  "mainly clear",
	2:  "partly cloudy",
	3:  "overcast",
	45: "foggy",
	48: "freezing fog",
	51: "light drizzle",
	53: "drizzle",
	55: "heavy drizzle",
	56: "freezing drizzle",
	57: "heavy freezing drizzle",
	61: "light rain",
	63: "rain",
	65: "heavy rain",
	66: "freezing rain",
	67: "heavy freezing rain",
	71: "light snow",
	73: "snow",
	75: "heavy snow",
	77: "snow grains",
	80: "light showers",
	81: "showers",
	82: "heavy showers",
	85: "light snow showers",
	86: "snow showers",
	95: "thunderstorm",
	96: "thunderstorm with hail",
	99: "severe thunderstorm with hail",
}

const (
	codeOvercast       = 3
	unknownDescription = "unknown conditions"
)

// WeatherDescription returns the summary phrase for a WMO weather code.
func WeatherDescription(code int) string {
	if desc, ok := weatherDescriptions[code]; ok {
		return desc
	}
	return unknownDescription
}

// IsRainyCode reports whether the code stands for drizzle, rain, showers or thunderstorms.
func IsRainyCode(code int) bool {
	return (code >= 51 && code <= 67) ||
		(code >= 80 && code <= 82) ||
		(code >= 95 && code <= 99)
}

// IsSnowyCode reports whether the code stands for snow or snow showers.
func IsSnowyCode(code int) bool {
	return (code >= 71 && code <= 77) || (code >= 85 && code <= 86)
}

// IsNiceCode reports whether the code stands for clear, mainly clear or partly cloudy skies.
func IsNiceCode(code int) bool {
	return code <= 2
}
