// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package summary

import (
	"fmt"
	"math"
	"unicode"
	"unicode/utf8"
)

// DescribeTemperature maps a temperature in °C to one of eight buckets. Upper bounds are
// exclusive, so 0°C is "very cold" and not "freezing".
func DescribeTemperature(celsius float64) string {
	switch {
	case celsius < 0:
		return "freezing"
	case celsius < 5:
		return "very cold"
	case celsius < 10:
		return "cold"
	case celsius < 15:
		return "cool"
	case celsius < 20:
		return "mild"
	case celsius < 25:
		return "warm"
	case celsius < 30:
		return "hot"
	default:
		return "very hot"
	}
}

// DescribeTimeOfDay returns the period of the day an hour (0-23) falls into.
func DescribeTimeOfDay(hour int) string {
	switch {
	case hour < 6:
		return "overnight"
	case hour < 9:
		return "early morning"
	case hour < 12:
		return "this morning"
	case hour < 14:
		return "around lunchtime"
	case hour < 17:
		return "this afternoon"
	case hour < 20:
		return "this evening"
	default:
		return "tonight"
	}
}

// DescribeHour formats an hour (0-23) on the 12-hour clock, e.g. "3pm".
func DescribeHour(hour int) string {
	switch {
	case hour == 0:
		return "midnight"
	case hour == 12:
		return "midday"
	case hour < 12:
		return fmt.Sprintf("%dam", hour)
	default:
		return fmt.Sprintf("%dpm", hour-12)
	}
}

// capitalize upper-cases the first letter of val.
func capitalize(val string) string {
	r, size := utf8.DecodeRuneInString(val)
	if r == utf8.RuneError {
		return val
	}
	return string(unicode.ToUpper(r)) + val[size:]
}

// roundTemp rounds half values up, so 12.5 becomes 13 and -0.5 becomes 0.
func roundTemp(celsius float64) int {
	return int(math.Floor(celsius + 0.5))
}

// highs formats a rounded maximum temperature, e.g. "highs of 14°C".
func highs(celsius float64) string {
	return fmt.Sprintf("highs of %d°C", roundTemp(celsius))
}
