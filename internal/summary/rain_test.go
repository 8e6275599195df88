// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package summary

import "testing"

func TestDetectRain(t *testing.T) {
	t.Run("rain starting later in the day sets starts at", func(t *testing.T) {
		day := newDay(testToday, withRain(14, 17, 60))
		window := DetectRain(day.Hourly, 10)
		if window.IsCurrentlyRaining {
			t.Error("expected it not to be raining")
		}
		if !window.StartsAt.IsSet() || window.StartsAt.Value() != 14 {
			t.Errorf("expected rain to start at 14, got %s", window.StartsAt.String())
		}
		if window.EndsAt.IsSet() {
			t.Errorf("expected ends at to be unset, got %d", window.EndsAt.Value())
		}
	})
	t.Run("rain through all remaining hours has no end", func(t *testing.T) {
		day := newDay(testToday, withRain(10, 23, 40))
		window := DetectRain(day.Hourly, 10)
		if !window.IsCurrentlyRaining {
			t.Error("expected it to be raining")
		}
		if window.EndsAt.IsSet() {
			t.Errorf("expected ends at to be unset, got %d", window.EndsAt.Value())
		}
		if window.StartsAt.IsSet() {
			t.Errorf("expected starts at to be unset, got %d", window.StartsAt.Value())
		}
	})
	t.Run("current rain stopping sets ends at", func(t *testing.T) {
		day := newDay(testToday, withRain(0, 10, 75))
		window := DetectRain(day.Hourly, 8)
		if !window.IsCurrentlyRaining {
			t.Error("expected it to be raining")
		}
		if !window.EndsAt.IsSet() || window.EndsAt.Value() != 11 {
			t.Errorf("expected rain to end at 11, got %s", window.EndsAt.String())
		}
	})
	t.Run("a rainy weather code counts as rain below the threshold", func(t *testing.T) {
		day := newDay(testToday, withHourlyCode(16, 16, 80))
		window := DetectRain(day.Hourly, 9)
		if !window.StartsAt.IsSet() || window.StartsAt.Value() != 16 {
			t.Errorf("expected rain to start at 16, got %s", window.StartsAt.String())
		}
	})
	t.Run("a probability just below the threshold is dry", func(t *testing.T) {
		day := newDay(testToday, withRain(0, 23, RainThreshold-1))
		window := DetectRain(day.Hourly, 0)
		if window.IsCurrentlyRaining || window.StartsAt.IsSet() || window.EndsAt.IsSet() {
			t.Errorf("expected no rain, got %+v", window)
		}
	})
	t.Run("rain before the current hour is ignored", func(t *testing.T) {
		day := newDay(testToday, withRain(6, 9, 90))
		window := DetectRain(day.Hourly, 10)
		if window.IsCurrentlyRaining || window.StartsAt.IsSet() {
			t.Errorf("expected no rain for the remaining hours, got %+v", window)
		}
	})
	t.Run("hours are taken from the timestamps, not the index", func(t *testing.T) {
		day := newDay(testToday, withRain(14, 14, 50))
		hourly := day.Hourly[1:]
		window := DetectRain(hourly, 10)
		if !window.StartsAt.IsSet() || window.StartsAt.Value() != 14 {
			t.Errorf("expected rain to start at 14, got %s", window.StartsAt.String())
		}
	})
	t.Run("no remaining hours yields an empty window", func(t *testing.T) {
		day := newDay(testToday, withRain(0, 23, 100))
		for _, tc := range []struct {
			name        string
			currentHour int
			hours       int
		}{
			{"after the last hour", 24, 24},
			{"no hourly data", 0, 0},
		} {
			t.Run(tc.name, func(t *testing.T) {
				window := DetectRain(day.Hourly[:tc.hours], tc.currentHour)
				if window.IsCurrentlyRaining || window.StartsAt.IsSet() || window.EndsAt.IsSet() {
					t.Errorf("expected an empty window, got %+v", window)
				}
			})
		}
	})
}

func TestRemainingMaxPrecipProb(t *testing.T) {
	day := newDay(testToday, withRain(6, 8, 95), withRain(15, 15, 55))
	tests := []struct {
		name        string
		currentHour int
		want        int
	}{
		{"whole day", 0, 95},
		{"after the morning rain", 9, 55},
		{"after all rain", 16, 5},
		{"no remaining hours", 24, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := RemainingMaxPrecipProb(day.Hourly, tc.currentHour); got != tc.want {
				t.Errorf("expected %d, got %d", tc.want, got)
			}
		})
	}
	t.Run("empty hourly data", func(t *testing.T) {
		if got := RemainingMaxPrecipProb(nil, 0); got != 0 {
			t.Errorf("expected 0, got %d", got)
		}
	})
}
