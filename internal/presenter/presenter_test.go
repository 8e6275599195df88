// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package presenter

import (
	"strings"
	"testing"
	"text/template"
	"time"

	"github.com/wneessen/brolly/internal/config"
	"github.com/wneessen/brolly/internal/summary"
	"github.com/wneessen/brolly/internal/vartype"
	"github.com/wneessen/brolly/internal/weather"
)

var (
	now         = time.Date(2026, time.October, 19, 10, 0, 0, 0, time.UTC)
	testSunrise = time.Date(2026, time.October, 19, 7, 29, 0, 0, time.UTC)
	testSunset  = time.Date(2026, time.October, 19, 17, 55, 0, 0, time.UTC)
	fcast       = &weather.Forecast{
		GeneratedAt: now,
		Location:    weather.Location{Lat: 51.5074, Lon: -0.1278, Timezone: "Europe/London"},
		Current: weather.Current{
			Time:          now,
			Temperature:   11.6,
			FeelsLike:     9.4,
			Humidity:      82,
			WindSpeed:     14.2,
			WindDirection: 225,
			WeatherCode:   45,
			IsDay:         true,
		},
		Daily: []weather.Day{
			{
				Date:           weather.NewDate(2026, time.October, 19),
				Sunrise:        testSunrise,
				Sunset:         testSunset,
				TemperatureMax: 15.6,
				WeatherCode:    61,
			},
			{
				Date:           weather.NewDate(2026, time.October, 20),
				TemperatureMax: 14.1,
				WeatherCode:    1,
			},
		},
	}
	sum = summary.Summary{
		Headline: "Pack your brolly - rain likely this afternoon",
		Today:    "Today: foggy, cool with highs of 16°C. Rain from 2pm",
		Tomorrow: "Tuesday: mainly clear, cool with highs of 14°C",
		Weekend:  "Weekend forecast not yet available",
		BestDay:  vartype.NewVariable("Tomorrow is your best bet"),
	}
)

func testConf(t *testing.T) *config.Config {
	t.Helper()
	conf, err := config.New()
	if err != nil {
		t.Fatalf("failed to load config: %s", err)
	}
	return conf
}

func TestNew(t *testing.T) {
	t.Run("creating a new presenter succeeds", func(t *testing.T) {
		pres, err := New(testConf(t))
		if err != nil {
			t.Fatalf("failed to create presenter: %s", err)
		}
		if pres == nil {
			t.Fatal("expected presenter to be non-nil")
		}
	})
	t.Run("creating presenter with invalid templates fails", func(t *testing.T) {
		tests := []struct {
			name       string
			templateFn func(conf *config.Config)
		}{
			{"text", func(conf *config.Config) { conf.Templates.Text = "{{invalid" }},
			{"alt_text", func(conf *config.Config) { conf.Templates.AltText = "{{invalid" }},
			{"tooltip", func(conf *config.Config) { conf.Templates.Tooltip = "{{invalid" }},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				conf := testConf(t)
				tt.templateFn(conf)
				_, err := New(conf)
				if err == nil {
					t.Fatal("expected presenter to fail, but didn't")
				}
				wantErr := "failed to parse"
				if !strings.Contains(err.Error(), wantErr) {
					t.Errorf("expected error to contain %q, got %q", wantErr, err)
				}
			})
		}
	})
	t.Run("creating presenter with template execution errors fails", func(t *testing.T) {
		tests := []struct {
			name       string
			templateFn func(conf *config.Config)
		}{
			{"text", func(conf *config.Config) { conf.Templates.Text = "{{.Data}}" }},
			{"alt_text", func(conf *config.Config) { conf.Templates.AltText = "{{.Data}}" }},
			{"tooltip", func(conf *config.Config) { conf.Templates.Tooltip = "{{.Data}}" }},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				conf := testConf(t)
				tt.templateFn(conf)
				_, err := New(conf)
				if err == nil {
					t.Fatal("expected presenter to fail, but didn't")
				}
				wantErr := "failed to render"
				if !strings.Contains(err.Error(), wantErr) {
					t.Errorf("expected error to contain %q, got %q", wantErr, err)
				}
			})
		}
	})
}

func TestPresenter_BuildContext(t *testing.T) {
	t.Run("building context succeeds", func(t *testing.T) {
		pres, err := New(testConf(t))
		if err != nil {
			t.Fatalf("failed to create presenter: %s", err)
		}
		tplCtx := pres.BuildContext("London", fcast, sum, now)
		if tplCtx.Location.Name != "London" {
			t.Errorf("expected location name to be London, got %s", tplCtx.Location.Name)
		}
		if tplCtx.Location.Timezone != "Europe/London" {
			t.Errorf("expected timezone to be Europe/London, got %s", tplCtx.Location.Timezone)
		}
		if !tplCtx.UpdateTime.Equal(now) {
			t.Errorf("expected update time to be %s, got %s", now, tplCtx.UpdateTime)
		}
		if tplCtx.Current.Condition != "foggy" {
			t.Errorf("expected current condition to be foggy, got %s", tplCtx.Current.Condition)
		}
		if tplCtx.Current.ConditionIcon != "🌫️" {
			t.Errorf("expected current condition icon to be fog, got %s", tplCtx.Current.ConditionIcon)
		}
		if tplCtx.Current.Category != "fog" {
			t.Errorf("expected current category to be fog, got %s", tplCtx.Current.Category)
		}
		if tplCtx.Current.WindCardinal != "SW" || tplCtx.Current.WindIcon != "↙" {
			t.Errorf("expected wind to be SW ↙, got %s %s", tplCtx.Current.WindCardinal, tplCtx.Current.WindIcon)
		}
		if len(tplCtx.Daily) != 2 {
			t.Fatalf("expected 2 daily views, got %d", len(tplCtx.Daily))
		}
		if tplCtx.Daily[1].Weekday != "Tuesday" {
			t.Errorf("expected second day to be Tuesday, got %s", tplCtx.Daily[1].Weekday)
		}
		if tplCtx.Daily[0].Condition != "light rain" {
			t.Errorf("expected first day condition to be light rain, got %s", tplCtx.Daily[0].Condition)
		}
		if !tplCtx.SunriseTime.Equal(testSunrise) || !tplCtx.SunsetTime.Equal(testSunset) {
			t.Errorf("expected sunrise/sunset from forecast, got %s/%s", tplCtx.SunriseTime, tplCtx.SunsetTime)
		}
		if tplCtx.MoonPhase == "" {
			t.Error("expected moon phase to be set")
		}
		if tplCtx.MoonPhaseIcon != MoonPhaseIcon[tplCtx.MoonPhase] {
			t.Errorf("expected moon phase icon for %s, got %s", tplCtx.MoonPhase, tplCtx.MoonPhaseIcon)
		}
		if tplCtx.Summary.Headline != sum.Headline {
			t.Errorf("expected summary headline to be %q, got %q", sum.Headline, tplCtx.Summary.Headline)
		}
	})
	t.Run("missing sun times are calculated", func(t *testing.T) {
		pres, err := New(testConf(t))
		if err != nil {
			t.Fatalf("failed to create presenter: %s", err)
		}
		data := &weather.Forecast{
			Location: fcast.Location,
			Current:  fcast.Current,
			Daily:    []weather.Day{{Date: weather.NewDate(2026, time.October, 19)}},
		}
		tplCtx := pres.BuildContext("London", data, sum, now)
		if tplCtx.SunriseTime.IsZero() || tplCtx.SunsetTime.IsZero() {
			t.Fatal("expected sunrise and sunset to be calculated")
		}
		if tplCtx.SunriseTime.Hour() < 5 || tplCtx.SunriseTime.Hour() > 7 {
			t.Errorf("expected London sunrise in the early morning UTC, got %s", tplCtx.SunriseTime)
		}
		if !tplCtx.SunsetTime.After(tplCtx.SunriseTime) {
			t.Errorf("expected sunset after sunrise, got %s/%s", tplCtx.SunriseTime, tplCtx.SunsetTime)
		}
	})
	t.Run("building context with nil forecast returns an empty context", func(t *testing.T) {
		pres, err := New(testConf(t))
		if err != nil {
			t.Fatalf("failed to create presenter: %s", err)
		}
		tplCtx := pres.BuildContext("London", nil, sum, now)
		if tplCtx.Location.Name != "London" {
			t.Errorf("expected location name to be London, got %s", tplCtx.Location.Name)
		}
		if len(tplCtx.Daily) != 0 {
			t.Errorf("expected no daily views, got %d", len(tplCtx.Daily))
		}
		if _, err = pres.Render(tplCtx); err != nil {
			t.Errorf("expected empty context to render, got %s", err)
		}
	})
}

func TestPresenter_Render(t *testing.T) {
	t.Run("rendering succeeds", func(t *testing.T) {
		conf := testConf(t)
		conf.Templates.Tooltip = "{{.Summary.Headline}}\n{{.Summary.Today}}" +
			"{{if .Summary.BestDay.IsSet}}\n{{.Summary.BestDay.Value}}{{end}}\n" +
			"🌅 {{timeFormat .SunriseTime \"15:04\"}} • 🌇 {{timeFormat .SunsetTime \"15:04\"}}"
		pres, err := New(conf)
		if err != nil {
			t.Fatalf("failed to create presenter: %s", err)
		}

		outMap, err := pres.Render(pres.BuildContext("London", fcast, sum, now))
		if err != nil {
			t.Fatalf("failed to render: %s", err)
		}
		if len(outMap) != 3 {
			t.Errorf("expected output map to have length 3, got %d", len(outMap))
		}
		wantText := "🌫️ 12°C"
		wantAltText := "🌫️ Pack your brolly - rain likely this afternoon"
		wantTooltip := `Pack your brolly - rain likely this afternoon
Today: foggy, cool with highs of 16°C. Rain from 2pm
Tomorrow is your best bet
🌅 07:29 • 🌇 17:55`
		if outMap["text"] != EmojiWithSpace("🌫️")+"12°C" {
			t.Errorf("expected text output to be %q, got %q", wantText, outMap["text"])
		}
		if outMap["alt_text"] != EmojiWithSpace("🌫️")+sum.Headline {
			t.Errorf("expected alt_text output to be %q, got %q", wantAltText, outMap["alt_text"])
		}
		if outMap["tooltip"] != wantTooltip {
			t.Errorf("expected tooltip output to be %q, got %q", wantTooltip, outMap["tooltip"])
		}
	})
	t.Run("default tooltip shows the update time", func(t *testing.T) {
		pres, err := New(testConf(t))
		if err != nil {
			t.Fatalf("failed to create presenter: %s", err)
		}
		outMap, err := pres.Render(pres.BuildContext("London", fcast, sum, now))
		if err != nil {
			t.Fatalf("failed to render: %s", err)
		}
		wantSuffix := "Updated " + pres.localizedTime(now)
		if !strings.HasSuffix(outMap["tooltip"], wantSuffix) {
			t.Errorf("expected tooltip to end with %q, got %q", wantSuffix, outMap["tooltip"])
		}
		if !strings.HasPrefix(outMap["tooltip"], sum.Headline) {
			t.Errorf("expected tooltip to start with the headline, got %q", outMap["tooltip"])
		}
	})
	t.Run("unset best day is left out", func(t *testing.T) {
		conf := testConf(t)
		conf.Templates.Tooltip = "{{.Summary.Headline}}{{if .Summary.BestDay.IsSet}}!{{end}}"
		pres, err := New(conf)
		if err != nil {
			t.Fatalf("failed to create presenter: %s", err)
		}
		noBest := sum
		noBest.BestDay = vartype.VarString{}
		outMap, err := pres.Render(pres.BuildContext("London", fcast, noBest, now))
		if err != nil {
			t.Fatalf("failed to render: %s", err)
		}
		if outMap["tooltip"] != sum.Headline {
			t.Errorf("expected tooltip output to be %q, got %q", sum.Headline, outMap["tooltip"])
		}
	})
	t.Run("rendering with invalid templates fails", func(t *testing.T) {
		tests := []struct {
			name string
			set  func(*Presenter, *template.Template)
		}{
			{"text", func(p *Presenter, tpl *template.Template) { p.TextTemplate = tpl }},
			{"alt_text", func(p *Presenter, tpl *template.Template) { p.AltTextTemplate = tpl }},
			{"tooltip", func(p *Presenter, tpl *template.Template) { p.TooltipTemplate = tpl }},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				pres, err := New(testConf(t))
				if err != nil {
					t.Fatalf("failed to create presenter: %s", err)
				}
				tpl, err := template.New(tt.name).Parse("{{.Data}}")
				if err != nil {
					t.Fatalf("failed to parse template: %s", err)
				}
				tt.set(pres, tpl)
				if _, err = pres.Render(pres.BuildContext("London", fcast, sum, now)); err == nil {
					t.Error("expected rendering to fail, but didn't")
				}
			})
		}
	})
	t.Run("rendering with missing template fails", func(t *testing.T) {
		pres := new(Presenter)
		if _, err := pres.Render(TemplateContext{}); err == nil {
			t.Error("expected rendering to fail, but didn't")
		}
	})
}

func TestPresenter_weatherCategory(t *testing.T) {
	tests := []struct {
		name string
		code int
		want string
	}{
		{"clear", 0, "clear"},
		{"mainly clear", 1, "clear"},
		{"cloudy", 2, "cloudy"},
		{"overcast", 3, "cloudy"},
		{"fog", 45, "fog"},
		{"rain", 51, "rain"},
		{"freezing drizzle", 56, "rain"},
		{"freezing rain", 66, "rain"},
		{"showers", 80, "rain"},
		{"snow", 71, "snow"},
		{"snow showers", 85, "snow"},
		{"thunderstorm", 95, "thunderstorm"},
		{"empty", 100, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := weatherCategory(tt.code); got != tt.want {
				t.Errorf("failed to get weather category: got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPresenter_degToString(t *testing.T) {
	tests := []struct {
		name string
		deg  float64
		want string
	}{
		{"0 -> North", 0, "N"},
		{"22.4 -> North", 22.4, "N"},
		{"22.5 -> North-East", 22.5, "NE"},
		{"67.5 -> East", 67.5, "E"},
		{"112.5 -> South-East", 112.5, "SE"},
		{"157.5 -> South", 157.5, "S"},
		{"202.5 -> South-West", 202.5, "SW"},
		{"247.5 -> West", 247.5, "W"},
		{"292.5 -> North-West", 292.5, "NW"},
		{"337.5 -> North", 337.5, "N"},
		{"360.0 -> North", 360.0, "N"},
		{"-45 -> North-West", -45, "NW"},
	}

	pres := new(Presenter)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pres.degToString(tt.deg)
			if got != tt.want {
				t.Errorf("failed to get direction: got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestPresenter_floatFormat(t *testing.T) {
	tests := []struct {
		name      string
		val       float64
		precision int
		want      string
	}{
		{"no decimals", 11.69, 0, "11"},
		{"one decimal", 11.69, 1, "11.6"},
		{"two decimals", 11.69, 2, "11.69"},
	}
	pres := new(Presenter)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pres.floatFormat(tt.val, tt.precision); got != tt.want {
				t.Errorf("failed to format float: got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestPresenter_localizedTime(t *testing.T) {
	t.Run("time of day is humanized", func(t *testing.T) {
		pres, err := New(testConf(t))
		if err != nil {
			t.Fatalf("failed to create presenter: %s", err)
		}
		got := pres.localizedTime(time.Date(2026, time.October, 19, 9, 15, 0, 0, time.UTC))
		if !strings.Contains(got, "9:15") {
			t.Errorf("expected localized time to contain 9:15, got %q", got)
		}
	})
	t.Run("zero time is empty", func(t *testing.T) {
		pres, err := New(testConf(t))
		if err != nil {
			t.Fatalf("failed to create presenter: %s", err)
		}
		if got := pres.localizedTime(time.Time{}); got != "" {
			t.Errorf("expected empty string, got %q", got)
		}
	})
	t.Run("presenter without humanizer returns empty string", func(t *testing.T) {
		pres := new(Presenter)
		if got := pres.localizedTime(now); got != "" {
			t.Errorf("expected empty string, got %q", got)
		}
	})
}

func TestPresenter_round(t *testing.T) {
	pres := new(Presenter)
	for val, want := range map[float64]int{11.5: 12, 11.4: 11, -0.5: 0, -1.6: -2} {
		if got := pres.round(val); got != want {
			t.Errorf("failed to round %f: got %d, want %d", val, got, want)
		}
	}
}

func TestEmojiWithSpace(t *testing.T) {
	t.Run("empty emoji stays empty", func(t *testing.T) {
		if got := EmojiWithSpace(""); got != "" {
			t.Errorf("expected empty string, got %q", got)
		}
	})
	t.Run("wide emoji gets a single space", func(t *testing.T) {
		if got := EmojiWithSpace("ab"); got != "ab " {
			t.Errorf("expected %q, got %q", "ab ", got)
		}
	})
	t.Run("narrow symbol gets two spaces", func(t *testing.T) {
		if got := EmojiWithSpace("x"); got != "x  " {
			t.Errorf("expected %q, got %q", "x  ", got)
		}
	})
}
