// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package presenter

import (
	"bytes"
	"fmt"
	"math"
	"text/template"
	"time"

	"github.com/nathan-osman/go-sunrise"
	"github.com/vorlif/humanize"
	"github.com/wneessen/go-moonphase"
	"golang.org/x/text/language"

	"github.com/wneessen/brolly/internal/config"
	"github.com/wneessen/brolly/internal/summary"
	"github.com/wneessen/brolly/internal/weather"
)

// CurrentView wraps the current conditions with presentation-related fields.
type CurrentView struct {
	weather.Current

	Condition     string
	ConditionIcon string
	Category      string
	WindCardinal  string
	WindIcon      string
}

// DayView wraps a forecast day with presentation-related fields.
type DayView struct {
	weather.Day

	Weekday       string
	Condition     string
	ConditionIcon string
}

type LocationView struct {
	Name     string
	Lat      float64
	Lon      float64
	Timezone string
}

type TemplateContext struct {
	Location LocationView

	UpdateTime    time.Time
	SunriseTime   time.Time
	SunsetTime    time.Time
	MoonPhase     string
	MoonPhaseIcon string

	Current CurrentView
	Daily   []DayView
	Summary summary.Summary
}

type Presenter struct {
	TextTemplate    *template.Template
	AltTextTemplate *template.Template
	TooltipTemplate *template.Template

	humanizer *humanize.Humanizer
}

// New parses the configured templates and test-renders them against a sample context.
func New(conf *config.Config) (*Presenter, error) {
	pres := &Presenter{
		humanizer: humanize.MustNew().CreateHumanizer(language.English),
	}
	for _, tpl := range []struct {
		name   string
		text   string
		target **template.Template
	}{
		{"text", conf.Templates.Text, &pres.TextTemplate},
		{"alt_text", conf.Templates.AltText, &pres.AltTextTemplate},
		{"tooltip", conf.Templates.Tooltip, &pres.TooltipTemplate},
	} {
		parsed, err := template.New(tpl.name).Funcs(pres.templateFuncMap()).Parse(tpl.text)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", tpl.name, err)
		}
		*tpl.target = parsed
	}

	if _, err := pres.Render(sampleContext()); err != nil {
		return nil, err
	}
	return pres, nil
}

// BuildContext assembles the template context for a forecast and its summary.
func (p *Presenter) BuildContext(name string, fc *weather.Forecast, sum summary.Summary, now time.Time) TemplateContext {
	tplCtx := TemplateContext{Summary: sum}
	phase := moonphase.New(now).PhaseName()
	tplCtx.MoonPhase = phase
	tplCtx.MoonPhaseIcon = MoonPhaseIcon[phase]
	if fc == nil {
		tplCtx.Location.Name = name
		return tplCtx
	}

	tplCtx.Location = LocationView{
		Name:     name,
		Lat:      fc.Location.Lat,
		Lon:      fc.Location.Lon,
		Timezone: fc.Location.Timezone,
	}
	tplCtx.UpdateTime = fc.GeneratedAt.In(now.Location())
	tplCtx.Current = p.currentView(fc.Current)
	tplCtx.Daily = make([]DayView, 0, len(fc.Daily))
	for _, day := range fc.Daily {
		tplCtx.Daily = append(tplCtx.Daily, p.dayView(day))
	}

	today, _ := fc.Today()
	tplCtx.SunriseTime, tplCtx.SunsetTime = sunTimes(fc.Location, today, now)

	return tplCtx
}

// Render executes all templates and returns their output keyed by template name.
func (p *Presenter) Render(tplCtx TemplateContext) (map[string]string, error) {
	output := make(map[string]string, 3)
	for name, tpl := range map[string]*template.Template{
		"text":     p.TextTemplate,
		"alt_text": p.AltTextTemplate,
		"tooltip":  p.TooltipTemplate,
	} {
		if tpl == nil {
			return nil, fmt.Errorf("failed to render %s template: template not set", name)
		}
		buf := bytes.NewBuffer(nil)
		if err := tpl.Execute(buf, tplCtx); err != nil {
			return nil, fmt.Errorf("failed to render %s template: %w", name, err)
		}
		output[name] = buf.String()
	}
	return output, nil
}

func (p *Presenter) currentView(cur weather.Current) CurrentView {
	cardinal := p.degToString(cur.WindDirection)
	return CurrentView{
		Current:       cur,
		Condition:     summary.WeatherDescription(cur.WeatherCode),
		ConditionIcon: WMOWeatherIcons[cur.WeatherCode][cur.IsDay],
		Category:      weatherCategory(cur.WeatherCode),
		WindCardinal:  cardinal,
		WindIcon:      windDirIcons[cardinal],
	}
}

func (p *Presenter) dayView(day weather.Day) DayView {
	return DayView{
		Day:           day,
		Weekday:       day.Date.Weekday().String(),
		Condition:     summary.WeatherDescription(day.WeatherCode),
		ConditionIcon: WMOWeatherIcons[day.WeatherCode][true],
	}
}

// degToString converts a wind direction in degrees into one of eight cardinal directions.
func (p *Presenter) degToString(deg float64) string {
	directions := []string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	idx := int((deg+22.5)/45) % len(directions)
	return directions[idx]
}

// sunTimes prefers the sunrise and sunset reported with the forecast and falls back to
// calculating them for the forecast location.
func sunTimes(loc weather.Location, today weather.Day, now time.Time) (time.Time, time.Time) {
	if !today.Sunrise.IsZero() && !today.Sunset.IsZero() {
		return today.Sunrise, today.Sunset
	}
	rise, set := sunrise.SunriseSunset(loc.Lat, loc.Lon, now.Year(), now.Month(), now.Day())
	return rise.In(now.Location()), set.In(now.Location())
}

// weatherCategory groups WMO weather codes into CSS class friendly categories.
func weatherCategory(code int) string {
	switch {
	case code >= 0 && code <= 1:
		return "clear"
	case code >= 2 && code <= 3:
		return "cloudy"
	case code == 45 || code == 48:
		return "fog"
	case summary.IsSnowyCode(code):
		return "snow"
	case code >= 95 && code <= 99:
		return "thunderstorm"
	case summary.IsRainyCode(code):
		return "rain"
	default:
		return ""
	}
}

func sampleContext() TemplateContext {
	now := time.Date(2026, time.January, 1, 12, 0, 0, 0, time.UTC)
	return TemplateContext{
		Location:      LocationView{Name: "Sample", Timezone: "UTC"},
		UpdateTime:    now,
		SunriseTime:   now,
		SunsetTime:    now,
		MoonPhase:     "Full Moon",
		MoonPhaseIcon: MoonPhaseIcon["Full Moon"],
		Current:       CurrentView{Current: weather.Current{Time: now}},
		Daily:         []DayView{{Day: weather.Day{Date: weather.DateOf(now)}}},
	}
}
