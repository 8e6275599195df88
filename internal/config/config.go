// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/kkyr/fig"
)

const (
	configEnv = "BROLLY"

	ProviderOpenMeteo = "open-meteo"

	DefaultTextTpl    = "{{emojiSpace .Current.ConditionIcon}}{{round .Current.Temperature}}°C"
	DefaultAltTextTpl = "{{emojiSpace .Current.ConditionIcon}}{{.Summary.Headline}}"
	DefaultTooltipTpl = "{{.Summary.Headline}}\n\n" +
		"Today: {{.Summary.Today}}\n" +
		"Tomorrow: {{.Summary.Tomorrow}}\n" +
		"Weekend: {{.Summary.Weekend}}" +
		"{{if .Summary.BestDay.IsSet}}\n{{.Summary.BestDay.Value}}{{end}}\n\n" +
		"{{.Location.Name}}: {{.Current.Condition}}, feels like {{round .Current.FeelsLike}}°C\n" +
		"🌅 {{timeFormat .SunriseTime \"15:04\"}} • 🌇 {{timeFormat .SunsetTime \"15:04\"}} • " +
		"{{emojiSpace .MoonPhaseIcon}}{{.MoonPhase}}\n" +
		"Updated {{localizedTime .UpdateTime}}"

	minForecastDays = 1
	maxForecastDays = 14
)

// Config represents the application's configuration structure.
type Config struct {
	LogLevel slog.Level `fig:"loglevel" default:"0"`

	Location struct {
		Name      string  `fig:"name" default:"London"`
		Latitude  float64 `fig:"latitude"`
		Longitude float64 `fig:"longitude"`
	} `fig:"location"`

	Weather struct {
		// Allowed values: open-meteo
		Provider string `fig:"provider" default:"open-meteo"`
		// Allowed value: 1 to 14
		ForecastDays int    `fig:"forecast_days"`
		Timezone     string `fig:"timezone" default:"Europe/London"`
	} `fig:"weather"`

	Intervals struct {
		WeatherUpdate time.Duration `fig:"weather_update"`
		Output        time.Duration `fig:"output"`
	} `fig:"intervals"`

	Templates struct {
		Text    string `fig:"text"`
		AltText string `fig:"alt_text"`
		Tooltip string `fig:"tooltip"`
	} `fig:"templates"`

	Server struct {
		Listen          string        `fig:"listen" default:"127.0.0.1:8080"`
		ReadTimeout     time.Duration `fig:"read_timeout"`
		WriteTimeout    time.Duration `fig:"write_timeout"`
		ShutdownTimeout time.Duration `fig:"shutdown_timeout"`
		CacheControlTTL time.Duration `fig:"cache_control_ttl"`
	} `fig:"server"`

	Upstream struct {
		Timeout         time.Duration `fig:"timeout"`
		RateLimit       float64       `fig:"rate_limit"`
		Burst           int           `fig:"burst"`
		CacheTTL        time.Duration `fig:"cache_ttl"`
		CachePrune      time.Duration `fig:"cache_prune"`
		BreakerFailures uint32        `fig:"breaker_failures"`
		BreakerTimeout  time.Duration `fig:"breaker_timeout"`
	} `fig:"upstream"`
}

// newConfig returns a Config with the numeric defaults set. They are set before loading, not
// as default tags, so that an explicit zero from file or env reaches Validate.
func newConfig() *Config {
	conf := new(Config)
	conf.Location.Latitude = 51.5074
	conf.Location.Longitude = -0.1278
	conf.Weather.ForecastDays = 7
	conf.Intervals.WeatherUpdate = time.Minute * 15
	conf.Intervals.Output = time.Second * 30
	conf.Server.ReadTimeout = time.Second * 10
	conf.Server.WriteTimeout = time.Second * 30
	conf.Server.ShutdownTimeout = time.Second * 10
	conf.Server.CacheControlTTL = time.Minute * 30
	conf.Upstream.Timeout = time.Second * 10
	conf.Upstream.RateLimit = 5
	conf.Upstream.Burst = 10
	conf.Upstream.CacheTTL = time.Minute * 15
	conf.Upstream.CachePrune = time.Minute * 5
	conf.Upstream.BreakerFailures = 5
	conf.Upstream.BreakerTimeout = time.Second * 30
	return conf
}

func NewFromFile(path, file string) (*Config, error) {
	conf := newConfig()
	_, err := os.Stat(filepath.Join(path, file))
	if err != nil {
		return conf, fmt.Errorf("failed to read Config: %w", err)
	}
	if err = fig.Load(conf, fig.Dirs(path), fig.File(file), fig.UseEnv(configEnv)); err != nil {
		return conf, fmt.Errorf("failed to load Config: %w", err)
	}

	return conf, conf.Validate()
}

func New() (*Config, error) {
	conf := newConfig()
	if err := fig.Load(conf, fig.AllowNoFile(), fig.UseEnv(configEnv)); err != nil {
		return conf, fmt.Errorf("failed to load Config: %w", err)
	}

	return conf, conf.Validate()
}

// Load returns the config from confPath. Without a path, the first config file found in
// ~/.config/brolly is used and, failing that, the defaults.
func Load(confPath string) (*Config, error) {
	if confPath != "" {
		return NewFromFile(filepath.Dir(confPath), filepath.Base(confPath))
	}
	if path, file := findConfigFile(); path != "" && file != "" {
		return NewFromFile(path, file)
	}
	return New()
}

func findConfigFile() (string, string) {
	homedir, err := os.UserHomeDir()
	if err != nil {
		return "", ""
	}
	for _, ext := range []string{"toml", "yaml", "yml", "json"} {
		path := filepath.Join(homedir, ".config", "brolly", "config."+ext)
		if _, err = os.Stat(path); err == nil {
			return filepath.Dir(path), filepath.Base(path)
		}
	}
	return "", ""
}

func (c *Config) Validate() error {
	if c.Location.Latitude < -90 || c.Location.Latitude > 90 {
		return fmt.Errorf("invalid latitude: %f", c.Location.Latitude)
	}
	if c.Location.Longitude < -180 || c.Location.Longitude > 180 {
		return fmt.Errorf("invalid longitude: %f", c.Location.Longitude)
	}
	if c.Weather.Provider != ProviderOpenMeteo {
		return fmt.Errorf("invalid weather provider: %s", c.Weather.Provider)
	}
	if c.Weather.ForecastDays < minForecastDays || c.Weather.ForecastDays > maxForecastDays {
		return fmt.Errorf("invalid forecast days: %d", c.Weather.ForecastDays)
	}
	if _, err := time.LoadLocation(c.Weather.Timezone); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", c.Weather.Timezone, err)
	}

	for name, interval := range map[string]time.Duration{
		"weather update interval":  c.Intervals.WeatherUpdate,
		"output interval":          c.Intervals.Output,
		"upstream timeout":         c.Upstream.Timeout,
		"upstream cache TTL":       c.Upstream.CacheTTL,
		"upstream cache prune":     c.Upstream.CachePrune,
		"upstream breaker timeout": c.Upstream.BreakerTimeout,
		"server shutdown timeout":  c.Server.ShutdownTimeout,
		"server cache control TTL": c.Server.CacheControlTTL,
	} {
		if interval <= 0 {
			return fmt.Errorf("invalid %s: %s", name, interval)
		}
	}
	if c.Upstream.RateLimit <= 0 || c.Upstream.Burst < 1 {
		return fmt.Errorf("invalid upstream rate limit: %f/s with burst %d", c.Upstream.RateLimit,
			c.Upstream.Burst)
	}
	if c.Upstream.BreakerFailures < 1 {
		return fmt.Errorf("invalid upstream breaker failures: %d", c.Upstream.BreakerFailures)
	}

	if c.Templates.Text == "" {
		c.Templates.Text = DefaultTextTpl
	}
	if c.Templates.AltText == "" {
		c.Templates.AltText = DefaultAltTextTpl
	}
	if c.Templates.Tooltip == "" {
		c.Templates.Tooltip = DefaultTooltipTpl
	}

	return nil
}

// TimeLocation returns the loaded forecast timezone. Validate guarantees it can be loaded.
func (c *Config) TimeLocation() *time.Location {
	loc, err := time.LoadLocation(c.Weather.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
