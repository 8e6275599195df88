// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package server

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/wneessen/brolly/internal/logger"
	"github.com/wneessen/brolly/internal/summary"
	"github.com/wneessen/brolly/internal/weather"
)

const defaultDays = 7

type weatherRequest struct {
	Lat  float64 `validate:"gte=-90,lte=90"`
	Lon  float64 `validate:"gte=-180,lte=180"`
	Days int     `validate:"gte=1,lte=14"`
}

// validationMessages maps the failing request field to the client facing error message.
var validationMessages = map[string]string{
	"Lat":  "Latitude must be between -90 and 90",
	"Lon":  "Longitude must be between -180 and 180",
	"Days": "Days must be between 1 and 14",
}

type weatherResponse struct {
	*weather.Forecast
	Summary summary.Summary `json:"summary"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleWeather(w http.ResponseWriter, r *http.Request) {
	req, msg := s.parseWeatherRequest(r)
	if msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	coords := weather.Coordinate{Lat: req.Lat, Lon: req.Lon}
	forecast, err := s.provider.GetForecast(r.Context(), coords, req.Days)
	if err != nil {
		s.logger.Error("failed to fetch weather data", logger.Err(err),
			slog.String("coordinates", coords.String()), slog.Int("days", req.Days),
			slog.String("source", s.provider.Name()))
		status := http.StatusInternalServerError
		if errors.Is(err, weather.ErrUpstreamUnavailable) {
			status = http.StatusServiceUnavailable
		}
		writeError(w, status, err.Error())
		return
	}

	now := summary.NowFrom(s.clock.Now().In(s.location))
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(s.cacheControlTTL.Seconds())))
	writeJSON(w, http.StatusOK, weatherResponse{
		Forecast: forecast,
		Summary:  summary.Generate(forecast, now),
	})
}

// parseWeatherRequest parses and validates the path and query parameters. It returns the
// client facing error message if the request is invalid.
func (s *Server) parseWeatherRequest(r *http.Request) (weatherRequest, string) {
	req := weatherRequest{Days: defaultDays}

	lat, latErr := strconv.ParseFloat(chi.URLParam(r, "lat"), 64)
	lon, lonErr := strconv.ParseFloat(chi.URLParam(r, "lon"), 64)
	if latErr != nil || lonErr != nil || math.IsNaN(lat) || math.IsNaN(lon) {
		return req, "Invalid coordinates"
	}
	req.Lat, req.Lon = lat, lon

	if val := r.URL.Query().Get("days"); val != "" {
		days, err := strconv.Atoi(val)
		if err != nil {
			return req, validationMessages["Days"]
		}
		req.Days = days
	}

	if err := s.validate.Struct(req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
			if msg, ok := validationMessages[validationErrs[0].Field()]; ok {
				return req, msg
			}
		}
		return req, "Invalid request"
	}
	return req, ""
}
