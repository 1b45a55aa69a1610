// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/golang/glog"
)

const (
	MaxForecastPeriods = 5

	MessagePointUnavailable    = "Unable to fetch forecast data for this location."
	MessageForecastUnavailable = "Unable to fetch detailed forecast."
	MessageNoForecastPeriods   = "No forecast periods found."
)

// ForecastStage names the request of the forecast pipeline that failed.
type ForecastStage string

const (
	StagePoint    ForecastStage = "point"
	StageForecast ForecastStage = "forecast"
)

// ForecastError wraps the failure of one pipeline stage.
type ForecastError struct {
	Stage ForecastStage
	Err   error
}

func (e *ForecastError) Error() string {
	return fmt.Sprintf("%s stage failed: %v", e.Stage, e.Err)
}

func (e *ForecastError) Unwrap() error {
	return e.Err
}

// Message returns the text shown to the caller for this failure.
func (e *ForecastError) Message() string {
	if e.Stage == StagePoint {
		return MessagePointUnavailable
	}
	return MessageForecastUnavailable
}

type ForecastPoint struct {
	Properties struct {
		Forecast *string `json:"forecast"`
	} `json:"properties"`
}

type ForecastPeriod struct {
	Name             string  `json:"name"`
	Temperature      float64 `json:"temperature"`
	TemperatureUnit  string  `json:"temperatureUnit"`
	WindSpeed        string  `json:"windSpeed"`
	WindDirection    string  `json:"windDirection"`
	DetailedForecast string  `json:"detailedForecast"`
}

type forecastResponse struct {
	Properties struct {
		Periods *[]ForecastPeriod `json:"periods"`
	} `json:"properties"`
}

// FormatPeriod renders one forecast period as a text block.
func FormatPeriod(period ForecastPeriod) string {
	return fmt.Sprintf(
		"\n%s:\nTemperature: %s°%s\nWind: %s %s\nForecast: %s\n",
		period.Name,
		strconv.FormatFloat(period.Temperature, 'f', -1, 64),
		period.TemperatureUnit,
		period.WindSpeed,
		period.WindDirection,
		period.DetailedForecast,
	)
}

// Forecast resolves the forecast URL of the grid covering the coordinates and
// returns at most MaxForecastPeriods periods in upstream order.
func (w *Weather) Forecast(ctx context.Context, latitude float64, longitude float64) ([]ForecastPeriod, error) {
	pointsURL := fmt.Sprintf(
		"%s/points/%s,%s",
		strings.TrimSuffix(w.nwsBaseURL, "/"),
		formatCoordinate(latitude),
		formatCoordinate(longitude),
	)
	var point ForecastPoint
	if err := w.fetcher.FetchJSON(ctx, pointsURL, &point); err != nil {
		return nil, &ForecastError{Stage: StagePoint, Err: err}
	}
	if point.Properties.Forecast == nil || *point.Properties.Forecast == "" {
		return nil, &ForecastError{
			Stage: StagePoint,
			Err:   newShapeError(pointsURL, "properties.forecast missing"),
		}
	}

	forecastURL := *point.Properties.Forecast
	var forecast forecastResponse
	if err := w.fetcher.FetchJSON(ctx, forecastURL, &forecast); err != nil {
		return nil, &ForecastError{Stage: StageForecast, Err: err}
	}
	if forecast.Properties.Periods == nil {
		return nil, &ForecastError{
			Stage: StageForecast,
			Err:   newShapeError(forecastURL, "properties.periods missing"),
		}
	}

	periods := *forecast.Properties.Periods
	if len(periods) > MaxForecastPeriods {
		periods = periods[:MaxForecastPeriods]
	}
	return periods, nil
}

// GetForecast returns the formatted forecast or a fixed failure message.
func (w *Weather) GetForecast(ctx context.Context, latitude float64, longitude float64) (string, error) {
	periods, err := w.Forecast(ctx, latitude, longitude)
	if err != nil {
		glog.Warningf("get forecast for %v,%v failed: %v", latitude, longitude, err)
		var forecastErr *ForecastError
		if errors.As(err, &forecastErr) {
			return forecastErr.Message(), err
		}
		return MessagePointUnavailable, err
	}
	if len(periods) == 0 {
		return MessageNoForecastPeriods, nil
	}
	blocks := make([]string, 0, len(periods))
	for _, period := range periods {
		blocks = append(blocks, FormatPeriod(period))
	}
	return strings.Join(blocks, BlockSeparator), nil
}

func formatCoordinate(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
