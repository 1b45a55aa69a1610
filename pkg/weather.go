// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

func NewWeather(config Config, fetcher Fetcher) *Weather {
	return &Weather{
		fetcher:        fetcher,
		nwsBaseURL:     config.NWSBaseURL,
		weatherBaseURL: config.WeatherBaseURL,
	}
}

// Weather answers alert, forecast and current weather queries through a Fetcher.
// It holds no mutable state and is safe for concurrent use.
type Weather struct {
	fetcher        Fetcher
	nwsBaseURL     string
	weatherBaseURL string
}

// CurrentWeather returns the raw body served for the city by the weather base URL.
func (w *Weather) CurrentWeather(ctx context.Context, city string) (string, error) {
	weatherURL := fmt.Sprintf("%s/%s", strings.TrimSuffix(w.weatherBaseURL, "/"), url.PathEscape(city))
	return w.fetcher.FetchText(ctx, weatherURL)
}
