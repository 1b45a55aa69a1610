// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg

import "time"

const (
	ServerName    = "weather"
	ServerVersion = "1.0.0"

	DefaultNWSBaseURL     = "https://api.weather.gov"
	DefaultWeatherBaseURL = "https://api.weather.com"
	DefaultUserAgent      = "weather-app/1.0"
	DefaultTimeout        = 30 * time.Second
	DefaultMaxBodySize    = 10 << 20
)

// Config holds the outbound settings shared by all tools.
type Config struct {
	NWSBaseURL     string
	WeatherBaseURL string
	UserAgent      string
	Timeout        time.Duration
	// MaxBodySize caps the bytes read from a response body.
	MaxBodySize int64
}

func NewConfig() Config {
	return Config{
		NWSBaseURL:     DefaultNWSBaseURL,
		WeatherBaseURL: DefaultWeatherBaseURL,
		UserAgent:      DefaultUserAgent,
		Timeout:        DefaultTimeout,
		MaxBodySize:    DefaultMaxBodySize,
	}
}
