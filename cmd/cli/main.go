// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"os"
	"time"

	"github.com/bborbe/errors"
	libsentry "github.com/bborbe/sentry"
	"github.com/bborbe/service"
	"github.com/golang/glog"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bborbe/weather_mcp_server/pkg"
)

func main() {
	app := &application{}
	os.Exit(service.Main(context.Background(), app, &app.SentryDSN, &app.SentryProxy))
}

type application struct {
	SentryDSN      string        `required:"false" arg:"sentry-dsn"       env:"SENTRY_DSN"       usage:"SentryDSN"                       display:"length"`
	SentryProxy    string        `required:"false" arg:"sentry-proxy"     env:"SENTRY_PROXY"     usage:"Sentry Proxy"`
	NWSBaseURL     string        `required:"true"  arg:"nws-base-url"     env:"NWS_BASE_URL"     usage:"National Weather Service API"    default:"https://api.weather.gov"`
	WeatherBaseURL string        `required:"true"  arg:"weather-base-url" env:"WEATHER_BASE_URL" usage:"base url of fetch_weather"       default:"https://api.weather.com"`
	UserAgent      string        `required:"true"  arg:"user-agent"       env:"USER_AGENT"       usage:"User-Agent of outbound requests" default:"weather-app/1.0"`
	HTTPTimeout    time.Duration `required:"true"  arg:"http-timeout"     env:"HTTP_TIMEOUT"     usage:"timeout of outbound requests"    default:"30s"`
}

func (a *application) Run(ctx context.Context, sentryClient libsentry.Client) error {
	config := pkg.Config{
		NWSBaseURL:     a.NWSBaseURL,
		WeatherBaseURL: a.WeatherBaseURL,
		UserAgent:      a.UserAgent,
		Timeout:        a.HTTPTimeout,
	}
	metrics := pkg.NewMetrics()
	fetcher := pkg.NewHTTPFetcher(config, metrics)
	defer fetcher.Close()

	glog.V(1).Infof("serving mcp over stdio")
	stdioServer := server.NewStdioServer(pkg.NewMCPServer(config, fetcher, metrics))
	if err := stdioServer.Listen(ctx, os.Stdin, os.Stdout); err != nil {
		return errors.Wrapf(ctx, err, "listen on stdio failed")
	}
	return nil
}
