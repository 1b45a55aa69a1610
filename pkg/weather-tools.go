// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

var stateCodePattern = regexp.MustCompile(`^[A-Z]{2}$`)

func NewGetAlertsTool(weather *Weather) server.ServerTool {

	type GetAlertsArgs struct {
		State string `json:"state"`
	}

	tool := mcp.NewTool("get_alerts",
		mcp.WithDescription("Get weather alerts for a US state"),
		mcp.WithString("state",
			mcp.Required(),
			mcp.Description("Two-letter US state code (e.g. CA, NY)"),
		),
	)
	handler := mcp.NewTypedToolHandler(func(
		ctx context.Context,
		request mcp.CallToolRequest,
		args GetAlertsArgs,
	) (*mcp.CallToolResult, error) {
		state := strings.ToUpper(strings.TrimSpace(args.State))
		if !stateCodePattern.MatchString(state) {
			return mcp.NewToolResultError("state must be a two-letter code"), nil
		}
		text, err := weather.GetAlerts(ctx, state)
		if err != nil {
			return mcp.NewToolResultError(text), nil
		}
		return mcp.NewToolResultText(text), nil
	})
	return server.ServerTool{
		Tool:    tool,
		Handler: handler,
	}
}

func NewGetForecastTool(weather *Weather) server.ServerTool {

	type GetForecastArgs struct {
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
	}

	tool := mcp.NewTool("get_forecast",
		mcp.WithDescription("Get weather forecast for a location"),
		mcp.WithNumber("latitude",
			mcp.Required(),
			mcp.Description("Latitude of the location"),
			mcp.Min(-90),
			mcp.Max(90),
		),
		mcp.WithNumber("longitude",
			mcp.Required(),
			mcp.Description("Longitude of the location"),
			mcp.Min(-180),
			mcp.Max(180),
		),
	)
	handler := mcp.NewTypedToolHandler(func(
		ctx context.Context,
		request mcp.CallToolRequest,
		args GetForecastArgs,
	) (*mcp.CallToolResult, error) {
		if args.Latitude == nil || args.Longitude == nil {
			return mcp.NewToolResultError("latitude and longitude are required"), nil
		}
		if *args.Latitude < -90 || *args.Latitude > 90 {
			return mcp.NewToolResultError("latitude must be between -90 and 90"), nil
		}
		if *args.Longitude < -180 || *args.Longitude > 180 {
			return mcp.NewToolResultError("longitude must be between -180 and 180"), nil
		}
		text, err := weather.GetForecast(ctx, *args.Latitude, *args.Longitude)
		if err != nil {
			return mcp.NewToolResultError(text), nil
		}
		return mcp.NewToolResultText(text), nil
	})
	return server.ServerTool{
		Tool:    tool,
		Handler: handler,
	}
}

func NewFetchWeatherTool(weather *Weather) server.ServerTool {

	type FetchWeatherArgs struct {
		City string `json:"city"`
	}

	tool := mcp.NewTool("fetch_weather",
		mcp.WithDescription("Fetch current weather for a city"),
		mcp.WithString("city",
			mcp.Required(),
			mcp.Description("Name of the city"),
		),
	)
	handler := mcp.NewTypedToolHandler(func(
		ctx context.Context,
		request mcp.CallToolRequest,
		args FetchWeatherArgs,
	) (*mcp.CallToolResult, error) {
		city := strings.TrimSpace(args.City)
		if city == "" {
			return mcp.NewToolResultError("city is required"), nil
		}
		text, err := weather.CurrentWeather(ctx, city)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Unable to fetch weather for %s.", city)), nil
		}
		return mcp.NewToolResultText(text), nil
	})
	return server.ServerTool{
		Tool:    tool,
		Handler: handler,
	}
}
