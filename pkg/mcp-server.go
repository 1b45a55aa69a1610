// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func NewMCPServer(config Config, fetcher Fetcher, metrics Metrics) *server.MCPServer {
	s := server.NewMCPServer(
		ServerName,
		ServerVersion,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
	)
	weather := NewWeather(config, fetcher)
	s.AddTools(
		NewMeasuredTool(metrics, NewGetAlertsTool(weather)),
		NewMeasuredTool(metrics, NewGetForecastTool(weather)),
		NewMeasuredTool(metrics, NewFetchWeatherTool(weather)),
		NewMeasuredTool(metrics, NewCalculateBMITool()),
	)
	s.AddResource(NewAppConfigResource(config))
	s.AddResourceTemplate(NewUserProfileResource())
	s.AddPrompt(NewReviewCodePrompt())
	s.AddPrompt(NewDebugErrorPrompt())
	return s
}

// NewMeasuredTool counts every call of the tool by outcome.
func NewMeasuredTool(metrics Metrics, tool server.ServerTool) server.ServerTool {
	name := tool.Tool.Name
	handler := tool.Handler
	return server.ServerTool{
		Tool: tool.Tool,
		Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			result, err := handler(ctx, request)
			metrics.ToolCall(name, err != nil || (result != nil && result.IsError))
			return result, err
		},
	}
}
