// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg_test

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/bborbe/weather_mcp_server/pkg"
)

func getTextContent(content mcp.Content) string {
	textContent, ok := mcp.AsTextContent(content)
	if !ok {
		return ""
	}
	return textContent.Text
}

func stringPtr(value string) *string {
	return &value
}

// respondWith serves canned JSON bodies by URL and a 404 status failure for everything else.
func respondWith(responses map[string]string) func(context.Context, string, interface{}) error {
	return func(ctx context.Context, url string, target interface{}) error {
		body, ok := responses[url]
		if !ok {
			return &pkg.FetchError{Kind: pkg.HTTPStatusFailure, URL: url, StatusCode: 404}
		}
		return json.Unmarshal([]byte(body), target)
	}
}

func callToolRequest(name string, arguments map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: arguments,
		},
	}
}
