// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/bborbe/errors"
	"github.com/golang/glog"
	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/client/transport"
	"github.com/mark3labs/mcp-go/mcp"
)

const (
	defaultURL = "http://localhost:8080/sse"
)

func main() {
	defer glog.Flush()
	url := flag.String("url", defaultURL, "MCP server SSE endpoint")
	toolName := flag.String("tool", "", "tool to call, lists tools if empty")
	toolArgs := flag.String("args", "{}", "tool arguments as JSON object")
	flag.Parse()

	ctx := context.Background()

	sseTransport, err := transport.NewSSE(*url)
	if err != nil {
		glog.Exitf("create SSE transport failed: %v", err)
	}
	defer sseTransport.Close()

	mcpClient := client.NewClient(sseTransport)
	if err := mcpClient.Start(ctx); err != nil {
		glog.Exitf("start client failed: %v", err)
	}

	initRequest := mcp.InitializeRequest{
		Params: mcp.InitializeParams{
			ProtocolVersion: mcp.LATEST_PROTOCOL_VERSION,
			Capabilities:    mcp.ClientCapabilities{},
			ClientInfo: mcp.Implementation{
				Name:    "weather-sse-client",
				Version: "1.0.0",
			},
		},
	}
	if _, err := mcpClient.Initialize(ctx, initRequest); err != nil {
		glog.Exitf("initialize MCP session failed: %v", err)
	}

	if *toolName == "" {
		if err := listTools(ctx, mcpClient); err != nil {
			glog.Exitf("list tools failed: %v", err)
		}
		return
	}
	if err := callTool(ctx, mcpClient, *toolName, *toolArgs); err != nil {
		glog.Exitf("call tool %s failed: %v", *toolName, err)
	}
}

func listTools(ctx context.Context, mcpClient *client.Client) error {
	tools, err := mcpClient.ListTools(ctx, mcp.ListToolsRequest{})
	if err != nil {
		return err
	}
	fmt.Printf("Available Tools (%d):\n", len(tools.Tools))
	for i, tool := range tools.Tools {
		fmt.Printf("%d. %s\n", i+1, tool.Name)
		if tool.Description != "" {
			fmt.Printf("   %s\n", tool.Description)
		}
		for name := range tool.InputSchema.Properties {
			fmt.Printf("   - %s\n", name)
		}
	}
	return nil
}

func callTool(ctx context.Context, mcpClient *client.Client, name string, rawArgs string) error {
	var arguments map[string]interface{}
	if err := json.Unmarshal([]byte(rawArgs), &arguments); err != nil {
		return errors.Wrapf(ctx, err, "parse args failed")
	}
	result, err := mcpClient.CallTool(ctx, mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: arguments,
		},
	})
	if err != nil {
		return errors.Wrapf(ctx, err, "call tool failed")
	}
	for _, content := range result.Content {
		if textContent, ok := mcp.AsTextContent(content); ok {
			fmt.Println(textContent.Text)
		}
	}
	if result.IsError {
		return errors.Errorf(ctx, "tool %s returned an error result", name)
	}
	return nil
}
