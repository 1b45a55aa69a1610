// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bborbe/errors"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	AppConfigURI           = "config://app"
	UserProfileURITemplate = "users://{user_id}/profile"

	userProfilePrefix = "users://"
	userProfileSuffix = "/profile"
)

type appConfig struct {
	Name           string `json:"name"`
	Version        string `json:"version"`
	NWSBaseURL     string `json:"nwsBaseUrl"`
	WeatherBaseURL string `json:"weatherBaseUrl"`
	UserAgent      string `json:"userAgent"`
	Timeout        string `json:"timeout"`
}

func NewAppConfigResource(config Config) (mcp.Resource, server.ResourceHandlerFunc) {
	resource := mcp.NewResource(
		AppConfigURI,
		"App configuration",
		mcp.WithResourceDescription("Server name, version and outbound request settings"),
		mcp.WithMIMEType("application/json"),
	)
	handler := func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		content, err := json.Marshal(appConfig{
			Name:           ServerName,
			Version:        ServerVersion,
			NWSBaseURL:     config.NWSBaseURL,
			WeatherBaseURL: config.WeatherBaseURL,
			UserAgent:      config.UserAgent,
			Timeout:        config.Timeout.String(),
		})
		if err != nil {
			return nil, errors.Wrapf(ctx, err, "marshal app config failed")
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      AppConfigURI,
				MIMEType: "application/json",
				Text:     string(content),
			},
		}, nil
	}
	return resource, handler
}

func NewUserProfileResource() (mcp.ResourceTemplate, server.ResourceTemplateHandlerFunc) {
	template := mcp.NewResourceTemplate(
		UserProfileURITemplate,
		"User profile",
		mcp.WithTemplateDescription("Profile data of the given user"),
		mcp.WithTemplateMIMEType("text/plain"),
	)
	handler := func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		userID, err := parseUserID(ctx, request.Params.URI)
		if err != nil {
			return nil, err
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      request.Params.URI,
				MIMEType: "text/plain",
				Text:     fmt.Sprintf("User %s profile data", userID),
			},
		}, nil
	}
	return template, handler
}

func parseUserID(ctx context.Context, uri string) (string, error) {
	if !strings.HasPrefix(uri, userProfilePrefix) || !strings.HasSuffix(uri, userProfileSuffix) {
		return "", errors.Errorf(ctx, "uri %s does not match %s", uri, UserProfileURITemplate)
	}
	userID := strings.TrimSuffix(strings.TrimPrefix(uri, userProfilePrefix), userProfileSuffix)
	if userID == "" || strings.Contains(userID, "/") {
		return "", errors.Errorf(ctx, "invalid user_id in %s", uri)
	}
	return userID, nil
}
