// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg

import (
	"context"

	"github.com/bborbe/errors"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func NewReviewCodePrompt() (mcp.Prompt, server.PromptHandlerFunc) {
	prompt := mcp.NewPrompt("review_code",
		mcp.WithPromptDescription("Ask for a review of a code snippet"),
		mcp.WithArgument("code",
			mcp.ArgumentDescription("The code to review"),
			mcp.RequiredArgument(),
		),
	)
	handler := func(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		code, ok := request.Params.Arguments["code"]
		if !ok || code == "" {
			return nil, errors.Errorf(ctx, "code is required")
		}
		return mcp.NewGetPromptResult(
			"Code review",
			[]mcp.PromptMessage{
				mcp.NewPromptMessage(
					mcp.RoleUser,
					mcp.NewTextContent("Please review the following code:\n"+code+"\n\n### Review:\n"),
				),
			},
		), nil
	}
	return prompt, handler
}

func NewDebugErrorPrompt() (mcp.Prompt, server.PromptHandlerFunc) {
	prompt := mcp.NewPrompt("debug_error",
		mcp.WithPromptDescription("Start a conversation to debug an error"),
		mcp.WithArgument("error",
			mcp.ArgumentDescription("The error message to debug"),
			mcp.RequiredArgument(),
		),
	)
	handler := func(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		errorMessage, ok := request.Params.Arguments["error"]
		if !ok || errorMessage == "" {
			return nil, errors.Errorf(ctx, "error is required")
		}
		return mcp.NewGetPromptResult(
			"Debug error",
			[]mcp.PromptMessage{
				mcp.NewPromptMessage(
					mcp.RoleUser,
					mcp.NewTextContent("You are a helpful assistant that helps debug errors."),
				),
				mcp.NewPromptMessage(
					mcp.RoleUser,
					mcp.NewTextContent("Please help me debug the following error:\n"+errorMessage),
				),
				mcp.NewPromptMessage(
					mcp.RoleAssistant,
					mcp.NewTextContent("Sure! Please provide the error message and any relevant code snippets."),
				),
			},
		), nil
	}
	return prompt, handler
}
