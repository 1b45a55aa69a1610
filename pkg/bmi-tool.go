// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg

import (
	"context"
	"strconv"

	"github.com/bborbe/errors"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// CalculateBMI returns weight divided by the square of height.
func CalculateBMI(ctx context.Context, weightKg float64, heightM float64) (float64, error) {
	if weightKg <= 0 {
		return 0, errors.Errorf(ctx, "weight_kg must be greater than 0")
	}
	if heightM <= 0 {
		return 0, errors.Errorf(ctx, "height_m must be greater than 0")
	}
	return weightKg / (heightM * heightM), nil
}

func NewCalculateBMITool() server.ServerTool {

	type CalculateBMIArgs struct {
		WeightKg float64 `json:"weight_kg"`
		HeightM  float64 `json:"height_m"`
	}

	tool := mcp.NewTool("calculate_bmi",
		mcp.WithDescription("Calculate BMI given weight in kg and height in meters"),
		mcp.WithNumber("weight_kg",
			mcp.Required(),
			mcp.Description("Weight in kilograms"),
		),
		mcp.WithNumber("height_m",
			mcp.Required(),
			mcp.Description("Height in meters"),
		),
	)
	handler := mcp.NewTypedToolHandler(func(
		ctx context.Context,
		request mcp.CallToolRequest,
		args CalculateBMIArgs,
	) (*mcp.CallToolResult, error) {
		bmi, err := CalculateBMI(ctx, args.WeightKg, args.HeightM)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(strconv.FormatFloat(bmi, 'f', -1, 64)), nil
	})
	return server.ServerTool{
		Tool:    tool,
		Handler: handler,
	}
}
