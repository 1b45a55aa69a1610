// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg_test

import (
	"context"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bborbe/weather_mcp_server/pkg"
)

var _ = Describe("CalculateBMI", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	It("divides weight by height squared", func() {
		bmi, err := pkg.CalculateBMI(ctx, 70, 1.75)
		Expect(err).To(BeNil())
		Expect(bmi).To(BeNumerically("~", 22.857142857, 1e-6))
	})

	It("rejects zero height", func() {
		_, err := pkg.CalculateBMI(ctx, 70, 0)
		Expect(err).NotTo(BeNil())
	})

	It("rejects negative weight", func() {
		_, err := pkg.CalculateBMI(ctx, -1, 1.8)
		Expect(err).NotTo(BeNil())
	})
})

var _ = Describe("CalculateBMITool", func() {
	var ctx context.Context
	var tool server.ServerTool
	var request mcp.CallToolRequest
	var result *mcp.CallToolResult
	var err error

	BeforeEach(func() {
		ctx = context.Background()
		tool = pkg.NewCalculateBMITool()
	})

	It("creates tool with correct name", func() {
		Expect(tool.Tool.Name).To(Equal("calculate_bmi"))
	})

	Context("tool execution", func() {
		JustBeforeEach(func() {
			result, err = tool.Handler(ctx, request)
		})

		Context("with valid weight and height", func() {
			BeforeEach(func() {
				request = callToolRequest("calculate_bmi", map[string]interface{}{
					"weight_kg": 70.0,
					"height_m":  1.75,
				})
			})

			It("returns no error", func() {
				Expect(err).To(BeNil())
				Expect(result.IsError).To(BeFalse())
			})

			It("returns the bmi", func() {
				bmi, parseErr := strconv.ParseFloat(getTextContent(result.Content[0]), 64)
				Expect(parseErr).To(BeNil())
				Expect(bmi).To(BeNumerically("~", 22.857142857, 1e-6))
			})
		})

		Context("with missing height", func() {
			BeforeEach(func() {
				request = callToolRequest("calculate_bmi", map[string]interface{}{
					"weight_kg": 70.0,
				})
			})

			It("returns error result", func() {
				Expect(err).To(BeNil())
				Expect(result.IsError).To(BeTrue())
				Expect(getTextContent(result.Content[0])).To(ContainSubstring("height_m must be greater than 0"))
			})
		})
	})
})
