// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg_test

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bborbe/weather_mcp_server/pkg"
)

var _ = Describe("Prompts", func() {
	var ctx context.Context
	var prompt mcp.Prompt
	var handler func(context.Context, mcp.GetPromptRequest) (*mcp.GetPromptResult, error)
	var request mcp.GetPromptRequest
	var result *mcp.GetPromptResult
	var err error

	BeforeEach(func() {
		ctx = context.Background()
		request = mcp.GetPromptRequest{}
	})

	JustBeforeEach(func() {
		result, err = handler(ctx, request)
	})

	Context("review_code", func() {
		BeforeEach(func() {
			prompt, handler = pkg.NewReviewCodePrompt()
		})

		Context("with code", func() {
			BeforeEach(func() {
				request.Params.Arguments = map[string]string{"code": "func main() {}"}
			})

			It("has the prompt name", func() {
				Expect(prompt.Name).To(Equal("review_code"))
			})

			It("returns one user message", func() {
				Expect(err).To(BeNil())
				Expect(result.Messages).To(HaveLen(1))
				Expect(result.Messages[0].Role).To(Equal(mcp.RoleUser))
				Expect(getTextContent(result.Messages[0].Content)).To(Equal(
					"Please review the following code:\nfunc main() {}\n\n### Review:\n",
				))
			})
		})

		Context("without code", func() {
			It("returns error", func() {
				Expect(err).NotTo(BeNil())
			})
		})
	})

	Context("debug_error", func() {
		BeforeEach(func() {
			prompt, handler = pkg.NewDebugErrorPrompt()
		})

		Context("with error", func() {
			BeforeEach(func() {
				request.Params.Arguments = map[string]string{"error": "nil pointer dereference"}
			})

			It("has the prompt name", func() {
				Expect(prompt.Name).To(Equal("debug_error"))
			})

			It("returns the conversation", func() {
				Expect(err).To(BeNil())
				Expect(result.Messages).To(HaveLen(3))
				Expect(result.Messages[0].Role).To(Equal(mcp.RoleUser))
				Expect(getTextContent(result.Messages[0].Content)).To(Equal("You are a helpful assistant that helps debug errors."))
				Expect(result.Messages[1].Role).To(Equal(mcp.RoleUser))
				Expect(getTextContent(result.Messages[1].Content)).To(Equal("Please help me debug the following error:\nnil pointer dereference"))
				Expect(result.Messages[2].Role).To(Equal(mcp.RoleAssistant))
				Expect(getTextContent(result.Messages[2].Content)).To(Equal("Sure! Please provide the error message and any relevant code snippets."))
			})
		})

		Context("without error", func() {
			It("returns error", func() {
				Expect(err).NotTo(BeNil())
			})
		})
	})
})
